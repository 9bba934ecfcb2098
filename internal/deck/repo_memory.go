package deck

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jorge-castellon-jr/chess-tcg/internal/model"
)

type MemoryRepo struct {
	mu    sync.RWMutex
	decks map[model.DeckID]model.Deck
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{decks: map[model.DeckID]model.Deck{}}
}

func (r *MemoryRepo) Create(_ context.Context, d model.Deck) (model.Deck, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	normalizeDeck(&d)
	now := time.Now()
	d.ID = newID()
	d.CreatedAt = now
	d.UpdatedAt = now
	r.decks[d.ID] = d
	return d, nil
}

func (r *MemoryRepo) Get(_ context.Context, id model.DeckID) (model.Deck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.decks[id]
	if !ok {
		return model.Deck{}, ErrNotFound
	}
	return d, nil
}

func (r *MemoryRepo) List(_ context.Context, f ListFilter) ([]model.Deck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Deck, 0, len(r.decks))
	for _, d := range r.decks {
		if matches(d, f) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
