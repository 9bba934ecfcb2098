package card

import (
	"context"
	"sync"
	"time"

	"github.com/jorge-castellon-jr/chess-tcg/internal/model"
)

type MemoryRepo struct {
	mu    sync.RWMutex
	cards map[model.CardID]model.Card
	order []model.CardID
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{cards: map[model.CardID]model.Card{}}
}

// Seed creates cards in order, stopping at the first failure.
func (r *MemoryRepo) Seed(ctx context.Context, cards []model.Card) error {
	for _, c := range cards {
		if _, err := r.Create(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (r *MemoryRepo) Create(_ context.Context, c model.Card) (model.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	normalizeCard(&c)
	now := time.Now()
	c.ID = newID()
	c.CreatedAt = now
	c.UpdatedAt = now
	r.cards[c.ID] = c
	r.order = append(r.order, c.ID)
	return c, nil
}

func (r *MemoryRepo) Get(_ context.Context, id model.CardID) (model.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.cards[id]
	if !ok {
		return model.Card{}, ErrNotFound
	}
	return c, nil
}

func (r *MemoryRepo) GetByName(_ context.Context, name string) (model.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if c := r.cards[id]; c.Name == name {
			return c, nil
		}
	}
	return model.Card{}, ErrNotFound
}

func (r *MemoryRepo) List(_ context.Context, f ListFilter) ([]model.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Card, 0, len(r.order))
	for _, id := range r.order {
		c := r.cards[id]
		if matches(c, f) {
			out = append(out, c)
		}
	}
	return out, nil
}
