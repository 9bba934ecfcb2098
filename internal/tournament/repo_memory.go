package tournament

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jorge-castellon-jr/chess-tcg/internal/model"
)

type MemoryRepo struct {
	mu          sync.RWMutex
	tournaments map[model.TournamentID]model.Tournament
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{tournaments: map[model.TournamentID]model.Tournament{}}
}

func (r *MemoryRepo) Create(_ context.Context, t model.Tournament) (model.Tournament, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	normalizeTournament(&t)
	now := time.Now()
	t.ID = newID()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Date.IsZero() {
		t.Date = now
	}
	r.tournaments[t.ID] = t
	return t, nil
}

func (r *MemoryRepo) Get(_ context.Context, id model.TournamentID) (model.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tournaments[id]
	if !ok {
		return model.Tournament{}, ErrNotFound
	}
	return t, nil
}

func (r *MemoryRepo) List(_ context.Context) ([]model.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Tournament, 0, len(r.tournaments))
	for _, t := range r.tournaments {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}
