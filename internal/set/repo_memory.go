package set

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jorge-castellon-jr/chess-tcg/internal/model"
)

type MemoryRepo struct {
	mu   sync.RWMutex
	sets map[model.SetID]model.Set
	// order preserves insertion so GetByName's "first match wins" is stable
	order []model.SetID
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{sets: map[model.SetID]model.Set{}}
}

func (r *MemoryRepo) Create(_ context.Context, s model.Set) (model.Set, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	normalizeSet(&s)
	now := time.Now()
	s.ID = newID()
	s.CreatedAt = now
	s.UpdatedAt = now
	if s.ReleaseDate.IsZero() {
		s.ReleaseDate = now
	}
	r.sets[s.ID] = s
	r.order = append(r.order, s.ID)
	return s, nil
}

func (r *MemoryRepo) Get(_ context.Context, id model.SetID) (model.Set, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sets[id]
	if !ok {
		return model.Set{}, ErrNotFound
	}
	return s, nil
}

func (r *MemoryRepo) GetByName(_ context.Context, name string) (model.Set, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if s := r.sets[id]; s.Name == name {
			return s, nil
		}
	}
	return model.Set{}, ErrNotFound
}

func (r *MemoryRepo) List(_ context.Context) ([]model.Set, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Set, 0, len(r.sets))
	for _, s := range r.sets {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReleaseDate.After(out[j].ReleaseDate) })
	return out, nil
}
