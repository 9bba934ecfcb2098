package user

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jorge-castellon-jr/chess-tcg/internal/model"
)

type MemoryRepo struct {
	mu    sync.RWMutex
	users map[model.UserID]model.User
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{users: map[model.UserID]model.User{}}
}

func (r *MemoryRepo) Create(_ context.Context, u model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	normalizeUser(&u)
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return model.User{}, ErrDuplicateEmail
		}
	}
	now := time.Now()
	u.ID = newID()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.users[u.ID] = u
	return u, nil
}

func (r *MemoryRepo) Get(_ context.Context, id model.UserID) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return model.User{}, ErrNotFound
	}
	return u, nil
}

func (r *MemoryRepo) List(_ context.Context) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}
