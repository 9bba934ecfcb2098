package keyword

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jorge-castellon-jr/chess-tcg/internal/model"
)

type MemoryRepo struct {
	mu       sync.RWMutex
	keywords map[model.KeywordID]model.Keyword
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{keywords: map[model.KeywordID]model.Keyword{}}
}

func (r *MemoryRepo) Create(_ context.Context, k model.Keyword) (model.Keyword, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	normalizeKeyword(&k)
	for _, existing := range r.keywords {
		if strings.EqualFold(existing.Name, k.Name) {
			return model.Keyword{}, ErrDuplicateName
		}
	}

	now := time.Now()
	k.ID = newID()
	k.CreatedAt = now
	k.UpdatedAt = now
	r.keywords[k.ID] = k
	return k, nil
}

func (r *MemoryRepo) Get(_ context.Context, id model.KeywordID) (model.Keyword, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	k, ok := r.keywords[id]
	if !ok {
		return model.Keyword{}, ErrNotFound
	}
	return k, nil
}

func (r *MemoryRepo) List(_ context.Context) ([]model.Keyword, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Keyword, 0, len(r.keywords))
	for _, k := range r.keywords {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
