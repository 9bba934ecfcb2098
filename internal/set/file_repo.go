package set

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/jorge-castellon-jr/chess-tcg/internal/model"
)

type fileState struct {
	Sets  map[model.SetID]model.Set `json:"sets"`
	Order []model.SetID             `json:"order"`
}

// FileRepo persists sets as a single JSON file under dataDir.
type FileRepo struct {
	mu   sync.RWMutex
	path string
	s    fileState
}

func NewFileRepo(dataDir string) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	r := &FileRepo{
		path: filepath.Join(dataDir, "sets.json"),
		s:    fileState{Sets: map[model.SetID]model.Set{}},
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileRepo) load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var loaded fileState
	if err := json.Unmarshal(b, &loaded); err != nil {
		return err
	}
	if loaded.Sets == nil {
		loaded.Sets = map[model.SetID]model.Set{}
	}
	r.s = loaded
	return nil
}

func (r *FileRepo) saveLocked() error {
	b, err := json.MarshalIndent(r.s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, b, 0o644)
}

func (r *FileRepo) Create(_ context.Context, s model.Set) (model.Set, error) {
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
	r.s.Sets[s.ID] = s
	r.s.Order = append(r.s.Order, s.ID)
	if err := r.saveLocked(); err != nil {
		delete(r.s.Sets, s.ID)
		r.s.Order = r.s.Order[:len(r.s.Order)-1]
		return model.Set{}, err
	}
	return s, nil
}

func (r *FileRepo) Get(_ context.Context, id model.SetID) (model.Set, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.s.Sets[id]
	if !ok {
		return model.Set{}, ErrNotFound
	}
	return s, nil
}

func (r *FileRepo) GetByName(_ context.Context, name string) (model.Set, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.s.Order {
		if s, ok := r.s.Sets[id]; ok && s.Name == name {
			return s, nil
		}
	}
	return model.Set{}, ErrNotFound
}

func (r *FileRepo) List(_ context.Context) ([]model.Set, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Set, 0, len(r.s.Sets))
	for _, s := range r.s.Sets {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReleaseDate.After(out[j].ReleaseDate) })
	return out, nil
}
