package card

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jorge-castellon-jr/chess-tcg/internal/model"
)

type fileState struct {
	Cards map[model.CardID]model.Card `json:"cards"`
	Order []model.CardID              `json:"order"`
}

// FileRepo persists the card catalog as a single JSON file under dataDir.
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
		path: filepath.Join(dataDir, "cards.json"),
		s:    fileState{Cards: map[model.CardID]model.Card{}},
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
	if loaded.Cards == nil {
		loaded.Cards = map[model.CardID]model.Card{}
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

func (r *FileRepo) Create(_ context.Context, c model.Card) (model.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	normalizeCard(&c)
	now := time.Now()
	c.ID = newID()
	c.CreatedAt = now
	c.UpdatedAt = now
	r.s.Cards[c.ID] = c
	r.s.Order = append(r.s.Order, c.ID)
	if err := r.saveLocked(); err != nil {
		delete(r.s.Cards, c.ID)
		r.s.Order = r.s.Order[:len(r.s.Order)-1]
		return model.Card{}, err
	}
	return c, nil
}

func (r *FileRepo) Get(_ context.Context, id model.CardID) (model.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.s.Cards[id]
	if !ok {
		return model.Card{}, ErrNotFound
	}
	return c, nil
}

func (r *FileRepo) GetByName(_ context.Context, name string) (model.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.s.Order {
		if c, ok := r.s.Cards[id]; ok && c.Name == name {
			return c, nil
		}
	}
	return model.Card{}, ErrNotFound
}

func (r *FileRepo) List(_ context.Context, f ListFilter) ([]model.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Card, 0, len(r.s.Order))
	for _, id := range r.s.Order {
		c, ok := r.s.Cards[id]
		if !ok {
			continue
		}
		if matches(c, f) {
			out = append(out, c)
		}
	}
	return out, nil
}
