package deck

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
	Decks map[model.DeckID]model.Deck `json:"decks"`
}

// FileRepo persists decks as a single JSON file under dataDir.
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
		path: filepath.Join(dataDir, "decks.json"),
		s:    fileState{Decks: map[model.DeckID]model.Deck{}},
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
	if loaded.Decks == nil {
		loaded.Decks = map[model.DeckID]model.Deck{}
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

func (r *FileRepo) Create(_ context.Context, d model.Deck) (model.Deck, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	normalizeDeck(&d)
	now := time.Now()
	d.ID = newID()
	d.CreatedAt = now
	d.UpdatedAt = now
	r.s.Decks[d.ID] = d
	if err := r.saveLocked(); err != nil {
		delete(r.s.Decks, d.ID)
		return model.Deck{}, err
	}
	return d, nil
}

func (r *FileRepo) Get(_ context.Context, id model.DeckID) (model.Deck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.s.Decks[id]
	if !ok {
		return model.Deck{}, ErrNotFound
	}
	return d, nil
}

func (r *FileRepo) List(_ context.Context, f ListFilter) ([]model.Deck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Deck, 0, len(r.s.Decks))
	for _, d := range r.s.Decks {
		if matches(d, f) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
