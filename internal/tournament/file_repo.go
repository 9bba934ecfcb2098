package tournament

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
	Tournaments map[model.TournamentID]model.Tournament `json:"tournaments"`
}

// FileRepo persists tournaments as a single JSON file under dataDir.
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
		path: filepath.Join(dataDir, "tournaments.json"),
		s:    fileState{Tournaments: map[model.TournamentID]model.Tournament{}},
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
	if loaded.Tournaments == nil {
		loaded.Tournaments = map[model.TournamentID]model.Tournament{}
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

func (r *FileRepo) Create(_ context.Context, t model.Tournament) (model.Tournament, error) {
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
	r.s.Tournaments[t.ID] = t
	if err := r.saveLocked(); err != nil {
		delete(r.s.Tournaments, t.ID)
		return model.Tournament{}, err
	}
	return t, nil
}

func (r *FileRepo) Get(_ context.Context, id model.TournamentID) (model.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.s.Tournaments[id]
	if !ok {
		return model.Tournament{}, ErrNotFound
	}
	return t, nil
}

func (r *FileRepo) List(_ context.Context) ([]model.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Tournament, 0, len(r.s.Tournaments))
	for _, t := range r.s.Tournaments {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}
