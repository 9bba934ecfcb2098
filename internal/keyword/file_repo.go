package keyword

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jorge-castellon-jr/chess-tcg/internal/model"
)

type fileState struct {
	Keywords map[model.KeywordID]model.Keyword `json:"keywords"`
}

// FileRepo persists keywords as a single JSON file under dataDir.
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
		path: filepath.Join(dataDir, "keywords.json"),
		s:    fileState{Keywords: map[model.KeywordID]model.Keyword{}},
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
	if loaded.Keywords == nil {
		loaded.Keywords = map[model.KeywordID]model.Keyword{}
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

func (r *FileRepo) Create(_ context.Context, k model.Keyword) (model.Keyword, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	normalizeKeyword(&k)
	for _, existing := range r.s.Keywords {
		if strings.EqualFold(existing.Name, k.Name) {
			return model.Keyword{}, ErrDuplicateName
		}
	}

	now := time.Now()
	k.ID = newID()
	k.CreatedAt = now
	k.UpdatedAt = now
	r.s.Keywords[k.ID] = k
	if err := r.saveLocked(); err != nil {
		delete(r.s.Keywords, k.ID)
		return model.Keyword{}, err
	}
	return k, nil
}

func (r *FileRepo) Get(_ context.Context, id model.KeywordID) (model.Keyword, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	k, ok := r.s.Keywords[id]
	if !ok {
		return model.Keyword{}, ErrNotFound
	}
	return k, nil
}

func (r *FileRepo) List(_ context.Context) ([]model.Keyword, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Keyword, 0, len(r.s.Keywords))
	for _, k := range r.s.Keywords {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
