package set

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/jorge-castellon-jr/chess-tcg/internal/model"
)

var ErrNotFound = errors.New("set not found")

type Repo interface {
	Create(ctx context.Context, s model.Set) (model.Set, error)
	Get(ctx context.Context, id model.SetID) (model.Set, error)
	// GetByName resolves a set by exact name; first match wins.
	GetByName(ctx context.Context, name string) (model.Set, error)
	List(ctx context.Context) ([]model.Set, error)
}

func newID() model.SetID {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return model.SetID("set_" + hex.EncodeToString(b[:]))
}

func normalizeSet(s *model.Set) {
	s.Name = strings.TrimSpace(s.Name)
}
