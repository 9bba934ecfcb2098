package keyword

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/jorge-castellon-jr/chess-tcg/internal/model"
)

var (
	ErrNotFound      = errors.New("keyword not found")
	ErrDuplicateName = errors.New("keyword name already exists")
)

type Repo interface {
	Create(ctx context.Context, k model.Keyword) (model.Keyword, error)
	Get(ctx context.Context, id model.KeywordID) (model.Keyword, error)
	List(ctx context.Context) ([]model.Keyword, error)
}

func newID() model.KeywordID {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return model.KeywordID("kw_" + hex.EncodeToString(b[:]))
}

func normalizeKeyword(k *model.Keyword) {
	k.Name = strings.TrimSpace(k.Name)
	k.Rules = strings.TrimSpace(k.Rules)
}
