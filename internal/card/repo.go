package card

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/jorge-castellon-jr/chess-tcg/internal/model"
)

var ErrNotFound = errors.New("card not found")

// ListFilter narrows a catalog listing. Zero values mean "don't care".
type ListFilter struct {
	// Search matches the card name, case-insensitive substring.
	Search    string
	Class     model.Class
	Type      model.CardType
	PieceType model.PieceType
	Set       model.SetID

	// ExcludeSets drops cards belonging to any of the listed sets.
	// Used to hide unreleased preview sets from public pages.
	ExcludeSets []model.SetID
}

type Repo interface {
	Create(ctx context.Context, c model.Card) (model.Card, error)
	Get(ctx context.Context, id model.CardID) (model.Card, error)
	// GetByName resolves a card by exact name. Import idempotency keys on
	// this: a name that already exists is skipped, never updated.
	GetByName(ctx context.Context, name string) (model.Card, error)
	// List returns cards in catalog (insertion) order.
	List(ctx context.Context, f ListFilter) ([]model.Card, error)
}

func newID() model.CardID {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return model.CardID("card_" + hex.EncodeToString(b[:]))
}

func normalizeCard(c *model.Card) {
	c.Name = strings.TrimSpace(c.Name)
	c.Effect = strings.TrimSpace(c.Effect)
	if c.Class == "" {
		c.Class = model.ClassNeutral
	}
	if c.Type == "" {
		c.Type = model.TypePiece
	}
	// pieceType only exists on pieces
	if c.Type != model.TypePiece {
		c.PieceType = ""
	} else if c.PieceType == "" {
		c.PieceType = model.PieceBasic
	}
	if c.Keywords == nil {
		c.Keywords = []model.KeywordID{}
	}
}

func matches(c model.Card, f ListFilter) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(f.Search)) {
		return false
	}
	if f.Class != "" && c.Class != f.Class {
		return false
	}
	if f.Type != "" && c.Type != f.Type {
		return false
	}
	if f.PieceType != "" && c.PieceType != f.PieceType {
		return false
	}
	if f.Set != "" && c.Set.ID() != f.Set {
		return false
	}
	for _, excluded := range f.ExcludeSets {
		if c.Set.ID() == excluded {
			return false
		}
	}
	return true
}
