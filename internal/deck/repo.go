package deck

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/jorge-castellon-jr/chess-tcg/internal/model"
)

var ErrNotFound = errors.New("deck not found")

// ListFilter narrows a deck listing.
type ListFilter struct {
	// PublicOnly hides private decks; the public deck pages always set it.
	PublicOnly bool
	User       model.UserID
}

type Repo interface {
	Create(ctx context.Context, d model.Deck) (model.Deck, error)
	Get(ctx context.Context, id model.DeckID) (model.Deck, error)
	// List returns decks newest first (creation date).
	List(ctx context.Context, f ListFilter) ([]model.Deck, error)
}

func newID() model.DeckID {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return model.DeckID("deck_" + hex.EncodeToString(b[:]))
}

func normalizeDeck(d *model.Deck) {
	d.Name = strings.TrimSpace(d.Name)
	if d.DeckCards == nil {
		d.DeckCards = []model.DeckCard{}
	}
}

func matches(d model.Deck, f ListFilter) bool {
	if f.PublicOnly && !d.IsPublic {
		return false
	}
	if f.User != "" && (d.User == nil || *d.User != f.User) {
		return false
	}
	return true
}
