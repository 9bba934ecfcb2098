// Package builder is the deck-construction rule engine. It owns the
// in-progress deck that a player assembles client-side and enforces legality
// as cards are added and removed: one king per deck, one queen per deck,
// per-card copy caps, and class compatibility against the selected king.
package builder

import (
	"strings"

	"github.com/jorge-castellon-jr/chess-tcg/internal/model"
)

// Entry is one (card, quantity) pair in an in-progress deck.
type Entry struct {
	Card     model.Card `json:"card"`
	Quantity int        `json:"quantity"`
}

// Deck is a transient, not-yet-saved deck. It only becomes a model.Deck on
// explicit save, after ValidateForSave passes.
type Deck struct {
	Name     string      `json:"name"`
	Cards    []Entry     `json:"cards"`
	King     *model.Card `json:"king,omitempty"`
	IsPublic bool        `json:"isPublic"`
}

// NewDeck returns an empty in-progress deck.
func NewDeck() *Deck {
	return &Deck{Cards: []Entry{}}
}

// Quantity returns how many copies of the card id the deck holds.
func (d *Deck) Quantity(id model.CardID) int {
	for _, e := range d.Cards {
		if e.Card.ID == id {
			return e.Quantity
		}
	}
	return 0
}

// QueenQuantity sums the quantities of every queen-typed entry.
func (d *Deck) QueenQuantity() int {
	total := 0
	for _, e := range d.Cards {
		if e.Card.IsQueen() {
			total += e.Quantity
		}
	}
	return total
}

// Size is the total number of cards in the deck. There is no maximum deck
// size; only per-card and king/queen constraints bound it.
func (d *Deck) Size() int {
	total := 0
	for _, e := range d.Cards {
		total += e.Quantity
	}
	return total
}

// DeriveKing scans entries for the piece whose pieceType is King. The clone
// flow uses this so "selected king" can never silently desync from deck
// contents.
func DeriveKing(entries []Entry) *model.Card {
	for _, e := range entries {
		if e.Card.IsKing() {
			c := e.Card
			return &c
		}
	}
	return nil
}

// ValidateForSave returns the user-facing reasons this deck cannot be saved
// yet. An empty result means saving is permitted.
func (d *Deck) ValidateForSave() []string {
	var problems []string
	if strings.TrimSpace(d.Name) == "" {
		problems = append(problems, "Deck name is required")
	}
	if len(d.Cards) == 0 {
		problems = append(problems, "Deck must contain at least one card")
	}
	if d.King == nil {
		problems = append(problems, "A king must be selected")
	}
	return problems
}
