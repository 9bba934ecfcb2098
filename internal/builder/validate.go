package builder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jorge-castellon-jr/chess-tcg/internal/model"
)

// Validation messages are shown verbatim in the deck-builder UI, hence the
// sentence casing.
var (
	ErrOnlyOneKing        = errors.New("Only one king is allowed per deck")
	ErrOnlyOneQueen       = errors.New("Only one queen is allowed per deck")
	ErrNoKingSelected     = errors.New("Select a king before adding other cards")
	ErrClassMismatch      = errors.New("Card class does not match the selected king")
	ErrIndexOutOfRange    = errors.New("deck entry index out of range")
	ErrKingRemovalConfirm = errors.New("removing the king resets the deck and requires confirmation")
)

// Rules carries the copy caps per card type. The caps tightened over the
// game's history (tactics went from 3 to 2); config supplies the current
// values and Default reflects them.
type Rules struct {
	PieceCopyLimit  int
	TacticCopyLimit int
}

func DefaultRules() Rules {
	return Rules{PieceCopyLimit: 3, TacticCopyLimit: 2}
}

func (r Rules) limitFor(t model.CardType) int {
	if t == model.TypeTactic {
		return r.TacticCopyLimit
	}
	return r.PieceCopyLimit
}

// Validator enforces deck-construction rules.
type Validator struct {
	rules Rules
}

func NewValidator(rules Rules) *Validator {
	if rules.PieceCopyLimit <= 0 {
		rules.PieceCopyLimit = DefaultRules().PieceCopyLimit
	}
	if rules.TacticCopyLimit <= 0 {
		rules.TacticCopyLimit = DefaultRules().TacticCopyLimit
	}
	return &Validator{rules: rules}
}

// Filters narrow the catalog view in the builder. They apply identically
// whether or not a king is selected.
type Filters struct {
	Search    string
	Class     model.Class
	Type      model.CardType
	PieceType model.PieceType
	Set       model.SetID
}

func (f Filters) match(c model.Card) bool {
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
	return true
}

// AvailableCards computes the addable subset of the catalog, in catalog
// order. With no king selected only kings are offered; with a king selected,
// only cards of the king's class or Neutral, and no other king.
func (v *Validator) AvailableCards(catalog []model.Card, king *model.Card, f Filters) []model.Card {
	out := make([]model.Card, 0, len(catalog))
	for _, c := range catalog {
		if !f.match(c) {
			continue
		}
		if king == nil {
			if c.IsKing() {
				out = append(out, c)
			}
			continue
		}
		if c.Class != king.Class && c.Class != model.ClassNeutral {
			continue
		}
		if c.IsKing() && c.ID != king.ID {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Add applies the deck-construction rules and, when they all pass, adds one
// copy of card to the deck. On any error the deck is left untouched.
func (v *Validator) Add(d *Deck, card model.Card) error {
	// King handling short-circuits the generic checks.
	if card.IsKing() {
		if d.King != nil && d.King.ID != card.ID {
			return ErrOnlyOneKing
		}
		king := card
		d.King = &king
		if d.Quantity(card.ID) == 0 {
			d.Cards = append(d.Cards, Entry{Card: card, Quantity: 1})
		}
		return nil
	}

	if d.King == nil {
		return ErrNoKingSelected
	}
	if card.Class != d.King.Class && card.Class != model.ClassNeutral {
		return ErrClassMismatch
	}

	var errs []error
	if card.IsQueen() && d.QueenQuantity() >= 1 {
		errs = append(errs, ErrOnlyOneQueen)
	}
	limit := v.rules.limitFor(card.Type)
	if d.Quantity(card.ID) >= limit {
		errs = append(errs, fmt.Errorf("Maximum %d copies of any %s card allowed", limit, card.Type))
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	for i := range d.Cards {
		if d.Cards[i].Card.ID == card.ID {
			d.Cards[i].Quantity++
			return nil
		}
	}
	d.Cards = append(d.Cards, Entry{Card: card, Quantity: 1})
	return nil
}

// Remove takes one copy of the entry at index out of the deck. Removing the
// king clears the entire deck; that case needs confirmed=true, otherwise
// ErrKingRemovalConfirm is returned and nothing changes.
func (v *Validator) Remove(d *Deck, index int, confirmed bool) error {
	if index < 0 || index >= len(d.Cards) {
		return ErrIndexOutOfRange
	}
	entry := d.Cards[index]

	if entry.Card.IsKing() {
		if !confirmed {
			return ErrKingRemovalConfirm
		}
		d.King = nil
		d.Cards = []Entry{}
		return nil
	}

	d.Cards[index].Quantity--
	if d.Cards[index].Quantity <= 0 {
		d.Cards = append(d.Cards[:index], d.Cards[index+1:]...)
	}
	return nil
}

// CloneFromDeck rebuilds an in-progress deck from a saved deck's (card id,
// quantity) pairs. Ids missing from the catalog are silently dropped; the
// king is re-derived from the surviving entries.
func CloneFromDeck(src model.Deck, catalog []model.Card) *Deck {
	byID := make(map[model.CardID]model.Card, len(catalog))
	for _, c := range catalog {
		byID[c.ID] = c
	}

	d := NewDeck()
	d.Name = src.Name
	d.IsPublic = src.IsPublic
	for _, dc := range src.DeckCards {
		c, ok := byID[dc.Card.ID()]
		if !ok {
			continue
		}
		qty := dc.Quantity
		if qty < 1 {
			qty = 1
		}
		d.Cards = append(d.Cards, Entry{Card: c, Quantity: qty})
	}
	d.King = DeriveKing(d.Cards)
	return d
}
