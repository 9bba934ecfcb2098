package model

import (
	"encoding/json"
	"fmt"
)

// Relationship fields can arrive from the store either as a bare id or as a
// fully expanded document, depending on query depth. Each ref type is a
// tagged union: callers read ID() freely but must narrow with Doc() before
// touching nested fields.

// SetRef points at a Set, optionally carrying the expanded record.
type SetRef struct {
	id  SetID
	doc *Set
}

func NewSetRef(id SetID) SetRef { return SetRef{id: id} }

func ExpandedSetRef(s Set) SetRef { return SetRef{id: s.ID, doc: &s} }

func (r SetRef) ID() SetID { return r.id }

// Doc returns the expanded set when the ref was populated.
func (r SetRef) Doc() (Set, bool) {
	if r.doc == nil {
		return Set{}, false
	}
	return *r.doc, true
}

func (r SetRef) MarshalJSON() ([]byte, error) {
	if r.doc != nil {
		return json.Marshal(r.doc)
	}
	return json.Marshal(r.id)
}

func (r *SetRef) UnmarshalJSON(b []byte) error {
	var id SetID
	if err := json.Unmarshal(b, &id); err == nil {
		*r = SetRef{id: id}
		return nil
	}
	var doc Set
	if err := json.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("set ref: %w", err)
	}
	*r = SetRef{id: doc.ID, doc: &doc}
	return nil
}

// CardRef points at a Card, optionally carrying the expanded record.
type CardRef struct {
	id  CardID
	doc *Card
}

func NewCardRef(id CardID) CardRef { return CardRef{id: id} }

func ExpandedCardRef(c Card) CardRef { return CardRef{id: c.ID, doc: &c} }

func (r CardRef) ID() CardID { return r.id }

// Doc returns the expanded card when the ref was populated.
func (r CardRef) Doc() (Card, bool) {
	if r.doc == nil {
		return Card{}, false
	}
	return *r.doc, true
}

func (r CardRef) MarshalJSON() ([]byte, error) {
	if r.doc != nil {
		return json.Marshal(r.doc)
	}
	return json.Marshal(r.id)
}

func (r *CardRef) UnmarshalJSON(b []byte) error {
	var id CardID
	if err := json.Unmarshal(b, &id); err == nil {
		*r = CardRef{id: id}
		return nil
	}
	var doc Card
	if err := json.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("card ref: %w", err)
	}
	*r = CardRef{id: doc.ID, doc: &doc}
	return nil
}

// DeckRef points at a Deck, optionally carrying the expanded record.
type DeckRef struct {
	id  DeckID
	doc *Deck
}

func NewDeckRef(id DeckID) DeckRef { return DeckRef{id: id} }

func ExpandedDeckRef(d Deck) DeckRef { return DeckRef{id: d.ID, doc: &d} }

func (r DeckRef) ID() DeckID { return r.id }

// Doc returns the expanded deck when the ref was populated.
func (r DeckRef) Doc() (Deck, bool) {
	if r.doc == nil {
		return Deck{}, false
	}
	return *r.doc, true
}

func (r DeckRef) MarshalJSON() ([]byte, error) {
	if r.doc != nil {
		return json.Marshal(r.doc)
	}
	return json.Marshal(r.id)
}

func (r *DeckRef) UnmarshalJSON(b []byte) error {
	var id DeckID
	if err := json.Unmarshal(b, &id); err == nil {
		*r = DeckRef{id: id}
		return nil
	}
	var doc Deck
	if err := json.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("deck ref: %w", err)
	}
	*r = DeckRef{id: doc.ID, doc: &doc}
	return nil
}
