package model

import "time"

// DeckID is a unique identifier for a saved deck.
type DeckID string

// DeckCard is one (card, quantity) pair inside a saved deck.
type DeckCard struct {
	Card     CardRef `json:"card"`
	Quantity int     `json:"quantity"`
}

// Deck is a persisted deck. In-progress decks live client-side (see the
// builder package) and only become a Deck on explicit save.
type Deck struct {
	ID        DeckID     `json:"id"`
	Name      string     `json:"name"`
	DeckCards []DeckCard `json:"deckCards"`
	IsPublic  bool       `json:"isPublic"`
	User      *UserID    `json:"user,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
