package model

import "time"

// CardID is a unique identifier for a card record.
type CardID string

// Class is a card's suit alignment. Decks mix a king's class with Neutral.
type Class string

const (
	ClassNeutral  Class = "Neutral"
	ClassHearts   Class = "Hearts"
	ClassDiamonds Class = "Diamonds"
	ClassClubs    Class = "Clubs"
	ClassSpades   Class = "Spades"
)

// Classes lists every valid class in display order.
var Classes = []Class{ClassNeutral, ClassHearts, ClassDiamonds, ClassClubs, ClassSpades}

// ValidClass reports whether s names a known class.
func ValidClass(s string) bool {
	for _, c := range Classes {
		if string(c) == s {
			return true
		}
	}
	return false
}

// CardType splits the catalog into board pieces and one-shot tactics.
type CardType string

const (
	TypePiece  CardType = "Piece"
	TypeTactic CardType = "Tactic"
)

// PieceType is only meaningful when Type == Piece.
type PieceType string

const (
	PieceBasic PieceType = "Basic"
	PieceQueen PieceType = "Queen"
	PieceKing  PieceType = "King"
)

// Card is a single printed card. Numeric stats are pointers: a card with no
// printed cost is distinct from a card with cost zero.
type Card struct {
	ID        CardID    `json:"id"`
	Name      string    `json:"name"`
	Class     Class     `json:"class"`
	Type      CardType  `json:"type"`
	PieceType PieceType `json:"pieceType,omitempty"`

	Cost     *int `json:"cost,omitempty"`
	ATK      *int `json:"atk,omitempty"`
	DEF      *int `json:"def,omitempty"`
	Material *int `json:"material,omitempty"`

	Effect   string      `json:"effect,omitempty"`
	Keywords []KeywordID `json:"keywords,omitempty"`
	Set      SetRef      `json:"set"`

	CustomLimit bool   `json:"customLimit,omitempty"`
	Limit       string `json:"limit,omitempty"` // "1" | "2" | "3", only when CustomLimit

	Image string `json:"image,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsKing reports whether the card occupies the unique king slot of a deck.
func (c Card) IsKing() bool {
	return c.Type == TypePiece && c.PieceType == PieceKing
}

// IsQueen reports whether the card occupies the unique queen slot of a deck.
func (c Card) IsQueen() bool {
	return c.Type == TypePiece && c.PieceType == PieceQueen
}
