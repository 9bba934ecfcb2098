package model

import "time"

// TournamentID is a unique identifier for a tournament.
type TournamentID string

// TournamentResult is one final-standings row.
type TournamentResult struct {
	Rank       int      `json:"rank"`
	PlayerName string   `json:"playerName"`
	Deck       *DeckRef `json:"deck,omitempty"`
}

// Tournament records an event and its ordered results.
type Tournament struct {
	ID        TournamentID       `json:"id"`
	Name      string             `json:"name"`
	Date      time.Time          `json:"date"`
	Results   []TournamentResult `json:"results,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}
