package model

import "time"

// SetID is a unique identifier for a card set.
type SetID string

// Set is a named release batch of cards, the unit of CSV import.
// Preview sets exist in the store but their cards stay off public pages.
type Set struct {
	ID          SetID     `json:"id"`
	Name        string    `json:"name"`
	ReleaseDate time.Time `json:"releaseDate"`
	Preview     bool      `json:"preview"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
