package model

import "time"

// UserID is a unique identifier for a deck-owning user.
type UserID string

// User is a minimal account record. There is no authentication flow in this
// service; users exist so saved decks can carry an owner.
type User struct {
	ID        UserID    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
