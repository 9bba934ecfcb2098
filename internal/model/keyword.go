package model

import "time"

// KeywordID is a unique identifier for a keyword.
type KeywordID string

// Keyword is a reusable rules-text snippet. Cards whose effect text mentions
// the keyword name (case-insensitive) are auto-tagged with it on import.
type Keyword struct {
	ID        KeywordID `json:"id"`
	Name      string    `json:"name"`
	Rules     string    `json:"rules,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
