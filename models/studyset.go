package models

import "encoding/json"

// StudySet is a user-authored collection of flashcards. The card structure is
// defined by the frontend; this layer stores the cards opaquely.
type StudySet struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Cards       []json.RawMessage `json:"cards"`
	// CardCount is derived once at creation. There is no update endpoint,
	// so it cannot drift from len(Cards) through this API.
	CardCount int    `json:"card_count"`
	CreatedAt string `json:"created_at"`
}

type CreateSetRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Cards       []json.RawMessage `json:"cards"`
	CreatedAt   string            `json:"created_at"`
}

type CreateSetResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

type DeleteSetResponse struct {
	Success bool `json:"success"`
}
