package store

import "time"

// Generation is one recorded generation or regeneration attempt.
type Generation struct {
	ID        int64     `json:"id"`
	Scope     string    `json:"scope"` // "full" or "week:N"
	Month     string    `json:"month"`
	Year      int       `json:"year"`
	Prompt    string    `json:"prompt"`
	Response  string    `json:"response"` // raw envelope bytes as received
	Success   bool      `json:"success"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
