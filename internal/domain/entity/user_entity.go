package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// The store assigns ID and CreatedAt on insert; both are immutable afterwards.
// UpdatedAt is refreshed on every mutation.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
