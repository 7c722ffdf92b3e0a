package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns all other entities.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
