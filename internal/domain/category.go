package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category groups questions by subject area. A deleted category is kept as an
// inactive row so existing questions can keep their denormalized name snapshot.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Qualification describes a difficulty or certification level a question is
// written for. Soft-deleted the same way as Category.
type Qualification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
