package domain

import (
	"time"

	"github.com/google/uuid"
)

// RandomizationStatusOngoing is the status a new session starts in. Status is
// stored as a free string; the set of terminal values is owned by the client.
const RandomizationStatusOngoing = "Ongoing"

// Randomization is a user's review session over their question set. The
// session itself only tracks bookkeeping state; question selection is driven
// by the caller.
type Randomization struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	ShowAnswer        bool
	Status            string
	CurrentQuestionID *uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// SelectedCategory marks a category as in scope for a randomization session.
type SelectedCategory struct {
	ID              uuid.UUID
	RandomizationID uuid.UUID
	UserID          uuid.UUID
	CategoryID      uuid.UUID
	CreatedAt       time.Time
}

// UsedQuestion records that a question has already been shown in a session.
type UsedQuestion struct {
	ID              uuid.UUID
	RandomizationID uuid.UUID
	UserID          uuid.UUID
	QuestionID      uuid.UUID
	CreatedAt       time.Time
}

// PostponedQuestion records a question the user deferred during a session.
type PostponedQuestion struct {
	ID              uuid.UUID
	RandomizationID uuid.UUID
	UserID          uuid.UUID
	QuestionID      uuid.UUID
	CreatedAt       time.Time
}
