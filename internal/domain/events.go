package domain

import "github.com/google/uuid"

// Events are published after the originating mutation has committed. Handlers
// run synchronously inside the same request; a handler failure surfaces to the
// publisher but never rolls the committed mutation back.

// CategoryDeleted is published after a category has been soft-deleted.
type CategoryDeleted struct {
	CategoryID uuid.UUID
	UserID     uuid.UUID
}

// QualificationDeleted is published after a qualification has been soft-deleted.
type QualificationDeleted struct {
	QualificationID uuid.UUID
	UserID          uuid.UUID
}
