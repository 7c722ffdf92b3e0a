package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxQuestionTags caps the number of tags a single question may carry.
const MaxQuestionTags = 20

// QuestionFilter narrows question listings. The zero value matches every
// question the user owns.
type QuestionFilter struct {
	CategoryID *uuid.UUID
	ActiveOnly bool
}

// Question is a single trivia question owned by a user.
//
// CategoryName and QualificationName are snapshots of the referenced entity's
// name taken when the question is written. They are refreshed only when the
// question itself is next updated; deleting the referenced category or
// qualification clears the ID but leaves the snapshot text in place.
type Question struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	QuestionText      string
	Answer            string
	AnswerPL          *string
	CategoryID        *uuid.UUID
	CategoryName      *string
	QualificationID   *uuid.UUID
	QualificationName *string
	Tags              []string
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
