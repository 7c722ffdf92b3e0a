package randomization

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

const maxStatusLength = 50

// CreateRandomizationInput starts a new review session.
type CreateRandomizationInput struct {
	ShowAnswer bool
}

// GetRandomizationInput identifies a single session.
type GetRandomizationInput struct {
	RandomizationID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i GetRandomizationInput) Validate() error {
	if i.RandomizationID == uuid.Nil {
		return domain.NewValidationError("randomization_id", "required")
	}
	return nil
}

// GetCurrentRandomizationInput fetches the most recent session with the given
// status. Empty status defaults to ongoing.
type GetCurrentRandomizationInput struct {
	Status string
}

// ListRandomizationsInput lists the caller's sessions. No parameters.
type ListRandomizationsInput struct{}

// UpdateRandomizationInput holds the mutable session state. Nil fields are
// left untouched.
type UpdateRandomizationInput struct {
	RandomizationID   uuid.UUID
	ShowAnswer        *bool
	Status            *string
	CurrentQuestionID *uuid.UUID
	ClearCurrent      bool
}

// Validate checks all fields and collects all errors.
func (i UpdateRandomizationInput) Validate() error {
	var errs []domain.FieldError

	if i.RandomizationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "randomization_id", Message: "required"})
	}
	if i.Status != nil {
		status := strings.TrimSpace(*i.Status)
		if status == "" {
			errs = append(errs, domain.FieldError{Field: "status", Message: "required"})
		}
		if len(status) > maxStatusLength {
			errs = append(errs, domain.FieldError{
				Field:   "status",
				Message: fmt.Sprintf("max %d characters", maxStatusLength),
			})
		}
	}
	if i.CurrentQuestionID != nil && i.ClearCurrent {
		errs = append(errs, domain.FieldError{
			Field:   "current_question_id",
			Message: "cannot both set and clear",
		})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteRandomizationInput identifies the session to delete.
type DeleteRandomizationInput struct {
	RandomizationID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteRandomizationInput) Validate() error {
	if i.RandomizationID == uuid.Nil {
		return domain.NewValidationError("randomization_id", "required")
	}
	return nil
}

// AddSelectedCategoriesInput marks categories as in scope for a session.
// Duplicates of already-selected categories are ignored.
type AddSelectedCategoriesInput struct {
	RandomizationID uuid.UUID
	CategoryIDs     []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i AddSelectedCategoriesInput) Validate() error {
	var errs []domain.FieldError

	if i.RandomizationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "randomization_id", Message: "required"})
	}
	if len(i.CategoryIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "category_ids", Message: "required"})
	}
	for idx, id := range i.CategoryIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("category_ids[%d]", idx),
				Message: "required",
			})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListSelectedCategoriesInput identifies the session whose scope to list.
type ListSelectedCategoriesInput struct {
	RandomizationID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ListSelectedCategoriesInput) Validate() error {
	if i.RandomizationID == uuid.Nil {
		return domain.NewValidationError("randomization_id", "required")
	}
	return nil
}

// AddUsedQuestionInput records a question as shown in a session.
type AddUsedQuestionInput struct {
	RandomizationID uuid.UUID
	QuestionID      uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i AddUsedQuestionInput) Validate() error {
	return validateSessionQuestion(i.RandomizationID, i.QuestionID)
}

// ListUsedQuestionsInput identifies the session whose used set to list.
type ListUsedQuestionsInput struct {
	RandomizationID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ListUsedQuestionsInput) Validate() error {
	if i.RandomizationID == uuid.Nil {
		return domain.NewValidationError("randomization_id", "required")
	}
	return nil
}

// AddPostponedQuestionInput records a question the user deferred.
type AddPostponedQuestionInput struct {
	RandomizationID uuid.UUID
	QuestionID      uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i AddPostponedQuestionInput) Validate() error {
	return validateSessionQuestion(i.RandomizationID, i.QuestionID)
}

// ListPostponedQuestionsInput identifies the session whose postponed set to list.
type ListPostponedQuestionsInput struct {
	RandomizationID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ListPostponedQuestionsInput) Validate() error {
	if i.RandomizationID == uuid.Nil {
		return domain.NewValidationError("randomization_id", "required")
	}
	return nil
}

// RemovePostponedQuestionInput takes a question back off the postponed set.
type RemovePostponedQuestionInput struct {
	RandomizationID uuid.UUID
	QuestionID      uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i RemovePostponedQuestionInput) Validate() error {
	return validateSessionQuestion(i.RandomizationID, i.QuestionID)
}

func validateSessionQuestion(randomizationID, questionID uuid.UUID) error {
	var errs []domain.FieldError

	if randomizationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "randomization_id", Message: "required"})
	}
	if questionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "question_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
