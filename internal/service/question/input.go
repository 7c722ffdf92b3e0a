package question

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

const (
	maxQuestionTextLength = 4000
	maxAnswerLength       = 4000
	maxTagLength          = 50
)

func validateTags(tags []string, errs []domain.FieldError) []domain.FieldError {
	if len(tags) > domain.MaxQuestionTags {
		errs = append(errs, domain.FieldError{
			Field:   "tags",
			Message: fmt.Sprintf("max %d tags", domain.MaxQuestionTags),
		})
	}
	for idx, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("tags[%d]", idx),
				Message: "required",
			})
		}
		if len(trimmed) > maxTagLength {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("tags[%d]", idx),
				Message: fmt.Sprintf("max %d characters", maxTagLength),
			})
		}
	}
	return errs
}

func validateQuestionBody(text, answer string, answerPL *string, errs []domain.FieldError) []domain.FieldError {
	if strings.TrimSpace(text) == "" {
		errs = append(errs, domain.FieldError{Field: "question_text", Message: "required"})
	}
	if len(text) > maxQuestionTextLength {
		errs = append(errs, domain.FieldError{
			Field:   "question_text",
			Message: fmt.Sprintf("max %d characters", maxQuestionTextLength),
		})
	}
	if strings.TrimSpace(answer) == "" {
		errs = append(errs, domain.FieldError{Field: "answer", Message: "required"})
	}
	if len(answer) > maxAnswerLength {
		errs = append(errs, domain.FieldError{
			Field:   "answer",
			Message: fmt.Sprintf("max %d characters", maxAnswerLength),
		})
	}
	if answerPL != nil && len(*answerPL) > maxAnswerLength {
		errs = append(errs, domain.FieldError{
			Field:   "answer_pl",
			Message: fmt.Sprintf("max %d characters", maxAnswerLength),
		})
	}
	return errs
}

// CreateQuestionInput holds the parameters for creating a question.
// CategoryID and QualificationID are optional references to entities the
// same user owns.
type CreateQuestionInput struct {
	QuestionText    string
	Answer          string
	AnswerPL        *string
	CategoryID      *uuid.UUID
	QualificationID *uuid.UUID
	Tags            []string
}

// Validate checks all fields and collects all errors.
func (i CreateQuestionInput) Validate() error {
	var errs []domain.FieldError
	errs = validateQuestionBody(i.QuestionText, i.Answer, i.AnswerPL, errs)
	errs = validateTags(i.Tags, errs)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GetQuestionInput identifies a single question.
type GetQuestionInput struct {
	QuestionID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i GetQuestionInput) Validate() error {
	if i.QuestionID == uuid.Nil {
		return domain.NewValidationError("question_id", "required")
	}
	return nil
}

// ListQuestionsInput holds the parameters for listing questions.
type ListQuestionsInput struct {
	CategoryID *uuid.UUID
	ActiveOnly bool
}

// UpdateQuestionInput holds the full replacement state for a question.
// References are re-resolved, so name snapshots are refreshed on update.
type UpdateQuestionInput struct {
	QuestionID      uuid.UUID
	QuestionText    string
	Answer          string
	AnswerPL        *string
	CategoryID      *uuid.UUID
	QualificationID *uuid.UUID
	Tags            []string
}

// Validate checks all fields and collects all errors.
func (i UpdateQuestionInput) Validate() error {
	var errs []domain.FieldError

	if i.QuestionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "question_id", Message: "required"})
	}
	errs = validateQuestionBody(i.QuestionText, i.Answer, i.AnswerPL, errs)
	errs = validateTags(i.Tags, errs)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteQuestionInput identifies the question to delete.
type DeleteQuestionInput struct {
	QuestionID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteQuestionInput) Validate() error {
	if i.QuestionID == uuid.Nil {
		return domain.NewValidationError("question_id", "required")
	}
	return nil
}
