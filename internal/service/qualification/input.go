package qualification

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

// CreateQualificationInput holds the parameters for creating a qualification.
type CreateQualificationInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i CreateQualificationInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateQualificationBatchInput holds the names for a batch create. The batch
// is all-or-nothing: one bad name rejects the whole input.
type CreateQualificationBatchInput struct {
	Names []string
}

// Validate checks all fields and collects all errors.
func (i CreateQualificationBatchInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Names) == 0 {
		errs = append(errs, domain.FieldError{Field: "names", Message: "required"})
	}
	for idx, raw := range i.Names {
		name := strings.TrimSpace(raw)
		if name == "" {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("names[%d]", idx),
				Message: "required",
			})
		}
		if len(name) > 100 {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("names[%d]", idx),
				Message: "max 100 characters",
			})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GetQualificationInput identifies a single qualification.
type GetQualificationInput struct {
	QualificationID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i GetQualificationInput) Validate() error {
	if i.QualificationID == uuid.Nil {
		return domain.NewValidationError("qualification_id", "required")
	}
	return nil
}

// ListQualificationsInput holds the parameters for listing qualifications.
type ListQualificationsInput struct {
	ActiveOnly bool
}

// UpdateQualificationInput holds the parameters for renaming a qualification.
type UpdateQualificationInput struct {
	QualificationID uuid.UUID
	Name            string
}

// Validate checks all fields and collects all errors.
func (i UpdateQualificationInput) Validate() error {
	var errs []domain.FieldError

	if i.QualificationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "qualification_id", Message: "required"})
	}
	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteQualificationInput identifies the qualification to delete.
type DeleteQualificationInput struct {
	QualificationID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteQualificationInput) Validate() error {
	if i.QualificationID == uuid.Nil {
		return domain.NewValidationError("qualification_id", "required")
	}
	return nil
}
