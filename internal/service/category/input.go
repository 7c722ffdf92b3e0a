package category

import (
	"strings"

	"github.com/google/uuid"
	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

// CreateCategoryInput holds the parameters for creating a category.
type CreateCategoryInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i CreateCategoryInput) Validate() error {
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

// GetCategoryInput identifies a single category.
type GetCategoryInput struct {
	CategoryID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i GetCategoryInput) Validate() error {
	if i.CategoryID == uuid.Nil {
		return domain.NewValidationError("category_id", "required")
	}
	return nil
}

// ListCategoriesInput holds the parameters for listing categories.
type ListCategoriesInput struct {
	ActiveOnly bool
}

// UpdateCategoryInput holds the parameters for renaming a category.
type UpdateCategoryInput struct {
	CategoryID uuid.UUID
	Name       string
}

// Validate checks all fields and collects all errors.
func (i UpdateCategoryInput) Validate() error {
	var errs []domain.FieldError

	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
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

// DeleteCategoryInput identifies the category to delete.
type DeleteCategoryInput struct {
	CategoryID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteCategoryInput) Validate() error {
	if i.CategoryID == uuid.Nil {
		return domain.NewValidationError("category_id", "required")
	}
	return nil
}
