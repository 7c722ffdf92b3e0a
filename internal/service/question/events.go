package question

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

// RemoveCategoryRefs clears the category reference on every question that
// pointed at the deleted category. Name snapshots stay in place so existing
// questions keep their display text.
func (s *Service) RemoveCategoryRefs(ctx context.Context, event domain.CategoryDeleted) error {
	cleared, err := s.questions.ClearCategoryRefs(ctx, event.UserID, event.CategoryID)
	if err != nil {
		return fmt.Errorf("clear category refs: %w", err)
	}

	s.log.InfoContext(ctx, "category refs cleared",
		slog.String("user_id", event.UserID.String()),
		slog.String("category_id", event.CategoryID.String()),
		slog.Int("questions", cleared),
	)

	return nil
}

// RemoveQualificationRefs clears the qualification reference on every
// question that pointed at the deleted qualification.
func (s *Service) RemoveQualificationRefs(ctx context.Context, event domain.QualificationDeleted) error {
	cleared, err := s.questions.ClearQualificationRefs(ctx, event.UserID, event.QualificationID)
	if err != nil {
		return fmt.Errorf("clear qualification refs: %w", err)
	}

	s.log.InfoContext(ctx, "qualification refs cleared",
		slog.String("user_id", event.UserID.String()),
		slog.String("qualification_id", event.QualificationID.String()),
		slog.Int("questions", cleared),
	)

	return nil
}
