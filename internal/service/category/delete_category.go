package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
	"github.com/quizdeck/quizdeck-backend/pkg/ctxutil"
)

// DeleteCategory soft-deletes a category the authenticated user owns, then
// publishes CategoryDeleted so other features can drop dangling references.
//
// The delete commits before the event fires. Subscribers run synchronously in
// this request; if one fails the error surfaces to the caller, but the
// category stays deleted — there is no compensating rollback.
func (s *Service) DeleteCategory(ctx context.Context, input DeleteCategoryInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if delErr := s.categories.SoftDelete(txCtx, userID, input.CategoryID); delErr != nil {
			return fmt.Errorf("delete category: %w", delErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeCategory,
			EntityID:   &input.CategoryID,
			Action:     domain.AuditActionDelete,
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "category deleted",
		slog.String("user_id", userID.String()),
		slog.String("category_id", input.CategoryID.String()),
	)

	if err := s.events.Publish(ctx, domain.CategoryDeleted{
		CategoryID: input.CategoryID,
		UserID:     userID,
	}); err != nil {
		return fmt.Errorf("cleanup after category delete: %w", err)
	}

	return nil
}
