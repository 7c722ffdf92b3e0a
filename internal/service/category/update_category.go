package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
	"github.com/quizdeck/quizdeck-backend/pkg/ctxutil"
)

// UpdateCategory renames a category the authenticated user owns.
// Questions holding a denormalized snapshot of the old name are NOT touched;
// snapshots refresh only when the question itself is next updated.
func (s *Service) UpdateCategory(ctx context.Context, input UpdateCategoryInput) (*domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	category, err := s.categories.GetByID(ctx, userID, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	oldName := category.Name
	category.Name = strings.TrimSpace(input.Name)
	category.UpdatedAt = time.Now().UTC()

	var updated *domain.Category
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.categories.Update(txCtx, category)
		if updateErr != nil {
			return fmt.Errorf("update category: %w", updateErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeCategory,
			EntityID:   &updated.ID,
			Action:     domain.AuditActionUpdate,
			Changes:    map[string]any{"name": map[string]any{"old": oldName, "new": updated.Name}},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "category updated",
		slog.String("user_id", userID.String()),
		slog.String("category_id", updated.ID.String()),
		slog.String("name", updated.Name),
	)

	return updated, nil
}
