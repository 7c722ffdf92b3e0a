package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
	"github.com/quizdeck/quizdeck-backend/pkg/ctxutil"
)

// CreateCategory creates a new category for the authenticated user.
func (s *Service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	count, err := s.categories.Count(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}
	if count >= s.cfg.MaxCategoriesPerUser {
		return nil, domain.NewValidationError("categories", fmt.Sprintf("limit reached (max %d)", s.cfg.MaxCategoriesPerUser))
	}

	now := time.Now().UTC()
	name := strings.TrimSpace(input.Name)

	var category *domain.Category
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		category, createErr = s.categories.Create(txCtx, &domain.Category{
			ID:        uuid.New(),
			UserID:    userID,
			Name:      name,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if createErr != nil {
			return fmt.Errorf("create category: %w", createErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeCategory,
			EntityID:   &category.ID,
			Action:     domain.AuditActionCreate,
			Changes:    map[string]any{"name": map[string]any{"new": name}},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("user_id", userID.String()),
		slog.String("category_id", category.ID.String()),
		slog.String("name", category.Name),
	)

	return category, nil
}
