package qualification

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

// CreateQualification creates a new qualification for the authenticated user.
func (s *Service) CreateQualification(ctx context.Context, input CreateQualificationInput) (*domain.Qualification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := time.Now().UTC()
	name := strings.TrimSpace(input.Name)

	var qualification *domain.Qualification
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		qualification, createErr = s.qualifications.Create(txCtx, &domain.Qualification{
			ID:        uuid.New(),
			UserID:    userID,
			Name:      name,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if createErr != nil {
			return fmt.Errorf("create qualification: %w", createErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeQualification,
			EntityID:   &qualification.ID,
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

	s.log.InfoContext(ctx, "qualification created",
		slog.String("user_id", userID.String()),
		slog.String("qualification_id", qualification.ID.String()),
		slog.String("name", qualification.Name),
	)

	return qualification, nil
}

// CreateQualificationBatch creates a batch of qualifications in one statement.
// Either all names are created or none are.
func (s *Service) CreateQualificationBatch(ctx context.Context, input CreateQualificationBatchInput) ([]*domain.Qualification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if len(input.Names) > s.cfg.MaxQualificationBatch {
		return nil, domain.NewValidationError("names",
			fmt.Sprintf("max %d per batch", s.cfg.MaxQualificationBatch))
	}

	now := time.Now().UTC()
	batch := make([]*domain.Qualification, 0, len(input.Names))
	for _, name := range input.Names {
		batch = append(batch, &domain.Qualification{
			ID:        uuid.New(),
			UserID:    userID,
			Name:      strings.TrimSpace(name),
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	var created []*domain.Qualification
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.qualifications.CreateBatch(txCtx, batch)
		if createErr != nil {
			return fmt.Errorf("create qualification batch: %w", createErr)
		}

		for _, q := range created {
			if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
				UserID:     userID,
				EntityType: domain.EntityTypeQualification,
				EntityID:   &q.ID,
				Action:     domain.AuditActionCreate,
				Changes:    map[string]any{"name": map[string]any{"new": q.Name}},
			}); auditErr != nil {
				return fmt.Errorf("audit log: %w", auditErr)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "qualification batch created",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(created)),
	)

	return created, nil
}
