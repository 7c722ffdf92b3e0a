// Package category implements category management operations.
package category

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/quizdeck/quizdeck-backend/internal/config"
	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

type categoryRepo interface {
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	GetByID(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error)
	List(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*domain.Category, error)
	Count(ctx context.Context, userID uuid.UUID) (int, error)
	Update(ctx context.Context, c *domain.Category) (*domain.Category, error)
	SoftDelete(ctx context.Context, userID, categoryID uuid.UUID) error
}

type eventPublisher interface {
	Publish(ctx context.Context, event any) error
}

type auditLogger interface {
	Log(ctx context.Context, rec domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides category management operations.
type Service struct {
	categories categoryRepo
	events     eventPublisher
	audit      auditLogger
	tx         txManager
	cfg        config.QuizConfig
	log        *slog.Logger
}

// NewService creates a new Category service.
func NewService(
	log *slog.Logger,
	categories categoryRepo,
	events eventPublisher,
	audit auditLogger,
	tx txManager,
	cfg config.QuizConfig,
) *Service {
	return &Service{
		categories: categories,
		events:     events,
		audit:      audit,
		tx:         tx,
		cfg:        cfg,
		log:        log.With("service", "category"),
	}
}
