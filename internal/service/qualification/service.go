// Package qualification implements qualification management operations.
package qualification

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/quizdeck/quizdeck-backend/internal/config"
	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

type qualificationRepo interface {
	Create(ctx context.Context, q *domain.Qualification) (*domain.Qualification, error)
	CreateBatch(ctx context.Context, qs []*domain.Qualification) ([]*domain.Qualification, error)
	GetByID(ctx context.Context, userID, qualificationID uuid.UUID) (*domain.Qualification, error)
	List(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*domain.Qualification, error)
	Update(ctx context.Context, q *domain.Qualification) (*domain.Qualification, error)
	SoftDelete(ctx context.Context, userID, qualificationID uuid.UUID) error
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

// Service provides qualification management operations.
type Service struct {
	qualifications qualificationRepo
	events         eventPublisher
	audit          auditLogger
	tx             txManager
	cfg            config.QuizConfig
	log            *slog.Logger
}

// NewService creates a new Qualification service.
func NewService(
	log *slog.Logger,
	qualifications qualificationRepo,
	events eventPublisher,
	audit auditLogger,
	tx txManager,
	cfg config.QuizConfig,
) *Service {
	return &Service{
		qualifications: qualifications,
		events:         events,
		audit:          audit,
		tx:             tx,
		cfg:            cfg,
		log:            log.With("service", "qualification"),
	}
}
