// Package question implements question management operations. It also
// subscribes to category and qualification deletions to clear dangling
// references on questions.
package question

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/quizdeck/quizdeck-backend/internal/config"
	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

type questionRepo interface {
	Create(ctx context.Context, q *domain.Question) (*domain.Question, error)
	GetByID(ctx context.Context, userID, questionID uuid.UUID) (*domain.Question, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.QuestionFilter) ([]*domain.Question, error)
	Count(ctx context.Context, userID uuid.UUID) (int, error)
	Update(ctx context.Context, q *domain.Question) (*domain.Question, error)
	SoftDelete(ctx context.Context, userID, questionID uuid.UUID) error
	ClearCategoryRefs(ctx context.Context, userID, categoryID uuid.UUID) (int, error)
	ClearQualificationRefs(ctx context.Context, userID, qualificationID uuid.UUID) (int, error)
}

type categoryGetter interface {
	GetByID(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error)
}

type qualificationGetter interface {
	GetByID(ctx context.Context, userID, qualificationID uuid.UUID) (*domain.Qualification, error)
}

type auditLogger interface {
	Log(ctx context.Context, rec domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides question management operations.
type Service struct {
	questions      questionRepo
	categories     categoryGetter
	qualifications qualificationGetter
	audit          auditLogger
	tx             txManager
	cfg            config.QuizConfig
	log            *slog.Logger
}

// NewService creates a new Question service.
func NewService(
	log *slog.Logger,
	questions questionRepo,
	categories categoryGetter,
	qualifications qualificationGetter,
	audit auditLogger,
	tx txManager,
	cfg config.QuizConfig,
) *Service {
	return &Service{
		questions:      questions,
		categories:     categories,
		qualifications: qualifications,
		audit:          audit,
		tx:             tx,
		cfg:            cfg,
		log:            log.With("service", "question"),
	}
}
