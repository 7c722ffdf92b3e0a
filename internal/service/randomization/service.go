// Package randomization implements review-session operations: the session
// lifecycle plus the selected-category, used-question and postponed-question
// bookkeeping that drives client-side question drawing.
package randomization

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

type randomizationRepo interface {
	Create(ctx context.Context, r *domain.Randomization) (*domain.Randomization, error)
	GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.Randomization, error)
	GetLatestByStatus(ctx context.Context, userID uuid.UUID, status string) (*domain.Randomization, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Randomization, error)
	Update(ctx context.Context, r *domain.Randomization) (*domain.Randomization, error)
	Delete(ctx context.Context, userID, sessionID uuid.UUID) error
	DeleteBookkeeping(ctx context.Context, userID, sessionID uuid.UUID) error

	AddSelectedCategories(ctx context.Context, rows []*domain.SelectedCategory) error
	ListSelectedCategories(ctx context.Context, userID, sessionID uuid.UUID) ([]*domain.SelectedCategory, error)
	AddUsedQuestion(ctx context.Context, uq *domain.UsedQuestion) error
	ListUsedQuestions(ctx context.Context, userID, sessionID uuid.UUID) ([]*domain.UsedQuestion, error)
	AddPostponedQuestion(ctx context.Context, pq *domain.PostponedQuestion) error
	ListPostponedQuestions(ctx context.Context, userID, sessionID uuid.UUID) ([]*domain.PostponedQuestion, error)
	RemovePostponedQuestion(ctx context.Context, userID, sessionID, questionID uuid.UUID) error
}

type categoryGetter interface {
	GetByID(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error)
}

type questionGetter interface {
	GetByID(ctx context.Context, userID, questionID uuid.UUID) (*domain.Question, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides randomization session operations.
type Service struct {
	sessions   randomizationRepo
	categories categoryGetter
	questions  questionGetter
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Randomization service.
func NewService(
	log *slog.Logger,
	sessions randomizationRepo,
	categories categoryGetter,
	questions questionGetter,
	tx txManager,
) *Service {
	return &Service{
		sessions:   sessions,
		categories: categories,
		questions:  questions,
		tx:         tx,
		log:        log.With("service", "randomization"),
	}
}
