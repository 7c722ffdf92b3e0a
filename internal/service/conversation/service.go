// Package conversation implements conversation and message operations.
package conversation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/quizdeck/quizdeck-backend/internal/config"
	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

type conversationRepo interface {
	Create(ctx context.Context, c *domain.Conversation) (*domain.Conversation, error)
	GetByID(ctx context.Context, userID, conversationID uuid.UUID) (*domain.Conversation, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Conversation, error)
	Touch(ctx context.Context, userID, conversationID uuid.UUID, at time.Time) error
	Delete(ctx context.Context, userID, conversationID uuid.UUID) error
}

type messageRepo interface {
	Create(ctx context.Context, m *domain.Message) (*domain.Message, error)
	ListByConversation(ctx context.Context, userID, conversationID uuid.UUID) ([]*domain.Message, error)
	DeleteByConversation(ctx context.Context, userID, conversationID uuid.UUID) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides conversation and message operations.
type Service struct {
	conversations conversationRepo
	messages      messageRepo
	tx            txManager
	cfg           config.QuizConfig
	log           *slog.Logger
}

// NewService creates a new Conversation service.
func NewService(
	log *slog.Logger,
	conversations conversationRepo,
	messages messageRepo,
	tx txManager,
	cfg config.QuizConfig,
) *Service {
	return &Service{
		conversations: conversations,
		messages:      messages,
		tx:            tx,
		cfg:           cfg,
		log:           log.With("service", "conversation"),
	}
}
