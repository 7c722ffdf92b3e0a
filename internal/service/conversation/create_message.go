package conversation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
	"github.com/quizdeck/quizdeck-backend/pkg/ctxutil"
)

// CreateMessage appends a message to a conversation the authenticated user
// owns and bumps the conversation's activity timestamp. Both writes share a
// transaction.
func (s *Service) CreateMessage(ctx context.Context, input CreateMessageInput) (*domain.Message, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if len(input.Content) > s.cfg.MaxMessageContentLength {
		return nil, domain.NewValidationError("content",
			fmt.Sprintf("max %d characters", s.cfg.MaxMessageContentLength))
	}

	// Ownership check up front so a foreign conversation reads as not found.
	if _, err := s.conversations.GetByID(ctx, userID, input.ConversationID); err != nil {
		return nil, fmt.Errorf("get conversation: %w", err)
	}

	now := time.Now().UTC()
	var message *domain.Message
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err := s.messages.Create(ctx, &domain.Message{
			ID:             uuid.New(),
			ConversationID: input.ConversationID,
			UserID:         userID,
			Role:           input.Role,
			Content:        input.Content,
			CreatedAt:      now,
		})
		if err != nil {
			return fmt.Errorf("create message: %w", err)
		}
		message = created

		if err := s.conversations.Touch(ctx, userID, input.ConversationID, now); err != nil {
			return fmt.Errorf("touch conversation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "message created",
		slog.String("user_id", userID.String()),
		slog.String("conversation_id", input.ConversationID.String()),
		slog.String("message_id", message.ID.String()),
		slog.String("role", string(message.Role)),
	)

	return message, nil
}

// ListMessages returns a conversation's messages oldest first.
func (s *Service) ListMessages(ctx context.Context, input ListMessagesInput) ([]*domain.Message, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.conversations.GetByID(ctx, userID, input.ConversationID); err != nil {
		return nil, fmt.Errorf("get conversation: %w", err)
	}

	messages, err := s.messages.ListByConversation(ctx, userID, input.ConversationID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	return messages, nil
}
