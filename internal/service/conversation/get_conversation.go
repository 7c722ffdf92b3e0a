package conversation

import (
	"context"
	"fmt"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
	"github.com/quizdeck/quizdeck-backend/pkg/ctxutil"
)

// GetConversation returns a conversation the authenticated user owns.
func (s *Service) GetConversation(ctx context.Context, input GetConversationInput) (*domain.Conversation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	conversation, err := s.conversations.GetByID(ctx, userID, input.ConversationID)
	if err != nil {
		return nil, fmt.Errorf("get conversation: %w", err)
	}

	return conversation, nil
}

// ListConversations returns the authenticated user's conversations, most
// recently active first.
func (s *Service) ListConversations(ctx context.Context, _ ListConversationsInput) ([]*domain.Conversation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	conversations, err := s.conversations.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}

	return conversations, nil
}
