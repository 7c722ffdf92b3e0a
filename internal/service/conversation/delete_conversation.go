package conversation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
	"github.com/quizdeck/quizdeck-backend/pkg/ctxutil"
)

// DeleteConversation permanently removes a conversation and all its messages.
// Both deletes run in one transaction so a failure leaves everything in place.
func (s *Service) DeleteConversation(ctx context.Context, input DeleteConversationInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	var removed int
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		n, err := s.messages.DeleteByConversation(ctx, userID, input.ConversationID)
		if err != nil {
			return fmt.Errorf("delete messages: %w", err)
		}
		removed = n

		if err := s.conversations.Delete(ctx, userID, input.ConversationID); err != nil {
			return fmt.Errorf("delete conversation: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "conversation deleted",
		slog.String("user_id", userID.String()),
		slog.String("conversation_id", input.ConversationID.String()),
		slog.Int("messages", removed),
	)

	return nil
}
