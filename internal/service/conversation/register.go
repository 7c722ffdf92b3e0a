package conversation

import (
	"context"

	"github.com/quizdeck/quizdeck-backend/internal/dispatch"
	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

// Register binds conversation and message operations to the dispatcher.
func Register(d *dispatch.Dispatcher, svc *Service) {
	dispatch.MustRegister(d, func(ctx context.Context, cmd CreateConversationInput) (*domain.Conversation, error) {
		return svc.CreateConversation(ctx, cmd)
	})
	dispatch.MustRegister(d, func(ctx context.Context, cmd GetConversationInput) (*domain.Conversation, error) {
		return svc.GetConversation(ctx, cmd)
	})
	dispatch.MustRegister(d, func(ctx context.Context, cmd ListConversationsInput) ([]*domain.Conversation, error) {
		return svc.ListConversations(ctx, cmd)
	})
	dispatch.MustRegister(d, func(ctx context.Context, cmd DeleteConversationInput) (struct{}, error) {
		return struct{}{}, svc.DeleteConversation(ctx, cmd)
	})
	dispatch.MustRegister(d, func(ctx context.Context, cmd CreateMessageInput) (*domain.Message, error) {
		return svc.CreateMessage(ctx, cmd)
	})
	dispatch.MustRegister(d, func(ctx context.Context, cmd ListMessagesInput) ([]*domain.Message, error) {
		return svc.ListMessages(ctx, cmd)
	})
}
