package conversation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

const maxTitleLength = 200

// CreateConversationInput holds the parameters for starting a conversation.
type CreateConversationInput struct {
	Title *string
}

// Validate checks all fields and collects all errors.
func (i CreateConversationInput) Validate() error {
	if i.Title != nil && len(strings.TrimSpace(*i.Title)) > maxTitleLength {
		return domain.NewValidationError("title", fmt.Sprintf("max %d characters", maxTitleLength))
	}
	return nil
}

// GetConversationInput identifies a single conversation.
type GetConversationInput struct {
	ConversationID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i GetConversationInput) Validate() error {
	if i.ConversationID == uuid.Nil {
		return domain.NewValidationError("conversation_id", "required")
	}
	return nil
}

// ListConversationsInput lists the caller's conversations. No parameters.
type ListConversationsInput struct{}

// DeleteConversationInput identifies the conversation to delete.
type DeleteConversationInput struct {
	ConversationID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteConversationInput) Validate() error {
	if i.ConversationID == uuid.Nil {
		return domain.NewValidationError("conversation_id", "required")
	}
	return nil
}

// CreateMessageInput appends a message to a conversation.
type CreateMessageInput struct {
	ConversationID uuid.UUID
	Role           domain.MessageRole
	Content        string
}

// Validate checks all fields and collects all errors.
func (i CreateMessageInput) Validate() error {
	var errs []domain.FieldError

	if i.ConversationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "conversation_id", Message: "required"})
	}
	if !i.Role.Valid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be user or assistant"})
	}
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListMessagesInput identifies the conversation whose messages to list.
type ListMessagesInput struct {
	ConversationID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ListMessagesInput) Validate() error {
	if i.ConversationID == uuid.Nil {
		return domain.NewValidationError("conversation_id", "required")
	}
	return nil
}
