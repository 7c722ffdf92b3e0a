package domain

import (
	"time"

	"github.com/google/uuid"
)

// MessageRole identifies the author side of a conversation message.
type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

// Valid reports whether the role is one of the known values.
func (r MessageRole) Valid() bool {
	return r == MessageRoleUser || r == MessageRoleAssistant
}

// Conversation is a per-user message log. Deleting a conversation removes it
// and its messages permanently.
type Conversation struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Message is a single append-only entry in a conversation, ordered by CreatedAt.
type Message struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	UserID         uuid.UUID
	Role           MessageRole
	Content        string
	CreatedAt      time.Time
}
