package rest

import (
	"log/slog"
	"net/http"

	"github.com/quizdeck/quizdeck-backend/internal/dispatch"
	"github.com/quizdeck/quizdeck-backend/internal/domain"
	conversationsvc "github.com/quizdeck/quizdeck-backend/internal/service/conversation"
)

// ConversationHandler serves conversation and message endpoints.
type ConversationHandler struct {
	dispatcher *dispatch.Dispatcher
	log        *slog.Logger
}

// NewConversationHandler creates a ConversationHandler.
func NewConversationHandler(d *dispatch.Dispatcher, log *slog.Logger) *ConversationHandler {
	return &ConversationHandler{dispatcher: d, log: log.With("handler", "conversation")}
}

type conversationRequest struct {
	Title *string `json:"title,omitempty"`
}

type messageRequest struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (h *ConversationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req conversationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	conversation, err := dispatch.Send[conversationsvc.CreateConversationInput, *domain.Conversation](
		r.Context(), h.dispatcher, conversationsvc.CreateConversationInput{Title: req.Title})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toConversationResponse(conversation))
}

func (h *ConversationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	conversation, err := dispatch.Send[conversationsvc.GetConversationInput, *domain.Conversation](
		r.Context(), h.dispatcher, conversationsvc.GetConversationInput{ConversationID: id})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toConversationResponse(conversation))
}

func (h *ConversationHandler) List(w http.ResponseWriter, r *http.Request) {
	conversations, err := dispatch.Send[conversationsvc.ListConversationsInput, []*domain.Conversation](
		r.Context(), h.dispatcher, conversationsvc.ListConversationsInput{})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toConversationResponses(conversations))
}

func (h *ConversationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if _, err := dispatch.Send[conversationsvc.DeleteConversationInput, struct{}](
		r.Context(), h.dispatcher, conversationsvc.DeleteConversationInput{ConversationID: id}); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ConversationHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var req messageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	message, err := dispatch.Send[conversationsvc.CreateMessageInput, *domain.Message](
		r.Context(), h.dispatcher, conversationsvc.CreateMessageInput{
			ConversationID: id,
			Role:           domain.MessageRole(req.Role),
			Content:        req.Content,
		})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMessageResponse(message))
}

func (h *ConversationHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	messages, err := dispatch.Send[conversationsvc.ListMessagesInput, []*domain.Message](
		r.Context(), h.dispatcher, conversationsvc.ListMessagesInput{ConversationID: id})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toMessageResponses(messages))
}
