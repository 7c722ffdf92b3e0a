package rest

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/quizdeck/quizdeck-backend/internal/dispatch"
	"github.com/quizdeck/quizdeck-backend/internal/domain"
	randomizationsvc "github.com/quizdeck/quizdeck-backend/internal/service/randomization"
)

// RandomizationHandler serves review-session endpoints.
type RandomizationHandler struct {
	dispatcher *dispatch.Dispatcher
	log        *slog.Logger
}

// NewRandomizationHandler creates a RandomizationHandler.
func NewRandomizationHandler(d *dispatch.Dispatcher, log *slog.Logger) *RandomizationHandler {
	return &RandomizationHandler{dispatcher: d, log: log.With("handler", "randomization")}
}

type createRandomizationRequest struct {
	ShowAnswer bool `json:"show_answer"`
}

type updateRandomizationRequest struct {
	ShowAnswer        *bool      `json:"show_answer,omitempty"`
	Status            *string    `json:"status,omitempty"`
	CurrentQuestionID *uuid.UUID `json:"current_question_id,omitempty"`
	ClearCurrent      bool       `json:"clear_current,omitempty"`
}

type selectedCategoriesRequest struct {
	CategoryIDs []uuid.UUID `json:"category_ids"`
}

type sessionQuestionRequest struct {
	QuestionID uuid.UUID `json:"question_id"`
}

func (h *RandomizationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRandomizationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	session, err := dispatch.Send[randomizationsvc.CreateRandomizationInput, *domain.Randomization](
		r.Context(), h.dispatcher, randomizationsvc.CreateRandomizationInput{ShowAnswer: req.ShowAnswer})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRandomizationResponse(session))
}

func (h *RandomizationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	session, err := dispatch.Send[randomizationsvc.GetRandomizationInput, *domain.Randomization](
		r.Context(), h.dispatcher, randomizationsvc.GetRandomizationInput{RandomizationID: id})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toRandomizationResponse(session))
}

func (h *RandomizationHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	session, err := dispatch.Send[randomizationsvc.GetCurrentRandomizationInput, *domain.Randomization](
		r.Context(), h.dispatcher, randomizationsvc.GetCurrentRandomizationInput{
			Status: r.URL.Query().Get("status"),
		})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toRandomizationResponse(session))
}

func (h *RandomizationHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := dispatch.Send[randomizationsvc.ListRandomizationsInput, []*domain.Randomization](
		r.Context(), h.dispatcher, randomizationsvc.ListRandomizationsInput{})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toRandomizationResponses(sessions))
}

func (h *RandomizationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var req updateRandomizationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	session, err := dispatch.Send[randomizationsvc.UpdateRandomizationInput, *domain.Randomization](
		r.Context(), h.dispatcher, randomizationsvc.UpdateRandomizationInput{
			RandomizationID:   id,
			ShowAnswer:        req.ShowAnswer,
			Status:            req.Status,
			CurrentQuestionID: req.CurrentQuestionID,
			ClearCurrent:      req.ClearCurrent,
		})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toRandomizationResponse(session))
}

func (h *RandomizationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if _, err := dispatch.Send[randomizationsvc.DeleteRandomizationInput, struct{}](
		r.Context(), h.dispatcher, randomizationsvc.DeleteRandomizationInput{RandomizationID: id}); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *RandomizationHandler) AddSelectedCategories(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var req selectedCategoriesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if _, err := dispatch.Send[randomizationsvc.AddSelectedCategoriesInput, struct{}](
		r.Context(), h.dispatcher, randomizationsvc.AddSelectedCategoriesInput{
			RandomizationID: id,
			CategoryIDs:     req.CategoryIDs,
		}); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *RandomizationHandler) ListSelectedCategories(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	rows, err := dispatch.Send[randomizationsvc.ListSelectedCategoriesInput, []*domain.SelectedCategory](
		r.Context(), h.dispatcher, randomizationsvc.ListSelectedCategoriesInput{RandomizationID: id})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSelectedCategoryResponses(rows))
}

func (h *RandomizationHandler) AddUsedQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var req sessionQuestionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if _, err := dispatch.Send[randomizationsvc.AddUsedQuestionInput, struct{}](
		r.Context(), h.dispatcher, randomizationsvc.AddUsedQuestionInput{
			RandomizationID: id,
			QuestionID:      req.QuestionID,
		}); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *RandomizationHandler) ListUsedQuestions(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	rows, err := dispatch.Send[randomizationsvc.ListUsedQuestionsInput, []*domain.UsedQuestion](
		r.Context(), h.dispatcher, randomizationsvc.ListUsedQuestionsInput{RandomizationID: id})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUsedQuestionResponses(rows))
}

func (h *RandomizationHandler) AddPostponedQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var req sessionQuestionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if _, err := dispatch.Send[randomizationsvc.AddPostponedQuestionInput, struct{}](
		r.Context(), h.dispatcher, randomizationsvc.AddPostponedQuestionInput{
			RandomizationID: id,
			QuestionID:      req.QuestionID,
		}); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *RandomizationHandler) ListPostponedQuestions(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	rows, err := dispatch.Send[randomizationsvc.ListPostponedQuestionsInput, []*domain.PostponedQuestion](
		r.Context(), h.dispatcher, randomizationsvc.ListPostponedQuestionsInput{RandomizationID: id})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostponedQuestionResponses(rows))
}

func (h *RandomizationHandler) RemovePostponedQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	questionID, err := pathUUID(r, "question_id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if _, err := dispatch.Send[randomizationsvc.RemovePostponedQuestionInput, struct{}](
		r.Context(), h.dispatcher, randomizationsvc.RemovePostponedQuestionInput{
			RandomizationID: id,
			QuestionID:      questionID,
		}); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
