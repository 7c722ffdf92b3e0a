package rest

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/quizdeck/quizdeck-backend/internal/dispatch"
	"github.com/quizdeck/quizdeck-backend/internal/domain"
	questionsvc "github.com/quizdeck/quizdeck-backend/internal/service/question"
)

// QuestionHandler serves question CRUD endpoints.
type QuestionHandler struct {
	dispatcher *dispatch.Dispatcher
	log        *slog.Logger
}

// NewQuestionHandler creates a QuestionHandler.
func NewQuestionHandler(d *dispatch.Dispatcher, log *slog.Logger) *QuestionHandler {
	return &QuestionHandler{dispatcher: d, log: log.With("handler", "question")}
}

type questionRequest struct {
	QuestionText    string     `json:"question_text"`
	Answer          string     `json:"answer"`
	AnswerPL        *string    `json:"answer_pl,omitempty"`
	CategoryID      *uuid.UUID `json:"category_id,omitempty"`
	QualificationID *uuid.UUID `json:"qualification_id,omitempty"`
	Tags            []string   `json:"tags,omitempty"`
}

func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req questionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	question, err := dispatch.Send[questionsvc.CreateQuestionInput, *domain.Question](
		r.Context(), h.dispatcher, questionsvc.CreateQuestionInput{
			QuestionText:    req.QuestionText,
			Answer:          req.Answer,
			AnswerPL:        req.AnswerPL,
			CategoryID:      req.CategoryID,
			QualificationID: req.QualificationID,
			Tags:            req.Tags,
		})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toQuestionResponse(question))
}

func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	question, err := dispatch.Send[questionsvc.GetQuestionInput, *domain.Question](
		r.Context(), h.dispatcher, questionsvc.GetQuestionInput{QuestionID: id})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toQuestionResponse(question))
}

func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	input := questionsvc.ListQuestionsInput{
		ActiveOnly: r.URL.Query().Get("active_only") == "true",
	}
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, r, h.log, domain.NewValidationError("category_id", "must be a UUID"))
			return
		}
		input.CategoryID = &id
	}

	questions, err := dispatch.Send[questionsvc.ListQuestionsInput, []*domain.Question](
		r.Context(), h.dispatcher, input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toQuestionResponses(questions))
}

func (h *QuestionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var req questionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	question, err := dispatch.Send[questionsvc.UpdateQuestionInput, *domain.Question](
		r.Context(), h.dispatcher, questionsvc.UpdateQuestionInput{
			QuestionID:      id,
			QuestionText:    req.QuestionText,
			Answer:          req.Answer,
			AnswerPL:        req.AnswerPL,
			CategoryID:      req.CategoryID,
			QualificationID: req.QualificationID,
			Tags:            req.Tags,
		})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toQuestionResponse(question))
}

func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if _, err := dispatch.Send[questionsvc.DeleteQuestionInput, struct{}](
		r.Context(), h.dispatcher, questionsvc.DeleteQuestionInput{QuestionID: id}); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
