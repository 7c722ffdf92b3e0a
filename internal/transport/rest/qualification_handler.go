package rest

import (
	"log/slog"
	"net/http"

	"github.com/quizdeck/quizdeck-backend/internal/dispatch"
	"github.com/quizdeck/quizdeck-backend/internal/domain"
	qualificationsvc "github.com/quizdeck/quizdeck-backend/internal/service/qualification"
)

// QualificationHandler serves qualification CRUD endpoints.
type QualificationHandler struct {
	dispatcher *dispatch.Dispatcher
	log        *slog.Logger
}

// NewQualificationHandler creates a QualificationHandler.
func NewQualificationHandler(d *dispatch.Dispatcher, log *slog.Logger) *QualificationHandler {
	return &QualificationHandler{dispatcher: d, log: log.With("handler", "qualification")}
}

type qualificationRequest struct {
	Name string `json:"name"`
}

type qualificationBatchRequest struct {
	Names []string `json:"names"`
}

func (h *QualificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req qualificationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	qualification, err := dispatch.Send[qualificationsvc.CreateQualificationInput, *domain.Qualification](
		r.Context(), h.dispatcher, qualificationsvc.CreateQualificationInput{Name: req.Name})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toQualificationResponse(qualification))
}

func (h *QualificationHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var req qualificationBatchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	created, err := dispatch.Send[qualificationsvc.CreateQualificationBatchInput, []*domain.Qualification](
		r.Context(), h.dispatcher, qualificationsvc.CreateQualificationBatchInput{Names: req.Names})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toQualificationResponses(created))
}

func (h *QualificationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	qualification, err := dispatch.Send[qualificationsvc.GetQualificationInput, *domain.Qualification](
		r.Context(), h.dispatcher, qualificationsvc.GetQualificationInput{QualificationID: id})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toQualificationResponse(qualification))
}

func (h *QualificationHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	qualifications, err := dispatch.Send[qualificationsvc.ListQualificationsInput, []*domain.Qualification](
		r.Context(), h.dispatcher, qualificationsvc.ListQualificationsInput{ActiveOnly: activeOnly})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toQualificationResponses(qualifications))
}

func (h *QualificationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var req qualificationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	qualification, err := dispatch.Send[qualificationsvc.UpdateQualificationInput, *domain.Qualification](
		r.Context(), h.dispatcher, qualificationsvc.UpdateQualificationInput{QualificationID: id, Name: req.Name})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toQualificationResponse(qualification))
}

func (h *QualificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if _, err := dispatch.Send[qualificationsvc.DeleteQualificationInput, struct{}](
		r.Context(), h.dispatcher, qualificationsvc.DeleteQualificationInput{QualificationID: id}); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
