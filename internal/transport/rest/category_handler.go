package rest

import (
	"log/slog"
	"net/http"

	"github.com/quizdeck/quizdeck-backend/internal/dispatch"
	"github.com/quizdeck/quizdeck-backend/internal/domain"
	categorysvc "github.com/quizdeck/quizdeck-backend/internal/service/category"
)

// CategoryHandler serves category CRUD endpoints.
type CategoryHandler struct {
	dispatcher *dispatch.Dispatcher
	log        *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(d *dispatch.Dispatcher, log *slog.Logger) *CategoryHandler {
	return &CategoryHandler{dispatcher: d, log: log.With("handler", "category")}
}

type categoryRequest struct {
	Name string `json:"name"`
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	category, err := dispatch.Send[categorysvc.CreateCategoryInput, *domain.Category](
		r.Context(), h.dispatcher, categorysvc.CreateCategoryInput{Name: req.Name})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCategoryResponse(category))
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	category, err := dispatch.Send[categorysvc.GetCategoryInput, *domain.Category](
		r.Context(), h.dispatcher, categorysvc.GetCategoryInput{CategoryID: id})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryResponse(category))
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	categories, err := dispatch.Send[categorysvc.ListCategoriesInput, []*domain.Category](
		r.Context(), h.dispatcher, categorysvc.ListCategoriesInput{ActiveOnly: activeOnly})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryResponses(categories))
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	category, err := dispatch.Send[categorysvc.UpdateCategoryInput, *domain.Category](
		r.Context(), h.dispatcher, categorysvc.UpdateCategoryInput{CategoryID: id, Name: req.Name})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryResponse(category))
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if _, err := dispatch.Send[categorysvc.DeleteCategoryInput, struct{}](
		r.Context(), h.dispatcher, categorysvc.DeleteCategoryInput{CategoryID: id}); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
