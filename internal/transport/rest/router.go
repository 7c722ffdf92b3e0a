package rest

import (
	"log/slog"
	"net/http"

	"github.com/quizdeck/quizdeck-backend/internal/dispatch"
)

// NewRouter mounts every endpoint on a ServeMux. Authentication is enforced
// per-operation by the services; the mux itself serves authenticated and
// anonymous routes alike.
func NewRouter(d *dispatch.Dispatcher, health *HealthHandler, log *slog.Logger) *http.ServeMux {
	authH := NewAuthHandler(d, log)
	categoryH := NewCategoryHandler(d, log)
	qualificationH := NewQualificationHandler(d, log)
	questionH := NewQuestionHandler(d, log)
	conversationH := NewConversationHandler(d, log)
	randomizationH := NewRandomizationHandler(d, log)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("POST /api/v1/auth/register", authH.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authH.Login)
	mux.HandleFunc("GET /api/v1/auth/me", authH.Me)

	mux.HandleFunc("POST /api/v1/categories", categoryH.Create)
	mux.HandleFunc("GET /api/v1/categories", categoryH.List)
	mux.HandleFunc("GET /api/v1/categories/{id}", categoryH.Get)
	mux.HandleFunc("PUT /api/v1/categories/{id}", categoryH.Update)
	mux.HandleFunc("DELETE /api/v1/categories/{id}", categoryH.Delete)

	mux.HandleFunc("POST /api/v1/qualifications", qualificationH.Create)
	mux.HandleFunc("POST /api/v1/qualifications/batch", qualificationH.CreateBatch)
	mux.HandleFunc("GET /api/v1/qualifications", qualificationH.List)
	mux.HandleFunc("GET /api/v1/qualifications/{id}", qualificationH.Get)
	mux.HandleFunc("PUT /api/v1/qualifications/{id}", qualificationH.Update)
	mux.HandleFunc("DELETE /api/v1/qualifications/{id}", qualificationH.Delete)

	mux.HandleFunc("POST /api/v1/questions", questionH.Create)
	mux.HandleFunc("GET /api/v1/questions", questionH.List)
	mux.HandleFunc("GET /api/v1/questions/{id}", questionH.Get)
	mux.HandleFunc("PUT /api/v1/questions/{id}", questionH.Update)
	mux.HandleFunc("DELETE /api/v1/questions/{id}", questionH.Delete)

	mux.HandleFunc("POST /api/v1/conversations", conversationH.Create)
	mux.HandleFunc("GET /api/v1/conversations", conversationH.List)
	mux.HandleFunc("GET /api/v1/conversations/{id}", conversationH.Get)
	mux.HandleFunc("DELETE /api/v1/conversations/{id}", conversationH.Delete)
	mux.HandleFunc("POST /api/v1/conversations/{id}/messages", conversationH.CreateMessage)
	mux.HandleFunc("GET /api/v1/conversations/{id}/messages", conversationH.ListMessages)

	mux.HandleFunc("POST /api/v1/randomizations", randomizationH.Create)
	mux.HandleFunc("GET /api/v1/randomizations", randomizationH.List)
	mux.HandleFunc("GET /api/v1/randomizations/current", randomizationH.GetCurrent)
	mux.HandleFunc("GET /api/v1/randomizations/{id}", randomizationH.Get)
	mux.HandleFunc("PATCH /api/v1/randomizations/{id}", randomizationH.Update)
	mux.HandleFunc("DELETE /api/v1/randomizations/{id}", randomizationH.Delete)

	mux.HandleFunc("POST /api/v1/randomizations/{id}/categories", randomizationH.AddSelectedCategories)
	mux.HandleFunc("GET /api/v1/randomizations/{id}/categories", randomizationH.ListSelectedCategories)
	mux.HandleFunc("POST /api/v1/randomizations/{id}/used", randomizationH.AddUsedQuestion)
	mux.HandleFunc("GET /api/v1/randomizations/{id}/used", randomizationH.ListUsedQuestions)
	mux.HandleFunc("POST /api/v1/randomizations/{id}/postponed", randomizationH.AddPostponedQuestion)
	mux.HandleFunc("GET /api/v1/randomizations/{id}/postponed", randomizationH.ListPostponedQuestions)
	mux.HandleFunc("DELETE /api/v1/randomizations/{id}/postponed/{question_id}", randomizationH.RemovePostponedQuestion)

	return mux
}
