package rest

import (
	"log/slog"
	"net/http"

	"github.com/quizdeck/quizdeck-backend/internal/dispatch"
	"github.com/quizdeck/quizdeck-backend/internal/domain"
	authsvc "github.com/quizdeck/quizdeck-backend/internal/service/auth"
)

// AuthHandler serves registration, login and account lookup.
type AuthHandler struct {
	dispatcher *dispatch.Dispatcher
	log        *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(d *dispatch.Dispatcher, log *slog.Logger) *AuthHandler {
	return &AuthHandler{dispatcher: d, log: log.With("handler", "auth")}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User        userResponse `json:"user"`
	AccessToken string       `json:"access_token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	result, err := dispatch.Send[authsvc.RegisterInput, *authsvc.AuthResult](r.Context(), h.dispatcher, authsvc.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{
		User:        toUserResponse(result.User),
		AccessToken: result.AccessToken,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	result, err := dispatch.Send[authsvc.LoginInput, *authsvc.AuthResult](r.Context(), h.dispatcher, authsvc.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		User:        toUserResponse(result.User),
		AccessToken: result.AccessToken,
	})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := dispatch.Send[authsvc.MeInput, *domain.User](r.Context(), h.dispatcher, authsvc.MeInput{})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}
