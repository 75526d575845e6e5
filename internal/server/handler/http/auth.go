package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mzaleska/catalog/internal/apperrors"
	"github.com/mzaleska/catalog/internal/auth"
	"github.com/mzaleska/catalog/internal/models"
	"go.uber.org/zap"
)

// AuthService defines the account operations required by the HTTP
// handlers.
type AuthService interface {
	Signup(ctx context.Context, name, surname, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
}

// AuthHandler handles HTTP requests for account signup and login.
type AuthHandler struct {
	Service   AuthService
	JWTSecret string
	Log       *zap.Logger
}

// SignupRequest represents the JSON payload for account registration.
type SignupRequest struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the JSON payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles POST /user/signup. The created account always has
// admin false; the response carries the email and a signed token, never
// the password hash.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.Log, apperrors.Validation("Invalid request body"), "error")
		return
	}

	user, err := h.Service.Signup(r.Context(), req.Name, req.Surname, req.Email, req.Password)
	if err != nil {
		respondError(w, h.Log, err, "error")
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, user.ID, user.Email, user.Admin)
	if err != nil {
		respondError(w, h.Log, err, "error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"email": user.Email,
		"token": token,
	})
}

// Login handles POST /user/login. Failures carry one generic message
// whether the email is unknown or the password is wrong.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.Log, apperrors.Validation("Invalid request body"), "error")
		return
	}

	user, err := h.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, h.Log, err, "error")
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, user.ID, user.Email, user.Admin)
	if err != nil {
		respondError(w, h.Log, err, "error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"email": user.Email,
		"token": token,
	})
}
