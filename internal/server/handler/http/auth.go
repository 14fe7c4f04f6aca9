package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avakimov/fleetdeck/internal/models"
	"github.com/avakimov/fleetdeck/internal/service"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// UserExists checks whether a user with the given username exists.
	UserExists(ctx context.Context, username string) (bool, error)
	// Register creates a new user with the given credentials.
	Register(ctx context.Context, username, password string) (*models.User, error)
	// Authenticate verifies credentials, returning nil on a mismatch.
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
}

// AuthHandler handles HTTP requests for user registration and login.
type AuthHandler struct {
	AuthService AuthService
}

// credentials is the JSON payload for registration and login.
type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles POST /api/register. It expects a JSON body with
// non-empty "username" and "password" fields and rejects duplicate
// usernames with 409.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	exists, err := h.AuthService.UserExists(r.Context(), req.Username)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if exists {
		http.Error(w, "user already exists", http.StatusConflict)
		return
	}

	user, err := h.AuthService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		var ve service.ValidationError
		if errors.As(err, &ve) {
			http.Error(w, ve.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to save user", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Login handles POST /api/login, verifying the supplied credentials.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := h.AuthService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if user == nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"user":   user.Username,
	})
}
