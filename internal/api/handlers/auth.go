package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/systemdesignlab/content-api/internal/config"
	"github.com/systemdesignlab/content-api/internal/domain"
	"github.com/systemdesignlab/content-api/internal/service"
	"github.com/systemdesignlab/content-api/internal/session"
)

type AuthHandler struct {
	authService *service.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	token, identity, err := h.authService.Login(service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// Never indicate which field was wrong.
			respondError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		if errors.Is(err, domain.ErrNotConfigured) {
			log.Printf("ERROR [handlers.AuthHandler] login unavailable: %v", err)
			respondError(w, http.StatusInternalServerError, "Admin credentials are not configured")
			return
		}
		log.Printf("ERROR [handlers.AuthHandler] failed to create session: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	secure := session.IsSecureRequest(r, h.cfg.ForceSecureCookies)
	http.SetCookie(w, session.SessionCookie(token, secure))

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"ok":   true,
		"user": identity,
	})
}

// Logout always clears the cookie; it neither requires nor checks a valid
// session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	secure := session.IsSecureRequest(r, h.cfg.ForceSecureCookies)
	http.SetCookie(w, session.ClearCookie(secure))

	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Me reports session state. It answers 200 in both cases; a logged-out
// browser asking "who am I" is not an error worth logging.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.authService.Identify(session.TokenFromRequest(r))
	if !ok {
		respondJSON(w, http.StatusOK, map[string]bool{"authenticated": false})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": true,
		"user":          identity,
	})
}
