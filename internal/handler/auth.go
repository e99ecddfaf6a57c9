package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Akshaj-M/KinnrenWebsite-2/internal/auth"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/middleware"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/store"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/validate"
)

type AuthHandler struct {
	store           store.Storage
	logger          *slog.Logger
	sessionTTL      time.Duration
	devPasswordHash string
}

func NewAuthHandler(st store.Storage, logger *slog.Logger, sessionTTL time.Duration, devPasswordHash string) *AuthHandler {
	return &AuthHandler{
		store:           st,
		logger:          logger.With("component", "auth"),
		sessionTTL:      sessionTTL,
		devPasswordHash: devPasswordHash,
	}
}

type loginRequest struct {
	ID              string  `json:"id"`
	Email           *string `json:"email"`
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	ProfileImageURL *string `json:"profileImageUrl"`
	Password        string  `json:"password"`
}

// Login upserts the posted identity and issues a session cookie. When a
// dev password hash is configured, the posted password must match it.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var errs validate.Errors
	req.ID = strings.TrimSpace(req.ID)
	errs.Required("id", req.ID)
	errs.MaxLen("id", req.ID, 255)
	if len(errs) > 0 {
		writeValidation(w, errs)
		return
	}

	if h.devPasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(h.devPasswordHash), []byte(req.Password)); err != nil {
			writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
	}

	user, err := h.store.UpsertUser(req.ID, req.Email, req.FirstName, req.LastName, req.ProfileImageURL)
	if err != nil {
		h.logger.Error("upsert user", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	token := uuid.NewString()
	expiresAt := time.Now().UTC().Add(h.sessionTTL)
	if _, err := h.store.CreateSession(token, user.ID, expiresAt); err != nil {
		h.logger.Error("create session", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, user)
}

// Logout destroys the caller's session, if any, and clears the cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.store.DeleteSession(cookie.Value); err != nil {
			h.logger.Error("delete session", "error", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// CurrentUser returns the authenticated caller's user record.
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	user, err := h.store.GetUser(userID)
	if err != nil {
		h.logger.Error("get user", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	if user == nil {
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}
