package handler

import (
	"log/slog"
	"net/http"

	"github.com/Akshaj-M/KinnrenWebsite-2/internal/auth"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/store"
)

type NotificationHandler struct {
	store  store.Storage
	logger *slog.Logger
}

func NewNotificationHandler(st store.Storage, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{store: st, logger: logger.With("component", "notification")}
}

// List returns the caller's most recent notifications, newest first, capped
// at the notification limit.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.store.GetUserNotifications(auth.UserID(r.Context()))
	if err != nil {
		h.logger.Error("list notifications", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch notifications")
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}

// MarkRead flips a notification to read. Unknown ids are a no-op; the
// response is the same either way.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.store.MarkNotificationAsRead(id); err != nil {
		h.logger.Error("mark notification read", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to mark notification as read")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
