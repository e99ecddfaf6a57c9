package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Akshaj-M/KinnrenWebsite-2/internal/auth"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/model"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/notify"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/store"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/validate"
)

type ChatHandler struct {
	store    store.Storage
	notifier *notify.Notifier
	logger   *slog.Logger
}

func NewChatHandler(st store.Storage, n *notify.Notifier, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{store: st, notifier: n, logger: logger.With("component", "chat")}
}

// List returns the most recent messages joined with sender details, newest
// first, capped at the message limit. Clients poll this endpoint and
// reverse the slice for chronological display.
func (h *ChatHandler) List(w http.ResponseWriter, r *http.Request) {
	familyID, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	if !requireMembership(w, h.store, auth.UserID(r.Context()), familyID) {
		return
	}

	messages, err := h.store.GetFamilyMessages(familyID)
	if err != nil {
		h.logger.Error("list messages", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

type createMessageRequest struct {
	Content     string `json:"content"`
	MessageType string `json:"messageType"`
}

func (h *ChatHandler) Create(w http.ResponseWriter, r *http.Request) {
	familyID, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	userID := auth.UserID(r.Context())
	if !requireMembership(w, h.store, userID, familyID) {
		return
	}

	var req createMessageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var errs validate.Errors
	req.Content = strings.TrimSpace(req.Content)
	errs.Required("content", req.Content)
	errs.MaxLen("content", req.Content, 2000)
	errs.OneOf("messageType", req.MessageType, model.MessageTypeText, model.MessageTypePhoto)
	errs.MaxLen("messageType", req.MessageType, 20)
	if len(errs) > 0 {
		writeValidation(w, errs)
		return
	}
	if req.MessageType == "" {
		req.MessageType = model.MessageTypeText
	}

	message, err := h.store.CreateChatMessage(familyID, userID, req.Content, req.MessageType)
	if err != nil {
		h.logger.Error("create message", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to send message")
		return
	}

	h.notifier.NotifyFamily(familyID, userID, model.NotificationNewMessage, "New family message", nil, message.ID)
	writeJSON(w, http.StatusCreated, message)
}
