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

type PhotoHandler struct {
	store    store.Storage
	notifier *notify.Notifier
	logger   *slog.Logger
}

func NewPhotoHandler(st store.Storage, n *notify.Notifier, logger *slog.Logger) *PhotoHandler {
	return &PhotoHandler{store: st, notifier: n, logger: logger.With("component", "photo")}
}

// List returns the family's photos joined with uploader details, newest
// first. Photos whose uploader record is gone are dropped.
func (h *PhotoHandler) List(w http.ResponseWriter, r *http.Request) {
	familyID, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	if !requireMembership(w, h.store, auth.UserID(r.Context()), familyID) {
		return
	}

	photos, err := h.store.GetFamilyPhotos(familyID)
	if err != nil {
		h.logger.Error("list photos", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch photos")
		return
	}
	writeJSON(w, http.StatusOK, photos)
}

type createPhotoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	AlbumID     *int64  `json:"albumId"`
}

func (h *PhotoHandler) Create(w http.ResponseWriter, r *http.Request) {
	familyID, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	userID := auth.UserID(r.Context())
	if !requireMembership(w, h.store, userID, familyID) {
		return
	}

	var req createPhotoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var errs validate.Errors
	req.ImageURL = strings.TrimSpace(req.ImageURL)
	errs.Required("imageUrl", req.ImageURL)
	errs.MaxLen("imageUrl", req.ImageURL, 2048)
	if req.Title != nil {
		errs.MaxLen("title", *req.Title, 200)
	}
	if req.Description != nil {
		errs.MaxLen("description", *req.Description, 1000)
	}
	if len(errs) > 0 {
		writeValidation(w, errs)
		return
	}

	photo, err := h.store.CreatePhoto(familyID, userID, req.Title, req.Description, req.ImageURL, req.AlbumID)
	if err != nil {
		h.logger.Error("create photo", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to create photo")
		return
	}

	h.notifier.NotifyFamily(familyID, userID, model.NotificationNewPhoto, "New photo shared", req.Title, photo.ID)
	writeJSON(w, http.StatusCreated, photo)
}
