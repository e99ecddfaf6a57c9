package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Akshaj-M/KinnrenWebsite-2/internal/auth"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/store"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/validate"
)

type AlbumHandler struct {
	store  store.Storage
	logger *slog.Logger
}

func NewAlbumHandler(st store.Storage, logger *slog.Logger) *AlbumHandler {
	return &AlbumHandler{store: st, logger: logger.With("component", "album")}
}

func (h *AlbumHandler) List(w http.ResponseWriter, r *http.Request) {
	familyID, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	if !requireMembership(w, h.store, auth.UserID(r.Context()), familyID) {
		return
	}

	albums, err := h.store.GetFamilyAlbums(familyID)
	if err != nil {
		h.logger.Error("list albums", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch albums")
		return
	}
	writeJSON(w, http.StatusOK, albums)
}

type createAlbumRequest struct {
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	CoverPhotoID *int64  `json:"coverPhotoId"`
}

func (h *AlbumHandler) Create(w http.ResponseWriter, r *http.Request) {
	familyID, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	userID := auth.UserID(r.Context())
	if !requireMembership(w, h.store, userID, familyID) {
		return
	}

	var req createAlbumRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var errs validate.Errors
	req.Name = strings.TrimSpace(req.Name)
	errs.Required("name", req.Name)
	errs.MaxLen("name", req.Name, 100)
	if req.Description != nil {
		errs.MaxLen("description", *req.Description, 500)
	}
	if len(errs) > 0 {
		writeValidation(w, errs)
		return
	}

	album, err := h.store.CreateAlbum(familyID, userID, req.Name, req.Description, req.CoverPhotoID)
	if err != nil {
		h.logger.Error("create album", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to create album")
		return
	}
	writeJSON(w, http.StatusCreated, album)
}
