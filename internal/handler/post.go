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

type PostHandler struct {
	store    store.Storage
	notifier *notify.Notifier
	logger   *slog.Logger
}

func NewPostHandler(st store.Storage, n *notify.Notifier, logger *slog.Logger) *PostHandler {
	return &PostHandler{store: st, notifier: n, logger: logger.With("component", "post")}
}

// List returns the family feed, newest first. Each post carries its author,
// all reactions, and all comments with their authors oldest first.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	familyID, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	if !requireMembership(w, h.store, auth.UserID(r.Context()), familyID) {
		return
	}

	posts, err := h.store.GetFamilyPosts(familyID)
	if err != nil {
		h.logger.Error("list posts", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

type createPostRequest struct {
	Content  string   `json:"content"`
	PhotoIDs []string `json:"photoIds"`
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	familyID, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	userID := auth.UserID(r.Context())
	if !requireMembership(w, h.store, userID, familyID) {
		return
	}

	var req createPostRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var errs validate.Errors
	req.Content = strings.TrimSpace(req.Content)
	errs.Required("content", req.Content)
	errs.MaxLen("content", req.Content, 5000)
	if len(errs) > 0 {
		writeValidation(w, errs)
		return
	}

	post, err := h.store.CreatePost(familyID, userID, req.Content, req.PhotoIDs)
	if err != nil {
		h.logger.Error("create post", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to create post")
		return
	}

	h.notifier.NotifyFamily(familyID, userID, model.NotificationNewPost, "New family post", nil, post.ID)
	writeJSON(w, http.StatusCreated, post)
}

type reactRequest struct {
	ReactionType string `json:"reactionType"`
}

// React toggles the caller's reaction on a post. A second identical request
// removes the reaction and returns a JSON null body.
func (h *PostHandler) React(w http.ResponseWriter, r *http.Request) {
	postID, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	post, err := h.store.GetPost(postID)
	if err != nil {
		h.logger.Error("get post", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch post")
		return
	}
	if post == nil {
		writeMessage(w, http.StatusNotFound, "Post not found")
		return
	}

	userID := auth.UserID(r.Context())
	if !requireMembership(w, h.store, userID, post.FamilyID) {
		return
	}

	var req reactRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var errs validate.Errors
	errs.MaxLen("reactionType", req.ReactionType, 20)
	if len(errs) > 0 {
		writeValidation(w, errs)
		return
	}
	if req.ReactionType == "" {
		req.ReactionType = model.ReactionLike
	}

	reaction, err := h.store.TogglePostReaction(postID, userID, req.ReactionType)
	if err != nil {
		h.logger.Error("toggle reaction", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to toggle reaction")
		return
	}

	// Removed reactions encode as a bare null so clients can tell the two
	// outcomes apart.
	if reaction == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("null\n"))
		return
	}
	writeJSON(w, http.StatusOK, reaction)
}

type commentRequest struct {
	Content string `json:"content"`
}

// Comment adds a comment to a post, gated on membership in the post's
// family.
func (h *PostHandler) Comment(w http.ResponseWriter, r *http.Request) {
	postID, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	post, err := h.store.GetPost(postID)
	if err != nil {
		h.logger.Error("get post", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch post")
		return
	}
	if post == nil {
		writeMessage(w, http.StatusNotFound, "Post not found")
		return
	}

	userID := auth.UserID(r.Context())
	if !requireMembership(w, h.store, userID, post.FamilyID) {
		return
	}

	var req commentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var errs validate.Errors
	req.Content = strings.TrimSpace(req.Content)
	errs.Required("content", req.Content)
	errs.MaxLen("content", req.Content, 2000)
	if len(errs) > 0 {
		writeValidation(w, errs)
		return
	}

	comment, err := h.store.CreateComment(postID, userID, req.Content)
	if err != nil {
		h.logger.Error("create comment", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to create comment")
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}
