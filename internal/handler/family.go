package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Akshaj-M/KinnrenWebsite-2/internal/auth"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/model"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/store"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/validate"
)

type FamilyHandler struct {
	store  store.Storage
	logger *slog.Logger
}

func NewFamilyHandler(st store.Storage, logger *slog.Logger) *FamilyHandler {
	return &FamilyHandler{store: st, logger: logger.With("component", "family")}
}

type createFamilyRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// Create makes a family and enrolls the creator as its admin in one atomic
// operation.
func (h *FamilyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createFamilyRequest
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

	family, err := h.store.CreateFamily(req.Name, req.Description, auth.UserID(r.Context()))
	if err != nil {
		h.logger.Error("create family", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to create family")
		return
	}
	writeJSON(w, http.StatusCreated, family)
}

// List returns every family the caller belongs to.
func (h *FamilyHandler) List(w http.ResponseWriter, r *http.Request) {
	families, err := h.store.GetFamiliesByUserID(auth.UserID(r.Context()))
	if err != nil {
		h.logger.Error("list families", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch families")
		return
	}
	writeJSON(w, http.StatusOK, families)
}

// Get returns one family. Membership is checked before existence so that
// outsiders cannot distinguish a family they are excluded from against one
// that does not exist.
func (h *FamilyHandler) Get(w http.ResponseWriter, r *http.Request) {
	familyID, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	if !requireMembership(w, h.store, auth.UserID(r.Context()), familyID) {
		return
	}

	family, err := h.store.GetFamily(familyID)
	if err != nil {
		h.logger.Error("get family", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch family")
		return
	}
	if family == nil {
		writeMessage(w, http.StatusNotFound, "Family not found")
		return
	}
	writeJSON(w, http.StatusOK, family)
}

// ListMembers returns the family roster with user details, members-only.
func (h *FamilyHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	familyID, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	if !requireMembership(w, h.store, auth.UserID(r.Context()), familyID) {
		return
	}

	members, err := h.store.GetFamilyMembers(familyID)
	if err != nil {
		h.logger.Error("list members", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch family members")
		return
	}
	writeJSON(w, http.StatusOK, members)
}

type addMemberRequest struct {
	UserID           string  `json:"userId"`
	Role             string  `json:"role"`
	RelationshipType *string `json:"relationshipType"`
}

// AddMember enrolls a user into the family. Admin-only; duplicate
// memberships are rejected with 409.
func (h *FamilyHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	familyID, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	if !requireAdmin(w, h.store, auth.UserID(r.Context()), familyID) {
		return
	}

	var req addMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var errs validate.Errors
	req.UserID = strings.TrimSpace(req.UserID)
	errs.Required("userId", req.UserID)
	errs.OneOf("role", req.Role, model.RoleAdmin, model.RoleMember)
	errs.MaxLen("role", req.Role, 20)
	if req.RelationshipType != nil {
		errs.MaxLen("relationshipType", *req.RelationshipType, 50)
	}
	if len(errs) > 0 {
		writeValidation(w, errs)
		return
	}
	if req.Role == "" {
		req.Role = model.RoleMember
	}

	membership, err := h.store.AddFamilyMember(familyID, req.UserID, req.Role, req.RelationshipType)
	if err != nil {
		if isDuplicateMembership(err) {
			writeMessage(w, http.StatusConflict, "User is already a member of this family")
			return
		}
		h.logger.Error("add member", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to add family member")
		return
	}
	writeJSON(w, http.StatusCreated, membership)
}
