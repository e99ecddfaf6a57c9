package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Akshaj-M/KinnrenWebsite-2/internal/auth"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/model"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/notify"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/store"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/validate"
)

type EventHandler struct {
	store    store.Storage
	notifier *notify.Notifier
	logger   *slog.Logger
}

func NewEventHandler(st store.Storage, n *notify.Notifier, logger *slog.Logger) *EventHandler {
	return &EventHandler{store: st, notifier: n, logger: logger.With("component", "event")}
}

// List returns the family's events joined with creator details, soonest
// first.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	familyID, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	if !requireMembership(w, h.store, auth.UserID(r.Context()), familyID) {
		return
	}

	events, err := h.store.GetFamilyEvents(familyID)
	if err != nil {
		h.logger.Error("list events", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}
	writeJSON(w, http.StatusOK, events)
}

type createEventRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Location    *string    `json:"location"`
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	familyID, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	userID := auth.UserID(r.Context())
	if !requireMembership(w, h.store, userID, familyID) {
		return
	}

	var req createEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var errs validate.Errors
	req.Title = strings.TrimSpace(req.Title)
	errs.Required("title", req.Title)
	errs.MaxLen("title", req.Title, 200)
	if req.StartDate.IsZero() {
		errs.Add("startDate", "is required")
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		errs.Add("endDate", "must not be before startDate")
	}
	if req.Description != nil {
		errs.MaxLen("description", *req.Description, 1000)
	}
	if req.Location != nil {
		errs.MaxLen("location", *req.Location, 200)
	}
	if len(errs) > 0 {
		writeValidation(w, errs)
		return
	}

	event, err := h.store.CreateEvent(familyID, userID, req.Title, req.Description, req.StartDate, req.EndDate, req.Location)
	if err != nil {
		h.logger.Error("create event", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to create event")
		return
	}

	h.notifier.NotifyFamily(familyID, userID, model.NotificationNewEvent, "New family event", &req.Title, event.ID)
	writeJSON(w, http.StatusCreated, event)
}

type rsvpRequest struct {
	Status string `json:"status"`
}

// Rsvp records or updates the caller's RSVP. Repeat submissions update the
// existing row rather than inserting another; the event is resolved first
// so unknown ids return 404 before the family gate runs.
func (h *EventHandler) Rsvp(w http.ResponseWriter, r *http.Request) {
	eventID, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	event, err := h.store.GetEvent(eventID)
	if err != nil {
		h.logger.Error("get event", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch event")
		return
	}
	if event == nil {
		writeMessage(w, http.StatusNotFound, "Event not found")
		return
	}

	userID := auth.UserID(r.Context())
	if !requireMembership(w, h.store, userID, event.FamilyID) {
		return
	}

	var req rsvpRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var errs validate.Errors
	errs.OneOf("status", req.Status, model.RsvpPending, model.RsvpAttending, model.RsvpNotAttending)
	if len(errs) > 0 {
		writeValidation(w, errs)
		return
	}
	if req.Status == "" {
		req.Status = model.RsvpPending
	}

	rsvp, err := h.store.UpsertEventRsvp(eventID, userID, req.Status)
	if err != nil {
		h.logger.Error("upsert rsvp", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to save RSVP")
		return
	}
	writeJSON(w, http.StatusOK, rsvp)
}

// ListRsvps returns every RSVP for the event joined with user details.
func (h *EventHandler) ListRsvps(w http.ResponseWriter, r *http.Request) {
	eventID, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	event, err := h.store.GetEvent(eventID)
	if err != nil {
		h.logger.Error("get event", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch event")
		return
	}
	if event == nil {
		writeMessage(w, http.StatusNotFound, "Event not found")
		return
	}

	if !requireMembership(w, h.store, auth.UserID(r.Context()), event.FamilyID) {
		return
	}

	rsvps, err := h.store.GetEventRsvps(eventID)
	if err != nil {
		h.logger.Error("list rsvps", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch RSVPs")
		return
	}
	writeJSON(w, http.StatusOK, rsvps)
}
