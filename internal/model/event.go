package model

import "time"

const (
	RsvpPending      = "pending"
	RsvpAttending    = "attending"
	RsvpNotAttending = "not_attending"
)

type Event struct {
	ID          int64      `json:"id"`
	FamilyID    int64      `json:"familyId"`
	CreatedByID string     `json:"createdById"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Location    *string    `json:"location"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type EventWithCreator struct {
	Event
	CreatedBy User `json:"createdBy"`
}

// EventRsvp is unique per (eventId, userId); a second RSVP from the same
// user updates the existing row instead of inserting another.
type EventRsvp struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"eventId"`
	UserID    string    `json:"userId"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type RsvpWithUser struct {
	EventRsvp
	User User `json:"user"`
}
