package memory

import (
	"sort"
	"time"

	"github.com/Akshaj-M/KinnrenWebsite-2/internal/model"
)

func (s *Store) CreateEvent(familyID int64, createdByID, title string, description *string, startDate time.Time, endDate *time.Time, location *string) (*model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := now()
	e := model.Event{
		ID:          s.id(),
		FamilyID:    familyID,
		CreatedByID: createdByID,
		Title:       title,
		Description: description,
		StartDate:   startDate,
		EndDate:     endDate,
		Location:    location,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	s.events[e.ID] = e
	return &e, nil
}

func (s *Store) GetFamilyEvents(familyID int64) ([]model.EventWithCreator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var events []model.EventWithCreator
	for _, e := range s.events {
		if e.FamilyID != familyID {
			continue
		}
		u, ok := s.users[e.CreatedByID]
		if !ok {
			continue
		}
		events = append(events, model.EventWithCreator{Event: e, CreatedBy: u})
	}
	// Soonest first: events are consumed chronologically.
	sort.Slice(events, func(i, j int) bool {
		if events[i].StartDate.Equal(events[j].StartDate) {
			return events[i].ID < events[j].ID
		}
		return events[i].StartDate.Before(events[j].StartDate)
	})
	return events, nil
}

func (s *Store) GetEvent(id int64) (*model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (s *Store) UpsertEventRsvp(eventID int64, userID, status string) (*model.EventRsvp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, r := range s.rsvps {
		if r.EventID == eventID && r.UserID == userID {
			r.Status = status
			r.UpdatedAt = now()
			s.rsvps[id] = r
			return &r, nil
		}
	}

	ts := now()
	r := model.EventRsvp{
		ID:        s.id(),
		EventID:   eventID,
		UserID:    userID,
		Status:    status,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	s.rsvps[r.ID] = r
	return &r, nil
}

func (s *Store) GetEventRsvps(eventID int64) ([]model.RsvpWithUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rsvps []model.RsvpWithUser
	for _, r := range s.rsvps {
		if r.EventID != eventID {
			continue
		}
		u, ok := s.users[r.UserID]
		if !ok {
			continue
		}
		rsvps = append(rsvps, model.RsvpWithUser{EventRsvp: r, User: u})
	}
	sortByID(rsvps, func(r model.RsvpWithUser) int64 { return r.ID })
	return rsvps, nil
}
