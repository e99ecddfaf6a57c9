package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Akshaj-M/KinnrenWebsite-2/internal/model"
)

const eventCols = `id, family_id, created_by_id, title, description, start_date, end_date, location, created_at, updated_at`
const rsvpCols = `id, event_id, user_id, status, created_at, updated_at`

func scanEvent(sc scanner) (*model.Event, error) {
	var e model.Event
	err := sc.Scan(&e.ID, &e.FamilyID, &e.CreatedByID, &e.Title, &e.Description, &e.StartDate, &e.EndDate, &e.Location, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func scanRsvp(sc scanner) (*model.EventRsvp, error) {
	var r model.EventRsvp
	err := sc.Scan(&r.ID, &r.EventID, &r.UserID, &r.Status, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) CreateEvent(familyID int64, createdByID, title string, description *string, startDate time.Time, endDate *time.Time, location *string) (*model.Event, error) {
	ts := now()
	result, err := s.db.Exec(
		`INSERT INTO events (family_id, created_by_id, title, description, start_date, end_date, location, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		familyID, createdByID, title, description, startDate, endDate, location, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetEvent(id)
}

func (s *Store) GetFamilyEvents(familyID int64) ([]model.EventWithCreator, error) {
	rows, err := s.db.Query(
		`SELECT e.id, e.family_id, e.created_by_id, e.title, e.description, e.start_date, e.end_date, e.location, e.created_at, e.updated_at,
		        u.id, u.email, u.first_name, u.last_name, u.profile_image_url, u.created_at, u.updated_at
		 FROM events e
		 JOIN users u ON u.id = e.created_by_id
		 WHERE e.family_id = ?
		 ORDER BY e.start_date ASC, e.id ASC`,
		familyID,
	)
	if err != nil {
		return nil, fmt.Errorf("list family events: %w", err)
	}
	defer rows.Close()

	var events []model.EventWithCreator
	for rows.Next() {
		var e model.EventWithCreator
		if err := rows.Scan(
			&e.ID, &e.FamilyID, &e.CreatedByID, &e.Title, &e.Description, &e.StartDate, &e.EndDate, &e.Location, &e.CreatedAt, &e.UpdatedAt,
			&e.CreatedBy.ID, &e.CreatedBy.Email, &e.CreatedBy.FirstName, &e.CreatedBy.LastName, &e.CreatedBy.ProfileImageURL, &e.CreatedBy.CreatedAt, &e.CreatedBy.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (s *Store) GetEvent(id int64) (*model.Event, error) {
	row := s.db.QueryRow(`SELECT `+eventCols+` FROM events WHERE id = ?`, id)
	e, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

// UpsertEventRsvp leans on the unique (event_id, user_id) index: the upsert
// either inserts a fresh row or updates status and updated_at in place,
// preserving id and created_at.
func (s *Store) UpsertEventRsvp(eventID int64, userID, status string) (*model.EventRsvp, error) {
	ts := now()
	_, err := s.db.Exec(
		`INSERT INTO event_rsvps (event_id, user_id, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(event_id, user_id) DO UPDATE SET
		   status = excluded.status,
		   updated_at = excluded.updated_at`,
		eventID, userID, status, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert rsvp: %w", err)
	}

	row := s.db.QueryRow(`SELECT `+rsvpCols+` FROM event_rsvps WHERE event_id = ? AND user_id = ?`, eventID, userID)
	r, err := scanRsvp(row)
	if err != nil {
		return nil, fmt.Errorf("get rsvp: %w", err)
	}
	return r, nil
}

func (s *Store) GetEventRsvps(eventID int64) ([]model.RsvpWithUser, error) {
	rows, err := s.db.Query(
		`SELECT r.id, r.event_id, r.user_id, r.status, r.created_at, r.updated_at,
		        u.id, u.email, u.first_name, u.last_name, u.profile_image_url, u.created_at, u.updated_at
		 FROM event_rsvps r
		 JOIN users u ON u.id = r.user_id
		 WHERE r.event_id = ?
		 ORDER BY r.id ASC`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("list event rsvps: %w", err)
	}
	defer rows.Close()

	var rsvps []model.RsvpWithUser
	for rows.Next() {
		var r model.RsvpWithUser
		if err := rows.Scan(
			&r.ID, &r.EventID, &r.UserID, &r.Status, &r.CreatedAt, &r.UpdatedAt,
			&r.User.ID, &r.User.Email, &r.User.FirstName, &r.User.LastName, &r.User.ProfileImageURL, &r.User.CreatedAt, &r.User.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan rsvp: %w", err)
		}
		rsvps = append(rsvps, r)
	}
	return rsvps, rows.Err()
}
