package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/Akshaj-M/KinnrenWebsite-2/internal/model"
)

const userCols = `id, email, first_name, last_name, profile_image_url, created_at, updated_at`

func scanUser(sc scanner) (*model.User, error) {
	var u model.User
	err := sc.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.ProfileImageURL, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) GetUser(id string) (*model.User, error) {
	row := s.db.QueryRow(`SELECT `+userCols+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *Store) UpsertUser(id string, email, firstName, lastName, profileImageURL *string) (*model.User, error) {
	ts := now()
	_, err := s.db.Exec(
		`INSERT INTO users (id, email, first_name, last_name, profile_image_url, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   email = excluded.email,
		   first_name = excluded.first_name,
		   last_name = excluded.last_name,
		   profile_image_url = excluded.profile_image_url,
		   updated_at = excluded.updated_at`,
		id, email, firstName, lastName, profileImageURL, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return s.GetUser(id)
}
