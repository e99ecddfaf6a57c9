// Package sqlite implements store.Storage on database/sql over SQLite.
// Uniqueness of RSVP, reaction, and membership pairs is enforced by unique
// indexes, so the read-modify-write operations stay correct under
// concurrent requests.
package sqlite

import (
	"database/sql"
	"time"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface{ Scan(...any) error }

// Timestamps are assigned in Go rather than by SQL defaults so that the
// ordering guarantees hold at full precision.
func now() time.Time {
	return time.Now().UTC()
}
