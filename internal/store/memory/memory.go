// Package memory implements store.Storage with plain maps. Everything runs
// under a single mutex, which is what makes the check-then-write upsert and
// toggle operations safe under concurrent requests.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/Akshaj-M/KinnrenWebsite-2/internal/model"
)

type Store struct {
	mu sync.Mutex

	users         map[string]model.User
	families      map[int64]model.Family
	memberships   map[int64]model.FamilyMembership
	photos        map[int64]model.Photo
	albums        map[int64]model.Album
	events        map[int64]model.Event
	rsvps         map[int64]model.EventRsvp
	messages      map[int64]model.ChatMessage
	posts         map[int64]model.Post
	reactions     map[int64]model.PostReaction
	comments      map[int64]model.Comment
	notifications map[int64]model.Notification
	sessions      map[string]model.Session

	nextID    int64
	sessionID int64
}

func New() *Store {
	return &Store{
		users:         make(map[string]model.User),
		families:      make(map[int64]model.Family),
		memberships:   make(map[int64]model.FamilyMembership),
		photos:        make(map[int64]model.Photo),
		albums:        make(map[int64]model.Album),
		events:        make(map[int64]model.Event),
		rsvps:         make(map[int64]model.EventRsvp),
		messages:      make(map[int64]model.ChatMessage),
		posts:         make(map[int64]model.Post),
		reactions:     make(map[int64]model.PostReaction),
		comments:      make(map[int64]model.Comment),
		notifications: make(map[int64]model.Notification),
		sessions:      make(map[string]model.Session),
		nextID:        1,
	}
}

// id hands out process-unique ids across all entity types. Callers must
// hold s.mu.
func (s *Store) id() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func now() time.Time {
	return time.Now().UTC()
}

// sortByID yields insertion order, since ids are assigned monotonically.
func sortByID[T any](items []T, id func(T) int64) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}

// sortNewestFirst orders by createdAt descending with id as tiebreaker.
func sortNewestFirst[T any](items []T, createdAt func(T) time.Time, id func(T) int64) {
	sort.Slice(items, func(i, j int) bool {
		ti, tj := createdAt(items[i]), createdAt(items[j])
		if ti.Equal(tj) {
			return id(items[i]) > id(items[j])
		}
		return ti.After(tj)
	})
}
