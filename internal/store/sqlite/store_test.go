package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Akshaj-M/KinnrenWebsite-2/internal/database"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/model"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/store"
)

func setupTestDB(t *testing.T) (*Store, *sql.DB) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db), db
}

func strPtr(s string) *string { return &s }

func seedUser(t *testing.T, s *Store, id string) *model.User {
	t.Helper()
	u, err := s.UpsertUser(id, strPtr(id+"@example.com"), strPtr("Test"), strPtr("User"), nil)
	if err != nil {
		t.Fatalf("upsert user %s: %v", id, err)
	}
	return u
}

func seedFamily(t *testing.T, s *Store, creatorID string) *model.Family {
	t.Helper()
	seedUser(t, s, creatorID)
	f, err := s.CreateFamily("The Tests", nil, creatorID)
	if err != nil {
		t.Fatalf("create family: %v", err)
	}
	return f
}

func TestUpsertUserUpdatesInPlace(t *testing.T) {
	s, _ := setupTestDB(t)

	u1, err := s.UpsertUser("u1", strPtr("old@example.com"), nil, nil, nil)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	u2, err := s.UpsertUser("u1", strPtr("new@example.com"), strPtr("Ada"), nil, nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if !u2.CreatedAt.Equal(u1.CreatedAt) {
		t.Errorf("createdAt changed: %v -> %v", u1.CreatedAt, u2.CreatedAt)
	}
	if u2.Email == nil || *u2.Email != "new@example.com" {
		t.Errorf("email not updated: %v", u2.Email)
	}
}

func TestCreateFamilyIsAtomic(t *testing.T) {
	s, db := setupTestDB(t)
	f := seedFamily(t, s, "creator")

	m, err := s.GetUserFamilyMembership("creator", f.ID)
	if err != nil {
		t.Fatalf("get membership: %v", err)
	}
	if m == nil {
		t.Fatal("creator has no membership")
	}
	if m.Role != model.RoleAdmin {
		t.Errorf("role = %q, want %q", m.Role, model.RoleAdmin)
	}
	if m.RelationshipType == nil || *m.RelationshipType != "creator" {
		t.Errorf("relationshipType = %v", m.RelationshipType)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM family_memberships WHERE family_id = ?", f.ID).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("got %d memberships, want 1", count)
	}
}

func TestAddFamilyMemberUniqueIndex(t *testing.T) {
	s, _ := setupTestDB(t)
	f := seedFamily(t, s, "creator")
	seedUser(t, s, "u2")

	if _, err := s.AddFamilyMember(f.ID, "u2", model.RoleMember, strPtr("cousin")); err != nil {
		t.Fatalf("first add: %v", err)
	}
	_, err := s.AddFamilyMember(f.ID, "u2", model.RoleMember, nil)
	if !errors.Is(err, store.ErrDuplicateMembership) {
		t.Errorf("second add err = %v, want ErrDuplicateMembership", err)
	}
}

func TestUpsertEventRsvpConflictClause(t *testing.T) {
	s, db := setupTestDB(t)
	f := seedFamily(t, s, "u1")
	event, err := s.CreateEvent(f.ID, "u1", "Picnic", nil, time.Now().Add(24*time.Hour), nil, nil)
	if err != nil {
		t.Fatalf("create event: %v", err)
	}

	first, err := s.UpsertEventRsvp(event.ID, "u1", model.RsvpPending)
	if err != nil {
		t.Fatalf("first rsvp: %v", err)
	}
	second, err := s.UpsertEventRsvp(event.ID, "u1", model.RsvpNotAttending)
	if err != nil {
		t.Fatalf("second rsvp: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("id changed: %d -> %d", first.ID, second.ID)
	}
	if second.Status != model.RsvpNotAttending {
		t.Errorf("status = %q", second.Status)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM event_rsvps WHERE event_id = ?", event.ID).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("got %d rsvp rows, want 1", count)
	}
}

func TestTogglePostReaction(t *testing.T) {
	s, _ := setupTestDB(t)
	f := seedFamily(t, s, "u1")
	post, err := s.CreatePost(f.ID, "u1", "hello", []string{"1", "2"})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	on, err := s.TogglePostReaction(post.ID, "u1", model.ReactionLike)
	if err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if on == nil {
		t.Fatal("expected reaction on first toggle")
	}

	off, err := s.TogglePostReaction(post.ID, "u1", model.ReactionLike)
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if off != nil {
		t.Errorf("expected nil on second toggle, got %+v", off)
	}
}

func TestPhotoIDsRoundTrip(t *testing.T) {
	s, _ := setupTestDB(t)
	f := seedFamily(t, s, "u1")

	withPhotos, err := s.CreatePost(f.ID, "u1", "with photos", []string{"3", "7"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(withPhotos.PhotoIDs) != 2 {
		t.Errorf("photoIds = %v", withPhotos.PhotoIDs)
	}

	if _, err := s.CreatePost(f.ID, "u1", "no photos", nil); err != nil {
		t.Fatalf("create: %v", err)
	}

	posts, err := s.GetFamilyPosts(f.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2", len(posts))
	}
	// Newest first: "no photos" comes back before "with photos"
	if posts[0].Content != "no photos" {
		t.Errorf("first post = %q", posts[0].Content)
	}
	if len(posts[1].PhotoIDs) != 2 {
		t.Errorf("photoIds did not round-trip: %v", posts[1].PhotoIDs)
	}
}

func TestOrphanedRowsAreDropped(t *testing.T) {
	s, db := setupTestDB(t)
	f := seedFamily(t, s, "u1")
	seedUser(t, s, "ghost")
	if _, err := s.AddFamilyMember(f.ID, "ghost", model.RoleMember, nil); err != nil {
		t.Fatalf("add member: %v", err)
	}
	if _, err := s.CreatePhoto(f.ID, "ghost", nil, nil, "https://example.com/g.jpg", nil); err != nil {
		t.Fatalf("create photo: %v", err)
	}
	if _, err := s.CreatePhoto(f.ID, "u1", nil, nil, "https://example.com/u.jpg", nil); err != nil {
		t.Fatalf("create photo: %v", err)
	}

	// Delete the uploader out from under its rows to simulate a stale
	// reference; foreign keys are off for the surgery.
	if _, err := db.Exec("PRAGMA foreign_keys = OFF"); err != nil {
		t.Fatalf("pragma: %v", err)
	}
	if _, err := db.Exec("DELETE FROM users WHERE id = 'ghost'"); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	photos, err := s.GetFamilyPhotos(f.ID)
	if err != nil {
		t.Fatalf("list photos: %v", err)
	}
	if len(photos) != 1 {
		t.Fatalf("got %d photos, want 1 (orphan dropped)", len(photos))
	}
	if photos[0].UploadedBy.ID != "u1" {
		t.Errorf("surviving photo uploader = %q", photos[0].UploadedBy.ID)
	}
}

func TestMessageCap(t *testing.T) {
	s, _ := setupTestDB(t)
	f := seedFamily(t, s, "u1")

	for i := 0; i < store.MessageLimit+5; i++ {
		if _, err := s.CreateChatMessage(f.ID, "u1", fmt.Sprintf("msg %d", i), model.MessageTypeText); err != nil {
			t.Fatalf("create message: %v", err)
		}
	}

	messages, err := s.GetFamilyMessages(f.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(messages) != store.MessageLimit {
		t.Fatalf("got %d messages, want %d", len(messages), store.MessageLimit)
	}
	if messages[0].Content != fmt.Sprintf("msg %d", store.MessageLimit+4) {
		t.Errorf("first message = %q", messages[0].Content)
	}
}

func TestEventOrderingSoonestFirst(t *testing.T) {
	s, _ := setupTestDB(t)
	f := seedFamily(t, s, "u1")

	base := time.Now().UTC()
	for _, offset := range []time.Duration{72 * time.Hour, 24 * time.Hour, 48 * time.Hour} {
		if _, err := s.CreateEvent(f.ID, "u1", "e", nil, base.Add(offset), nil, nil); err != nil {
			t.Fatalf("create event: %v", err)
		}
	}

	events, err := s.GetFamilyEvents(f.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].StartDate.Before(events[i-1].StartDate) {
			t.Errorf("events not soonest first at %d", i)
		}
	}
	if events[0].CreatedBy.ID != "u1" {
		t.Errorf("creator not joined: %q", events[0].CreatedBy.ID)
	}
}

func TestNotificationCapAndMarkRead(t *testing.T) {
	s, _ := setupTestDB(t)
	f := seedFamily(t, s, "u1")

	var lastID int64
	for i := 0; i < store.NotificationLimit+3; i++ {
		n, err := s.CreateNotification("u1", f.ID, model.NotificationNewPost, fmt.Sprintf("n%d", i), nil, nil)
		if err != nil {
			t.Fatalf("create notification: %v", err)
		}
		lastID = n.ID
	}

	notifications, err := s.GetUserNotifications("u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(notifications) != store.NotificationLimit {
		t.Fatalf("got %d notifications, want %d", len(notifications), store.NotificationLimit)
	}
	if notifications[0].ID != lastID {
		t.Errorf("first notification id = %d, want %d", notifications[0].ID, lastID)
	}

	if err := s.MarkNotificationAsRead(lastID); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	got, _ := s.GetUserNotifications("u1")
	if !got[0].IsRead {
		t.Error("notification still unread")
	}

	if err := s.MarkNotificationAsRead(99999); err != nil {
		t.Errorf("unknown id should be a no-op: %v", err)
	}
}

func TestGetMissingRecordsReturnNil(t *testing.T) {
	s, _ := setupTestDB(t)

	user, err := s.GetUser("nobody")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if user != nil {
		t.Error("expected nil user")
	}

	family, err := s.GetFamily(42)
	if err != nil {
		t.Fatalf("get family: %v", err)
	}
	if family != nil {
		t.Error("expected nil family")
	}

	event, err := s.GetEvent(42)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if event != nil {
		t.Error("expected nil event")
	}
}

func TestSessionSweep(t *testing.T) {
	s, _ := setupTestDB(t)
	seedUser(t, s, "u1")

	if _, err := s.CreateSession("tok-old", "u1", time.Now().UTC().Add(-time.Hour)); err != nil {
		t.Fatalf("create expired: %v", err)
	}
	if _, err := s.CreateSession("tok-new", "u1", time.Now().UTC().Add(time.Hour)); err != nil {
		t.Fatalf("create live: %v", err)
	}

	n, err := s.DeleteExpiredSessions()
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if n != 1 {
		t.Errorf("swept %d, want 1", n)
	}

	live, err := s.GetSessionByToken("tok-new")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if live == nil {
		t.Error("live session was swept")
	}
}
