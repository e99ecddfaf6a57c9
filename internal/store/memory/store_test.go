package memory

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Akshaj-M/KinnrenWebsite-2/internal/model"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/store"
)

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

func TestUpsertUserPreservesCreatedAt(t *testing.T) {
	s := New()

	u1, err := s.UpsertUser("u1", strPtr("old@example.com"), nil, nil, nil)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	u2, err := s.UpsertUser("u1", strPtr("new@example.com"), strPtr("Ada"), nil, nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if !u2.CreatedAt.Equal(u1.CreatedAt) {
		t.Errorf("createdAt changed on upsert: %v -> %v", u1.CreatedAt, u2.CreatedAt)
	}
	if u2.Email == nil || *u2.Email != "new@example.com" {
		t.Errorf("email not updated: %v", u2.Email)
	}
	if u2.FirstName == nil || *u2.FirstName != "Ada" {
		t.Errorf("firstName not updated: %v", u2.FirstName)
	}
}

func TestCreateFamilyEnrollsCreatorAsAdmin(t *testing.T) {
	s := New()
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
		t.Errorf("relationshipType = %v, want creator", m.RelationshipType)
	}
}

func TestAddFamilyMemberRejectsDuplicates(t *testing.T) {
	s := New()
	f := seedFamily(t, s, "creator")
	seedUser(t, s, "u2")

	if _, err := s.AddFamilyMember(f.ID, "u2", model.RoleMember, nil); err != nil {
		t.Fatalf("first add: %v", err)
	}
	_, err := s.AddFamilyMember(f.ID, "u2", model.RoleMember, nil)
	if !errors.Is(err, store.ErrDuplicateMembership) {
		t.Errorf("second add err = %v, want ErrDuplicateMembership", err)
	}

	// The creator's auto-enrollment counts too
	_, err = s.AddFamilyMember(f.ID, "creator", model.RoleMember, nil)
	if !errors.Is(err, store.ErrDuplicateMembership) {
		t.Errorf("re-adding creator err = %v, want ErrDuplicateMembership", err)
	}
}

func TestGetFamiliesByUserID(t *testing.T) {
	s := New()
	f1 := seedFamily(t, s, "u1")
	seedUser(t, s, "u2")
	f2, _ := s.CreateFamily("Second", nil, "u2")
	if _, err := s.AddFamilyMember(f2.ID, "u1", model.RoleMember, nil); err != nil {
		t.Fatalf("add member: %v", err)
	}

	families, err := s.GetFamiliesByUserID("u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(families) != 2 {
		t.Fatalf("got %d families, want 2", len(families))
	}

	outsider, err := s.GetUserFamilyMembership("u2", f1.ID)
	if err != nil {
		t.Fatalf("membership: %v", err)
	}
	if outsider != nil {
		t.Error("u2 should not be a member of f1")
	}
}

func TestUpsertEventRsvpUpdatesInPlace(t *testing.T) {
	s := New()
	f := seedFamily(t, s, "u1")
	event, err := s.CreateEvent(f.ID, "u1", "Picnic", nil, time.Now().Add(24*time.Hour), nil, nil)
	if err != nil {
		t.Fatalf("create event: %v", err)
	}

	first, err := s.UpsertEventRsvp(event.ID, "u1", model.RsvpPending)
	if err != nil {
		t.Fatalf("first rsvp: %v", err)
	}

	second, err := s.UpsertEventRsvp(event.ID, "u1", model.RsvpAttending)
	if err != nil {
		t.Fatalf("second rsvp: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("id changed: %d -> %d", first.ID, second.ID)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("createdAt changed: %v -> %v", first.CreatedAt, second.CreatedAt)
	}
	if second.Status != model.RsvpAttending {
		t.Errorf("status = %q, want %q", second.Status, model.RsvpAttending)
	}
	if second.UpdatedAt.Before(first.UpdatedAt) {
		t.Error("updatedAt went backwards")
	}

	rsvps, err := s.GetEventRsvps(event.ID)
	if err != nil {
		t.Fatalf("list rsvps: %v", err)
	}
	if len(rsvps) != 1 {
		t.Fatalf("got %d rsvps, want 1", len(rsvps))
	}
}

func TestTogglePostReaction(t *testing.T) {
	s := New()
	f := seedFamily(t, s, "u1")
	post, err := s.CreatePost(f.ID, "u1", "hello", nil)
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

	again, err := s.TogglePostReaction(post.ID, "u1", model.ReactionLike)
	if err != nil {
		t.Fatalf("toggle again: %v", err)
	}
	if again == nil {
		t.Fatal("expected reaction on third toggle")
	}
	if again.ID == on.ID {
		t.Error("re-created reaction should get a fresh id")
	}
}

func TestPhotoOrderingNewestFirst(t *testing.T) {
	s := New()
	f := seedFamily(t, s, "u1")

	for i := 0; i < 3; i++ {
		if _, err := s.CreatePhoto(f.ID, "u1", strPtr(fmt.Sprintf("p%d", i)), nil, "https://example.com/p.jpg", nil); err != nil {
			t.Fatalf("create photo: %v", err)
		}
	}

	photos, err := s.GetFamilyPhotos(f.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(photos) != 3 {
		t.Fatalf("got %d photos, want 3", len(photos))
	}
	for i := 1; i < len(photos); i++ {
		if photos[i].ID > photos[i-1].ID {
			t.Errorf("photos not newest first at %d: %d before %d", i, photos[i-1].ID, photos[i].ID)
		}
	}
	if photos[0].UploadedBy.ID != "u1" {
		t.Errorf("uploader not joined: %q", photos[0].UploadedBy.ID)
	}
}

func TestEventOrderingSoonestFirst(t *testing.T) {
	s := New()
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
}

func TestMessageCapNewestFifty(t *testing.T) {
	s := New()
	f := seedFamily(t, s, "u1")

	for i := 0; i < store.MessageLimit+10; i++ {
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
	// Newest first: the last message sent comes back first
	if messages[0].Content != fmt.Sprintf("msg %d", store.MessageLimit+9) {
		t.Errorf("first message = %q", messages[0].Content)
	}
}

func TestNotificationCapNewestTwenty(t *testing.T) {
	s := New()
	f := seedFamily(t, s, "u1")

	for i := 0; i < store.NotificationLimit+5; i++ {
		if _, err := s.CreateNotification("u1", f.ID, model.NotificationNewPost, fmt.Sprintf("n%d", i), nil, nil); err != nil {
			t.Fatalf("create notification: %v", err)
		}
	}

	notifications, err := s.GetUserNotifications("u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(notifications) != store.NotificationLimit {
		t.Fatalf("got %d notifications, want %d", len(notifications), store.NotificationLimit)
	}
	if notifications[0].Title != fmt.Sprintf("n%d", store.NotificationLimit+4) {
		t.Errorf("first notification = %q", notifications[0].Title)
	}
}

func TestMarkNotificationAsRead(t *testing.T) {
	s := New()
	f := seedFamily(t, s, "u1")

	n, err := s.CreateNotification("u1", f.ID, model.NotificationNewPhoto, "hi", nil, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if n.IsRead {
		t.Error("new notification should be unread")
	}

	if err := s.MarkNotificationAsRead(n.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	// Marking again stays read
	if err := s.MarkNotificationAsRead(n.ID); err != nil {
		t.Fatalf("mark read twice: %v", err)
	}

	got, err := s.GetUserNotifications("u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !got[0].IsRead {
		t.Error("notification still unread")
	}

	// Unknown id is a no-op
	if err := s.MarkNotificationAsRead(99999); err != nil {
		t.Errorf("unknown id: %v", err)
	}
}

func TestPostDetailAggregation(t *testing.T) {
	s := New()
	f := seedFamily(t, s, "u1")
	seedUser(t, s, "u2")
	if _, err := s.AddFamilyMember(f.ID, "u2", model.RoleMember, nil); err != nil {
		t.Fatalf("add member: %v", err)
	}

	post, err := s.CreatePost(f.ID, "u1", "family news", []string{"3", "7"})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if _, err := s.TogglePostReaction(post.ID, "u2", model.ReactionLike); err != nil {
		t.Fatalf("react: %v", err)
	}
	if _, err := s.CreateComment(post.ID, "u2", "first"); err != nil {
		t.Fatalf("comment: %v", err)
	}
	if _, err := s.CreateComment(post.ID, "u1", "second"); err != nil {
		t.Fatalf("comment: %v", err)
	}

	posts, err := s.GetFamilyPosts(f.ID)
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("got %d posts, want 1", len(posts))
	}

	detail := posts[0]
	if detail.Author.ID != "u1" {
		t.Errorf("author = %q, want u1", detail.Author.ID)
	}
	if len(detail.Reactions) != 1 {
		t.Errorf("got %d reactions, want 1", len(detail.Reactions))
	}
	if len(detail.Comments) != 2 {
		t.Fatalf("got %d comments, want 2", len(detail.Comments))
	}
	// Comments oldest first
	if detail.Comments[0].Content != "first" || detail.Comments[1].Content != "second" {
		t.Errorf("comments out of order: %q, %q", detail.Comments[0].Content, detail.Comments[1].Content)
	}
	if detail.Comments[0].Author.ID != "u2" {
		t.Errorf("comment author = %q, want u2", detail.Comments[0].Author.ID)
	}
	if len(detail.PhotoIDs) != 2 {
		t.Errorf("photoIds = %v", detail.PhotoIDs)
	}
}

func TestQueriesAgainstMissingFamilyReturnEmpty(t *testing.T) {
	s := New()

	photos, err := s.GetFamilyPhotos(42)
	if err != nil {
		t.Fatalf("photos: %v", err)
	}
	if len(photos) != 0 {
		t.Errorf("got %d photos, want 0", len(photos))
	}

	posts, err := s.GetFamilyPosts(42)
	if err != nil {
		t.Fatalf("posts: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("got %d posts, want 0", len(posts))
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := New()
	seedUser(t, s, "u1")

	expired, err := s.CreateSession("tok-expired", "u1", time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("create expired: %v", err)
	}
	if _, err := s.CreateSession("tok-live", "u1", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("create live: %v", err)
	}

	got, err := s.GetSessionByToken(expired.Token)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expired session should still be readable until swept")
	}

	n, err := s.DeleteExpiredSessions()
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if n != 1 {
		t.Errorf("swept %d sessions, want 1", n)
	}

	gone, err := s.GetSessionByToken("tok-expired")
	if err != nil {
		t.Fatalf("get after sweep: %v", err)
	}
	if gone != nil {
		t.Error("expired session survived the sweep")
	}

	live, err := s.GetSessionByToken("tok-live")
	if err != nil {
		t.Fatalf("get live: %v", err)
	}
	if live == nil {
		t.Error("live session was swept")
	}

	if err := s.DeleteSession("tok-live"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	deleted, err := s.GetSessionByToken("tok-live")
	if err != nil {
		t.Fatalf("get deleted: %v", err)
	}
	if deleted != nil {
		t.Error("deleted session still readable")
	}
}
