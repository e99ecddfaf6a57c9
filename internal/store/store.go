package store

import (
	"errors"
	"time"

	"github.com/Akshaj-M/KinnrenWebsite-2/internal/model"
)

// ErrDuplicateMembership is returned by AddFamilyMember when the
// (familyId, userId) pair already holds a membership.
var ErrDuplicateMembership = errors.New("user is already a member of this family")

// Caps applied by both storage implementations.
const (
	MessageLimit      = 50
	NotificationLimit = 20
)

// Storage is the repository contract shared by the in-memory and SQLite
// implementations. Lookups return (nil, nil) when the record does not
// exist; errors are reserved for storage failures.
//
// Uniqueness of (eventId, userId) RSVPs, (postId, userId) reactions, and
// (familyId, userId) memberships is enforced inside the implementation so
// that concurrent requests cannot produce duplicate rows.
type Storage interface {
	// Users. Ids are issued by the external identity provider.
	GetUser(id string) (*model.User, error)
	UpsertUser(id string, email, firstName, lastName, profileImageURL *string) (*model.User, error)

	// Families. CreateFamily also enrolls the creator as an admin
	// membership with relationshipType "creator"; the two writes are
	// atomic — on failure neither is visible.
	CreateFamily(name string, description *string, createdByID string) (*model.Family, error)
	GetFamily(id int64) (*model.Family, error)
	GetFamiliesByUserID(userID string) ([]model.Family, error)

	// Memberships.
	AddFamilyMember(familyID int64, userID, role string, relationshipType *string) (*model.FamilyMembership, error)
	GetFamilyMembers(familyID int64) ([]model.FamilyMemberDetail, error)
	GetUserFamilyMembership(userID string, familyID int64) (*model.FamilyMembership, error)

	// Photos, newest first.
	CreatePhoto(familyID int64, uploadedByID string, title, description *string, imageURL string, albumID *int64) (*model.Photo, error)
	GetFamilyPhotos(familyID int64) ([]model.PhotoWithUploader, error)
	GetPhoto(id int64) (*model.Photo, error)

	// Albums, newest first.
	CreateAlbum(familyID int64, createdByID, name string, description *string, coverPhotoID *int64) (*model.Album, error)
	GetFamilyAlbums(familyID int64) ([]model.Album, error)
	GetAlbum(id int64) (*model.Album, error)

	// Events are listed soonest first (ascending start date), unlike the
	// other collections.
	CreateEvent(familyID int64, createdByID, title string, description *string, startDate time.Time, endDate *time.Time, location *string) (*model.Event, error)
	GetFamilyEvents(familyID int64) ([]model.EventWithCreator, error)
	GetEvent(id int64) (*model.Event, error)

	// UpsertEventRsvp updates the existing (eventId, userId) row in place,
	// preserving id and createdAt, or inserts one if absent.
	UpsertEventRsvp(eventID int64, userID, status string) (*model.EventRsvp, error)
	GetEventRsvps(eventID int64) ([]model.RsvpWithUser, error)

	// Chat. GetFamilyMessages returns the most recent MessageLimit
	// messages, newest first; callers reverse for chronological display.
	CreateChatMessage(familyID int64, senderID, content, messageType string) (*model.ChatMessage, error)
	GetFamilyMessages(familyID int64) ([]model.MessageWithSender, error)

	// Feed.
	CreatePost(familyID int64, authorID, content string, photoIDs []string) (*model.Post, error)
	GetFamilyPosts(familyID int64) ([]model.PostDetail, error)
	GetPost(id int64) (*model.Post, error)

	// TogglePostReaction removes the existing (postId, userId) reaction
	// and returns nil, or creates one and returns it.
	TogglePostReaction(postID int64, userID, reactionType string) (*model.PostReaction, error)
	CreateComment(postID int64, authorID, content string) (*model.Comment, error)

	// Notifications. GetUserNotifications returns the most recent
	// NotificationLimit rows, newest first. MarkNotificationAsRead only
	// ever flips isRead false→true and is a no-op for unknown ids.
	CreateNotification(userID string, familyID int64, notifType, title string, content *string, relatedID *int64) (*model.Notification, error)
	GetUserNotifications(userID string) ([]model.Notification, error)
	MarkNotificationAsRead(id int64) error

	// Sessions for the request boundary.
	CreateSession(token, userID string, expiresAt time.Time) (*model.Session, error)
	GetSessionByToken(token string) (*model.Session, error)
	DeleteSession(token string) error
	DeleteExpiredSessions() (int64, error)
}
