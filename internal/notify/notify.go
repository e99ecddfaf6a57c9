package notify

import (
	"log/slog"

	"github.com/Akshaj-M/KinnrenWebsite-2/internal/store"
)

// Notifier fans out in-app notifications to family members when activity
// happens. Failures are logged, never surfaced to the caller; a dropped
// notification must not fail the write that triggered it.
type Notifier struct {
	store  store.Storage
	logger *slog.Logger
}

func New(st store.Storage, logger *slog.Logger) *Notifier {
	return &Notifier{
		store:  st,
		logger: logger.With("component", "notify"),
	}
}

// NotifyFamily creates a notification of the given type for every member of
// the family except the actor. relatedID points at the entity that caused
// the notification.
func (n *Notifier) NotifyFamily(familyID int64, actorID, notifType, title string, content *string, relatedID int64) {
	members, err := n.store.GetFamilyMembers(familyID)
	if err != nil {
		n.logger.Error("list members for fan-out", "family_id", familyID, "error", err)
		return
	}

	for _, m := range members {
		if m.UserID == actorID {
			continue
		}
		if _, err := n.store.CreateNotification(m.UserID, familyID, notifType, title, content, &relatedID); err != nil {
			n.logger.Error("create notification",
				"user_id", m.UserID,
				"type", notifType,
				"error", err)
		}
	}
}
