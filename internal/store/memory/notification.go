package memory

import (
	"time"

	"github.com/Akshaj-M/KinnrenWebsite-2/internal/model"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/store"
)

func (s *Store) CreateNotification(userID string, familyID int64, notifType, title string, content *string, relatedID *int64) (*model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := model.Notification{
		ID:        s.id(),
		UserID:    userID,
		FamilyID:  familyID,
		Type:      notifType,
		Title:     title,
		Content:   content,
		IsRead:    false,
		RelatedID: relatedID,
		CreatedAt: now(),
	}
	s.notifications[n.ID] = n
	return &n, nil
}

func (s *Store) GetUserNotifications(userID string) ([]model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var notifications []model.Notification
	for _, n := range s.notifications {
		if n.UserID == userID {
			notifications = append(notifications, n)
		}
	}
	sortNewestFirst(notifications,
		func(n model.Notification) time.Time { return n.CreatedAt },
		func(n model.Notification) int64 { return n.ID })
	if len(notifications) > store.NotificationLimit {
		notifications = notifications[:store.NotificationLimit]
	}
	return notifications, nil
}

func (s *Store) MarkNotificationAsRead(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[id]
	if !ok {
		return nil
	}
	n.IsRead = true
	s.notifications[id] = n
	return nil
}
