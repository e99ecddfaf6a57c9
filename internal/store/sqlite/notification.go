package sqlite

import (
	"fmt"

	"github.com/Akshaj-M/KinnrenWebsite-2/internal/model"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/store"
)

const notificationCols = `id, user_id, family_id, type, title, content, is_read, related_id, created_at`

func scanNotification(sc scanner) (*model.Notification, error) {
	var n model.Notification
	err := sc.Scan(&n.ID, &n.UserID, &n.FamilyID, &n.Type, &n.Title, &n.Content, &n.IsRead, &n.RelatedID, &n.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *Store) CreateNotification(userID string, familyID int64, notifType, title string, content *string, relatedID *int64) (*model.Notification, error) {
	result, err := s.db.Exec(
		`INSERT INTO notifications (user_id, family_id, type, title, content, is_read, related_id, created_at)
		 VALUES (?, ?, ?, ?, ?, 0, ?, ?)`,
		userID, familyID, notifType, title, content, relatedID, now(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert notification: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	row := s.db.QueryRow(`SELECT `+notificationCols+` FROM notifications WHERE id = ?`, id)
	n, err := scanNotification(row)
	if err != nil {
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return n, nil
}

func (s *Store) GetUserNotifications(userID string) ([]model.Notification, error) {
	rows, err := s.db.Query(
		`SELECT `+notificationCols+` FROM notifications WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		userID, store.NotificationLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		notifications = append(notifications, *n)
	}
	return notifications, rows.Err()
}

// MarkNotificationAsRead only ever sets is_read; unknown ids are a no-op.
func (s *Store) MarkNotificationAsRead(id int64) error {
	if _, err := s.db.Exec(`UPDATE notifications SET is_read = 1 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}
