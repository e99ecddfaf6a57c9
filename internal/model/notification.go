package model

import "time"

const (
	NotificationNewPhoto   = "new_photo"
	NotificationNewEvent   = "new_event"
	NotificationNewMessage = "new_message"
	NotificationNewPost    = "new_post"
)

type Notification struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	FamilyID  int64     `json:"familyId"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Content   *string   `json:"content"`
	IsRead    bool      `json:"isRead"`
	RelatedID *int64    `json:"relatedId"`
	CreatedAt time.Time `json:"createdAt"`
}
