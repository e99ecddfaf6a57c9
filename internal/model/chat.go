package model

import "time"

const (
	MessageTypeText  = "text"
	MessageTypePhoto = "photo"
)

type ChatMessage struct {
	ID          int64     `json:"id"`
	FamilyID    int64     `json:"familyId"`
	SenderID    string    `json:"senderId"`
	Content     string    `json:"content"`
	MessageType string    `json:"messageType"`
	CreatedAt   time.Time `json:"createdAt"`
}

type MessageWithSender struct {
	ChatMessage
	Sender User `json:"sender"`
}
