package memory

import (
	"time"

	"github.com/Akshaj-M/KinnrenWebsite-2/internal/model"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/store"
)

func (s *Store) CreateChatMessage(familyID int64, senderID, content, messageType string) (*model.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := model.ChatMessage{
		ID:          s.id(),
		FamilyID:    familyID,
		SenderID:    senderID,
		Content:     content,
		MessageType: messageType,
		CreatedAt:   now(),
	}
	s.messages[m.ID] = m
	return &m, nil
}

func (s *Store) GetFamilyMessages(familyID int64) ([]model.MessageWithSender, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var messages []model.MessageWithSender
	for _, m := range s.messages {
		if m.FamilyID != familyID {
			continue
		}
		u, ok := s.users[m.SenderID]
		if !ok {
			continue
		}
		messages = append(messages, model.MessageWithSender{ChatMessage: m, Sender: u})
	}
	sortNewestFirst(messages,
		func(m model.MessageWithSender) time.Time { return m.CreatedAt },
		func(m model.MessageWithSender) int64 { return m.ID })
	if len(messages) > store.MessageLimit {
		messages = messages[:store.MessageLimit]
	}
	return messages, nil
}
