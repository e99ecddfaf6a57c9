package sqlite

import (
	"fmt"

	"github.com/Akshaj-M/KinnrenWebsite-2/internal/model"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/store"
)

const messageCols = `id, family_id, sender_id, content, message_type, created_at`

func (s *Store) CreateChatMessage(familyID int64, senderID, content, messageType string) (*model.ChatMessage, error) {
	result, err := s.db.Exec(
		`INSERT INTO chat_messages (family_id, sender_id, content, message_type, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		familyID, senderID, content, messageType, now(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	var m model.ChatMessage
	row := s.db.QueryRow(`SELECT `+messageCols+` FROM chat_messages WHERE id = ?`, id)
	if err := row.Scan(&m.ID, &m.FamilyID, &m.SenderID, &m.Content, &m.MessageType, &m.CreatedAt); err != nil {
		return nil, fmt.Errorf("get message: %w", err)
	}
	return &m, nil
}

// GetFamilyMessages returns the newest messages first, capped; chat clients
// reverse the slice for chronological display.
func (s *Store) GetFamilyMessages(familyID int64) ([]model.MessageWithSender, error) {
	rows, err := s.db.Query(
		`SELECT m.id, m.family_id, m.sender_id, m.content, m.message_type, m.created_at,
		        u.id, u.email, u.first_name, u.last_name, u.profile_image_url, u.created_at, u.updated_at
		 FROM chat_messages m
		 JOIN users u ON u.id = m.sender_id
		 WHERE m.family_id = ?
		 ORDER BY m.created_at DESC, m.id DESC
		 LIMIT ?`,
		familyID, store.MessageLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("list family messages: %w", err)
	}
	defer rows.Close()

	var messages []model.MessageWithSender
	for rows.Next() {
		var m model.MessageWithSender
		if err := rows.Scan(
			&m.ID, &m.FamilyID, &m.SenderID, &m.Content, &m.MessageType, &m.CreatedAt,
			&m.Sender.ID, &m.Sender.Email, &m.Sender.FirstName, &m.Sender.LastName, &m.Sender.ProfileImageURL, &m.Sender.CreatedAt, &m.Sender.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
