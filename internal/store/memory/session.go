package memory

import (
	"time"

	"github.com/Akshaj-M/KinnrenWebsite-2/internal/model"
)

func (s *Store) CreateSession(token, userID string, expiresAt time.Time) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessionID++
	sess := model.Session{
		ID:        s.sessionID,
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: now(),
	}
	s.sessions[token] = sess
	return &sess, nil
}

func (s *Store) GetSessionByToken(token string) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, nil
	}
	return &sess, nil
}

func (s *Store) DeleteSession(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

func (s *Store) DeleteExpiredSessions() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := now()
	var removed int64
	for token, sess := range s.sessions {
		if sess.ExpiresAt.Before(cutoff) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed, nil
}
