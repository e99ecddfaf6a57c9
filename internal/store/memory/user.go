package memory

import "github.com/Akshaj-M/KinnrenWebsite-2/internal/model"

func (s *Store) GetUser(id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *Store) UpsertUser(id string, email, firstName, lastName, profileImageURL *string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := now()
	u := model.User{
		ID:              id,
		Email:           email,
		FirstName:       firstName,
		LastName:        lastName,
		ProfileImageURL: profileImageURL,
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}
	if existing, ok := s.users[id]; ok {
		u.CreatedAt = existing.CreatedAt
	}
	s.users[id] = u
	return &u, nil
}
