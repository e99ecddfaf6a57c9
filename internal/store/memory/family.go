package memory

import (
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/model"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/store"
)

func (s *Store) CreateFamily(name string, description *string, createdByID string) (*model.Family, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := now()
	f := model.Family{
		ID:          s.id(),
		Name:        name,
		Description: description,
		CreatedByID: createdByID,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	s.families[f.ID] = f

	// Creator is enrolled as admin in the same critical section, so the
	// pair of writes is atomic from the caller's perspective.
	rel := "creator"
	m := model.FamilyMembership{
		ID:               s.id(),
		FamilyID:         f.ID,
		UserID:           createdByID,
		Role:             model.RoleAdmin,
		RelationshipType: &rel,
		JoinedAt:         ts,
	}
	s.memberships[m.ID] = m

	return &f, nil
}

func (s *Store) GetFamily(id int64) (*model.Family, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.families[id]
	if !ok {
		return nil, nil
	}
	return &f, nil
}

func (s *Store) GetFamiliesByUserID(userID string) ([]model.Family, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var memberships []model.FamilyMembership
	for _, m := range s.memberships {
		if m.UserID == userID {
			memberships = append(memberships, m)
		}
	}
	sortByID(memberships, func(m model.FamilyMembership) int64 { return m.ID })

	var families []model.Family
	for _, m := range memberships {
		if f, ok := s.families[m.FamilyID]; ok {
			families = append(families, f)
		}
	}
	return families, nil
}

func (s *Store) AddFamilyMember(familyID int64, userID, role string, relationshipType *string) (*model.FamilyMembership, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.memberships {
		if m.FamilyID == familyID && m.UserID == userID {
			return nil, store.ErrDuplicateMembership
		}
	}

	m := model.FamilyMembership{
		ID:               s.id(),
		FamilyID:         familyID,
		UserID:           userID,
		Role:             role,
		RelationshipType: relationshipType,
		JoinedAt:         now(),
	}
	s.memberships[m.ID] = m
	return &m, nil
}

func (s *Store) GetFamilyMembers(familyID int64) ([]model.FamilyMemberDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var members []model.FamilyMemberDetail
	for _, m := range s.memberships {
		if m.FamilyID != familyID {
			continue
		}
		u, ok := s.users[m.UserID]
		if !ok {
			continue
		}
		members = append(members, model.FamilyMemberDetail{FamilyMembership: m, User: u})
	}
	sortByID(members, func(d model.FamilyMemberDetail) int64 { return d.ID })
	return members, nil
}

func (s *Store) GetUserFamilyMembership(userID string, familyID int64) (*model.FamilyMembership, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.memberships {
		if m.UserID == userID && m.FamilyID == familyID {
			return &m, nil
		}
	}
	return nil, nil
}
