package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/Akshaj-M/KinnrenWebsite-2/internal/model"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/store"
)

const familyCols = `id, name, description, created_by_id, created_at, updated_at`
const membershipCols = `id, family_id, user_id, role, relationship_type, joined_at`

func scanFamily(sc scanner) (*model.Family, error) {
	var f model.Family
	err := sc.Scan(&f.ID, &f.Name, &f.Description, &f.CreatedByID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func scanMembership(sc scanner) (*model.FamilyMembership, error) {
	var m model.FamilyMembership
	err := sc.Scan(&m.ID, &m.FamilyID, &m.UserID, &m.Role, &m.RelationshipType, &m.JoinedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateFamily inserts the family and the creator's admin membership in one
// transaction; a failure leaves neither row behind.
func (s *Store) CreateFamily(name string, description *string, createdByID string) (*model.Family, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	ts := now()
	result, err := tx.Exec(
		`INSERT INTO families (name, description, created_by_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		name, description, createdByID, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("insert family: %w", err)
	}
	familyID, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	if _, err := tx.Exec(
		`INSERT INTO family_memberships (family_id, user_id, role, relationship_type, joined_at) VALUES (?, ?, ?, ?, ?)`,
		familyID, createdByID, model.RoleAdmin, "creator", ts,
	); err != nil {
		return nil, fmt.Errorf("insert creator membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return s.GetFamily(familyID)
}

func (s *Store) GetFamily(id int64) (*model.Family, error) {
	row := s.db.QueryRow(`SELECT `+familyCols+` FROM families WHERE id = ?`, id)
	f, err := scanFamily(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get family: %w", err)
	}
	return f, nil
}

func (s *Store) GetFamiliesByUserID(userID string) ([]model.Family, error) {
	rows, err := s.db.Query(
		`SELECT f.id, f.name, f.description, f.created_by_id, f.created_at, f.updated_at
		 FROM families f
		 JOIN family_memberships fm ON fm.family_id = f.id
		 WHERE fm.user_id = ?
		 ORDER BY fm.id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list families for user: %w", err)
	}
	defer rows.Close()

	var families []model.Family
	for rows.Next() {
		f, err := scanFamily(rows)
		if err != nil {
			return nil, fmt.Errorf("scan family: %w", err)
		}
		families = append(families, *f)
	}
	return families, rows.Err()
}

func (s *Store) AddFamilyMember(familyID int64, userID, role string, relationshipType *string) (*model.FamilyMembership, error) {
	// ON CONFLICT DO NOTHING plus the unique index makes duplicate
	// detection race-safe without driver-specific error inspection.
	result, err := s.db.Exec(
		`INSERT INTO family_memberships (family_id, user_id, role, relationship_type, joined_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(family_id, user_id) DO NOTHING`,
		familyID, userID, role, relationshipType, now(),
	)
	if err != nil {
		return nil, fmt.Errorf("add family member: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return nil, store.ErrDuplicateMembership
	}
	return s.GetUserFamilyMembership(userID, familyID)
}

func (s *Store) GetFamilyMembers(familyID int64) ([]model.FamilyMemberDetail, error) {
	rows, err := s.db.Query(
		`SELECT fm.id, fm.family_id, fm.user_id, fm.role, fm.relationship_type, fm.joined_at,
		        u.id, u.email, u.first_name, u.last_name, u.profile_image_url, u.created_at, u.updated_at
		 FROM family_memberships fm
		 JOIN users u ON u.id = fm.user_id
		 WHERE fm.family_id = ?
		 ORDER BY fm.id ASC`,
		familyID,
	)
	if err != nil {
		return nil, fmt.Errorf("list family members: %w", err)
	}
	defer rows.Close()

	var members []model.FamilyMemberDetail
	for rows.Next() {
		var d model.FamilyMemberDetail
		if err := rows.Scan(
			&d.ID, &d.FamilyID, &d.UserID, &d.Role, &d.RelationshipType, &d.JoinedAt,
			&d.User.ID, &d.User.Email, &d.User.FirstName, &d.User.LastName, &d.User.ProfileImageURL, &d.User.CreatedAt, &d.User.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan family member: %w", err)
		}
		members = append(members, d)
	}
	return members, rows.Err()
}

func (s *Store) GetUserFamilyMembership(userID string, familyID int64) (*model.FamilyMembership, error) {
	row := s.db.QueryRow(
		`SELECT `+membershipCols+` FROM family_memberships WHERE user_id = ? AND family_id = ?`,
		userID, familyID,
	)
	m, err := scanMembership(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get membership: %w", err)
	}
	return m, nil
}
