package model

import "time"

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

type Family struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedByID string    `json:"createdById"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type FamilyMembership struct {
	ID               int64     `json:"id"`
	FamilyID         int64     `json:"familyId"`
	UserID           string    `json:"userId"`
	Role             string    `json:"role"`
	RelationshipType *string   `json:"relationshipType"`
	JoinedAt         time.Time `json:"joinedAt"`
}

// FamilyMemberDetail is a membership joined with its user record.
type FamilyMemberDetail struct {
	FamilyMembership
	User User `json:"user"`
}
