package domain

import "time"

// Organization represents an organization users can apply to join.
// Organizations are keyed by name; OrgID is the name.
type Organization struct {
	OrgID       string    `json:"org_id" db:"org_id"`
	Description string    `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Role represents a member's role within an organization.
type Role string

// Role constants.
const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// UserOrganizationRelationship represents active membership, produced when a
// membership request is approved. Owned by the organization and deleted
// independently of the originating request record.
type UserOrganizationRelationship struct {
	OrgID    string    `json:"org_id" db:"org_id"`
	UserID   string    `json:"user_id" db:"user_id"`
	Role     Role      `json:"role" db:"role"`
	JoinedAt time.Time `json:"joined_at" db:"joined_at"`
}
