package repository

import (
	"database/sql"
	"fmt"

	"github.com/CTF179/photocomp/internal/domain"
)

// MemberRepository handles organization membership database operations.
type MemberRepository struct {
	db *sql.DB
}

// NewMemberRepository creates a new membership repository.
func NewMemberRepository(db *sql.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// GetByOrgAndUser retrieves the membership for the (org, user) pair, or nil
// if the user is not a member. It returns an error only for database
// failures, not for missing rows.
func (r *MemberRepository) GetByOrgAndUser(orgID, userID string) (*domain.UserOrganizationRelationship, error) {
	query := `
		SELECT org_id, user_id, role, joined_at
		FROM organization_members
		WHERE org_id = $1 AND user_id = $2
	`
	var rel domain.UserOrganizationRelationship
	err := r.db.QueryRow(query, orgID, userID).Scan(&rel.OrgID, &rel.UserID, &rel.Role, &rel.JoinedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	return &rel, nil
}

// ListByOrg retrieves all memberships for an organization.
func (r *MemberRepository) ListByOrg(orgID string) ([]domain.UserOrganizationRelationship, error) {
	query := `
		SELECT org_id, user_id, role, joined_at
		FROM organization_members
		WHERE org_id = $1
		ORDER BY joined_at ASC
	`
	rows, err := r.db.Query(query, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer rows.Close()

	members := make([]domain.UserOrganizationRelationship, 0)
	for rows.Next() {
		var rel domain.UserOrganizationRelationship
		if err := rows.Scan(&rel.OrgID, &rel.UserID, &rel.Role, &rel.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		members = append(members, rel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}
