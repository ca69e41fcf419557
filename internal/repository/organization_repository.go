package repository

import (
	"database/sql"
	"fmt"

	"github.com/CTF179/photocomp/internal/domain"
)

// OrganizationRepository handles organization directory lookups.
type OrganizationRepository struct {
	db *sql.DB
}

// NewOrganizationRepository creates a new organization repository.
func NewOrganizationRepository(db *sql.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Get retrieves an organization by name, or nil if it does not exist.
// It returns an error only for database failures, not for missing rows.
func (r *OrganizationRepository) Get(orgID string) (*domain.Organization, error) {
	query := `
		SELECT org_id, description, created_at
		FROM organizations
		WHERE org_id = $1
	`
	var org domain.Organization
	var desc sql.NullString
	err := r.db.QueryRow(query, orgID).Scan(&org.OrgID, &desc, &org.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	org.Description = desc.String
	return &org, nil
}
