package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/CTF179/photocomp/internal/domain"
)

// RequestRepository handles membership request database operations.
type RequestRepository struct {
	db *sql.DB
}

// NewRequestRepository creates a new membership request repository.
func NewRequestRepository(db *sql.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

// CreatePending inserts a new pending membership request.
// A partial unique index on (org_id, user_id) WHERE status = 'pending'
// guarantees at most one pending request per pair; a violation is surfaced
// as ErrPendingExists so concurrent duplicate applies fail deterministically.
func (r *RequestRepository) CreatePending(req *domain.MembershipRequest) error {
	query := `
		INSERT INTO membership_requests (request_id, org_id, user_id, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	msg := sql.NullString{String: req.Message, Valid: req.Message != ""}
	_, err := r.db.Exec(query, req.RequestID, req.OrgID, req.UserID, msg, req.Status, req.CreatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return ErrPendingExists
		}
		return fmt.Errorf("failed to create membership request: %w", err)
	}
	return nil
}

// Latest retrieves the most recent request for the (org, user) pair,
// or nil if the user never applied.
func (r *RequestRepository) Latest(orgID, userID string) (*domain.MembershipRequest, error) {
	query := `
		SELECT request_id, org_id, user_id, message, status, created_at, resolved_at
		FROM membership_requests
		WHERE org_id = $1 AND user_id = $2
		ORDER BY created_at DESC
		LIMIT 1
	`
	req, err := scanRequest(r.db.QueryRow(query, orgID, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest membership request: %w", err)
	}
	return req, nil
}

// ListPendingByOrg retrieves all pending requests for an organization,
// ordered by created_at ascending for stable listing.
func (r *RequestRepository) ListPendingByOrg(orgID string) ([]domain.MembershipRequest, error) {
	query := `
		SELECT request_id, org_id, user_id, message, status, created_at, resolved_at
		FROM membership_requests
		WHERE org_id = $1 AND status = $2
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(query, orgID, domain.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}
	defer rows.Close()

	requests := make([]domain.MembershipRequest, 0)
	for rows.Next() {
		var req domain.MembershipRequest
		var msg sql.NullString
		if err := rows.Scan(&req.RequestID, &req.OrgID, &req.UserID, &msg,
			&req.Status, &req.CreatedAt, &req.ResolvedAt); err != nil {
			return nil, fmt.Errorf("failed to scan membership request: %w", err)
		}
		req.Message = msg.String
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, nil
}

// Approve transitions the pending request to approved and creates the
// membership relationship in a single transaction. The conditional update
// (status = 'pending') and the relationship insert commit together or not at
// all, so concurrent approvals produce exactly one relationship.
// Returns ErrNoPendingRequest if no pending request exists for the pair.
func (r *RequestRepository) Approve(orgID, userID string, at time.Time) (*domain.UserOrganizationRelationship, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := resolvePending(tx, orgID, userID, domain.StatusApproved, at); err != nil {
		return nil, err
	}

	rel := &domain.UserOrganizationRelationship{
		OrgID:    orgID,
		UserID:   userID,
		Role:     domain.RoleMember,
		JoinedAt: at,
	}
	insert := `
		INSERT INTO organization_members (org_id, user_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := tx.Exec(insert, rel.OrgID, rel.UserID, rel.Role, rel.JoinedAt); err != nil {
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return rel, nil
}

// Deny transitions the pending request to denied. No relationship is created.
// Returns ErrNoPendingRequest if no pending request exists for the pair.
func (r *RequestRepository) Deny(orgID, userID string, at time.Time) (*domain.MembershipRequest, error) {
	return resolvePending(r.db, orgID, userID, domain.StatusDenied, at)
}

// resolvePending performs the conditional pending → resolved transition.
// The WHERE status = 'pending' clause is the compare-and-swap: an
// already-resolved or absent request updates zero rows and the transition
// fails with ErrNoPendingRequest instead of silently overwriting.
func resolvePending(exec DBTX, orgID, userID string, to domain.RequestStatus, at time.Time) (*domain.MembershipRequest, error) {
	query := `
		UPDATE membership_requests
		SET status = $1, resolved_at = $2
		WHERE org_id = $3 AND user_id = $4 AND status = $5
		RETURNING request_id, org_id, user_id, message, status, created_at, resolved_at
	`
	req, err := scanRequest(exec.QueryRow(query, to, at, orgID, userID, domain.StatusPending))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoPendingRequest
		}
		return nil, fmt.Errorf("failed to resolve membership request: %w", err)
	}
	return req, nil
}

func scanRequest(row *sql.Row) (*domain.MembershipRequest, error) {
	var req domain.MembershipRequest
	var msg sql.NullString
	err := row.Scan(&req.RequestID, &req.OrgID, &req.UserID, &msg,
		&req.Status, &req.CreatedAt, &req.ResolvedAt)
	if err != nil {
		return nil, err
	}
	req.Message = msg.String
	return &req, nil
}
