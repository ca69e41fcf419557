package domain

import "time"

// MembershipRequest represents a user's application to join an organization.
// A resolved request (approved or denied) is immutable and kept as an audit
// trail; only the pending → approved|denied transition mutates it.
type MembershipRequest struct {
	RequestID  string        `json:"request_id" db:"request_id"`
	OrgID      string        `json:"org_id" db:"org_id"`
	UserID     string        `json:"user_id" db:"user_id"`
	Message    string        `json:"message,omitempty" db:"message"`
	Status     RequestStatus `json:"status" db:"status"`
	CreatedAt  time.Time     `json:"created_at" db:"created_at"`
	ResolvedAt *time.Time    `json:"resolved_at,omitempty" db:"resolved_at"`
}

// EnrichedRequest is a pending membership request augmented with a snapshot
// of the requester's profile. UserDetails is nil when the profile lookup
// failed; listing tolerates partial enrichment.
type EnrichedRequest struct {
	MembershipRequest
	UserDetails *UserDetails `json:"user_details"`
}
