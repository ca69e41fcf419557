package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/CTF179/photocomp/internal/domain"
	"github.com/CTF179/photocomp/internal/notification"
	"github.com/CTF179/photocomp/internal/repository"
)

// RequestStore is the membership request store consumed by the service.
// Resolution methods are atomic conditional transitions keyed on
// (org, user, status = pending).
type RequestStore interface {
	CreatePending(req *domain.MembershipRequest) error
	Latest(orgID, userID string) (*domain.MembershipRequest, error)
	ListPendingByOrg(orgID string) ([]domain.MembershipRequest, error)
	Approve(orgID, userID string, at time.Time) (*domain.UserOrganizationRelationship, error)
	Deny(orgID, userID string, at time.Time) (*domain.MembershipRequest, error)
}

// MemberStore resolves active memberships.
type MemberStore interface {
	GetByOrgAndUser(orgID, userID string) (*domain.UserOrganizationRelationship, error)
}

// OrganizationStore is the organization directory.
type OrganizationStore interface {
	Get(orgID string) (*domain.Organization, error)
}

// MembershipService handles the membership request lifecycle: apply, list
// pending, approve, deny. Approve and Deny also build the outcome
// notification for the requester when their profile resolves.
type MembershipService struct {
	requests RequestStore
	members  MemberStore
	orgs     OrganizationStore
	users    UserGetter

	// allowReapply permits a new application after a denial. Uniqueness is
	// only ever enforced against pending requests; this is a policy knob on
	// top of that.
	allowReapply bool
}

// NewMembershipService creates a new membership service.
func NewMembershipService(requests RequestStore, members MemberStore, orgs OrganizationStore, users UserGetter, allowReapply bool) *MembershipService {
	return &MembershipService{
		requests:     requests,
		members:      members,
		orgs:         orgs,
		users:        users,
		allowReapply: allowReapply,
	}
}

// Apply submits a membership request for the (org, user) pair.
// Fails with ErrOrganizationNotFound when the organization does not exist,
// ErrAlreadyMember when the user already has an active membership, and
// ErrRequestExists when a pending request already exists. Concurrent
// duplicate applies are resolved by the store's uniqueness guarantee, so
// exactly one of them succeeds.
func (s *MembershipService) Apply(orgID, userID, message string) (*domain.MembershipRequest, error) {
	org, err := s.orgs.Get(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to check organization: %w", err)
	}
	if org == nil {
		return nil, ErrOrganizationNotFound
	}

	member, err := s.members.GetByOrgAndUser(orgID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if member != nil {
		return nil, ErrAlreadyMember
	}

	if !s.allowReapply {
		last, err := s.requests.Latest(orgID, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to check previous requests: %w", err)
		}
		if last != nil && last.Status == domain.StatusDenied {
			return nil, ErrReapplyNotAllowed
		}
	}

	req := &domain.MembershipRequest{
		RequestID: uuid.NewString(),
		OrgID:     orgID,
		UserID:    userID,
		Message:   message,
		Status:    domain.StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.requests.CreatePending(req); err != nil {
		if errors.Is(err, repository.ErrPendingExists) {
			return nil, ErrRequestExists
		}
		return nil, fmt.Errorf("failed to create membership request: %w", err)
	}

	return req, nil
}

// PendingRequests lists pending requests for an organization, each enriched
// with a snapshot of the requester's profile. A failed profile lookup leaves
// UserDetails nil instead of failing the listing. An organization with no
// pending requests yields an empty slice.
func (s *MembershipService) PendingRequests(orgID string) ([]domain.EnrichedRequest, error) {
	org, err := s.orgs.Get(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to check organization: %w", err)
	}
	if org == nil {
		return nil, ErrOrganizationNotFound
	}

	requests, err := s.requests.ListPendingByOrg(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}

	enriched := make([]domain.EnrichedRequest, 0, len(requests))
	for _, req := range requests {
		item := domain.EnrichedRequest{MembershipRequest: req}
		user, err := s.users.GetByID(req.UserID)
		if err != nil {
			log.Printf("membership: profile lookup failed for user %s: %v", req.UserID, err)
		} else {
			item.UserDetails = user.Details()
		}
		enriched = append(enriched, item)
	}

	return enriched, nil
}

// Approve resolves the pending request to approved and creates the
// membership relationship. Fails with ErrRequestNotFound when no pending
// request exists, which covers both "never applied" and "already resolved";
// re-invocation after a success therefore fails instead of creating a
// duplicate relationship. The returned payload is nil when the requester's
// profile cannot be resolved; that never fails the approval itself.
func (s *MembershipService) Approve(orgID, userID string) (*domain.UserOrganizationRelationship, *notification.Payload, error) {
	rel, err := s.requests.Approve(orgID, userID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, repository.ErrNoPendingRequest) {
			return nil, nil, ErrRequestNotFound
		}
		return nil, nil, fmt.Errorf("failed to approve membership request: %w", err)
	}

	return rel, s.buildNotification(notification.OutcomeApproved, orgID, userID), nil
}

// Deny resolves the pending request to denied. No relationship is created.
// Failure and notification semantics match Approve.
func (s *MembershipService) Deny(orgID, userID string) (*domain.MembershipRequest, *notification.Payload, error) {
	req, err := s.requests.Deny(orgID, userID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, repository.ErrNoPendingRequest) {
			return nil, nil, ErrRequestNotFound
		}
		return nil, nil, fmt.Errorf("failed to deny membership request: %w", err)
	}

	return req, s.buildNotification(notification.OutcomeDenied, orgID, userID), nil
}

// buildNotification looks up the requester's email and builds the outcome
// payload. A missing profile or failed lookup is a soft-fail: no payload,
// no error.
func (s *MembershipService) buildNotification(outcome notification.Outcome, orgID, userID string) *notification.Payload {
	user, err := s.users.GetByID(userID)
	if err != nil {
		log.Printf("membership: notification lookup failed for user %s: %v", userID, err)
		return nil
	}
	if user == nil {
		return nil
	}
	p := notification.Build(outcome, orgID, user.Email)
	return &p
}
