package handler

import (
	"github.com/CTF179/photocomp/internal/domain"
	"github.com/CTF179/photocomp/internal/notification"
)

// MembershipServiceInterface defines the interface for membership request operations.
type MembershipServiceInterface interface {
	Apply(orgID, userID, message string) (*domain.MembershipRequest, error)
	PendingRequests(orgID string) ([]domain.EnrichedRequest, error)
	Approve(orgID, userID string) (*domain.UserOrganizationRelationship, *notification.Payload, error)
	Deny(orgID, userID string) (*domain.MembershipRequest, *notification.Payload, error)
}

// Notifier queues a notification payload for asynchronous delivery.
type Notifier interface {
	Enqueue(p notification.Payload)
}
