package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CTF179/photocomp/internal/middleware"
	"github.com/CTF179/photocomp/internal/service"
)

// MembershipHandler handles membership request HTTP endpoints. Resolution
// notifications are queued after the response is written; delivery is
// best-effort and never affects the response.
type MembershipHandler struct {
	membershipService MembershipServiceInterface
	notifier          Notifier
}

// NewMembershipHandler creates a new membership handler.
func NewMembershipHandler(membershipService MembershipServiceInterface, notifier Notifier) *MembershipHandler {
	return &MembershipHandler{
		membershipService: membershipService,
		notifier:          notifier,
	}
}

// Apply handles POST /organizations/:id.
// The acting user is taken from the auth middleware; the body may carry an
// optional rationale message.
func (h *MembershipHandler) Apply(c *gin.Context) {
	orgID := c.Param("id")
	userID := c.GetString(middleware.ContextUserKey)

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		BadRequest(c, "invalid request body")
		return
	}

	created, err := h.membershipService.Apply(orgID, userID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrganizationNotFound):
			NotFound(c, ErrorOrgNotFound, "organization not found")
		case errors.Is(err, service.ErrAlreadyMember):
			Conflict(c, ErrorAlreadyMember, "user is already a member of this organization")
		case errors.Is(err, service.ErrRequestExists):
			Conflict(c, ErrorRequestExists, "a pending membership request already exists")
		case errors.Is(err, service.ErrReapplyNotAllowed):
			Conflict(c, ErrorReapplyNotAllowed, "re-application after denial is not allowed")
		default:
			InternalError(c, err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, ApplyResponse{
		Message: "Application submitted successfully",
		Request: toRequestResponse(created),
	})
}

// ListPending handles GET /organizations/:id/requests.
func (h *MembershipHandler) ListPending(c *gin.Context) {
	orgID := c.Param("id")

	requests, err := h.membershipService.PendingRequests(orgID)
	if err != nil {
		if errors.Is(err, service.ErrOrganizationNotFound) {
			NotFound(c, ErrorOrgNotFound, "organization not found")
			return
		}
		InternalError(c, err.Error())
		return
	}

	out := make([]PendingRequestResponse, len(requests))
	for i, req := range requests {
		item := PendingRequestResponse{RequestResponse: toRequestResponse(&req.MembershipRequest)}
		if req.UserDetails != nil {
			item.UserDetails = &UserDetailsResponse{
				ID:        req.UserDetails.ID,
				Email:     req.UserDetails.Email,
				FirstName: req.UserDetails.FirstName,
				LastName:  req.UserDetails.LastName,
			}
		}
		out[i] = item
	}

	c.JSON(http.StatusOK, ListPendingResponse{Requests: out})
}

// Approve handles PUT /organizations/:id/requests/:userId.
func (h *MembershipHandler) Approve(c *gin.Context) {
	orgID := c.Param("id")
	userID := c.Param("userId")

	rel, payload, err := h.membershipService.Approve(orgID, userID)
	if err != nil {
		if errors.Is(err, service.ErrRequestNotFound) {
			NotFound(c, ErrorRequestNotFound, "no pending membership request")
			return
		}
		InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, ApproveResponse{
		Message:    "Membership request approved",
		Membership: toMembershipResponse(rel),
	})

	if payload != nil {
		h.notifier.Enqueue(*payload)
	}
}

// Deny handles DELETE /organizations/:id/requests/:userId.
func (h *MembershipHandler) Deny(c *gin.Context) {
	orgID := c.Param("id")
	userID := c.Param("userId")

	denied, payload, err := h.membershipService.Deny(orgID, userID)
	if err != nil {
		if errors.Is(err, service.ErrRequestNotFound) {
			NotFound(c, ErrorRequestNotFound, "no pending membership request")
			return
		}
		InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, DenyResponse{
		Message: "Membership request denied",
		Request: toRequestResponse(denied),
	})

	if payload != nil {
		h.notifier.Enqueue(*payload)
	}
}
