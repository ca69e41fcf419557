package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CTF179/photocomp/internal/domain"
)

// ErrorCode identifies the failure class in error responses.
type ErrorCode string

const (
	ErrorOrgNotFound       ErrorCode = "ORG_NOT_FOUND"
	ErrorRequestNotFound   ErrorCode = "REQUEST_NOT_FOUND"
	ErrorRequestExists     ErrorCode = "REQUEST_EXISTS"
	ErrorAlreadyMember     ErrorCode = "ALREADY_MEMBER"
	ErrorReapplyNotAllowed ErrorCode = "REAPPLY_NOT_ALLOWED"
)

// ErrorResponse represents error response structure.
type ErrorResponse struct {
	Error struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

// ApplyResponse wraps the created membership request.
type ApplyResponse struct {
	Message string          `json:"message"`
	Request RequestResponse `json:"request"`
}

// ListPendingResponse wraps the pending requests for an organization.
type ListPendingResponse struct {
	Requests []PendingRequestResponse `json:"requests"`
}

// ApproveResponse wraps the created membership relationship.
type ApproveResponse struct {
	Message    string             `json:"message"`
	Membership MembershipResponse `json:"membership"`
}

// DenyResponse wraps the denied membership request.
type DenyResponse struct {
	Message string          `json:"message"`
	Request RequestResponse `json:"request"`
}

// RequestResponse represents a membership request in responses.
type RequestResponse struct {
	RequestID  string `json:"request_id"`
	OrgID      string `json:"org_id"`
	UserID     string `json:"user_id"`
	Message    string `json:"message,omitempty"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
	ResolvedAt string `json:"resolved_at,omitempty"`
}

// PendingRequestResponse is a pending request with the requester's profile
// snapshot. UserDetails is null when the profile lookup failed.
type PendingRequestResponse struct {
	RequestResponse
	UserDetails *UserDetailsResponse `json:"user_details"`
}

// UserDetailsResponse represents the requester profile snapshot.
type UserDetailsResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// MembershipResponse represents an active membership in responses.
type MembershipResponse struct {
	OrgID    string `json:"org_id"`
	UserID   string `json:"user_id"`
	Role     string `json:"role"`
	JoinedAt string `json:"joined_at"`
}

func toRequestResponse(req *domain.MembershipRequest) RequestResponse {
	resp := RequestResponse{
		RequestID: req.RequestID,
		OrgID:     req.OrgID,
		UserID:    req.UserID,
		Message:   req.Message,
		Status:    string(req.Status),
		CreatedAt: req.CreatedAt.Format(time.RFC3339),
	}
	if req.ResolvedAt != nil {
		resp.ResolvedAt = req.ResolvedAt.Format(time.RFC3339)
	}
	return resp
}

func toMembershipResponse(rel *domain.UserOrganizationRelationship) MembershipResponse {
	return MembershipResponse{
		OrgID:    rel.OrgID,
		UserID:   rel.UserID,
		Role:     string(rel.Role),
		JoinedAt: rel.JoinedAt.Format(time.RFC3339),
	}
}

// Error sends error response.
func Error(c *gin.Context, code ErrorCode, message string, statusCode int) {
	c.JSON(statusCode, ErrorResponse{
		Error: struct {
			Code    ErrorCode `json:"code"`
			Message string    `json:"message"`
		}{
			Code:    code,
			Message: message,
		},
	})
}

// NotFound sends 404 error.
func NotFound(c *gin.Context, code ErrorCode, message string) {
	Error(c, code, message, http.StatusNotFound)
}

// Conflict sends 409 error.
func Conflict(c *gin.Context, code ErrorCode, message string) {
	Error(c, code, message, http.StatusConflict)
}

// BadRequest sends 400 error.
func BadRequest(c *gin.Context, message string) {
	Error(c, "", message, http.StatusBadRequest)
}

// InternalError sends 500 error.
func InternalError(c *gin.Context, message string) {
	Error(c, "", message, http.StatusInternalServerError)
}
