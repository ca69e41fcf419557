package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CTF179/photocomp/internal/domain"
)

// MembershipChecker resolves a user's membership in an organization. Used by
// RequireOrgAdmin to establish the caller's role.
type MembershipChecker interface {
	GetByOrgAndUser(orgID, userID string) (*domain.UserOrganizationRelationship, error)
}

// RequireOrgAdmin returns middleware ensuring the authenticated caller is an
// admin of the organization named in the :id route parameter. Must run after
// Auth.
func RequireOrgAdmin(members MembershipChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		orgID := c.Param("id")
		userID := c.GetString(ContextUserKey)
		if orgID == "" || userID == "" {
			unauthorized(c, "org and user context required")
			return
		}

		m, err := members.GetByOrgAndUser(orgID, userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{"code": "", "message": "failed to resolve membership"},
			})
			return
		}
		if m == nil {
			forbidden(c, "not a member of this organization")
			return
		}
		if m.Role != domain.RoleAdmin {
			forbidden(c, "organization admin required")
			return
		}

		c.Next()
	}
}

func forbidden(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"error": gin.H{"code": "FORBIDDEN", "message": message},
	})
}
