package router

import (
	"github.com/gin-gonic/gin"

	"github.com/CTF179/photocomp/internal/handler"
	"github.com/CTF179/photocomp/internal/middleware"
)

// SetupRoutes configures all API routes. Apply requires authentication only;
// listing and resolution require org admin.
func SetupRoutes(
	membershipHandler *handler.MembershipHandler,
	members middleware.MembershipChecker,
	jwtSecret string,
) *gin.Engine {
	r := gin.Default()

	auth := middleware.Auth(jwtSecret)
	orgAdmin := middleware.RequireOrgAdmin(members)

	orgs := r.Group("/organizations")
	orgs.POST("/:id", auth, membershipHandler.Apply)
	orgs.GET("/:id/requests", auth, orgAdmin, membershipHandler.ListPending)
	orgs.PUT("/:id/requests/:userId", auth, orgAdmin, membershipHandler.Approve)
	orgs.DELETE("/:id/requests/:userId", auth, orgAdmin, membershipHandler.Deny)

	return r
}
