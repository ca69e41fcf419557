package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CTF179/photocomp/internal/domain"
	"github.com/CTF179/photocomp/internal/middleware"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, subject string, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestParseToken(t *testing.T) {
	t.Run("valid token returns subject", func(t *testing.T) {
		token := signToken(t, testSecret, "u1", time.Now().Add(time.Hour))

		subject, err := middleware.ParseToken(testSecret, token)
		require.NoError(t, err)
		assert.Equal(t, "u1", subject)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		token := signToken(t, testSecret, "u1", time.Now().Add(-time.Hour))

		_, err := middleware.ParseToken(testSecret, token)
		assert.ErrorIs(t, err, middleware.ErrInvalidToken)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		token := signToken(t, "other-secret", "u1", time.Now().Add(time.Hour))

		_, err := middleware.ParseToken(testSecret, token)
		assert.ErrorIs(t, err, middleware.ErrInvalidToken)
	})

	t.Run("empty subject rejected", func(t *testing.T) {
		token := signToken(t, testSecret, "", time.Now().Add(time.Hour))

		_, err := middleware.ParseToken(testSecret, token)
		assert.ErrorIs(t, err, middleware.ErrInvalidToken)
	})

	t.Run("non-HMAC signing method rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "u1"})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = middleware.ParseToken(testSecret, signed)
		assert.ErrorIs(t, err, middleware.ErrInvalidToken)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := middleware.ParseToken(testSecret, "not.a.token")
		assert.ErrorIs(t, err, middleware.ErrInvalidToken)
	})
}

func TestAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newAuthRouter := func() *gin.Engine {
		r := gin.New()
		r.GET("/whoami", middleware.Auth(testSecret), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(middleware.ContextUserKey)})
		})
		return r
	}

	tests := []struct {
		name           string
		authorization  string
		expectedStatus int
	}{
		{
			name:           "valid bearer token",
			authorization:  "Bearer " + signToken(t, testSecret, "u1", time.Now().Add(time.Hour)),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing header",
			authorization:  "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			authorization:  "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			authorization:  "Bearer garbage",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthRouter()
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.JSONEq(t, `{"user_id":"u1"}`, w.Body.String())
			}
		})
	}
}

type stubMembershipChecker struct {
	rel *domain.UserOrganizationRelationship
	err error
}

func (s *stubMembershipChecker) GetByOrgAndUser(orgID, userID string) (*domain.UserOrganizationRelationship, error) {
	return s.rel, s.err
}

func TestRequireOrgAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newAdminRouter := func(checker middleware.MembershipChecker, actingUser string) *gin.Engine {
		r := gin.New()
		r.GET("/organizations/:id/requests",
			func(c *gin.Context) {
				if actingUser != "" {
					c.Set(middleware.ContextUserKey, actingUser)
				}
				c.Next()
			},
			middleware.RequireOrgAdmin(checker),
			func(c *gin.Context) { c.Status(http.StatusOK) },
		)
		return r
	}

	tests := []struct {
		name           string
		actingUser     string
		checker        *stubMembershipChecker
		expectedStatus int
	}{
		{
			name:       "admin passes",
			actingUser: "u1",
			checker: &stubMembershipChecker{
				rel: &domain.UserOrganizationRelationship{OrgID: "acme", UserID: "u1", Role: domain.RoleAdmin},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "non-member forbidden",
			actingUser:     "u1",
			checker:        &stubMembershipChecker{},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:       "plain member forbidden",
			actingUser: "u1",
			checker: &stubMembershipChecker{
				rel: &domain.UserOrganizationRelationship{OrgID: "acme", UserID: "u1", Role: domain.RoleMember},
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "missing user context unauthorized",
			actingUser:     "",
			checker:        &stubMembershipChecker{},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "membership lookup failure",
			actingUser:     "u1",
			checker:        &stubMembershipChecker{err: errors.New("db down")},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAdminRouter(tt.checker, tt.actingUser)
			req := httptest.NewRequest(http.MethodGet, "/organizations/acme/requests", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
