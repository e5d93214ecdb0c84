package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/scholarstream/scholarstream/internal/app/models"
	"github.com/scholarstream/scholarstream/internal/app/models/dto"
	"github.com/scholarstream/scholarstream/internal/app/repositories"
	"github.com/scholarstream/scholarstream/internal/pkg/apperrors"
	"github.com/scholarstream/scholarstream/internal/pkg/identity"
	"github.com/scholarstream/scholarstream/internal/pkg/logger"
)

// identityContextKey is where the verified identity lives in the Gin context.
const identityContextKey = "identity"

// RoleStore resolves a verified identity to its stored platform role.
type RoleStore interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthMiddleware gates routes on identity verification and stored roles.
type AuthMiddleware struct {
	verifier identity.Verifier
	roles    RoleStore
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(verifier identity.Verifier, roles RoleStore) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		roles:    roles,
	}
}

// Authenticated verifies the bearer credential against the identity provider
// and attaches the resolved identity to the request context. Without a valid
// credential the request is rejected and no handler runs.
func (m *AuthMiddleware) Authenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: "unauthorized access. Token not found!"})
			return
		}

		token := authHeader
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}

		ident, err := m.verifier.Verify(c.Request.Context(), token)
		if err != nil {
			logger.Debug().Err(err).Msg("Credential verification failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: "unauthorized access."})
			return
		}

		c.Set(identityContextKey, ident)
		c.Next()
	}
}

// IdentityFromContext returns the identity attached by Authenticated().
func IdentityFromContext(c *gin.Context) (*identity.Identity, bool) {
	value, exists := c.Get(identityContextKey)
	if !exists {
		return nil, false
	}
	ident, ok := value.(*identity.Identity)
	return ident, ok
}

// RequireRole allows the request only when the stored role matches exactly.
func (m *AuthMiddleware) RequireRole(role models.Role) gin.HandlerFunc {
	return m.requireRoles(role)
}

// RequireAnyRole allows the request when the stored role is any of the given.
func (m *AuthMiddleware) RequireAnyRole(roles ...models.Role) gin.HandlerFunc {
	return m.requireRoles(roles...)
}

func (m *AuthMiddleware) requireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := IdentityFromContext(c)
		if !ok {
			// Authenticated() did not run first.
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: "unauthorized access."})
			return
		}

		user, err := m.roles.GetUserByEmail(c.Request.Context(), ident.Email)
		if err != nil {
			// A verified identity without a role record never got past
			// registration; that is a deny, not a default-student pass.
			if isNotFound(err) {
				c.Abort()
				HandleAPIError(c, apperrors.ErrNotRegistered)
				return
			}
			logger.Error().Err(err).Str("email", ident.Email).Msg("Role lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Internal Server Error"})
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		c.Abort()
		HandleAPIError(c, apperrors.NewForbiddenError("Forbidden: insufficient role"))
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, repositories.ErrNotFound) || errors.Is(err, apperrors.ErrUserNotFound)
}
