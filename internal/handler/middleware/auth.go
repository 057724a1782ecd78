package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"staybook/internal/domain/user"
	"staybook/internal/handler/httperr"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxPrincipalKey = "principal"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, "UNAUTHORIZED",
				errs.New("missing bearer token"), "Access token required", nil)
			return
		}

		principal, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, "UNAUTHORIZED", err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxPrincipalKey, principal)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			httperr.Unauthorized(c)
			return
		}
		if !slices.Contains(roles, principal.Role()) {
			httperr.AbortWithError(c, http.StatusForbidden, errs.KindForbidden,
				errs.Newf("role %s not allowed", principal.Role()), "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetPrincipal(c *gin.Context) (user.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return user.Principal{}, false
	}
	p, ok := v.(user.Principal)
	return p, ok
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	p, ok := GetPrincipal(c)
	if !ok {
		return uuid.Nil, false
	}
	return p.ID(), true
}

// SetPrincipal is used by tests that bypass token validation.
func SetPrincipal(c *gin.Context, p user.Principal) {
	c.Set(ctxPrincipalKey, p)
}
