//go:build unit

package api_test

import (
	"staybook/internal/domain/user"
	"staybook/internal/handler/httperr"
	"staybook/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

const testToken = "bearer-token"

// fakeAuth stands in for token validation and authenticates every request
// carrying an Authorization header as *principal.
func fakeAuth(principal *user.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			httperr.Unauthorized(c)
			return
		}
		middleware.SetPrincipal(c, *principal)
		c.Next()
	}
}
