package middleware

import (
	"context"
	"net/http"
	"strings"

	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer token to its server-side session and
// threads the authenticated identity through the request context. The
// session record is authoritative: a signed but revoked token is rejected.
func AuthMiddleware(authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		account, err := authUC.CurrentUser(c.Request.Context(), tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired session", nil)
			c.Abort()
			return
		}

		// Gin context keys for handlers
		c.Set(string(domain.KeyAccountID), account.ID)
		c.Set(string(domain.KeyEmail), account.Email)
		c.Set(string(domain.KeyAccountKind), string(account.Kind))
		c.Set("Token", tokenString)

		// Request context keys for usecases (ownership checks)
		ctx := context.WithValue(c.Request.Context(), domain.KeyAccountID, account.ID)
		ctx = context.WithValue(ctx, domain.KeyEmail, account.Email)
		ctx = context.WithValue(ctx, domain.KeyAccountKind, string(account.Kind))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireKind gates a route group to one account kind. A valid session of
// the wrong kind is a 403, not a 401.
func RequireKind(kind domain.AccountKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(string(domain.KeyAccountKind)) != string(kind) {
			response.Error(c, http.StatusForbidden, "This area is restricted to "+string(kind)+" accounts", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}
