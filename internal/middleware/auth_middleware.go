package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bookvault/bookvault/internal/database/service"
	"github.com/bookvault/bookvault/internal/handler"
)

// ContextUserKey is the gin context key holding the authenticated *models.User.
const ContextUserKey = "user"

// AuthMiddleware handles session token validation
type AuthMiddleware struct {
	service service.AuthService
	logger  *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware instance
func NewAuthMiddleware(service service.AuthService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		service: service,
		logger:  logger,
	}
}

// RequireAuth validates the session token and sets the resolved user in the
// context. Lookup order: cookie, body field, Authorization header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			m.logger.Warn("⚠️ [Middleware] Missing authentication token", "path", c.Request.URL.Path)
			handler.RespondError(c, http.StatusUnauthorized, "Missing authentication token")
			return
		}

		user, err := m.service.VerifyToken(token)
		if err != nil {
			m.logger.Warn("⚠️ [Middleware] Invalid token", "error", err)
			handler.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(ContextUserKey, user)
		m.logger.Debug("✅ [Middleware] Token validated", "user_id", user.ID)

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie("token"); err == nil && cookie != "" {
		return cookie
	}

	if token := c.PostForm("token"); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}

	return ""
}
