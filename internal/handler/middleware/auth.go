package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"vending-machine/internal/handler/httperr"
	"vending-machine/internal/pkg/cookie"
	"vending-machine/internal/pkg/errs"
	"vending-machine/internal/usecase"

	"github.com/gin-gonic/gin"
)

var ErrUnauthorized = errs.New("maintenance token missing or invalid")

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxSessionIDKey = "session_id"
	ctxRoleKey      = "role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAdmin guards maintenance routes. The token comes from the admin cookie or a Bearer header.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAdminToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, ErrUnauthorized, "Access token required", nil)
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.WarnContext(c.Request.Context(), "maintenance token rejected", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Mark(err, ErrUnauthorized), "Invalid or expired token", nil)
			return
		}

		c.Set(ctxSessionIDKey, claims.ID)
		c.Set(ctxRoleKey, claims.Role)
		c.Next()
	}
}

func GetSessionID(c *gin.Context) (string, bool) {
	id, exists := c.Get(ctxSessionIDKey)
	if !exists {
		return "", false
	}
	s, ok := id.(string)
	return s, ok
}
