package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"guesthouse-booking/internal/domain/user"
	"guesthouse-booking/internal/handler/httperr"
	"guesthouse-booking/internal/pkg/cookie"
	"guesthouse-booking/internal/pkg/errs"
	"guesthouse-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth accepts the session cookie or a bearer token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetSessionToken(c)
		if token == "" {
			token = bearerToken(c)
		}
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Access token required", nil)
			return
		}

		userID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("rejected access token", "error", err.Error(), "path", c.FullPath(), "request_id", GetRequestID(c))
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Mark(err, errs.ErrUnauthorized), "Invalid or expired token", nil)
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Set(ctxUserRoleKey, role)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// RequireCapability must run after RequireAuth.
func (m *AuthMiddleware) RequireCapability(capability user.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("role missing from context"), "Internal server error", nil)
			return
		}

		if !role.Can(capability) {
			httperr.AbortWithError(c, http.StatusForbidden,
				errs.Mark(errs.Newf("role %s lacks %s", role, capability), errs.ErrForbidden),
				"Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := c.Value(ctxUserIDKey).(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	role, ok := c.Value(ctxUserRoleKey).(user.Role)
	return role, ok
}

// Actor names the authenticated user in the booking audit trail.
func Actor(c *gin.Context) string {
	id, ok := GetUserID(c)
	if !ok {
		return "anonymous"
	}
	return "user:" + id.String()
}
