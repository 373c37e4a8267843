package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jd-backend/internal/shared/auth"
	"jd-backend/internal/shared/server/respond"
)

const (
	userIDKey    = "userId"
	userEmailKey = "userEmail"
	userNameKey  = "userName"
	guestKey     = "isGuest"
)

// TokenVerifier checks a bearer token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (auth.Claims, error)
}

// Auth accepts a bearer JWT or an X-Guest-Id header and stores the principal in context.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header != "" {
			token, ok := bearerToken(header)
			if !ok || verifier == nil {
				unauthorized(c)
				return
			}
			claims, err := verifier.Verify(token)
			if err != nil {
				unauthorized(c)
				return
			}
			c.Set(userIDKey, claims.Sub)
			if claims.Email != "" {
				c.Set(userEmailKey, claims.Email)
			}
			if claims.Name != "" {
				c.Set(userNameKey, claims.Name)
			}
			c.Set(guestKey, false)
			c.Next()
			return
		}

		guestID := strings.TrimSpace(c.GetHeader("X-Guest-Id"))
		if guestID == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
			return
		}
		c.Set(userIDKey, "guest:"+guestID)
		c.Set(guestKey, true)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

func unauthorized(c *gin.Context) {
	respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
}

// UserIDFromContext returns the principal set by Auth.
func UserIDFromContext(c *gin.Context) string {
	return contextString(c, userIDKey)
}

func UserEmailFromContext(c *gin.Context) string {
	return contextString(c, userEmailKey)
}

func UserNameFromContext(c *gin.Context) string {
	return contextString(c, userNameKey)
}

// IsGuest reports whether the principal came from X-Guest-Id.
func IsGuest(c *gin.Context) bool {
	if c == nil {
		return false
	}
	return c.GetBool(guestKey)
}

func contextString(c *gin.Context, key string) string {
	if c == nil {
		return ""
	}
	return c.GetString(key)
}
