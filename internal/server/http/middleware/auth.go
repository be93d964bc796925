package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	pkgAuth "github.com/polkiloo/orderdesk/internal/pkg/auth"
)

const (
	// SessionContextKey is a gin context key for the authenticated admin session.
	SessionContextKey = "session"
	authCookieName    = "orderdesk_session"
)

// TokenParser validates admin session tokens.
type TokenParser interface {
	ParseToken(token string) (*model.Session, error)
}

// AuthRequired ensures the request carries a valid session token.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		session, err := parser.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(SessionContextKey, session)
		c.Next()
	}
}

// RequireRole rejects expired sessions and sessions lacking role.
// Must run after AuthRequired.
func RequireRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, _ := c.Get(SessionContextKey)
		session, ok := val.(*model.Session)
		if !ok || session == nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if !session.HasRole(role, time.Now()) {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes the session token cookie and header to response.
// Secure restricts the cookie to HTTPS.
func SetAuthCookie(c *gin.Context, token string, maxAge int, secure bool) {
	if maxAge < 0 {
		maxAge = 0
	}
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(authCookieName, token, maxAge, "/", "", secure, true)
	c.Header("Authorization", "Bearer "+token)
}

// ClearAuthCookie expires the session cookie.
func ClearAuthCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(authCookieName, "", -1, "/", "", secure, true)
}
