package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/imogenclam/visualmath/internal/dashboard"
	"github.com/imogenclam/visualmath/internal/response"
	"github.com/imogenclam/visualmath/internal/session"
)

const (
	// ContextKeyController is the Gin context key for the session's
	// dashboard controller.
	ContextKeyController = "dashboard_controller"

	// TokenCookie is the fallback cookie the page stores its bearer
	// token in.
	TokenCookie = "vm_token"
)

// RequireSession extracts the bearer token, gates it through the
// session guard, and attaches the session's controller to the request.
// Without a usable token the request is rejected with the login URL —
// the page performs the hard navigation; nothing here retries, since
// a missing token is not a transient condition.
func RequireSession(manager *dashboard.Manager, loginURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.AbortLogin(c, response.ErrTokenRequired, loginURL)
			return
		}

		ctrl, err := manager.Controller(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, session.ErrNoSession) {
				response.AbortLogin(c, response.ErrSessionInvalid, loginURL)
				return
			}
			response.Fail(c, 500, response.ErrInternal)
			c.Abort()
			return
		}

		c.Set(ContextKeyController, ctrl)
		c.Next()
	}
}

// GetController returns the controller attached by RequireSession.
func GetController(c *gin.Context) *dashboard.Controller {
	v, ok := c.Get(ContextKeyController)
	if !ok {
		return nil
	}
	ctrl, _ := v.(*dashboard.Controller)
	return ctrl
}

// bearerToken pulls the credential from the Authorization header or
// the token cookie.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil {
		return cookie
	}
	return ""
}
