package middleware

import (
	"errors"
	"net/http"

	"github.com/PerHac13/ashaikh/src/services"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// SessionCookieName is the cookie carrying the opaque session token
const SessionCookieName = "session_token"

// ContextUserIDKey is the gin context key holding the authenticated user ID
const ContextUserIDKey = "user_id"

// CookieConfig controls session cookie attributes. Secure is enabled in
// production only so local development over plain HTTP still works.
type CookieConfig struct {
	Secure bool
	MaxAge int // seconds
}

// SetSessionCookie writes the session token cookie on the response
func SetSessionCookie(c *gin.Context, cfg CookieConfig, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, cfg.MaxAge, "/", "", cfg.Secure, true)
}

// ClearSessionCookie instructs the client to drop its session cookie
func ClearSessionCookie(c *gin.Context, cfg CookieConfig) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", cfg.Secure, true)
}

// SessionAuth gates admin routes on a usable database-backed session.
//
// Failure branches have paired side effects: whenever the client cookie is
// cleared, any server-side session it pointed at is revoked in the same
// branch. Clearing one without the other would leave either a client
// resending a dead token or a ghost session nobody can present.
func SessionAuth(sessions *services.SessionService, users *services.UserService, cfg CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
			c.Abort()
			return
		}

		session, err := sessions.FindByToken(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, services.ErrSessionNotFound) {
				// Stale client: stop it resending a dead token
				ClearSessionCookie(c, cfg)
			} else {
				// Persistence failure is never "authenticated by default"
				log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("session lookup failed")
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			c.Abort()
			return
		}

		user, err := users.GetByID(c.Request.Context(), session.UserID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				// Account is gone: revoke the orphaned session and drop the
				// cookie together
				if _, invErr := sessions.InvalidateSession(c.Request.Context(), token); invErr != nil {
					log.Error().Err(invErr).Msg("failed to invalidate orphaned session")
				}
				ClearSessionCookie(c, cfg)
			} else {
				log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("session user lookup failed")
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, user.ID.String())
		c.Next()
	}
}
