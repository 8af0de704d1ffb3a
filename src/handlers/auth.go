package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/PerHac13/ashaikh/src/middleware"
	"github.com/PerHac13/ashaikh/src/services"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles login, logout, and session checks
type AuthHandler struct {
	users      *services.UserService
	sessions   *services.SessionService
	cookieCfg  middleware.CookieConfig
	sessionTTL time.Duration
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(users *services.UserService, sessions *services.SessionService, cookieCfg middleware.CookieConfig, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		users:      users,
		sessions:   sessions,
		cookieCfg:  cookieCfg,
		sessionTTL: sessionTTL,
	}
}

// LoginRequest represents the login request body. Length bounds reject
// obviously malformed input before any hashing work.
type LoginRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6,max=100"`
}

// HandleLogin authenticates the admin and issues a session cookie
func (ah *AuthHandler) HandleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid request body",
		})
		return
	}

	user, err := ah.users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// Same message for unknown user and wrong password
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "invalid credentials",
			})
			return
		}
		log.Error().Err(err).Msg("login failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "operation failed",
		})
		return
	}

	session, err := ah.sessions.CreateSession(
		c.Request.Context(),
		user.ID,
		c.Request.UserAgent(),
		c.ClientIP(),
		ah.sessionTTL,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to create session")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "operation failed",
		})
		return
	}

	middleware.SetSessionCookie(c, ah.cookieCfg, session.Token)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user_id": user.ID,
	})
}

// HandleLogout invalidates the presented session and clears the cookie.
// Never fails visibly: the cookie is cleared and 200 returned whether or not
// a matching session existed.
func (ah *AuthHandler) HandleLogout(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookieName)
	if err == nil && token != "" {
		if _, err := ah.sessions.InvalidateSession(c.Request.Context(), token); err != nil {
			log.Error().Err(err).Msg("failed to invalidate session on logout")
		}
	}

	middleware.ClearSessionCookie(c, ah.cookieCfg)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}

// HandleSessionCheck reports whether the request carries a usable session.
// Mirrors the auth middleware's side-effect pairing: a dead cookie is
// cleared, and an orphaned session (user deleted) is revoked server-side in
// the same branch that clears the cookie.
func (ah *AuthHandler) HandleSessionCheck(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookieName)
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false})
		return
	}

	session, err := ah.sessions.FindByToken(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			middleware.ClearSessionCookie(c, ah.cookieCfg)
		} else {
			log.Error().Err(err).Msg("session check lookup failed")
		}
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false})
		return
	}

	user, err := ah.users.GetByID(c.Request.Context(), session.UserID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			if _, invErr := ah.sessions.InvalidateSession(c.Request.Context(), token); invErr != nil {
				log.Error().Err(invErr).Msg("failed to invalidate orphaned session")
			}
			middleware.ClearSessionCookie(c, ah.cookieCfg)
		} else {
			log.Error().Err(err).Msg("session check user lookup failed")
		}
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":   true,
		"user_id": user.ID,
	})
}
