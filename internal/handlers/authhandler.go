package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/watertight-recruitment/recruitment-backend/internal/auth"
	"github.com/watertight-recruitment/recruitment-backend/internal/dtos"
	"github.com/watertight-recruitment/recruitment-backend/internal/services"
	"go.uber.org/zap"
)

type AuthHandler struct {
	Users    *services.UserService
	Sessions *services.SessionService
	Logger   *zap.Logger
	// SecureCookies marks the session cookie HTTPS-only.
	SecureCookies bool
}

func NewAuthHandler(users *services.UserService, sessions *services.SessionService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Users: users, Sessions: sessions, Logger: logger}
}

// Login is POST /login with name and password form fields.
func (h *AuthHandler) Login(c *gin.Context) {
	form, err := postedForm(c)
	if err != nil {
		badBody(c, err)
		return
	}
	creds := dtos.BindCredentials(form)
	if creds == nil {
		rejectForm(c, form)
		return
	}

	ctx := c.Request.Context()
	user, err := h.Users.Authenticate(ctx, creds.Name, creds.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		h.Logger.Warn("failed login", zap.String("name", creds.Name), zap.String("ip", c.ClientIP()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect user name or password"})
		return
	}
	if err != nil {
		h.Logger.Error("authenticate failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	session, err := h.Sessions.Create(ctx, user.ID)
	if err != nil {
		h.Logger.Error("create session failed", zap.Uint("user", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	auth.SetSessionCookie(c, session, h.SecureCookies)
	c.JSON(http.StatusOK, gin.H{"name": user.Name, "expires_at": session.ExpiresAt})
}

// Logout is POST /logout. It succeeds whether or not a session was present.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(auth.CookieName); err == nil && token != "" {
		if err := h.Sessions.Revoke(c.Request.Context(), token); err != nil {
			h.Logger.Error("revoke session failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
			return
		}
	}
	auth.ClearSessionCookie(c, h.SecureCookies)
	c.Status(http.StatusNoContent)
}

// Me is GET /manage/me
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, auth.CurrentUser(c))
}

func currentUserName(c *gin.Context) string {
	if u := auth.CurrentUser(c); u != nil {
		return u.Name
	}
	return ""
}
