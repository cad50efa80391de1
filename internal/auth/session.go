package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/watertight-recruitment/recruitment-backend/internal/models"
	"github.com/watertight-recruitment/recruitment-backend/internal/services"
	"go.uber.org/zap"
)

// CookieName holds the session token on the client.
const CookieName = "session"

const userKey = "auth.user"

// SessionResolver turns a session token into its live session.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*models.Session, error)
}

// UserFinder loads the account a session belongs to. A nil user means the
// account is gone.
type UserFinder interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

// RequireUser rejects the request with 401 unless it carries a live session
// whose user still exists. The user is stored on the context for CurrentUser.
func RequireUser(sessions SessionResolver, users UserFinder, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}

		session, err := sessions.Resolve(c.Request.Context(), token)
		if errors.Is(err, services.ErrSessionNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		if err != nil {
			logger.Error("resolve session failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		user, err := users.GetByID(c.Request.Context(), session.UserID)
		if err != nil {
			logger.Error("load session user failed", zap.Uint("user_id", session.UserID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by RequireUser, or nil outside it.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

// SetSessionCookie hands the token to the browser as an HttpOnly cookie.
func SetSessionCookie(c *gin.Context, session *models.Session, secure bool) {
	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, session.Token, maxAge, "/", "", secure, true)
}

func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", secure, true)
}
