package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/watertight-recruitment/recruitment-backend/internal/models"
	"gorm.io/gorm"
)

// SessionService keeps logins server side. The client only holds the token.
type SessionService struct {
	DB  *gorm.DB
	TTL time.Duration
	Now func() time.Time
}

func NewSessionService(db *gorm.DB, ttl time.Duration) *SessionService {
	return &SessionService{DB: db, TTL: ttl, Now: time.Now}
}

// Create starts a session for the user and returns its token.
func (s *SessionService) Create(ctx context.Context, userID uint) (*models.Session, error) {
	now := s.Now()
	session := &models.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.TTL),
	}
	if err := s.DB.WithContext(ctx).Create(session).Error; err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

// Resolve returns the live session for a token. Expired sessions are removed.
func (s *SessionService) Resolve(ctx context.Context, token string) (*models.Session, error) {
	if _, err := uuid.Parse(token); err != nil {
		return nil, ErrSessionNotFound
	}

	db := s.DB.WithContext(ctx)
	var session models.Session
	err := db.Where("token = ?", token).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolve session: %w", err)
	}

	if !s.Now().Before(session.ExpiresAt) {
		if err := db.Delete(&session).Error; err != nil {
			return nil, fmt.Errorf("drop expired session: %w", err)
		}
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

// Revoke ends a session. Unknown tokens are ignored.
func (s *SessionService) Revoke(ctx context.Context, token string) error {
	if err := s.DB.WithContext(ctx).Where("token = ?", token).Delete(&models.Session{}).Error; err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// PurgeExpired deletes every session past its expiry.
func (s *SessionService) PurgeExpired(ctx context.Context) (int64, error) {
	res := s.DB.WithContext(ctx).Where("expires_at <= ?", s.Now()).Delete(&models.Session{})
	if res.Error != nil {
		return 0, fmt.Errorf("purge sessions: %w", res.Error)
	}
	return res.RowsAffected, nil
}
