package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/watertight-recruitment/recruitment-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService manages administrator accounts.
type UserService struct {
	DB *gorm.DB
	// Cost is the bcrypt work factor for new passwords.
	Cost int
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db, Cost: bcrypt.DefaultCost}
}

func (s *UserService) AddUser(ctx context.Context, name, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.Cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &models.User{Name: name, PasswordHash: string(hash)}
	if err := s.DB.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("add user %s: %w", name, err)
	}
	return user, nil
}

// EnsureUser creates the account unless one with that name already exists.
// An existing account keeps its password.
func (s *UserService) EnsureUser(ctx context.Context, name, password string) (*models.User, bool, error) {
	existing, err := s.GetByName(ctx, name)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}
	user, err := s.AddUser(ctx, name, password)
	if err != nil {
		return nil, false, err
	}
	return user, true, nil
}

// Authenticate checks a name and password. Unknown names and wrong passwords
// both give ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, name, password string) (*models.User, error) {
	user, err := s.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.first(ctx, "id = ?", id)
}

func (s *UserService) GetByName(ctx context.Context, name string) (*models.User, error) {
	return s.first(ctx, "name = ?", name)
}

func (s *UserService) first(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Where(query, arg).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}
