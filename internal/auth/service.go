// Package auth handles staff account registration and login.
package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"dugunsalon/internal/database"
	"dugunsalon/internal/models"
)

// ErrInvalidCredentials is returned when username/password don't match.
var ErrInvalidCredentials = errors.New("Kullanıcı adı veya şifre hatalı!")

// RegisterError carries a user-facing registration failure message.
type RegisterError struct {
	Message string
}

func (e *RegisterError) Error() string { return e.Message }

// UserStore provides account persistence.
type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) (int64, error)
	UserByUsername(ctx context.Context, username string) (*models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Service provides registration and login over a user store.
type Service struct {
	store UserStore
}

// NewService creates an auth service.
func NewService(store UserStore) *Service {
	return &Service{store: store}
}

// RegisterInput is the registration payload.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Phone1   string `json:"phone1,omitempty"`
	Phone2   string `json:"phone2,omitempty"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	District string `json:"district,omitempty"`
}

// Register creates a new staff account. Usernames and emails are unique.
func (s *Service) Register(ctx context.Context, in RegisterInput) (int64, error) {
	if in.Username == "" || in.Password == "" || in.Email == "" || in.Name == "" {
		return 0, &RegisterError{Message: "Ad, email, kullanıcı adı ve şifre zorunludur."}
	}

	if _, err := s.store.UserByUsername(ctx, in.Username); err == nil {
		return 0, &RegisterError{Message: "Bu kullanıcı adı zaten kullanılıyor!"}
	} else if !errors.Is(err, database.ErrNotFound) {
		return 0, fmt.Errorf("check username: %w", err)
	}

	if _, err := s.store.UserByEmail(ctx, in.Email); err == nil {
		return 0, &RegisterError{Message: "Bu email adresi zaten kayıtlı!"}
	} else if !errors.Is(err, database.ErrNotFound) {
		return 0, fmt.Errorf("check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.store.CreateUser(ctx, &models.User{
		Name:         in.Name,
		Email:        in.Email,
		Phone1:       in.Phone1,
		Phone2:       in.Phone2,
		Address:      in.Address,
		City:         in.City,
		District:     in.District,
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         models.RoleStaff,
	})
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

// Login verifies credentials and returns the account on success.
func (s *Service) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.store.UserByUsername(ctx, username)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
