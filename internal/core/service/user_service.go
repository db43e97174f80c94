package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/campusgo/campus-market/internal/core/domain"
	"github.com/campusgo/campus-market/internal/port"
)

type UserService struct {
	users port.UserRepository
}

func NewUserService(users port.UserRepository) *UserService {
	return &UserService{users: users}
}

// Register stores the user with a bcrypt hash of the password.
func (s *UserService) Register(ctx context.Context, username, password, email string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.users.CreateUser(ctx, username, string(hash), email)
	if err != nil {
		return nil, err
	}
	return &domain.User{ID: id, Username: username, Email: email}, nil
}

// Login verifies the password against the stored hash. An unknown username
// and a wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	u, err := s.users.GetUserByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return u, nil
}
