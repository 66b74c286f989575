// Package accounts handles user registration and credential checks.
package accounts

import (
	"context"

	"auction-market/internal/auth"
	"auction-market/internal/database"
	"auction-market/pkg/errors"
	"auction-market/pkg/types"

	"github.com/charmbracelet/log"
)

type Service struct {
	db database.Service
}

func New(db database.Service) *Service {
	return &Service{db: db}
}

// Register creates a new user with a hashed credential. A duplicate username
// fails with ErrUsernameTaken and leaves the existing user untouched.
func (s *Service) Register(ctx context.Context, username, email, password, role string) (types.User, error) {
	if username == "" || email == "" || password == "" {
		return types.User{}, errors.New(errors.ErrInvalidCredentials, "username, email and password are required")
	}
	if !types.ValidRole(role) {
		return types.User{}, errors.Newf(errors.ErrInvalidRole, "unknown role %q", role)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return types.User{}, err
	}

	user, err := s.db.CreateUser(ctx, types.User{
		Username: username,
		Email:    email,
		Password: hash,
		Role:     role,
	})
	if err != nil {
		return types.User{}, err
	}

	log.Info("User registered", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// Authenticate verifies a username/password pair. Unknown users and wrong
// passwords are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, username, password string) (types.User, error) {
	if username == "" || password == "" {
		return types.User{}, errors.New(errors.ErrInvalidCredentials, "invalid username or password")
	}

	user, err := s.db.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.IsNotFound(err) {
			return types.User{}, errors.New(errors.ErrInvalidCredentials, "invalid username or password")
		}
		return types.User{}, err
	}

	if err := auth.CheckPassword(user.Password, password); err != nil {
		return types.User{}, err
	}

	return user, nil
}
