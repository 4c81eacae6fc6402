package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"course_enrollment/internal/models"
	"course_enrollment/internal/repository"
)

// RegisterInput is the payload of a registration.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// AuthService handles registration, login and token checks.
type AuthService struct {
	users  repository.Users
	hasher PasswordHasher
	tokens *TokenManager
}

func NewAuthService(users repository.Users, hasher PasswordHasher, tokens *TokenManager) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Register creates a user unless the username or email is taken.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	existing, err := s.users.FindByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConflict
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{Username: in.Username, Email: in.Email, PasswordHash: hash}
	if err := s.users.Create(ctx, u); err != nil {
		// the unique index caught a concurrent registration
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and issues a token. Unknown users and wrong
// passwords both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if u == nil || !s.hasher.Check(password, u.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.Username)
	if err != nil {
		return "", fmt.Errorf("issue token for %q: %w", u.Username, err)
	}
	return token, nil
}

// ParseToken returns the username carried by accessToken.
func (s *AuthService) ParseToken(accessToken string) (string, error) {
	return s.tokens.Verify(accessToken)
}

func (s *AuthService) TokenTTL() time.Duration {
	return s.tokens.TTL()
}
