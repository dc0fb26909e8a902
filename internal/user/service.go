package user

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nekogravitycat/auditorium-booking-backend/internal/auth"
)

// Service defines business logic related to users.
type Service interface {
	Register(ctx context.Context, username, email, password string) (*User, error)
	// Login accepts either the username or the email address.
	Login(ctx context.Context, login, password string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

var usernamePattern = regexp.MustCompile(`^[\w.@+-]{1,150}$`)

type service struct {
	repo   Repository
	hasher auth.PasswordHasher
	logger *zap.Logger

	minPasswordLength int
}

// NewService creates a new user Service.
func NewService(repo Repository, hasher auth.PasswordHasher, logger *zap.Logger) Service {
	return &service{
		repo:              repo,
		hasher:            hasher,
		logger:            logger,
		minPasswordLength: 8,
	}
}

func (s *service) Register(ctx context.Context, username, email, password string) (*User, error) {
	cleanUsername := strings.TrimSpace(username)
	if !usernamePattern.MatchString(cleanUsername) {
		return nil, ErrInvalidUsername
	}

	cleanEmail := normalizeEmail(email)
	if cleanEmail == "" {
		return nil, ErrEmailRequired
	}

	if len(password) < s.minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	// Check if the username or email is already used.
	if _, err := s.repo.GetByUsername(ctx, cleanUsername); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing username: %w", err)
	}
	if _, err := s.repo.GetByEmail(ctx, cleanEmail); err == nil {
		return nil, ErrEmailAlreadyUsed
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &User{
		Username:     cleanUsername,
		Email:        cleanEmail,
		PasswordHash: hash,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *service) Login(ctx context.Context, login, password string) (*User, error) {
	login = strings.TrimSpace(login)
	if login == "" || strings.TrimSpace(password) == "" {
		return nil, ErrInvalidCredentials
	}

	var (
		u   *User
		err error
	)
	if strings.Contains(login, "@") {
		u, err = s.repo.GetByEmail(ctx, normalizeEmail(login))
	}
	if u == nil && (err == nil || errors.Is(err, ErrNotFound)) {
		u, err = s.repo.GetByUsername(ctx, login)
	}
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	if !u.IsActive {
		return nil, ErrInactiveUser
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Best effort; a failed timestamp update does not fail the login.
	now := time.Now().UTC()
	if err := s.repo.UpdateLastLogin(ctx, u.ID, now); err != nil {
		s.logger.Warn("failed to update last login", zap.String("user_id", u.ID), zap.Error(err))
	} else {
		u.LastLoginAt = &now
	}

	return u, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// normalizeEmail trims spaces and lowercases the email.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
