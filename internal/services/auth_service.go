package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"contact-form-server/internal/models"
	"contact-form-server/internal/repo"
	"contact-form-server/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

const (
	MsgInvalidCredentials = "Invalid credentials"
	MsgMissingCredentials = "username and password are required"
	MsgUsernameTaken      = "username already exists"
)

type UserStore interface {
	Create(ctx context.Context, username, passwordHash string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

type AuthService struct {
	users  UserStore
	tokens *TokenManager
	cost   int
}

func NewAuthService(users UserStore, tokens *TokenManager, bcryptCost int) *AuthService {
	return &AuthService{users: users, tokens: tokens, cost: bcryptCost}
}

func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, utils.NewValidationError(MsgMissingCredentials)
	}

	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if exists {
		return nil, utils.NewConflictError(MsgUsernameTaken)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, username, string(hash))
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, utils.NewConflictError(MsgUsernameTaken)
		}
		return nil, fmt.Errorf("register: %w", err)
	}
	return user, nil
}

// Login returns a signed session token. Unknown usernames and wrong passwords
// produce the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", utils.NewAuthError(MsgInvalidCredentials)
		}
		return "", fmt.Errorf("login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", utils.NewAuthError(MsgInvalidCredentials)
	}

	return s.tokens.Issue(user.ID)
}
