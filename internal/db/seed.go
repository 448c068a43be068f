package db

import (
	"context"
	"fmt"

	"contact-form-server/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type SeedStore interface {
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, username, passwordHash string) (*models.User, error)
}

// EnsureSeedUser creates the bootstrap account unless one with the same
// username already exists. It reports whether a user was inserted.
func EnsureSeedUser(ctx context.Context, users SeedStore, username, password string, cost int) (bool, error) {
	exists, err := users.ExistsByUsername(ctx, username)
	if err != nil {
		return false, fmt.Errorf("check seed user: %w", err)
	}
	if exists {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return false, fmt.Errorf("hash seed password: %w", err)
	}

	if _, err := users.Create(ctx, username, string(hash)); err != nil {
		return false, fmt.Errorf("insert seed user %s: %w", username, err)
	}

	return true, nil
}
