package store

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"airsense/internal/models"
)

var (
	// ErrDuplicateEmail means the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrNotFound means no user matched the lookup.
	ErrNotFound = errors.New("user not found")
)

// Store is the credential store. Emails are compared case-insensitively;
// callers pass them through NormalizeEmail first.
type Store interface {
	// Create inserts a new user. ID and CreatedAt are assigned by the store.
	// Returns ErrDuplicateEmail if the email is taken; concurrent signups with
	// the same email race at the unique index and exactly one wins.
	Create(ctx context.Context, u *models.User) error

	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)

	// TouchLastLogin stamps last_login_at with the current time.
	TouchLastLogin(ctx context.Context, id string) error

	// UpdateProfile replaces the opaque profile blobs. Nil leaves a blob unchanged.
	UpdateProfile(ctx context.Context, id string, health, prefs json.RawMessage) error

	// Delete removes the user permanently. No soft-delete.
	Delete(ctx context.Context, id string) error
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
