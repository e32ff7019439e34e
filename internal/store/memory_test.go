package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"airsense/internal/models"
)

func newUser(email string) *models.User {
	return &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "$2a$10$fakefakefakefakefakefa",
	}
}

func TestMemoryStore_CreateAndFind(t *testing.T) {
	t.Parallel()
	s := NewMemoryStore()
	ctx := context.Background()

	u := newUser("a@x.com")
	require.NoError(t, s.Create(ctx, u))
	require.NotEmpty(t, u.ID)
	require.False(t, u.CreatedAt.IsZero())

	byEmail, err := s.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)

	byID, err := s.FindByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", byID.Email)
}

func TestMemoryStore_DuplicateEmail(t *testing.T) {
	t.Parallel()
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, newUser("a@x.com")))
	err := s.Create(ctx, newUser("a@x.com"))
	require.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestMemoryStore_TouchLastLogin(t *testing.T) {
	t.Parallel()
	s := NewMemoryStore()
	ctx := context.Background()

	u := newUser("a@x.com")
	require.NoError(t, s.Create(ctx, u))
	require.Nil(t, u.LastLoginAt)

	require.NoError(t, s.TouchLastLogin(ctx, u.ID))
	got, err := s.FindByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastLoginAt)

	require.ErrorIs(t, s.TouchLastLogin(ctx, "missing"), ErrNotFound)
}

func TestMemoryStore_UpdateProfile(t *testing.T) {
	t.Parallel()
	s := NewMemoryStore()
	ctx := context.Background()

	u := newUser("a@x.com")
	require.NoError(t, s.Create(ctx, u))

	health := json.RawMessage(`{"age":34,"conditions":["asthma"]}`)
	require.NoError(t, s.UpdateProfile(ctx, u.ID, health, nil))

	got, err := s.FindByID(ctx, u.ID)
	require.NoError(t, err)
	require.JSONEq(t, string(health), string(got.HealthProfile))
	require.Empty(t, got.Preferences)
}

func TestMemoryStore_Delete(t *testing.T) {
	t.Parallel()
	s := NewMemoryStore()
	ctx := context.Background()

	u := newUser("a@x.com")
	require.NoError(t, s.Create(ctx, u))
	require.NoError(t, s.Delete(ctx, u.ID))

	_, err := s.FindByID(ctx, u.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, s.Delete(ctx, u.ID), ErrNotFound)
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()
	require.Equal(t, "a@x.com", NormalizeEmail("  A@X.Com "))
}
