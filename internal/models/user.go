package models

import (
	"encoding/json"
	"time"
)

// User is the single persisted record of the service. HealthProfile and
// Preferences are opaque JSON documents owned by the frontend; the auth flow
// never looks inside them.
type User struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	PasswordHash  string          `json:"-"`
	HealthProfile json.RawMessage `json:"health_profile,omitempty"`
	Preferences   json.RawMessage `json:"preferences,omitempty"`
	LastLoginAt   *time.Time      `json:"last_login_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
