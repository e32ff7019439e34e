package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mysql "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"airsense/internal/models"
)

const duplicateKeyErr = 1062

type MySQLStore struct {
	db *sql.DB
}

func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

func (s *MySQLStore) Create(ctx context.Context, u *models.User) error {
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash, health_profile, preferences, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.PasswordHash, nullableJSON(u.HealthProfile), nullableJSON(u.Preferences), u.CreatedAt,
	)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == duplicateKeyErr {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *MySQLStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.scanOne(s.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, health_profile, preferences, last_login_at, created_at
		 FROM users WHERE email = ?`, email))
}

func (s *MySQLStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	return s.scanOne(s.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, health_profile, preferences, last_login_at, created_at
		 FROM users WHERE id = ?`, id))
}

func (s *MySQLStore) TouchLastLogin(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE users SET last_login_at = ? WHERE id = ?`, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("touch last login: %w", err)
	}
	return requireRow(res)
}

func (s *MySQLStore) UpdateProfile(ctx context.Context, id string, health, prefs json.RawMessage) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE users
		 SET health_profile = COALESCE(?, health_profile),
		     preferences   = COALESCE(?, preferences)
		 WHERE id = ?`,
		nullableJSON(health), nullableJSON(prefs), id,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return requireRow(res)
}

func (s *MySQLStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return requireRow(res)
}

func (s *MySQLStore) scanOne(row *sql.Row) (*models.User, error) {
	var u models.User
	var health, prefs []byte
	var lastLogin sql.NullTime
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &health, &prefs, &lastLogin, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	u.HealthProfile = json.RawMessage(health)
	u.Preferences = json.RawMessage(prefs)
	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLoginAt = &t
	}
	return &u, nil
}

// requireRow relies on clientFoundRows being set on the connection (see
// database.Connect), so RowsAffected counts matched rows and a no-op update
// on an existing user is not reported as ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// nullableJSON maps an absent blob to SQL NULL instead of the empty string.
func nullableJSON(b json.RawMessage) interface{} {
	if len(b) == 0 {
		return nil
	}
	return []byte(b)
}
