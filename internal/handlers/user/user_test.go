package user_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"airsense/internal/server"
	"airsense/internal/store"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	srv := server.NewServer(":0", store.NewMemoryStore(), "test-secret", time.Hour, log)
	return srv.Router()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func signup(t *testing.T, r http.Handler, email string) string {
	t.Helper()
	rec := doJSON(t, r, http.MethodPost, "/api/auth/signup", map[string]string{
		"name": "Alice", "email": email, "password": "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func TestProfileUpdate(t *testing.T) {
	t.Parallel()
	r := newTestRouter(t)
	token := signup(t, r, "a@x.com")

	body := map[string]interface{}{
		"health_profile": map[string]interface{}{"age": 34, "sensitivity": "high"},
		"preferences": map[string]interface{}{
			"alerts": true,
			"location": map[string]interface{}{
				"lat": 40.71, "lon": -74.0, "city": "New York",
			},
		},
	}
	rec := doJSON(t, r, http.MethodPut, "/api/user/profile", body, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/auth/me", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data struct {
			User struct {
				HealthProfile json.RawMessage `json:"health_profile"`
				Preferences   json.RawMessage `json:"preferences"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Contains(t, string(resp.Data.User.HealthProfile), `"sensitivity":"high"`)
	require.Contains(t, string(resp.Data.User.Preferences), `"city":"New York"`)
}

func TestProfileUpdate_EmptyBody(t *testing.T) {
	t.Parallel()
	r := newTestRouter(t)
	token := signup(t, r, "a@x.com")

	rec := doJSON(t, r, http.MethodPut, "/api/user/profile", map[string]interface{}{}, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProfileUpdate_RequiresAuth(t *testing.T) {
	t.Parallel()
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPut, "/api/user/profile", map[string]interface{}{
		"preferences": map[string]interface{}{"alerts": false},
	}, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAccountDelete(t *testing.T) {
	t.Parallel()
	r := newTestRouter(t)
	token := signup(t, r, "a@x.com")

	rec := doJSON(t, r, http.MethodDelete, "/api/user/account", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	// Token still validates but the account is gone.
	rec = doJSON(t, r, http.MethodGet, "/api/auth/me", nil, token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Login with the deleted account's credentials fails like any bad login.
	rec = doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "a@x.com", "password": "secret123",
	}, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// The email is free again.
	signup(t, r, "a@x.com")
}
