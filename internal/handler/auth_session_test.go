package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/DiveshR/property-booking-api/internal/auth"
	"github.com/DiveshR/property-booking-api/internal/config"
	"github.com/DiveshR/property-booking-api/internal/model"
	"github.com/DiveshR/property-booking-api/internal/utils"
)

// memUserReader serves seeded accounts to the login/refresh handlers.
type memUserReader struct{ users []model.User }

func (m *memUserReader) GetByEmail(_ context.Context, email string) (model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, sql.ErrNoRows
}

func (m *memUserReader) GetByID(_ context.Context, id uint64) (model.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, sql.ErrNoRows
}

type memSession struct {
	userID  uint64
	exp     time.Time
	revoked bool
}

// memTokenStore keeps refresh sessions keyed by hash, with an injectable
// revocation failure for the rotation error path.
type memTokenStore struct {
	sessions  map[string]*memSession
	revokeErr error
}

func newMemTokenStore() *memTokenStore {
	return &memTokenStore{sessions: map[string]*memSession{}}
}

func (m *memTokenStore) StoreRefresh(_ context.Context, userID uint64, tokenHash string, exp time.Time) error {
	m.sessions[tokenHash] = &memSession{userID: userID, exp: exp}
	return nil
}

func (m *memTokenStore) ValidateRefresh(_ context.Context, tokenHash string) (uint64, error) {
	s, ok := m.sessions[tokenHash]
	if !ok || s.revoked || time.Now().UTC().After(s.exp) {
		return 0, sql.ErrNoRows
	}
	return s.userID, nil
}

func (m *memTokenStore) RevokeByHash(_ context.Context, tokenHash string) error {
	if m.revokeErr != nil {
		return m.revokeErr
	}
	if s, ok := m.sessions[tokenHash]; ok {
		s.revoked = true
	}
	return nil
}

func (m *memTokenStore) RevokeAllForUser(_ context.Context, userID uint64) error {
	if m.revokeErr != nil {
		return m.revokeErr
	}
	for _, s := range m.sessions {
		if s.userID == userID {
			s.revoked = true
		}
	}
	return nil
}

func (m *memTokenStore) live() int {
	n := 0
	for _, s := range m.sessions {
		if !s.revoked {
			n++
		}
	}
	return n
}

const sessionPassword = "correct-horse-battery"

func newSessionAuthHandler(t *testing.T) (*AuthHandler, *memTokenStore) {
	t.Helper()
	hash, err := utils.HashPassword(sessionPassword, 4)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	users := &memUserReader{users: []model.User{
		{ID: 1, Name: "bob", Email: "bob@gmail.com", PasswordHash: hash, RoleID: auth.RoleUser},
	}}
	tokens := newMemTokenStore()
	cfg := config.Config{JWTSecret: "test-secret", AccessTTLMin: 15, RefreshTTLDays: 7, BcryptCost: 4}
	return NewAuthHandler(cfg, nil, users, tokens), tokens
}

func postAuth(t *testing.T, fn echo.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := fn(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func decodeTokenPair(t *testing.T, rec *httptest.ResponseRecorder) (access, refresh string) {
	t.Helper()
	var resp struct {
		Access  struct{ Token string }
		Refresh struct{ Token string }
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.Access.Token, resp.Refresh.Token
}

func loginBody(password string) string {
	b, _ := json.Marshal(map[string]string{"email": "bob@gmail.com", "password": password})
	return string(b)
}

func refreshBody(token string) string {
	b, _ := json.Marshal(map[string]string{"refresh_token": token})
	return string(b)
}

func TestLoginReturnsTokenPair(t *testing.T) {
	h, tokens := newSessionAuthHandler(t)
	rec := postAuth(t, h.Login, "/v1/auth/login", loginBody(sessionPassword))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	access, refresh := decodeTokenPair(t, rec)
	if access == "" || refresh == "" {
		t.Fatal("expected non-empty access and refresh tokens")
	}
	if got := tokens.live(); got != 1 {
		t.Fatalf("live sessions = %d, want 1", got)
	}
	if _, ok := tokens.sessions[utils.HashRefreshRaw(refresh)]; !ok {
		t.Fatal("refresh token must be stored by hash, not raw")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	h, tokens := newSessionAuthHandler(t)
	if rec := postAuth(t, h.Login, "/v1/auth/login", loginBody("wrong-password")); rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password status = %d, want 401", rec.Code)
	}
	body, _ := json.Marshal(map[string]string{"email": "nobody@gmail.com", "password": sessionPassword})
	if rec := postAuth(t, h.Login, "/v1/auth/login", string(body)); rec.Code != http.StatusUnauthorized {
		t.Fatalf("unknown email status = %d, want 401", rec.Code)
	}
	if got := tokens.live(); got != 0 {
		t.Fatalf("live sessions = %d, want 0 after failed logins", got)
	}
}

func TestRefreshRotatesSession(t *testing.T) {
	h, _ := newSessionAuthHandler(t)
	_, oldRefresh := decodeTokenPair(t, postAuth(t, h.Login, "/v1/auth/login", loginBody(sessionPassword)))

	rec := postAuth(t, h.Refresh, "/v1/auth/refresh", refreshBody(oldRefresh))
	if rec.Code != http.StatusOK {
		t.Fatalf("refresh status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	access, newRefresh := decodeTokenPair(t, rec)
	if access == "" || newRefresh == "" {
		t.Fatal("expected a fresh token pair")
	}
	if newRefresh == oldRefresh {
		t.Fatal("rotation must issue a different refresh token")
	}

	// The rotated-out token is dead: replaying it must fail.
	if rec := postAuth(t, h.Refresh, "/v1/auth/refresh", refreshBody(oldRefresh)); rec.Code != http.StatusUnauthorized {
		t.Fatalf("replayed refresh status = %d, want 401", rec.Code)
	}
	// The new one works.
	if rec := postAuth(t, h.Refresh, "/v1/auth/refresh", refreshBody(newRefresh)); rec.Code != http.StatusOK {
		t.Fatalf("new refresh status = %d, want 200", rec.Code)
	}
}

func TestRefreshAbortsWhenRevokeFails(t *testing.T) {
	h, tokens := newSessionAuthHandler(t)
	_, refresh := decodeTokenPair(t, postAuth(t, h.Login, "/v1/auth/login", loginBody(sessionPassword)))

	tokens.revokeErr = fmt.Errorf("update failed")
	rec := postAuth(t, h.Refresh, "/v1/auth/refresh", refreshBody(refresh))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500 when the old session cannot be closed", rec.Code)
	}
	// No second live token may exist alongside the old one.
	if got := tokens.live(); got != 1 {
		t.Fatalf("live sessions = %d, want 1 (the original)", got)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	h, tokens := newSessionAuthHandler(t)
	_, refresh := decodeTokenPair(t, postAuth(t, h.Login, "/v1/auth/login", loginBody(sessionPassword)))

	rec := postAuth(t, h.Logout, "/v1/auth/logout", refreshBody(refresh))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("logout status = %d, want 204", rec.Code)
	}
	if got := tokens.live(); got != 0 {
		t.Fatalf("live sessions = %d, want 0 after logout", got)
	}
	if rec := postAuth(t, h.Refresh, "/v1/auth/refresh", refreshBody(refresh)); rec.Code != http.StatusUnauthorized {
		t.Fatalf("refresh after logout status = %d, want 401", rec.Code)
	}
}
