package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rajivgeraev/rewear-web/internal/rewear"
)

// stubBackend представляет минимальный бэкенд для сценариев жизненного цикла сессии
type stubBackend struct {
	requests      atomic.Int64
	failDashboard bool
	failLogout    bool
	revoked       atomic.Bool
}

func (b *stubBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		b.requests.Add(1)
		r.ParseForm()
		if r.PostForm.Get("password") != "secret123" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail": "Incorrect username or password"}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"access_token": "tok-1", "token_type": "bearer"})
	})
	mux.HandleFunc("GET /api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		b.requests.Add(1)
		if b.revoked.Load() || r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail": "Could not validate credentials"}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"id": 7, "email": "a@b.co", "username": "alice"})
	})
	mux.HandleFunc("GET /api/v1/users/me/dashboard", func(w http.ResponseWriter, r *http.Request) {
		b.requests.Add(1)
		if b.failDashboard {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"detail": "dashboard unavailable"}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"user":       map[string]any{"id": 7, "username": "alice"},
			"statistics": map[string]any{"points_balance": 340},
		})
	})
	mux.HandleFunc("POST /api/v1/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		b.requests.Add(1)
		if b.failLogout {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"detail": "logout failed"}`))
			return
		}
		w.Write([]byte(`{"message": "ok"}`))
	})
	return mux
}

func newTestManager(t *testing.T, b *stubBackend) (*Manager, *MemoryStore) {
	t.Helper()
	srv := httptest.NewServer(b.handler())
	t.Cleanup(srv.Close)
	store := NewMemoryStore()
	return NewManager(rewear.New(srv.URL), store), store
}

func TestLoginEstablishesSession(t *testing.T) {
	m, store := newTestManager(t, &stubBackend{})

	sess, err := m.Login(context.Background(), "alice", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !sess.IsAuthenticated() {
		t.Fatalf("State = %s, User = %v", sess.State, sess.User)
	}
	if sess.User.Username != "alice" {
		t.Errorf("Username = %q", sess.User.Username)
	}
	if sess.Points != 340 || sess.PointsStale {
		t.Errorf("Points = %d (stale=%v), want 340", sess.Points, sess.PointsStale)
	}

	stored, ok := store.Get(context.Background(), "tok-1")
	if !ok || !stored.IsAuthenticated() {
		t.Error("session was not persisted")
	}
}

func TestLoginBadCredentials(t *testing.T) {
	m, _ := newTestManager(t, &stubBackend{})

	if _, err := m.Login(context.Background(), "alice", "wrong"); err == nil {
		t.Fatal("expected error")
	}
}

func TestDashboardFailureMarksPointsStale(t *testing.T) {
	m, _ := newTestManager(t, &stubBackend{failDashboard: true})

	sess, err := m.Login(context.Background(), "alice", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	// Сбой баллов не ломает аутентификацию
	if !sess.IsAuthenticated() {
		t.Fatalf("State = %s", sess.State)
	}
	if !sess.PointsStale {
		t.Error("PointsStale = false, want true")
	}
}

func TestLogoutClearsLocalSessionOnBackendFailure(t *testing.T) {
	m, store := newTestManager(t, &stubBackend{failLogout: true})

	if _, err := m.Login(context.Background(), "alice", "secret123"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	err := m.Logout(context.Background(), "tok-1")
	if err == nil {
		t.Error("expected backend error to surface")
	}
	// Локальный выход не блокируется сетевым сбоем
	if _, ok := store.Get(context.Background(), "tok-1"); ok {
		t.Error("local session survived logout")
	}
}

func TestAttachEmptyTokenIsAnonymous(t *testing.T) {
	b := &stubBackend{}
	m, _ := newTestManager(t, b)

	sess, err := m.Attach(context.Background(), "")
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if sess.State != StateAnonymous {
		t.Errorf("State = %s", sess.State)
	}
	if n := b.requests.Load(); n != 0 {
		t.Errorf("anonymous attach made %d requests", n)
	}
}

func TestAttachExpiredTokenSkipsNetwork(t *testing.T) {
	b := &stubBackend{}
	m, _ := newTestManager(t, b)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "7",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("irrelevant"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	sess, err := m.Attach(context.Background(), expired)
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if sess.State != StateAnonymous {
		t.Errorf("State = %s, want anonymous", sess.State)
	}
	if n := b.requests.Load(); n != 0 {
		t.Errorf("expired attach made %d requests", n)
	}
}

func TestAttachRevalidatesStoredSession(t *testing.T) {
	b := &stubBackend{}
	m, _ := newTestManager(t, b)

	if _, err := m.Login(context.Background(), "alice", "secret123"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	before := b.requests.Load()

	sess, err := m.Attach(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if !sess.IsAuthenticated() {
		t.Fatalf("State = %s", sess.State)
	}
	// Теплый снимок экономит запрос дашборда, но профиль
	// перепроверяется всегда
	if n := b.requests.Load() - before; n != 1 {
		t.Errorf("attach with warm store made %d requests, want 1 (profile check)", n)
	}
	if sess.Points != 340 {
		t.Errorf("Points = %d, want cached 340", sess.Points)
	}
}

func TestAttachRejectsRevokedToken(t *testing.T) {
	b := &stubBackend{}
	m, _ := newTestManager(t, b)

	if _, err := m.Login(context.Background(), "alice", "secret123"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	// Токен отозван на бэкенде: теплый снимок не спасает
	b.revoked.Store(true)
	if _, err := m.Attach(context.Background(), "tok-1"); err == nil {
		t.Fatal("revoked token attached without error")
	}
}

func TestTokenExpiredLenientOnOpaqueToken(t *testing.T) {
	if tokenExpired("not-a-jwt") {
		t.Error("opaque token treated as expired")
	}

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "7"}).
		SignedString([]byte("irrelevant"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if tokenExpired(noExp) {
		t.Error("token without exp treated as expired")
	}
}
