package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/rajivgeraev/rewear-web/internal/models"
	"github.com/rajivgeraev/rewear-web/internal/notifications"
	"github.com/rajivgeraev/rewear-web/internal/rewear"
	"github.com/rajivgeraev/rewear-web/internal/session"
)

// newNotifyApp поднимает маршруты уведомлений поверх заглушки бэкенда,
// которая узнает единственный токен tok-1 как пользователя 7
func newNotifyApp(t *testing.T) (*fiber.App, *notifications.Manager) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail": "Could not validate credentials"}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"id": 7, "email": "a@b.co", "username": "alice"})
	})
	mux.HandleFunc("GET /api/v1/users/me/dashboard", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"statistics": map[string]any{"points_balance": 10},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	api := rewear.New(srv.URL)
	sessions := session.NewManager(api, session.NewMemoryStore())
	manager := notifications.NewManager()
	t.Cleanup(manager.Shutdown)

	app := fiber.New()
	NewNotifyService(api, sessions, manager).SetupRoutes(app)
	return app, manager
}

func drainOnce(t *testing.T, app *fiber.App) (int, []models.Notification) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications/", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body struct {
		Notifications []models.Notification `json:"notifications"`
		Count         int                   `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return body.Count, body.Notifications
}

func TestListDrainsBufferedOnce(t *testing.T) {
	app, manager := newNotifyApp(t)

	manager.Publish(7, models.Notification{Type: models.NotifySwapAccepted, Message: "accepted"})
	manager.Publish(7, models.Notification{Type: models.NotifyPointsEarned, Message: "+50"})
	// Чужие уведомления не утекают
	manager.Publish(8, models.Notification{Type: models.NotifyWelcome, Message: "other user"})

	count, notes := drainOnce(t, app)
	if count != 2 || len(notes) != 2 {
		t.Fatalf("count = %d, notes = %d, want 2", count, len(notes))
	}
	if notes[0].Message != "accepted" || notes[1].Message != "+50" {
		t.Errorf("notes = %+v", notes)
	}

	// Повторный опрос пуст: буфер отдается один раз
	if count, _ := drainOnce(t, app); count != 0 {
		t.Errorf("second drain count = %d, want 0", count)
	}
}

func TestListRejectsUnknownToken(t *testing.T) {
	app, _ := newNotifyApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications/", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}