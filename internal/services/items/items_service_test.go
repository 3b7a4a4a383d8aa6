package items

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/rajivgeraev/rewear-web/internal/rewear"
	"github.com/rajivgeraev/rewear-web/internal/session"
)

// newBrowseApp поднимает шлюз поверх заглушки бэкенда, у которой
// можно сломать любой из трех запросов страницы каталога
func newBrowseApp(t *testing.T, failTrending bool) *fiber.App {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/items/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 1, "title": "Denim Jacket", "condition": "good"}]`))
	})
	mux.HandleFunc("GET /api/v1/items/categories/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 1, "name": "Outerwear"}]`))
	})
	mux.HandleFunc("GET /api/v1/items/trending", func(w http.ResponseWriter, r *http.Request) {
		if failTrending {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"detail": "trending unavailable"}`))
			return
		}
		w.Write([]byte(`[{"id": 2, "title": "Wool Scarf", "condition": "new"}]`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	api := rewear.New(srv.URL)
	sessions := session.NewManager(api, session.NewMemoryStore())

	app := fiber.New()
	NewItemsService(api, sessions).SetupRoutes(app)
	return app
}

func TestBrowseAggregatesAllSources(t *testing.T) {
	app := newBrowseApp(t, false)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/browse", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body struct {
		Items      []json.RawMessage `json:"items"`
		Categories []json.RawMessage `json:"categories"`
		Trending   []json.RawMessage `json:"trending"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Items) != 1 || len(body.Categories) != 1 || len(body.Trending) != 1 {
		t.Errorf("items=%d categories=%d trending=%d, want 1 each",
			len(body.Items), len(body.Categories), len(body.Trending))
	}
}

func TestBrowseFailsWholeOnAnySubFailure(t *testing.T) {
	app := newBrowseApp(t, true)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/browse", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Test: %v", err)
	}
	// Частичный успех не отдается: страница целиком неуспешна
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusInternalServerError)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := body["items"]; ok {
		t.Error("partial payload leaked into failed response")
	}
	if _, ok := body["error"]; !ok {
		t.Error("missing error message")
	}
}
