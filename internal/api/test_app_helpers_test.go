package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sproutworks/ecopods/internal/db"
	"gorm.io/gorm"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "ecopods-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler, err := NewHandler(database, testSecretKey, "", false, 0)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func performJSON(t *testing.T, app *fiber.App, method string, path string, payload any, cookies ...*http.Cookie) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode request payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		request.AddCookie(cookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSONBody(t *testing.T, response *http.Response, target any) {
	t.Helper()

	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func responseCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func readAPIError(t *testing.T, response *http.Response) string {
	t.Helper()

	payload := map[string]string{}
	decodeJSONBody(t, response, &payload)
	return payload["error"]
}

func signInTestUser(t *testing.T, app *fiber.App, name string, email string) *http.Cookie {
	t.Helper()

	response := performJSON(t, app, http.MethodPost, "/api/auth/signin", map[string]any{
		"name":  name,
		"email": email,
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("sign in expected 200, got %d", response.StatusCode)
	}
	response.Body.Close()

	cookie := responseCookie(response.Cookies(), sessionCookieName)
	if cookie == nil || cookie.Value == "" {
		t.Fatal("expected a session cookie after sign in")
	}
	return cookie
}

func unlockTestAdmin(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()

	response := performJSON(t, app, http.MethodPost, "/api/admin/unlock", map[string]any{"pin": "1234"})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("admin unlock expected 200, got %d", response.StatusCode)
	}
	response.Body.Close()

	cookie := responseCookie(response.Cookies(), adminCookieName)
	if cookie == nil || cookie.Value == "" {
		t.Fatal("expected an admin cookie after unlock")
	}
	return cookie
}

func placeTestOrder(t *testing.T, app *fiber.App, session *http.Cookie, payload map[string]any) orderView {
	t.Helper()

	response := performJSON(t, app, http.MethodPost, "/api/orders", payload, session)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create order expected 201, got %d", response.StatusCode)
	}

	view := orderView{}
	decodeJSONBody(t, response, &view)
	return view
}

func defaultOrderPayload() map[string]any {
	return map[string]any{
		"waste_type":  "newspaper",
		"quantity":    1.0,
		"seed":        "tulsi",
		"pods":        10,
		"express":     false,
		"pickup_date": "2026-09-15",
		"paid":        true,
	}
}
