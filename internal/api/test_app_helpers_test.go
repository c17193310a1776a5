package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mesflow/internal/db"
	"gorm.io/gorm"
)

const testSecretKey = "test-secret-key-0123456789abcdef"

type testApp struct {
	t        *testing.T
	app      *fiber.App
	handler  *Handler
	database *gorm.DB
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	_, testFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve current test file path")
	}
	templatesDir := filepath.Join(filepath.Dir(filepath.Dir(testFile)), "templates")
	databasePath := filepath.Join(t.TempDir(), "mesflow-api-test.db")

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

	handler, err := NewHandler(database, testSecretKey, templatesDir, time.UTC, false)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return &testApp{t: t, app: app, handler: handler, database: database}
}

func (ta *testApp) do(request *http.Request) *http.Response {
	ta.t.Helper()
	response, err := ta.app.Test(request, -1)
	if err != nil {
		ta.t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	ta.t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func (ta *testApp) get(path string, authCookie string) *http.Response {
	ta.t.Helper()
	request := httptest.NewRequest(http.MethodGet, path, nil)
	if authCookie != "" {
		request.Header.Set("Cookie", authCookieName+"="+authCookie)
	}
	return ta.do(request)
}

func (ta *testApp) getJSON(path string, authCookie string) *http.Response {
	ta.t.Helper()
	request := httptest.NewRequest(http.MethodGet, path, nil)
	request.Header.Set("Accept", "application/json")
	if authCookie != "" {
		request.Header.Set("Cookie", authCookieName+"="+authCookie)
	}
	return ta.do(request)
}

func (ta *testApp) postForm(path string, form url.Values, authCookie string) *http.Response {
	ta.t.Helper()
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if authCookie != "" {
		request.Header.Set("Cookie", authCookieName+"="+authCookie)
	}
	return ta.do(request)
}

func (ta *testApp) postFormJSON(path string, form url.Values, authCookie string) *http.Response {
	ta.t.Helper()
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	request.Header.Set("Accept", "application/json")
	if authCookie != "" {
		request.Header.Set("Cookie", authCookieName+"="+authCookie)
	}
	return ta.do(request)
}

// signupAndLogin registers an account through the HTTP flow and returns the
// auth cookie value.
func (ta *testApp) signupAndLogin(username string, email string, password string) string {
	ta.t.Helper()

	signup := ta.postForm("/api/auth/signup", url.Values{
		"username": {username},
		"email":    {email},
		"password": {password},
		"role":     {"manager"},
	}, "")
	assertRedirect(ta.t, signup, "/login")

	return ta.login(email, password)
}

func (ta *testApp) login(email string, password string) string {
	ta.t.Helper()

	response := ta.postForm("/api/auth/login", url.Values{
		"email":    {email},
		"password": {password},
	}, "")
	if response.StatusCode != http.StatusSeeOther {
		ta.t.Fatalf("expected login redirect, got %d", response.StatusCode)
	}
	cookie := responseCookieValue(response.Cookies(), authCookieName)
	if cookie == "" {
		ta.t.Fatal("expected auth cookie after login")
	}
	return cookie
}

func (ta *testApp) flash(response *http.Response) FlashPayload {
	ta.t.Helper()
	raw := responseCookieValue(response.Cookies(), flashCookieName)
	if raw == "" {
		ta.t.Fatal("expected flash cookie in response")
	}
	plaintext, err := ta.handler.cookies.open(flashCookiePurpose, raw)
	if err != nil {
		ta.t.Fatalf("open flash cookie: %v", err)
	}
	payload := FlashPayload{}
	if err := json.Unmarshal(plaintext, &payload); err != nil {
		ta.t.Fatalf("decode flash cookie: %v", err)
	}
	return payload
}

func assertRedirect(t *testing.T, response *http.Response, location string) {
	t.Helper()
	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", response.StatusCode)
	}
	if got := response.Header.Get("Location"); got != location {
		t.Fatalf("expected redirect to %q, got %q", location, got)
	}
}

func responseCookieValue(cookies []*http.Cookie, name string) string {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie.Value
		}
	}
	return ""
}

func readBody(t *testing.T, body io.Reader) string {
	t.Helper()
	content, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return string(content)
}

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()

	payload := map[string]string{}
	if err := json.Unmarshal([]byte(readBody(t, body)), &payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return payload["error"]
}
