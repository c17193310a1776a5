package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHealthEndpoint(t *testing.T) {
	ta := newTestApp(t)

	response := ta.get("/healthz", "")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	if body := readBody(t, response.Body); !strings.Contains(body, `"status":"ok"`) {
		t.Fatalf("unexpected health body %s", body)
	}
}

func TestNotFoundRespondsByClient(t *testing.T) {
	ta := newTestApp(t)

	apiResponse := ta.get("/api/unknown", "")
	if apiResponse.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", apiResponse.StatusCode)
	}
	if got := readAPIError(t, apiResponse.Body); got != "not found" {
		t.Fatalf("unexpected error %q", got)
	}

	page := ta.get("/missing-page", "")
	if page.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", page.StatusCode)
	}
	if body := readBody(t, page.Body); !strings.Contains(body, `href="/login"`) {
		t.Fatal("expected anonymous 404 page to link to login")
	}

	authCookie := ta.signupAndLogin("alice", "alice@example.com", "StrongPass1")
	signedIn := ta.get("/missing-page", authCookie)
	if body := readBody(t, signedIn.Body); !strings.Contains(body, `href="/dashboard"`) {
		t.Fatal("expected signed-in 404 page to link to dashboard")
	}
}

func TestFlashIsShownOnceOnLoginPage(t *testing.T) {
	ta := newTestApp(t)

	sealed, err := ta.handler.cookies.seal(flashCookiePurpose, []byte(`{"error":"Invalid credentials","login_email":"alice@example.com"}`))
	if err != nil {
		t.Fatalf("seal flash: %v", err)
	}

	request := httptest.NewRequest(http.MethodGet, "/login", nil)
	request.Header.Set("Cookie", flashCookieName+"="+sealed)
	response := ta.do(request)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	body := readBody(t, response.Body)
	if !strings.Contains(body, "Invalid credentials") {
		t.Fatal("expected flash message on login page")
	}
	if !strings.Contains(body, `value="alice@example.com"`) {
		t.Fatal("expected login email to be prefilled")
	}

	cleared := false
	for _, cookie := range response.Cookies() {
		if cookie.Name == flashCookieName && cookie.Value == "" {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expected flash cookie to be cleared after display")
	}
}
