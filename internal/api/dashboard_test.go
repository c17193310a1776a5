package api

import (
	"bytes"
	"image/png"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/terraincognita07/mesflow/internal/chart"
)

func dashboardTestApp(t *testing.T) (*testApp, string) {
	t.Helper()

	ta := newTestApp(t)
	authCookie := ta.signupAndLogin("alice", "alice@example.com", "StrongPass1")

	for _, placed := range []time.Time{
		time.Date(2026, time.June, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.June, 9, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.April, 20, 0, 0, 0, 0, time.UTC),
	} {
		assertRedirect(t, ta.postForm("/orders", orderForm(placed, placed.AddDate(0, 0, 5)), authCookie), "/orders")
	}

	ta.handler.now = func() time.Time {
		return time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	}
	return ta, authCookie
}

func TestDashboardRendersChartCanvasAttributes(t *testing.T) {
	ta, authCookie := dashboardTestApp(t)

	response := ta.get("/dashboard", authCookie)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	body := readBody(t, response.Body)

	if !strings.Contains(body, `id="ordersChart"`) {
		t.Fatal("expected ordersChart canvas in dashboard")
	}
	if !strings.Contains(body, `data-data="[0,0,0,0,0,0,0,0,0,1,0,2]"`) {
		t.Fatalf("expected monthly counts in data-data attribute, got %s", body)
	}
	if !strings.Contains(body, "Jul 2025") || !strings.Contains(body, "Jun 2026") {
		t.Fatal("expected twelve month window labels from Jul 2025 to Jun 2026")
	}
	if !strings.Contains(body, "chart_loader.js") {
		t.Fatal("expected chart loader script on dashboard")
	}
}

func TestOrdersChartConfigMatchesDashboardSeries(t *testing.T) {
	ta, authCookie := dashboardTestApp(t)

	response := ta.get("/api/dashboard/orders-chart", authCookie)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	if got := response.Header.Get("Content-Type"); !strings.HasPrefix(got, "application/json") {
		t.Fatalf("unexpected content type %q", got)
	}

	config := chart.Config{}
	if err := json.Unmarshal([]byte(readBody(t, response.Body)), &config); err != nil {
		t.Fatalf("decode chart config: %v", err)
	}
	if config.Type != "bar" {
		t.Fatalf("expected bar chart, got %q", config.Type)
	}
	if config.Options.Plugins.Title.Text != "Monthly Orders Overview" {
		t.Fatalf("unexpected title %q", config.Options.Plugins.Title.Text)
	}
	if config.Options.Plugins.Legend.Display {
		t.Fatal("expected legend to be hidden")
	}
	if len(config.Data.Labels) != 12 || len(config.Data.Datasets) != 1 {
		t.Fatalf("expected 12 labels and one dataset, got %d labels %d datasets", len(config.Data.Labels), len(config.Data.Datasets))
	}
	dataset := config.Data.Datasets[0]
	if dataset.Label != "Number of Orders" {
		t.Fatalf("unexpected dataset label %q", dataset.Label)
	}
	if dataset.Data[11] != 2.0 || dataset.Data[9] != 1.0 {
		t.Fatalf("unexpected dataset values %v", dataset.Data)
	}
}

func TestOrdersChartPNGRendersImage(t *testing.T) {
	ta, authCookie := dashboardTestApp(t)

	response := ta.get("/api/dashboard/orders-chart.png", authCookie)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	if got := response.Header.Get("Content-Type"); got != "image/png" {
		t.Fatalf("unexpected content type %q", got)
	}
	if _, err := png.DecodeConfig(bytes.NewReader([]byte(readBody(t, response.Body)))); err != nil {
		t.Fatalf("decode png: %v", err)
	}
}
