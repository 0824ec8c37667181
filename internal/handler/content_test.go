package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pixelsmith/contactrelay/internal/content"
	"github.com/pixelsmith/contactrelay/internal/handler"
)

func getJSON(t *testing.T, srv http.Handler, path string, v interface{}) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	if rr.Code == http.StatusOK {
		if err := json.Unmarshal(rr.Body.Bytes(), v); err != nil {
			t.Fatalf("invalid JSON from %s: %v", path, err)
		}
	}
	return rr.Code
}

func TestContentRoutes(t *testing.T) {
	srv := newTestServer(&senderMock{}, testConfig("development"))

	t.Run("list services", func(t *testing.T) {
		var services []content.Service
		if code := getJSON(t, srv, "/api/v1/services", &services); code != http.StatusOK {
			t.Fatalf("status = %d, want 200", code)
		}
		if len(services) == 0 {
			t.Fatal("expected at least one service")
		}
	})

	t.Run("service by slug", func(t *testing.T) {
		var svc content.Service
		if code := getJSON(t, srv, "/api/v1/services/ecommerce", &svc); code != http.StatusOK {
			t.Fatalf("status = %d, want 200", code)
		}
		if svc.Slug != "ecommerce" {
			t.Errorf("slug = %q, want %q", svc.Slug, "ecommerce")
		}
	})

	t.Run("unknown service slug falls back to default", func(t *testing.T) {
		var svc content.Service
		if code := getJSON(t, srv, "/api/v1/services/no-such-service", &svc); code != http.StatusOK {
			t.Fatalf("status = %d, want 200", code)
		}
		if svc.Slug != content.Services()[0].Slug {
			t.Errorf("slug = %q, want default %q", svc.Slug, content.Services()[0].Slug)
		}
	})

	t.Run("list faqs", func(t *testing.T) {
		var faqs []content.FAQ
		if code := getJSON(t, srv, "/api/v1/faqs", &faqs); code != http.StatusOK {
			t.Fatalf("status = %d, want 200", code)
		}
		if len(faqs) == 0 {
			t.Fatal("expected at least one FAQ")
		}
	})

	t.Run("project by slug", func(t *testing.T) {
		var p content.Project
		if code := getJSON(t, srv, "/api/v1/projects/atlas-fitness", &p); code != http.StatusOK {
			t.Fatalf("status = %d, want 200", code)
		}
		if p.Slug != "atlas-fitness" {
			t.Errorf("slug = %q, want %q", p.Slug, "atlas-fitness")
		}
	})
}

func TestHealthRoute(t *testing.T) {
	srv := newTestServer(&senderMock{}, testConfig("development"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var resp handler.HealthResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid health JSON: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("status = %q, want healthy", resp.Status)
	}
}
