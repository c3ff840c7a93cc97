package server_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/splitpixel/splitpixel/internal/script"
)

func TestScript_UnknownProjectReturnsPlaceholder(t *testing.T) {
	srv, _ := setupTestServer(t)

	w := get(t, srv, "/s/nope")

	// Never a failure status: a broken embed would break the host page
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if w.Body.String() != script.NotFound {
		t.Errorf("expected not-found placeholder, got %q", w.Body.String())
	}
	if cc := w.Header().Get("Cache-Control"); strings.Contains(cc, "public") {
		t.Errorf("placeholder must not be publicly cacheable, got %q", cc)
	}
}

func TestScript_InactiveProjectReturnsDistinctPlaceholder(t *testing.T) {
	srv, s := setupTestServer(t)

	if _, err := s.CreateProject(context.Background(), "proj_1", "", false); err != nil {
		t.Fatalf("failed to create project: %v", err)
	}

	w := get(t, srv, "/s/proj_1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if w.Body.String() != script.Inactive {
		t.Errorf("expected inactive placeholder, got %q", w.Body.String())
	}
	if w.Body.String() == script.NotFound {
		t.Error("inactive placeholder must differ from not-found placeholder")
	}
}

func TestScript_ActiveProjectReturnsGeneratedScript(t *testing.T) {
	srv, s := setupTestServer(t)

	if _, err := s.CreateProject(context.Background(), "proj_1", "", true); err != nil {
		t.Fatalf("failed to create project: %v", err)
	}

	w := get(t, srv, "/s/proj_1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "var P='proj_1';") {
		t.Error("expected project id embedded in script")
	}
	// Base URL derived from the request host when no override is set
	if !strings.Contains(body, "var A='http://example.com';") {
		t.Errorf("expected request-derived base url in script, got: %.120s", body)
	}

	if ct := w.Header().Get("Content-Type"); ct != "application/javascript" {
		t.Errorf("expected application/javascript, got %q", ct)
	}
	if cc := w.Header().Get("Cache-Control"); cc != "public, max-age=300" {
		t.Errorf("expected short public cache window, got %q", cc)
	}
	if cors := w.Header().Get("Access-Control-Allow-Origin"); cors != "*" {
		t.Errorf("expected cross-origin loading permitted, got %q", cors)
	}
}

func TestScript_JSSuffixAccepted(t *testing.T) {
	srv, s := setupTestServer(t)

	if _, err := s.CreateProject(context.Background(), "proj_1", "", true); err != nil {
		t.Fatalf("failed to create project: %v", err)
	}

	w := get(t, srv, "/s/proj_1.js")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "var P='proj_1';") {
		t.Error("expected .js suffix to resolve to the same project")
	}
}

func TestScript_StoreFailureDegradesToPlaceholder(t *testing.T) {
	srv, s := setupTestServer(t)

	if _, err := s.CreateProject(context.Background(), "proj_1", "", true); err != nil {
		t.Fatalf("failed to create project: %v", err)
	}

	// Every lookup fails from here on
	if err := s.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}

	w := get(t, srv, "/s/proj_1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 on internal failure, got %d", w.Code)
	}
	if w.Body.String() != script.NotFound {
		t.Errorf("expected placeholder on internal failure, got %q", w.Body.String())
	}
}

func TestScript_UnsafeIdentifierDegradesToPlaceholder(t *testing.T) {
	srv, _ := setupTestServer(t)

	w := get(t, srv, "/s/proj%27;alert(1)")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if w.Body.String() != script.NotFound {
		t.Errorf("expected placeholder for unsafe identifier, got %q", w.Body.String())
	}
}
