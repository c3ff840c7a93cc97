package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/splitpixel/splitpixel/internal/stats"
)

func TestStats_AggregatesCounts(t *testing.T) {
	srv, s := setupTestServer(t)
	ctx := context.Background()

	if _, err := s.CreateProject(ctx, "proj_1", "", true); err != nil {
		t.Fatalf("failed to create project: %v", err)
	}
	for _, variation := range []string{"A", "A", "B"} {
		if err := s.RecordEvent(ctx, "proj_1", "v1", variation, "", ""); err != nil {
			t.Fatalf("failed to record event: %v", err)
		}
	}

	w := get(t, srv, "/api/stats/proj_1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var result stats.Result
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode stats: %v", err)
	}

	if result.Total != 3 {
		t.Errorf("expected total 3, got %d", result.Total)
	}
	want := map[string]int{"A": 2, "B": 1, "C": 0, "D": 0}
	for sym, count := range want {
		got, ok := result.ByVariation[sym]
		if !ok {
			t.Errorf("expected %s present in result", sym)
			continue
		}
		if got != count {
			t.Errorf("expected %s=%d, got %d", sym, count, got)
		}
	}
}

func TestStats_UnknownProjectIs404(t *testing.T) {
	srv, _ := setupTestServer(t)

	w := get(t, srv, "/api/stats/nope")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestStats_DeletedProjectIs404NotZeroed(t *testing.T) {
	srv, s := setupTestServer(t)
	ctx := context.Background()

	if _, err := s.CreateProject(ctx, "proj_1", "", true); err != nil {
		t.Fatalf("failed to create project: %v", err)
	}
	if err := s.RecordEvent(ctx, "proj_1", "v1", "A", "", ""); err != nil {
		t.Fatalf("failed to record event: %v", err)
	}
	if err := s.DeleteProject(ctx, "proj_1"); err != nil {
		t.Fatalf("failed to delete project: %v", err)
	}

	w := get(t, srv, "/api/stats/proj_1")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after cascade delete, got %d with body %s", w.Code, w.Body.String())
	}
}
