package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/splitpixel/splitpixel/internal/stats"
	"github.com/splitpixel/splitpixel/internal/store"
)

type HealthResponse struct {
	Status        string `json:"status"`
	ProjectsCount int    `json:"projects_count"`
	DBSizeBytes   int64  `json:"db_size_bytes"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := context.Background()

	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var dbSize int64
	row := s.store.DB().QueryRow("SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size()")
	if err := row.Scan(&dbSize); err != nil {
		dbSize = 0
	}

	response := HealthResponse{
		Status:        "ok",
		ProjectsCount: len(projects),
		DBSizeBytes:   dbSize,
		UptimeSeconds: int64(time.Since(s.startTime).Seconds()),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// handleStats serves GET /api/stats/{projectId} for the dashboard.
// Unlike the script and tracking endpoints this is an internal read
// surface, so not-found and store failures propagate as real statuses.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	projectID := strings.TrimPrefix(r.URL.Path, "/api/stats/")
	if projectID == "" {
		http.Error(w, "project id required", http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	if _, err := s.store.GetProject(ctx, projectID); err != nil {
		if err == store.ErrNotFound {
			http.Error(w, "Project not found", http.StatusNotFound)
			return
		}
		s.logger.Error("project lookup failed", zap.String("project_id", projectID), zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	counts, err := s.store.GetVariationCounts(ctx, projectID)
	if err != nil {
		s.logger.Error("failed to aggregate stats", zap.String("project_id", projectID), zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats.Aggregate(projectID, counts))
}
