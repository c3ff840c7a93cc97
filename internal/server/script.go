package server

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/splitpixel/splitpixel/internal/script"
	"github.com/splitpixel/splitpixel/internal/store"
)

// handleScript serves the embed script for GET /s/{projectId}.
//
// This endpoint is loaded from <script> tags on third-party pages, so
// it never returns a failure status: unknown projects, inactive
// projects, and internal errors all degrade to an inert placeholder
// body with a success code.
func (s *Server) handleScript(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	projectID := strings.TrimPrefix(r.URL.Path, "/s/")
	projectID = strings.TrimSuffix(projectID, ".js")

	if !script.ValidProjectID(projectID) {
		s.writeScript(w, script.NotFound, false)
		return
	}

	project, err := s.store.GetProject(context.Background(), projectID)
	if err == store.ErrNotFound {
		s.writeScript(w, script.NotFound, false)
		return
	}
	if err != nil {
		s.logger.Error("project lookup failed", zap.String("project_id", projectID), zap.Error(err))
		s.writeScript(w, script.NotFound, false)
		return
	}

	if !project.Active {
		s.writeScript(w, script.Inactive, false)
		return
	}

	body, err := script.Generate(project.ID, s.apiBaseURL(r))
	if err != nil {
		// Only reachable with a corrupt identifier in the store
		s.logger.Error("script generation failed", zap.String("project_id", projectID), zap.Error(err))
		s.writeScript(w, script.NotFound, false)
		return
	}

	s.writeScript(w, body, true)
}

// writeScript emits a script body with a success status. Active
// scripts are publicly cacheable for a short window so activation and
// deactivation changes propagate within minutes; placeholders are not
// cached at all.
func (s *Server) writeScript(w http.ResponseWriter, body string, cacheable bool) {
	w.Header().Set("Content-Type", "application/javascript")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if cacheable {
		w.Header().Set("Cache-Control", "public, max-age=300")
	} else {
		w.Header().Set("Cache-Control", "no-cache")
	}
	w.Write([]byte(body))
}
