package server

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/splitpixel/splitpixel/internal/assign"
	"github.com/splitpixel/splitpixel/internal/store"
)

// beaconGIF is a 1x1 transparent GIF. Every tracking response is this
// exact payload with a success status, whatever happened server-side,
// so the host page's image load can never visibly break.
var beaconGIF = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00,
	0x01, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xff, 0xff, 0xff, 0x21, 0xf9, 0x04, 0x01, 0x00,
	0x00, 0x00, 0x00, 0x2c, 0x00, 0x00, 0x00, 0x00,
	0x01, 0x00, 0x01, 0x00, 0x00, 0x02, 0x02, 0x44,
	0x01, 0x00, 0x3b,
}

// handleTrack records a visitor's client-computed assignment from
// GET /track?v={visitorId}&p={projectId}&var={A|B|C|D}&t={bust}.
//
// Invalid or unrecordable calls are no-ops on the data side; the
// response never distinguishes them. Whether an event was actually
// written is observable only through the store.
func (s *Server) handleTrack(w http.ResponseWriter, r *http.Request) {
	defer s.writeBeacon(w)

	q := r.URL.Query()
	visitorID := q.Get("v")
	projectID := q.Get("p")
	variation := q.Get("var")

	if visitorID == "" || projectID == "" {
		return
	}
	if !assign.IsValid(variation) {
		return
	}

	ctx := context.Background()

	if _, err := s.store.GetProject(ctx, projectID); err != nil {
		if err != store.ErrNotFound {
			s.logger.Error("project lookup failed", zap.String("project_id", projectID), zap.Error(err))
		}
		return
	}

	err := s.store.RecordEvent(ctx, projectID, visitorID, variation, r.UserAgent(), r.Referer())
	if err != nil {
		// Best-effort: a dropped event is an accepted loss
		s.logger.Error("failed to record event", zap.String("project_id", projectID), zap.Error(err))
	}
}

func (s *Server) writeBeacon(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "image/gif")
	w.Header().Set("Cache-Control", "no-store, no-cache")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Write(beaconGIF)
}
