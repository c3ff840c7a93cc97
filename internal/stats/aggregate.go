package stats

import (
	"github.com/splitpixel/splitpixel/internal/assign"
	"github.com/splitpixel/splitpixel/internal/store"
)

// Result is the aggregated view over a project's events. It is derived
// on demand and never persisted.
type Result struct {
	ProjectID   string         `json:"project_id"`
	Total       int            `json:"total"`
	ByVariation map[string]int `json:"variations"`
}

// Aggregate turns raw per-variation groups into a complete result.
// Every symbol in the fixed set is present, zero-filled when it has no
// events; every row counts as one impression, not a distinct visitor.
func Aggregate(projectID string, counts []store.VariationCount) Result {
	r := Result{
		ProjectID:   projectID,
		ByVariation: make(map[string]int, len(assign.Variations)),
	}
	for _, sym := range assign.Variations {
		r.ByVariation[sym] = 0
	}
	for _, c := range counts {
		r.ByVariation[c.Variation] = c.Count
		r.Total += c.Count
	}
	return r
}
