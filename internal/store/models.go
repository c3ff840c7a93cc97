package store

import "time"

// Project is an experiment container. Its identifier is an opaque
// token, immutable after creation, and restricted to a safe character
// class because it gets embedded verbatim in generated script text.
type Project struct {
	ID        string
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// VisitorEvent is one recorded tracking beacon. Events are immutable
// facts: appended once, never updated, deleted only when their project
// is deleted.
type VisitorEvent struct {
	ID        int64
	ProjectID string
	VisitorID string
	Variation string // one of A, B, C, D
	UserAgent string
	Referrer  string
	CreatedAt time.Time
}

// VariationCount is one group of the per-project aggregation query.
type VariationCount struct {
	Variation string
	Count     int
}
