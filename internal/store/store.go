package store

import "context"

// Store defines the interface for project and event storage
type Store interface {
	// Project operations
	CreateProject(ctx context.Context, id, name string, active bool) (*Project, error)
	GetProject(ctx context.Context, id string) (*Project, error)
	ListProjects(ctx context.Context) ([]*Project, error)
	SetProjectActive(ctx context.Context, id string, active bool) error
	DeleteProject(ctx context.Context, id string) error

	// Event operations
	RecordEvent(ctx context.Context, projectID, visitorID, variation, userAgent, referrer string) error
	GetVariationCounts(ctx context.Context, projectID string) ([]VariationCount, error)
	GetEvents(ctx context.Context, projectID string) ([]*VisitorEvent, error)

	// Settings
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error

	// Lifecycle
	Close() error
}
