package app

import "context"

// PreferenceStore is a durable key-value store scoped to one origin.
// Implemented by infrastructure (JSON file, SQLite, Redis).
type PreferenceStore interface {
	// Get returns the stored value or domain.ErrPreferenceNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Close releases the underlying resources.
	Close() error
}
