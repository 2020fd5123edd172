package theme

import "context"

// StorageKey is the durable key holding the grass accent color.
const StorageKey = "@fillit/grassColor"

// Store persists the grass accent color preference.
type Store interface {
	// Get returns the normalized accent color, falling back to the
	// default when nothing valid is stored.
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, color string) error
}
