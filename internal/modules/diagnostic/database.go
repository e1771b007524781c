// README: Optional database capability probed by the diagnostic report.
package diagnostic

import "context"

// Database is the optional external store. Implementations must honour ctx so a
// slow store cannot hold a request.
type Database interface {
	IsAvailable() bool
	ListCollections(ctx context.Context) ([]string, error)
	Close() error
}

// NoopDatabase stands in when no database is configured.
type NoopDatabase struct{}

func (NoopDatabase) IsAvailable() bool { return false }

func (NoopDatabase) ListCollections(context.Context) ([]string, error) { return nil, ErrNotConfigured }

func (NoopDatabase) Close() error { return nil }
