package audit

import (
	"context"
)

// Sink receives audit events. Sinks may be write-only.
type Sink interface {
	Append(ctx context.Context, event Event) error
}

// Store is a queryable sink.
type Store interface {
	Sink
	ListByUser(ctx context.Context, userID string) ([]Event, error)
}
