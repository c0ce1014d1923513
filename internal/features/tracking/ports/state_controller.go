package ports

import (
	"context"

	"shark-tracker/internal/features/tracking/domain"
)

// Observer receives a snapshot of the Tracking State after every change.
type Observer func(state domain.State)

// Subscription is the handle of a registered Observer.
type Subscription interface {
	// ID is the unique handle of the registration.
	ID() string
	// Unsubscribe stops delivery. Calling it more than once is a no-op.
	Unsubscribe()
}

// StateController is the single writer of the Tracking State.
// This is a Primary Port (Driving Port) used by surfaces and HTTP handlers.
type StateController interface {
	// State returns the current snapshot.
	State() domain.State
	// Refresh runs the full load sequence and waits for it to finish.
	Refresh(ctx context.Context) error
	// ClearError acknowledges the last error.
	ClearError()
	// SetAutoRefreshEnabled toggles the periodic refresh loop.
	SetAutoRefreshEnabled(enabled bool)
	// AutoRefreshEnabled reports whether the periodic loop is enabled.
	AutoRefreshEnabled() bool
	// Observe registers an observer. It immediately receives the current state.
	Observe(observer Observer) Subscription
}
