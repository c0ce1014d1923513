package ports

import (
	"context"

	"shark-tracker/internal/features/sharks/domain"
)

// DataSource supplies the two independent shark collections.
// This is a Secondary Port (Driven Port).
//
// Every call returns either a complete snapshot or a *domain.FetchError,
// never both. There is no caching, pagination or partial result.
type DataSource interface {
	// FetchSharks retrieves all shark profiles.
	FetchSharks(ctx context.Context) ([]domain.Shark, error)
	// FetchPings retrieves all pings.
	FetchPings(ctx context.Context) ([]domain.Ping, error)
	// FetchPingsForShark retrieves the pings owned by sharkID. The result is an
	// exact-match subset of FetchPings and fails whenever FetchPings would.
	FetchPingsForShark(ctx context.Context, sharkID string) ([]domain.Ping, error)
}
