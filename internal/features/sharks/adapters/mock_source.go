package adapter

import (
	"context"
	"time"

	"shark-tracker/internal/core/clock"
	"shark-tracker/internal/core/logger"
	"shark-tracker/internal/features/sharks/domain"

	"go.uber.org/zap"
)

// MockDataSource serves the built-in dataset with simulated network latency.
type MockDataSource struct {
	clock       clock.Clock
	sharksDelay time.Duration
	pingsDelay  time.Duration
	log         *zap.Logger
}

// NewMockDataSource creates a MockDataSource. Delays of zero answer immediately.
func NewMockDataSource(c clock.Clock, sharksDelay, pingsDelay time.Duration) *MockDataSource {
	return &MockDataSource{
		clock:       c,
		sharksDelay: sharksDelay,
		pingsDelay:  pingsDelay,
		log:         logger.Named("sharks.mock"),
	}
}

// FetchSharks returns the built-in shark profiles.
func (m *MockDataSource) FetchSharks(ctx context.Context) ([]domain.Shark, error) {
	m.log.Debug("Loading shark data")
	if err := m.wait(ctx, m.sharksDelay); err != nil {
		return nil, domain.NewFetchError(domain.ResourceSharks, err)
	}

	sharks := MockSharks()
	m.log.Debug("Loaded sharks", zap.Int("count", len(sharks)))
	return sharks, nil
}

// FetchPings returns the built-in pings.
func (m *MockDataSource) FetchPings(ctx context.Context) ([]domain.Ping, error) {
	m.log.Debug("Loading shark ping data")
	if err := m.wait(ctx, m.pingsDelay); err != nil {
		return nil, domain.NewFetchError(domain.ResourcePings, err)
	}

	pings := MockPings()
	m.log.Debug("Loaded pings", zap.Int("count", len(pings)))
	return pings, nil
}

// FetchPingsForShark filters FetchPings by owning shark.
func (m *MockDataSource) FetchPingsForShark(ctx context.Context, sharkID string) ([]domain.Ping, error) {
	pings, err := m.FetchPings(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterBySharkID(pings, sharkID), nil
}

func (m *MockDataSource) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-m.clock.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
