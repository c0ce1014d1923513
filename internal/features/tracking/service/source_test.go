package service

import (
	"context"
	"sync"

	sharkdomain "shark-tracker/internal/features/sharks/domain"
	"shark-tracker/internal/features/tracking/domain"
)

// stubSource is a scriptable DataSource. When a gate is set, the matching
// fetch reports on entered and then blocks until the gate is closed or ctx ends.
type stubSource struct {
	mu          sync.Mutex
	sharks      []sharkdomain.Shark
	sharksErr   error
	pings       []sharkdomain.Ping
	pingsErr    error
	panicValue  interface{}
	sharksGate  chan struct{}
	pingsGate   chan struct{}
	entered     chan string
	sharksCalls int
	pingsCalls  int
	trace       []string
}

func newStubSource() *stubSource {
	return &stubSource{
		sharks: []sharkdomain.Shark{
			{ID: "mary_lee", Name: "Mary Lee"},
			{ID: "nukumi", Name: "Nukumi"},
		},
		pings: []sharkdomain.Ping{
			{ID: "ping_mary_1", SharkID: "mary_lee", Latitude: 41.6688, Longitude: -70.2962},
		},
		entered: make(chan string, 16),
	}
}

func (s *stubSource) FetchSharks(ctx context.Context) ([]sharkdomain.Shark, error) {
	s.mu.Lock()
	s.sharksCalls++
	s.trace = append(s.trace, "sharks")
	gate, sharks, err, panicValue := s.sharksGate, s.sharks, s.sharksErr, s.panicValue
	s.mu.Unlock()

	if panicValue != nil {
		panic(panicValue)
	}
	if err := s.wait(ctx, "sharks", gate); err != nil {
		return nil, sharkdomain.NewFetchError(sharkdomain.ResourceSharks, err)
	}
	if err != nil {
		return nil, sharkdomain.NewFetchError(sharkdomain.ResourceSharks, err)
	}
	return append([]sharkdomain.Shark(nil), sharks...), nil
}

func (s *stubSource) FetchPings(ctx context.Context) ([]sharkdomain.Ping, error) {
	s.mu.Lock()
	s.pingsCalls++
	s.trace = append(s.trace, "pings")
	gate, pings, err := s.pingsGate, s.pings, s.pingsErr
	s.mu.Unlock()

	if err := s.wait(ctx, "pings", gate); err != nil {
		return nil, sharkdomain.NewFetchError(sharkdomain.ResourcePings, err)
	}
	if err != nil {
		return nil, sharkdomain.NewFetchError(sharkdomain.ResourcePings, err)
	}
	return append([]sharkdomain.Ping(nil), pings...), nil
}

func (s *stubSource) FetchPingsForShark(ctx context.Context, sharkID string) ([]sharkdomain.Ping, error) {
	pings, err := s.FetchPings(ctx)
	if err != nil {
		return nil, err
	}
	return sharkdomain.FilterBySharkID(pings, sharkID), nil
}

func (s *stubSource) wait(ctx context.Context, name string, gate chan struct{}) error {
	if gate == nil {
		return nil
	}
	s.entered <- name
	select {
	case <-gate:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *stubSource) set(fn func(s *stubSource)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s)
}

func (s *stubSource) calls() (sharks, pings int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sharksCalls, s.pingsCalls
}

func (s *stubSource) calledInOrder() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.trace...)
}

// recorder collects every state delivered to an observer.
type recorder struct {
	mu     sync.Mutex
	states []domain.State
}

func (r *recorder) observe(state domain.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, state)
}

func (r *recorder) all() []domain.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.State(nil), r.states...)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}

func (r *recorder) last() domain.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.states) == 0 {
		return domain.State{}
	}
	return r.states[len(r.states)-1]
}
