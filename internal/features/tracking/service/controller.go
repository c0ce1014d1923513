package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"shark-tracker/internal/core/clock"
	"shark-tracker/internal/core/logger"
	sharkdomain "shark-tracker/internal/features/sharks/domain"
	sharkports "shark-tracker/internal/features/sharks/ports"
	"shark-tracker/internal/features/tracking/domain"
	"shark-tracker/internal/features/tracking/ports"

	"go.uber.org/zap"
)

// DefaultRefreshInterval is the wait between periodic ping refreshes.
const DefaultRefreshInterval = 30 * time.Second

// ErrControllerClosed is returned by Refresh once the controller is closed.
var ErrControllerClosed = errors.New("tracking controller closed")

type notification struct {
	state domain.State
	// target is nil for a broadcast.
	target *subscription
}

// Controller owns the Tracking State. It runs load sequences one at a time
// and publishes every change to its observers in order.
type Controller struct {
	source   sharkports.DataSource
	clock    clock.Clock
	interval time.Duration
	log      *zap.Logger

	// ctx lives until Close and bounds every fetch.
	ctx    context.Context
	cancel context.CancelFunc

	// sem holds one token per running load sequence.
	sem      chan struct{}
	wg       sync.WaitGroup
	initOnce sync.Once

	mu          sync.Mutex
	state       domain.State
	generation  uint64
	closed      bool
	initialized bool
	autoRefresh bool
	loopCancel  context.CancelFunc
	observers   []*subscription
	pending     []notification
	draining    bool
	// drainerHoldsToken is set while the running sequence delivers its own
	// notifications. A Refresh issued then cannot take the token.
	drainerHoldsToken bool
	// rerun asks the token holder for one more full sequence.
	rerun bool
}

// NewController creates a Controller with auto refresh enabled. A
// non-positive interval falls back to DefaultRefreshInterval.
func NewController(source sharkports.DataSource, c clock.Clock, interval time.Duration) *Controller {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		source:      source,
		clock:       c,
		interval:    interval,
		log:         logger.Named("tracking"),
		ctx:         ctx,
		cancel:      cancel,
		sem:         make(chan struct{}, 1),
		state:       domain.NewState(),
		autoRefresh: true,
	}
}

// Initialize starts the initial load sequence in the background and the
// periodic refresh loop. Only the first call has an effect.
func (c *Controller) Initialize() {
	c.initOnce.Do(func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		if c.closed {
			return
		}
		c.initialized = true

		c.wg.Add(1)
		go func() {
			defer c.wg.Done()
			if err := c.Refresh(c.ctx); err != nil && !errors.Is(err, ErrControllerClosed) {
				c.log.Debug("Initial load sequence not run", zap.Error(err))
			}
		}()

		if c.autoRefresh {
			c.startLoopLocked()
		}
	})
}

// Refresh runs the full load sequence, sharks then pings. It queues behind a
// sequence already in flight and returns once its own sequence has finished,
// or with ctx's error if ctx ends while still queued. A sequence cut short by
// Close returns ErrControllerClosed.
//
// A Refresh issued while the running sequence is delivering a notification,
// typically from an observer, is run by that sequence right after it
// finishes and returns without waiting.
func (c *Controller) Refresh(ctx context.Context) error {
	if c.requestRerun() {
		return nil
	}

	if err := c.acquire(ctx); err != nil {
		return err
	}
	defer c.release()

	if err := c.runSequence(); err != nil {
		return err
	}
	return c.runRequested()
}

// runSequence is the full load sequence. The caller holds the token.
func (c *Controller) runSequence() error {
	gen, ok := c.begin()
	if !ok {
		return ErrControllerClosed
	}

	c.log.Debug("Starting load sequence", zap.Uint64("generation", gen))
	if !c.update(gen, func(s *domain.State) { s.Loading = true }) {
		return ErrControllerClosed
	}

	sharksFailed := false
	sharks, err := c.fetchSharks()
	if err != nil {
		sharksFailed = true
		loadErr := domain.NewSharksError(err)
		c.log.Warn("Failed to load sharks", zap.Error(err))
		if !c.update(gen, func(s *domain.State) { s.SetError(loadErr) }) {
			return ErrControllerClosed
		}
	} else if !c.update(gen, func(s *domain.State) { s.Sharks = sharks }) {
		return ErrControllerClosed
	}

	if !c.loadPings(gen, sharksFailed) {
		return ErrControllerClosed
	}
	return nil
}

// ClearError acknowledges the last error. Without an error it does nothing
// and notifies nobody.
func (c *Controller) ClearError() {
	c.mu.Lock()
	if c.closed || !c.state.HasError() {
		c.mu.Unlock()
		return
	}
	c.state.ClearError()
	c.publishLocked()
	c.mu.Unlock()

	c.drain(false)
}

// SetAutoRefreshEnabled toggles the periodic loop. Disabling lets the current
// wait elapse and the loop stop at that tick; in-flight work is not
// cancelled. Enabling starts a new loop with a full interval.
func (c *Controller) SetAutoRefreshEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.autoRefresh == enabled {
		return
	}
	c.autoRefresh = enabled
	c.log.Info("Auto refresh toggled", zap.Bool("enabled", enabled))

	if enabled && c.initialized && !c.closed {
		c.startLoopLocked()
	}
}

// AutoRefreshEnabled reports whether the periodic loop is enabled.
func (c *Controller) AutoRefreshEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.autoRefresh
}

// State returns a snapshot of the current Tracking State.
func (c *Controller) State() domain.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// Observe registers observer and delivers the current state to it. Observers
// run outside the controller's lock and may call back into the controller;
// changes made from inside a callback are delivered after the current round.
func (c *Controller) Observe(observer ports.Observer) ports.Subscription {
	sub := newSubscription(c, observer)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return sub
	}
	sub.active.Store(true)
	c.observers = append(c.observers, sub)
	c.pending = append(c.pending, notification{state: c.state.Clone(), target: sub})
	c.mu.Unlock()

	c.drain(false)
	return sub
}

// Close stops the periodic loop, discards the result of any in-flight fetch
// and drops every observer. It must not be called from an observer.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.generation++
	c.state.Loading = false
	c.rerun = false
	for _, sub := range c.observers {
		sub.active.Store(false)
	}
	c.observers = nil
	c.pending = nil
	c.mu.Unlock()

	c.cancel()
	c.wg.Wait()
	c.log.Info("Tracking controller closed")
}

func (c *Controller) acquire(ctx context.Context) error {
	select {
	case c.sem <- struct{}{}:
		return nil
	case <-c.ctx.Done():
		return ErrControllerClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Controller) release() {
	<-c.sem
}

// requestRerun hands a refresh to the token holder when it is busy
// delivering its own notifications.
func (c *Controller) requestRerun() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || !c.draining || !c.drainerHoldsToken {
		return false
	}
	c.rerun = true
	c.log.Debug("Refresh requested during delivery, queued behind the running sequence")
	return true
}

// runRequested runs the sequences requested through requestRerun. The caller
// holds the token.
func (c *Controller) runRequested() error {
	for c.takeRerun() {
		if err := c.runSequence(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) takeRerun() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	requested := c.rerun && !c.closed
	c.rerun = false
	return requested
}

// begin starts a new generation. Writes tagged with an older one are dropped.
func (c *Controller) begin() (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return 0, false
	}
	c.generation++
	return c.generation, true
}

// loadPings is the pings phase. keepError preserves an error raised by the
// sharks phase of the same sequence.
func (c *Controller) loadPings(gen uint64, keepError bool) bool {
	pings, err := c.fetchPings()
	if err != nil {
		loadErr := domain.NewPingsError(err)
		c.log.Warn("Failed to load shark locations", zap.Error(err))
		return c.update(gen, func(s *domain.State) {
			s.SetError(loadErr)
			s.Loading = false
		})
	}

	return c.update(gen, func(s *domain.State) {
		s.Pings = pings
		s.Loading = false
		if !keepError {
			s.ClearError()
		}
	})
}

func (c *Controller) fetchSharks() (sharks []sharkdomain.Shark, err error) {
	defer recoverFetch(sharkdomain.ResourceSharks, &err)

	sharks, err = c.source.FetchSharks(c.ctx)
	if err == nil && sharks == nil {
		sharks = []sharkdomain.Shark{}
	}
	return sharks, err
}

func (c *Controller) fetchPings() (pings []sharkdomain.Ping, err error) {
	defer recoverFetch(sharkdomain.ResourcePings, &err)

	pings, err = c.source.FetchPings(c.ctx)
	if err == nil && pings == nil {
		pings = []sharkdomain.Ping{}
	}
	return pings, err
}

func recoverFetch(resource sharkdomain.Resource, errp *error) {
	if r := recover(); r != nil {
		*errp = sharkdomain.NewFetchError(resource, fmt.Errorf("data source panic: %v", r))
	}
}

// update applies mutate and publishes the result, unless gen is stale.
func (c *Controller) update(gen uint64, mutate func(s *domain.State)) bool {
	c.mu.Lock()
	if c.closed || gen != c.generation {
		c.mu.Unlock()
		c.log.Debug("Discarding result of superseded load sequence", zap.Uint64("generation", gen))
		return false
	}
	mutate(&c.state)
	c.publishLocked()
	c.mu.Unlock()

	c.drain(true)
	return true
}

func (c *Controller) publishLocked() {
	c.state.Version++
	c.state.UpdatedAt = c.clock.Now()
	c.pending = append(c.pending, notification{state: c.state.Clone()})
}

// drain delivers pending notifications in order. The first caller to find
// the queue idle delivers everything queued, including notifications queued
// by other goroutines or by observers meanwhile. holdsToken reports whether
// the caller is a running load sequence.
func (c *Controller) drain(holdsToken bool) {
	c.mu.Lock()
	if c.draining {
		c.mu.Unlock()
		return
	}
	c.draining = true
	c.drainerHoldsToken = holdsToken

	for len(c.pending) > 0 {
		next := c.pending[0]
		c.pending = c.pending[1:]

		targets := slices.Clone(c.observers)
		if next.target != nil {
			targets = []*subscription{next.target}
		}
		c.mu.Unlock()

		for _, sub := range targets {
			sub.deliver(next.state.Clone())
		}

		c.mu.Lock()
	}

	c.draining = false
	c.drainerHoldsToken = false
	c.mu.Unlock()
}

func (c *Controller) remove(sub *subscription) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = slices.DeleteFunc(c.observers, func(s *subscription) bool { return s == sub })
}
