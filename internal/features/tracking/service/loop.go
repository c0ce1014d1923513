package service

import (
	"context"

	"go.uber.org/zap"
)

// startLoopLocked retires the current loop, if any, and starts a new one.
// c.mu must be held.
func (c *Controller) startLoopLocked() {
	if c.loopCancel != nil {
		c.loopCancel()
	}

	ctx, cancel := context.WithCancel(c.ctx)
	c.loopCancel = cancel

	c.wg.Add(1)
	go c.loop(ctx)
}

// loop waits one interval, then refreshes the pings while auto refresh is
// still enabled. The flag is read after the wait so a toggle made during the
// wait applies to that tick.
func (c *Controller) loop(ctx context.Context) {
	defer c.wg.Done()
	c.log.Debug("Periodic refresh loop started", zap.Duration("interval", c.interval))

	for {
		select {
		case <-ctx.Done():
			c.log.Debug("Periodic refresh loop cancelled")
			return
		case <-c.clock.After(c.interval):
		}

		if !c.tickAllowed(ctx) {
			c.log.Debug("Periodic refresh loop stopped")
			return
		}
		c.tick()
	}
}

func (c *Controller) tickAllowed(ctx context.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ctx.Err() == nil && c.autoRefresh && !c.closed
}

// tick runs the pings phase. When a load sequence is already in flight the
// tick joins it instead, since that sequence publishes fresh pings itself.
func (c *Controller) tick() {
	select {
	case c.sem <- struct{}{}:
	default:
		c.log.Debug("Load sequence in flight, periodic refresh joins it")
		return
	}
	defer c.release()

	gen, ok := c.begin()
	if !ok {
		return
	}

	c.log.Debug("Periodic ping refresh", zap.Uint64("generation", gen))
	if !c.loadPings(gen, false) {
		return
	}
	if err := c.runRequested(); err != nil {
		c.log.Debug("Requested load sequence not completed", zap.Error(err))
	}
}
