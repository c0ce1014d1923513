package service

import (
	"sync/atomic"

	"shark-tracker/internal/features/tracking/domain"
	"shark-tracker/internal/features/tracking/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type subscription struct {
	id         string
	observer   ports.Observer
	controller *Controller
	active     atomic.Bool
}

func newSubscription(c *Controller, observer ports.Observer) *subscription {
	return &subscription{
		id:         uuid.NewString(),
		observer:   observer,
		controller: c,
	}
}

func (s *subscription) ID() string { return s.id }

func (s *subscription) Unsubscribe() {
	if s.active.CompareAndSwap(true, false) {
		s.controller.remove(s)
	}
}

func (s *subscription) deliver(state domain.State) {
	if !s.active.Load() {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			s.controller.log.Error("Observer panicked",
				zap.String("subscription_id", s.id),
				zap.Any("panic", r),
			)
		}
	}()

	s.observer(state)
}
