package service

import (
	"context"
	"slices"
	"sync"

	"shark-tracker/internal/core/logger"
	"shark-tracker/internal/features/surfaces/domain"
	"shark-tracker/internal/features/surfaces/ports"
	trackingdomain "shark-tracker/internal/features/tracking/domain"
	trackingports "shark-tracker/internal/features/tracking/ports"

	"go.uber.org/zap"
)

// ListSurface renders the pings as a list. It shows each error once and then
// acknowledges it.
type ListSurface struct {
	controller trackingports.StateController
	renderer   ports.ListRenderer
	log        *zap.Logger
	startOnce  sync.Once

	mu   sync.RWMutex
	rows []domain.ListRow
	sub  trackingports.Subscription
}

// NewListSurface creates a ListSurface. Call Start to begin rendering.
func NewListSurface(controller trackingports.StateController, renderer ports.ListRenderer) *ListSurface {
	return &ListSurface{
		controller: controller,
		renderer:   renderer,
		log:        logger.Named("surfaces.list"),
		rows:       []domain.ListRow{},
	}
}

// Start subscribes to the controller and renders the current state.
func (s *ListSurface) Start() {
	s.startOnce.Do(func() {
		sub := s.controller.Observe(s.render)

		s.mu.Lock()
		s.sub = sub
		s.mu.Unlock()
	})
}

// Refresh is the user's refresh action.
func (s *ListSurface) Refresh(ctx context.Context) error {
	return s.controller.Refresh(ctx)
}

// Rows returns the rendered rows.
func (s *ListSurface) Rows() []domain.ListRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.rows)
}

// Row looks up a rendered row by ping id.
func (s *ListSurface) Row(pingID string) (domain.ListRow, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, row := range s.rows {
		if row.PingID == pingID {
			return row, true
		}
	}
	return domain.ListRow{}, false
}

// IndexOf returns the position of a rendered row by ping id.
func (s *ListSurface) IndexOf(pingID string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	index := slices.IndexFunc(s.rows, func(row domain.ListRow) bool { return row.PingID == pingID })
	return index, index >= 0
}

// ScrollTo brings the row at index into view.
func (s *ListSurface) ScrollTo(index int) {
	s.renderer.ScrollTo(index)
}

// Close unsubscribes from the controller.
func (s *ListSurface) Close() {
	s.mu.Lock()
	sub := s.sub
	s.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}
}

func (s *ListSurface) render(state trackingdomain.State) {
	s.renderer.ShowProgress(state.Loading)

	rows := make([]domain.ListRow, 0, len(state.Pings))
	for _, p := range state.Pings {
		rows = append(rows, domain.NewListRow(p))
	}

	s.mu.Lock()
	changed := !slices.Equal(s.rows, rows)
	if changed {
		s.rows = rows
	}
	s.mu.Unlock()

	if changed {
		s.renderer.SubmitRows(rows)
	}

	if state.HasError() {
		s.log.Info("Showing error", zap.String("error", state.Error))
		s.renderer.ShowMessage(state.Error)
		s.controller.ClearError()
	}
}
