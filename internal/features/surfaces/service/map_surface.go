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

// MapSurface renders one marker per ping.
type MapSurface struct {
	controller trackingports.StateController
	renderer   ports.MapRenderer
	permission ports.LocationPermission
	log        *zap.Logger
	startOnce  sync.Once

	mu      sync.RWMutex
	markers []domain.Marker
	sub     trackingports.Subscription
}

// NewMapSurface creates a MapSurface. Call Start once the map is ready.
func NewMapSurface(controller trackingports.StateController, renderer ports.MapRenderer, permission ports.LocationPermission) *MapSurface {
	return &MapSurface{
		controller: controller,
		renderer:   renderer,
		permission: permission,
		log:        logger.Named("surfaces.map"),
		markers:    []domain.Marker{},
	}
}

// Start configures the map, positions the initial camera, sets up the
// my-location overlay and subscribes to the controller.
func (s *MapSurface) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		s.renderer.ApplySettings(domain.MapSettings{
			ZoomControls: true,
			MapToolbar:   true,
		})
		s.renderer.MoveCamera(domain.InitialCamera)
		s.enableMyLocation(ctx)

		sub := s.controller.Observe(s.render)

		s.mu.Lock()
		s.sub = sub
		s.mu.Unlock()
	})
}

// Markers returns the rendered markers.
func (s *MapSurface) Markers() []domain.Marker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.markers)
}

// Marker looks up a rendered marker by its tag.
func (s *MapSurface) Marker(pingID string) (domain.Marker, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.markers {
		if m.Tag == pingID {
			return m, true
		}
	}
	return domain.Marker{}, false
}

// FocusOn animates the camera to target at FocusZoom.
func (s *MapSurface) FocusOn(target domain.LatLng) domain.CameraPosition {
	position := domain.CameraPosition{Target: target, Zoom: domain.FocusZoom}
	s.renderer.AnimateCamera(position)
	return position
}

// Close unsubscribes from the controller.
func (s *MapSurface) Close() {
	s.mu.Lock()
	sub := s.sub
	s.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}
}

// enableMyLocation turns the overlay on only when the permission is granted.
// A refusal or a failed request leaves the overlay off.
func (s *MapSurface) enableMyLocation(ctx context.Context) {
	if s.permission.Has() {
		s.renderer.SetMyLocationEnabled(true)
		return
	}

	result, err := s.permission.Request(ctx)
	if err != nil {
		s.log.Warn("Location permission request failed", zap.Error(err))
		s.renderer.SetMyLocationEnabled(false)
		return
	}

	if result != domain.PermissionGranted {
		s.log.Info("Location permission denied, my-location overlay disabled")
		s.renderer.SetMyLocationEnabled(false)
		return
	}
	s.renderer.SetMyLocationEnabled(true)
}

func (s *MapSurface) render(state trackingdomain.State) {
	markers := make([]domain.Marker, 0, len(state.Pings))
	for _, p := range state.Pings {
		markers = append(markers, domain.NewMarker(p))
	}

	s.mu.Lock()
	changed := !slices.Equal(s.markers, markers)
	if changed {
		s.markers = markers
	}
	s.mu.Unlock()

	if changed {
		s.log.Debug("Updating markers", zap.Int("count", len(markers)))
		s.renderer.SetMarkers(markers)
	}
}
