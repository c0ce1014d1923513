package adapter

import (
	"slices"
	"sync"

	"shark-tracker/internal/features/surfaces/domain"
)

// HeadlessMap is a MapRenderer that keeps what it was told to show.
type HeadlessMap struct {
	mu   sync.RWMutex
	view domain.MapView
}

// NewHeadlessMap creates an empty HeadlessMap.
func NewHeadlessMap() *HeadlessMap {
	return &HeadlessMap{
		view: domain.MapView{
			Markers: []domain.Marker{},
		},
	}
}

func (m *HeadlessMap) ApplySettings(settings domain.MapSettings) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.view.Settings = settings
}

func (m *HeadlessMap) SetMarkers(markers []domain.Marker) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.view.Markers = slices.Clone(markers)
}

func (m *HeadlessMap) MoveCamera(position domain.CameraPosition) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.view.Camera = position
	m.view.Animated = false
}

func (m *HeadlessMap) AnimateCamera(position domain.CameraPosition) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.view.Camera = position
	m.view.Animated = true
}

func (m *HeadlessMap) SetMyLocationEnabled(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.view.MyLocationEnabled = enabled
}

// MapView returns a copy of the current view.
func (m *HeadlessMap) MapView() domain.MapView {
	m.mu.RLock()
	defer m.mu.RUnlock()

	view := m.view
	view.Markers = slices.Clone(m.view.Markers)
	return view
}
