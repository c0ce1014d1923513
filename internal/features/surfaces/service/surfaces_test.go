package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"shark-tracker/internal/core/clock"
	sharkadapter "shark-tracker/internal/features/sharks/adapters"
	sharkdomain "shark-tracker/internal/features/sharks/domain"
	adapter "shark-tracker/internal/features/surfaces/adapters"
	"shark-tracker/internal/features/surfaces/domain"
	tracking "shark-tracker/internal/features/tracking/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLocationPermission is a mock implementation of ports.LocationPermission
type MockLocationPermission struct {
	mock.Mock
}

func (m *MockLocationPermission) Has() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockLocationPermission) Request(ctx context.Context) (domain.PermissionResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.PermissionResult), args.Error(1)
}

// switchableSource serves the built-in dataset until told to fail.
type switchableSource struct {
	*sharkadapter.MockDataSource
	mu        sync.Mutex
	sharksErr error
	pings     []sharkdomain.Ping
}

func (s *switchableSource) FetchSharks(ctx context.Context) ([]sharkdomain.Shark, error) {
	s.mu.Lock()
	err := s.sharksErr
	s.mu.Unlock()
	if err != nil {
		return nil, sharkdomain.NewFetchError(sharkdomain.ResourceSharks, err)
	}
	return s.MockDataSource.FetchSharks(ctx)
}

func (s *switchableSource) FetchPings(ctx context.Context) ([]sharkdomain.Ping, error) {
	s.mu.Lock()
	pings := s.pings
	s.mu.Unlock()
	if pings != nil {
		return pings, nil
	}
	return s.MockDataSource.FetchPings(ctx)
}

type fixture struct {
	source     *switchableSource
	controller *tracking.Controller
	listView   *adapter.HeadlessList
	mapView    *adapter.HeadlessMap
	list       *ListSurface
	mapper     *MapSurface
	navigator  *Navigator
}

func newFixture(t *testing.T, permissionMode string) *fixture {
	t.Helper()

	source := &switchableSource{MockDataSource: sharkadapter.NewMockDataSource(clock.Real(), 0, 0)}
	controller := tracking.NewController(source, clock.Fake(time.Now()), time.Minute)
	t.Cleanup(controller.Close)

	permission, err := adapter.NewStaticPermission(permissionMode)
	require.NoError(t, err)

	f := &fixture{
		source:     source,
		controller: controller,
		listView:   adapter.NewHeadlessList(),
		mapView:    adapter.NewHeadlessMap(),
	}
	f.list = NewListSurface(controller, f.listView)
	f.mapper = NewMapSurface(controller, f.mapView, permission)
	f.navigator = NewNavigator(f.list, f.mapper)

	f.list.Start()
	f.mapper.Start(context.Background())
	t.Cleanup(f.list.Close)
	t.Cleanup(f.mapper.Close)
	return f
}

func (f *fixture) refresh(t *testing.T) {
	t.Helper()
	require.NoError(t, f.list.Refresh(context.Background()))
}

func TestListSurface_RendersPings(t *testing.T) {
	f := newFixture(t, adapter.PermissionModeGranted)
	assert.Empty(t, f.listView.ListView().Rows)

	f.refresh(t)

	view := f.listView.ListView()
	require.Len(t, view.Rows, 5)
	assert.Equal(t, "ping_mary_1", view.Rows[0].PingID)
	assert.Equal(t, "Lat: 41.6688, Long: -70.2962", view.Rows[0].Coordinates)
	assert.Equal(t, "Last seen: Jul 16, 08:15", view.Rows[0].LastSeen)
	assert.False(t, view.Progress)
	assert.Empty(t, view.Messages)
	assert.Equal(t, view.Rows, f.list.Rows())
}

func TestListSurface_ShowsErrorOnce(t *testing.T) {
	f := newFixture(t, adapter.PermissionModeGranted)
	f.source.sharksErr = errors.New("boom")

	f.refresh(t)

	assert.Equal(t, []string{"Failed to load sharks: boom"}, f.listView.ListView().Messages)
	assert.False(t, f.controller.State().HasError(), "shown error is acknowledged")

	f.source.sharksErr = nil
	f.refresh(t)
	assert.Len(t, f.listView.ListView().Messages, 1)
}

func TestListSurface_Close(t *testing.T) {
	f := newFixture(t, adapter.PermissionModeGranted)
	f.refresh(t)

	f.list.Close()
	f.list.Close()
	f.source.pings = []sharkdomain.Ping{{ID: "ping_late", SharkID: "mary_lee"}}
	f.refresh(t)

	assert.Len(t, f.listView.ListView().Rows, 5)
	assert.Len(t, f.mapView.MapView().Markers, 1, "map is still subscribed")
}

func TestMapSurface_Start(t *testing.T) {
	f := newFixture(t, adapter.PermissionModeGranted)

	view := f.mapView.MapView()
	assert.Equal(t, domain.InitialCamera, view.Camera)
	assert.False(t, view.Animated)
	assert.True(t, view.Settings.ZoomControls)
	assert.True(t, view.Settings.MapToolbar)
	assert.True(t, view.MyLocationEnabled)
	assert.Empty(t, view.Markers)
}

func TestMapSurface_RendersMarkers(t *testing.T) {
	f := newFixture(t, adapter.PermissionModeGranted)
	f.refresh(t)

	markers := f.mapView.MapView().Markers
	require.Len(t, markers, 5)
	assert.Equal(t, domain.Marker{
		Tag:      "ping_mary_1",
		Title:    "Mary Lee",
		Snippet:  "Great White Shark - Last seen: 2024-07-16 08:15:00",
		Position: domain.LatLng{Latitude: 41.6688, Longitude: -70.2962},
	}, markers[0])
	assert.Equal(t, markers, f.mapper.Markers())

	f.source.pings = []sharkdomain.Ping{{ID: "ping_nukumi_2", SharkID: "nukumi", Name: "Nukumi"}}
	f.refresh(t)

	markers = f.mapView.MapView().Markers
	require.Len(t, markers, 1, "markers are replaced, not accumulated")
	assert.Equal(t, "ping_nukumi_2", markers[0].Tag)
}

func TestMapSurface_LocationPermission(t *testing.T) {
	tests := []struct {
		mode     string
		expected bool
	}{
		{mode: adapter.PermissionModeGranted, expected: true},
		{mode: adapter.PermissionModePromptGranted, expected: true},
		{mode: adapter.PermissionModeDenied, expected: false},
		{mode: adapter.PermissionModePromptDenied, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			f := newFixture(t, tt.mode)
			assert.Equal(t, tt.expected, f.mapView.MapView().MyLocationEnabled)

			f.refresh(t)
			assert.Len(t, f.mapView.MapView().Markers, 5, "permission never blocks loading")
		})
	}
}

func TestMapSurface_PermissionRequestFails(t *testing.T) {
	permission := new(MockLocationPermission)
	permission.On("Has").Return(false).Once()
	permission.On("Request", mock.Anything).Return(domain.PermissionDenied, errors.New("no activity")).Once()

	controller := tracking.NewController(sharkadapter.NewMockDataSource(clock.Real(), 0, 0), clock.Fake(time.Now()), time.Minute)
	defer controller.Close()

	view := adapter.NewHeadlessMap()
	surface := NewMapSurface(controller, view, permission)
	surface.Start(context.Background())
	defer surface.Close()

	assert.False(t, view.MapView().MyLocationEnabled)
	require.NoError(t, controller.Refresh(context.Background()))
	assert.Len(t, view.MapView().Markers, 5)
	permission.AssertExpectations(t)
}

func TestNavigator_SelectListItem(t *testing.T) {
	f := newFixture(t, adapter.PermissionModeGranted)
	f.refresh(t)

	camera, err := f.navigator.SelectListItem("ping_mary_1")
	require.NoError(t, err)

	expected := domain.CameraPosition{
		Target: domain.LatLng{Latitude: 41.6688, Longitude: -70.2962},
		Zoom:   8,
	}
	assert.Equal(t, expected, camera)

	view := f.mapView.MapView()
	assert.Equal(t, expected, view.Camera)
	assert.True(t, view.Animated)
}

func TestNavigator_SelectMarker(t *testing.T) {
	f := newFixture(t, adapter.PermissionModeGranted)
	f.refresh(t)

	index, err := f.navigator.SelectMarker("ping_mary_1")
	require.NoError(t, err)
	assert.Equal(t, 0, index)
	assert.Equal(t, 0, f.listView.ListView().ScrollIndex)

	index, err = f.navigator.SelectMarker("ping_savannah_1")
	require.NoError(t, err)
	assert.Equal(t, 4, index)
	assert.Equal(t, 4, f.listView.ListView().ScrollIndex)
}

func TestNavigator_UnknownPing(t *testing.T) {
	f := newFixture(t, adapter.PermissionModeGranted)

	_, err := f.navigator.SelectListItem("ping_mary_1")
	assert.ErrorIs(t, err, domain.ErrPingNotVisible, "nothing rendered yet")

	f.refresh(t)

	_, err = f.navigator.SelectListItem("ping_ghost")
	assert.ErrorIs(t, err, domain.ErrPingNotVisible)

	_, err = f.navigator.SelectMarker("ping_ghost")
	assert.ErrorIs(t, err, domain.ErrPingNotVisible)
	assert.Equal(t, -1, f.listView.ListView().ScrollIndex)
	assert.Equal(t, domain.InitialCamera, f.mapView.MapView().Camera)
}
