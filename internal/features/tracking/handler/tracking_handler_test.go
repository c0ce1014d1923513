package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shark-tracker/internal/core/clock"
	adapter "shark-tracker/internal/features/sharks/adapters"
	"shark-tracker/internal/features/tracking/domain"
	"shark-tracker/internal/features/tracking/ports"
	"shark-tracker/internal/features/tracking/service"

	fastws "github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockStateController is a mock implementation of ports.StateController
type MockStateController struct {
	mock.Mock
}

func (m *MockStateController) State() domain.State {
	args := m.Called()
	return args.Get(0).(domain.State)
}

func (m *MockStateController) Refresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStateController) ClearError() {
	m.Called()
}

func (m *MockStateController) SetAutoRefreshEnabled(enabled bool) {
	m.Called(enabled)
}

func (m *MockStateController) AutoRefreshEnabled() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockStateController) Observe(observer ports.Observer) ports.Subscription {
	args := m.Called(observer)
	return args.Get(0).(ports.Subscription)
}

func setupApp(controller ports.StateController) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})

	h := NewTrackingHandler(controller)
	app.Get("/tracking/state", h.GetState)
	app.Post("/tracking/refresh", h.Refresh)
	app.Delete("/tracking/error", h.ClearError)
	app.Put("/tracking/auto-refresh", h.SetAutoRefresh)
	app.Get("/tracking/stream", h.RequireUpgrade, h.Stream())
	return app
}

func stateWithError() domain.State {
	s := domain.NewState()
	s.Error = "Failed to load shark locations: timeout"
	s.ErrorKind = domain.ErrorKindSharkLocation
	s.Version = 4
	return s
}

func TestTrackingHandler_GetState(t *testing.T) {
	controller := new(MockStateController)
	controller.On("State").Return(stateWithError()).Once()

	resp, err := setupApp(controller).Test(httptest.NewRequest(http.MethodGet, "/tracking/state", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "Failed to load shark locations: timeout", result["error"])
	assert.Equal(t, "shark_location", result["errorKind"])
	assert.Equal(t, false, result["loading"])
	assert.Equal(t, []interface{}{}, result["sharks"])
	controller.AssertExpectations(t)
}

func TestTrackingHandler_Refresh(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		controller := new(MockStateController)
		controller.On("Refresh", mock.Anything).Return(nil).Once()
		controller.On("State").Return(domain.NewState()).Once()

		resp, err := setupApp(controller).Test(httptest.NewRequest(http.MethodPost, "/tracking/refresh", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		controller.AssertExpectations(t)
	})

	t.Run("Closed", func(t *testing.T) {
		controller := new(MockStateController)
		controller.On("Refresh", mock.Anything).Return(service.ErrControllerClosed).Once()

		resp, err := setupApp(controller).Test(httptest.NewRequest(http.MethodPost, "/tracking/refresh", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var result ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "tracking controller closed", result.Message)
		assert.Equal(t, "test-ray-id", result.RayID)
	})

	t.Run("Timeout", func(t *testing.T) {
		controller := new(MockStateController)
		controller.On("Refresh", mock.Anything).Return(context.DeadlineExceeded).Once()

		resp, err := setupApp(controller).Test(httptest.NewRequest(http.MethodPost, "/tracking/refresh", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusGatewayTimeout, resp.StatusCode)
	})
}

func TestTrackingHandler_ClearError(t *testing.T) {
	controller := new(MockStateController)
	controller.On("ClearError").Return().Once()
	controller.On("State").Return(domain.NewState()).Once()

	resp, err := setupApp(controller).Test(httptest.NewRequest(http.MethodDelete, "/tracking/error", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	controller.AssertExpectations(t)
}

func TestTrackingHandler_SetAutoRefresh(t *testing.T) {
	t.Run("Disable", func(t *testing.T) {
		controller := new(MockStateController)
		controller.On("SetAutoRefreshEnabled", false).Return().Once()
		controller.On("AutoRefreshEnabled").Return(false).Once()

		req := httptest.NewRequest(http.MethodPut, "/tracking/auto-refresh", bytes.NewBufferString(`{"enabled":false}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := setupApp(controller).Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result AutoRefreshResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.False(t, result.Enabled)
		controller.AssertExpectations(t)
	})

	t.Run("MissingField", func(t *testing.T) {
		controller := new(MockStateController)

		req := httptest.NewRequest(http.MethodPut, "/tracking/auto-refresh", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := setupApp(controller).Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		controller.AssertNotCalled(t, "SetAutoRefreshEnabled", mock.Anything)
	})

	t.Run("InvalidBody", func(t *testing.T) {
		controller := new(MockStateController)

		req := httptest.NewRequest(http.MethodPut, "/tracking/auto-refresh", bytes.NewBufferString(`{"enabled":`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := setupApp(controller).Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestTrackingHandler_StreamUpgradeRequired(t *testing.T) {
	controller := new(MockStateController)

	resp, err := setupApp(controller).Test(httptest.NewRequest(http.MethodGet, "/tracking/stream", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUpgradeRequired, resp.StatusCode)
	controller.AssertNotCalled(t, "Observe", mock.Anything)
}

func TestTrackingHandler_Stream(t *testing.T) {
	controller := service.NewController(adapter.NewMockDataSource(clock.Real(), 0, 0), clock.Fake(time.Now()), time.Minute)
	defer controller.Close()

	app := setupApp(controller)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		_ = app.Listener(ln)
	}()
	defer func() { _ = app.Shutdown() }()

	conn, _, err := fastws.DefaultDialer.Dial("ws://"+ln.Addr().String()+"/tracking/stream", nil)
	require.NoError(t, err)
	defer conn.Close()

	var initial domain.State
	require.NoError(t, conn.ReadJSON(&initial))
	assert.Zero(t, initial.Version)

	require.NoError(t, controller.Refresh(context.Background()))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var last domain.State
	for last.Version < 3 {
		require.NoError(t, conn.ReadJSON(&last))
	}
	assert.Len(t, last.Sharks, 5)
	assert.Len(t, last.Pings, 5)
	assert.False(t, last.Loading)
}
