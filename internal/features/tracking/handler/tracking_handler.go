package handler

import (
	"context"
	"errors"
	"net/http"

	"shark-tracker/internal/core/logger"
	"shark-tracker/internal/features/tracking/domain"
	"shark-tracker/internal/features/tracking/ports"
	"shark-tracker/internal/features/tracking/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

// streamBuffer is the number of states a slow stream client may lag behind
// before older states are dropped in favour of newer ones.
const streamBuffer = 16

// TrackingHandler handles HTTP requests for the Tracking State.
type TrackingHandler struct {
	controller ports.StateController
	validate   *validator.Validate
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(controller ports.StateController) *TrackingHandler {
	return &TrackingHandler{
		controller: controller,
		validate:   validator.New(),
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// AutoRefreshRequest is the body of PUT /tracking/auto-refresh.
type AutoRefreshRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// AutoRefreshResponse reports the auto refresh setting.
type AutoRefreshResponse struct {
	Enabled bool `json:"enabled"`
}

// GetState godoc
// @Summary Get the tracking state
// @Description Returns the current sharks, pings, loading flag and last error
// @Tags tracking
// @Produce json
// @Success 200 {object} domain.State
// @Router /tracking/state [get]
func (h *TrackingHandler) GetState(c *fiber.Ctx) error {
	return c.JSON(h.controller.State())
}

// Refresh godoc
// @Summary Refresh sharks and pings
// @Description Runs the full load sequence and returns the resulting state. Fetch failures are reported in the state's error field.
// @Tags tracking
// @Produce json
// @Success 200 {object} domain.State
// @Failure 503 {object} ErrorResponse
// @Failure 504 {object} ErrorResponse
// @Router /tracking/refresh [post]
func (h *TrackingHandler) Refresh(c *fiber.Ctx) error {
	if err := h.controller.Refresh(c.UserContext()); err != nil {
		rayID := rayIDFrom(c)
		logger.Get().Warn("Refresh not completed",
			zap.String("ray_id", rayID),
			zap.Error(err),
		)

		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, service.ErrControllerClosed):
			status = http.StatusServiceUnavailable
		case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
			status = http.StatusGatewayTimeout
		}

		return c.Status(status).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID,
		})
	}

	return c.JSON(h.controller.State())
}

// ClearError godoc
// @Summary Acknowledge the last error
// @Description Clears the last error after it has been shown. Does nothing when there is no error.
// @Tags tracking
// @Produce json
// @Success 200 {object} domain.State
// @Router /tracking/error [delete]
func (h *TrackingHandler) ClearError(c *fiber.Ctx) error {
	h.controller.ClearError()
	return c.JSON(h.controller.State())
}

// SetAutoRefresh godoc
// @Summary Toggle the periodic refresh
// @Description Enables or disables the periodic ping refresh
// @Tags tracking
// @Accept json
// @Produce json
// @Param body body AutoRefreshRequest true "Auto refresh setting"
// @Success 200 {object} AutoRefreshResponse
// @Failure 400 {object} ErrorResponse
// @Router /tracking/auto-refresh [put]
func (h *TrackingHandler) SetAutoRefresh(c *fiber.Ctx) error {
	var req AutoRefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayIDFrom(c),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "enabled is required",
			RayID:   rayIDFrom(c),
		})
	}

	h.controller.SetAutoRefreshEnabled(*req.Enabled)
	return c.JSON(AutoRefreshResponse{Enabled: h.controller.AutoRefreshEnabled()})
}

// RequireUpgrade rejects requests that are not WebSocket upgrades.
func (h *TrackingHandler) RequireUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Stream godoc
// @Summary Observe the tracking state
// @Description WebSocket. Sends the current state, then one JSON state per change.
// @Tags tracking
// @Success 101 {string} string "Switching Protocols"
// @Failure 426 {object} ErrorResponse
// @Router /tracking/stream [get]
func (h *TrackingHandler) Stream() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		log := logger.Named("tracking.stream")
		updates := make(chan domain.State, streamBuffer)

		sub := h.controller.Observe(func(state domain.State) {
			for {
				select {
				case updates <- state:
					return
				default:
				}
				select {
				case <-updates:
				default:
				}
			}
		})
		defer sub.Unsubscribe()
		log.Debug("Stream client connected", zap.String("subscription_id", sub.ID()))

		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case <-done:
				log.Debug("Stream client disconnected", zap.String("subscription_id", sub.ID()))
				return
			case state := <-updates:
				if err := conn.WriteJSON(state); err != nil {
					log.Debug("Stream write failed", zap.Error(err))
					return
				}
			}
		}
	})
}

func rayIDFrom(c *fiber.Ctx) string {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return rayID
}
