package handler

import (
	"net/http"

	"shark-tracker/internal/core/logger"
	"shark-tracker/internal/features/sharks/domain"
	"shark-tracker/internal/features/sharks/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// FeedHandler serves the configured data source in the OCEARCH wire format.
type FeedHandler struct {
	// source is the configured data source.
	source ports.DataSource
}

// NewFeedHandler creates a new instance of FeedHandler.
func NewFeedHandler(source ports.DataSource) *FeedHandler {
	return &FeedHandler{
		source: source,
	}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// GetSharks handles the request to list shark profiles.
// @Summary List sharks
// @Description Returns every shark profile known to the configured data source.
// @Tags sharks
// @Produce json
// @Success 200 {object} domain.SharkResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/sharks [get]
func (h *FeedHandler) GetSharks(c *fiber.Ctx) error {
	rayID := rayIDFrom(c)

	sharks, err := h.source.FetchSharks(c.UserContext())
	if err != nil {
		logger.Get().Error("Failed to fetch sharks",
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusOK).JSON(domain.SharkResponse{Sharks: sharks})
}

// GetPings handles the request to list pings, optionally for a single shark.
// @Summary List pings
// @Description Returns the latest pings, filtered by shark when id is given.
// @Tags sharks
// @Produce json
// @Param id query string false "Shark ID"
// @Success 200 {object} domain.PingResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/sharks/pings [get]
func (h *FeedHandler) GetPings(c *fiber.Ctx) error {
	rayID := rayIDFrom(c)
	sharkID := c.Query("id")

	var (
		pings []domain.Ping
		err   error
	)
	if sharkID == "" {
		pings, err = h.source.FetchPings(c.UserContext())
	} else {
		pings, err = h.source.FetchPingsForShark(c.UserContext(), sharkID)
	}

	if err != nil {
		logger.Get().Error("Failed to fetch pings",
			zap.String("shark_id", sharkID),
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusOK).JSON(domain.PingResponse{Pings: pings})
}

func rayIDFrom(c *fiber.Ctx) string {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return rayID
}
