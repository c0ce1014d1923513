package handler

import (
	"errors"
	"net/http"

	"shark-tracker/internal/core/logger"
	"shark-tracker/internal/features/surfaces/domain"
	"shark-tracker/internal/features/surfaces/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Navigation is the cross navigation between the two surfaces.
type Navigation interface {
	SelectListItem(pingID string) (domain.CameraPosition, error)
	SelectMarker(pingID string) (int, error)
}

// SurfacesHandler exposes the rendered surfaces and the selection actions.
type SurfacesHandler struct {
	list      ports.ListViewer
	mapView   ports.MapViewer
	navigator Navigation
}

// NewSurfacesHandler creates a new SurfacesHandler.
func NewSurfacesHandler(list ports.ListViewer, mapView ports.MapViewer, navigator Navigation) *SurfacesHandler {
	return &SurfacesHandler{
		list:      list,
		mapView:   mapView,
		navigator: navigator,
	}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// GetList handles GET /surfaces/list.
// @Summary Get the list surface
// @Description Returns the rows, scroll position, progress indicator and messages of the list.
// @Tags surfaces
// @Produce json
// @Success 200 {object} domain.ListView
// @Router /surfaces/list [get]
func (h *SurfacesHandler) GetList(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.list.ListView())
}

// GetMap handles GET /surfaces/map.
// @Summary Get the map surface
// @Description Returns the markers, camera, settings and my-location overlay of the map.
// @Tags surfaces
// @Produce json
// @Success 200 {object} domain.MapView
// @Router /surfaces/map [get]
func (h *SurfacesHandler) GetMap(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.mapView.MapView())
}

// SelectListItem handles POST /surfaces/list/:pingId/select.
// @Summary Select a list row
// @Description Centers the map on the ping of the selected row.
// @Tags surfaces
// @Produce json
// @Param pingId path string true "Ping ID"
// @Success 200 {object} domain.MapView
// @Failure 404 {object} ErrorResponse
// @Router /surfaces/list/{pingId}/select [post]
func (h *SurfacesHandler) SelectListItem(c *fiber.Ctx) error {
	pingID := c.Params("pingId")

	if _, err := h.navigator.SelectListItem(pingID); err != nil {
		return h.selectionError(c, pingID, err)
	}

	return c.Status(http.StatusOK).JSON(h.mapView.MapView())
}

// SelectMarker handles POST /surfaces/map/markers/:pingId/select.
// @Summary Select a map marker
// @Description Scrolls the list to the row of the selected marker.
// @Tags surfaces
// @Produce json
// @Param pingId path string true "Ping ID"
// @Success 200 {object} domain.ListView
// @Failure 404 {object} ErrorResponse
// @Router /surfaces/map/markers/{pingId}/select [post]
func (h *SurfacesHandler) SelectMarker(c *fiber.Ctx) error {
	pingID := c.Params("pingId")

	if _, err := h.navigator.SelectMarker(pingID); err != nil {
		return h.selectionError(c, pingID, err)
	}

	return c.Status(http.StatusOK).JSON(h.list.ListView())
}

func (h *SurfacesHandler) selectionError(c *fiber.Ctx, pingID string, err error) error {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		rayID = "unknown"
	}

	if errors.Is(err, domain.ErrPingNotVisible) {
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Message: "Ping not visible",
			RayID:   rayID,
		})
	}

	logger.Get().Error("Selection failed",
		zap.String("ping_id", pingID),
		zap.String("ray_id", rayID),
		zap.Error(err),
	)
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Message: err.Error(),
		RayID:   rayID,
	})
}
