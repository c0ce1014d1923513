package ports

import (
	"context"

	"shark-tracker/internal/features/surfaces/domain"
)

// ListRenderer draws the ping list.
// This is a Secondary Port (Driven Port).
type ListRenderer interface {
	// SubmitRows replaces every row.
	SubmitRows(rows []domain.ListRow)
	// ScrollTo brings the row at index into view.
	ScrollTo(index int)
	// ShowProgress toggles the progress indicator.
	ShowProgress(visible bool)
	// ShowMessage displays a transient message.
	ShowMessage(message string)
}

// MapRenderer draws the map.
// This is a Secondary Port (Driven Port).
type MapRenderer interface {
	// ApplySettings sets the UI toggles.
	ApplySettings(settings domain.MapSettings)
	// SetMarkers clears the map and adds markers.
	SetMarkers(markers []domain.Marker)
	// MoveCamera jumps to position.
	MoveCamera(position domain.CameraPosition)
	// AnimateCamera moves to position with an animation.
	AnimateCamera(position domain.CameraPosition)
	// SetMyLocationEnabled toggles the my-location overlay.
	SetMyLocationEnabled(enabled bool)
}

// LocationPermission is the device location grant.
// This is a Secondary Port (Driven Port).
type LocationPermission interface {
	// Has reports whether the permission is already granted.
	Has() bool
	// Request asks for the permission.
	Request(ctx context.Context) (domain.PermissionResult, error)
}

// ListViewer exposes what the list renderer shows.
type ListViewer interface {
	ListView() domain.ListView
}

// MapViewer exposes what the map renderer shows.
type MapViewer interface {
	MapView() domain.MapView
}
