package domain

import (
	sharks "shark-tracker/internal/features/sharks/domain"
)

const (
	// FocusZoom is the zoom level used when centering the map on a ping.
	FocusZoom = 8.0
	// InitialZoom is the zoom level of the initial camera.
	InitialZoom = 6.0
)

// InitialCamera frames the North American east coast.
var InitialCamera = CameraPosition{
	Target: LatLng{Latitude: 40.0, Longitude: -74.0},
	Zoom:   InitialZoom,
}

// LatLng is a geographic position in degrees.
type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CameraPosition is the map viewport.
type CameraPosition struct {
	Target LatLng  `json:"target"`
	Zoom   float64 `json:"zoom"`
}

// ListRow is one rendered row of the ping list.
type ListRow struct {
	// PingID identifies the row.
	PingID       string `json:"pingId"`
	SharkID      string `json:"sharkId"`
	Name         string `json:"name"`
	Species      string `json:"species"`
	Coordinates  string `json:"coordinates"`
	LastSeen     string `json:"lastSeen"`
	ProfilePhoto string `json:"profilePhoto"`
	Position     LatLng `json:"position"`
}

// NewListRow renders p as a list row.
func NewListRow(p sharks.Ping) ListRow {
	return ListRow{
		PingID:       p.ID,
		SharkID:      p.SharkID,
		Name:         p.Name,
		Species:      p.Species,
		Coordinates:  p.CoordinatesLabel(),
		LastSeen:     p.LastSeen(),
		ProfilePhoto: p.ProfilePhoto,
		Position:     LatLng{Latitude: p.Latitude, Longitude: p.Longitude},
	}
}

// Marker is a map marker. Tag holds the ping id.
type Marker struct {
	Tag      string `json:"tag"`
	Title    string `json:"title"`
	Snippet  string `json:"snippet"`
	Position LatLng `json:"position"`
}

// NewMarker renders p as a map marker.
func NewMarker(p sharks.Ping) Marker {
	return Marker{
		Tag:      p.ID,
		Title:    p.Name,
		Snippet:  p.MarkerSnippet(),
		Position: LatLng{Latitude: p.Latitude, Longitude: p.Longitude},
	}
}

// MapSettings are the UI toggles of the map.
type MapSettings struct {
	ZoomControls bool `json:"zoomControls"`
	MapToolbar   bool `json:"mapToolbar"`
}

// ListView is what a list renderer currently shows.
type ListView struct {
	Rows []ListRow `json:"rows"`
	// ScrollIndex is the row scrolled into view, -1 before any scroll.
	ScrollIndex int  `json:"scrollIndex"`
	Progress    bool `json:"progress"`
	// Messages are the transient messages shown so far, oldest first.
	Messages []string `json:"messages"`
}

// MapView is what a map renderer currently shows.
type MapView struct {
	Markers           []Marker       `json:"markers"`
	Camera            CameraPosition `json:"camera"`
	Animated          bool           `json:"animated"`
	Settings          MapSettings    `json:"settings"`
	MyLocationEnabled bool           `json:"myLocationEnabled"`
}
