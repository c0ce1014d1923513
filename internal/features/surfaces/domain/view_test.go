package domain

import (
	"testing"

	sharks "shark-tracker/internal/features/sharks/domain"

	"github.com/stretchr/testify/assert"
)

func TestNewListRow(t *testing.T) {
	p := sharks.Ping{
		ID: "ping_mary_1", SharkID: "mary_lee", Datetime: "2024-07-16 08:15:00",
		Latitude: 41.6688, Longitude: -70.2962, Name: "Mary Lee", Species: "Great White Shark",
		ProfilePhoto: "https://www.ocearch.org/images/sharks/mary-lee.jpg",
	}

	row := NewListRow(p)
	assert.Equal(t, ListRow{
		PingID:       "ping_mary_1",
		SharkID:      "mary_lee",
		Name:         "Mary Lee",
		Species:      "Great White Shark",
		Coordinates:  "Lat: 41.6688, Long: -70.2962",
		LastSeen:     "Last seen: Jul 16, 08:15",
		ProfilePhoto: "https://www.ocearch.org/images/sharks/mary-lee.jpg",
		Position:     LatLng{Latitude: 41.6688, Longitude: -70.2962},
	}, row)

	marker := NewMarker(p)
	assert.Equal(t, "ping_mary_1", marker.Tag)
	assert.Equal(t, "Mary Lee", marker.Title)
	assert.Equal(t, "Great White Shark - Last seen: 2024-07-16 08:15:00", marker.Snippet)
	assert.Equal(t, row.Position, marker.Position)
}

func TestInitialCamera(t *testing.T) {
	assert.Equal(t, LatLng{Latitude: 40.0, Longitude: -74.0}, InitialCamera.Target)
	assert.Equal(t, 6.0, InitialCamera.Zoom)
}
