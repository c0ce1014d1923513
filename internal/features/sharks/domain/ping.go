package domain

import (
	"fmt"
	"time"
)

// PingTimeLayout is the layout of Ping.Datetime (yyyy-MM-dd HH:mm:ss).
const PingTimeLayout = "2006-01-02 15:04:05"

const lastSeenLayout = "Jan 02, 15:04"

// Ping is a single location observation of a shark. Name, Species and
// ProfilePhoto are denormalized copies of the owning shark so a list can
// render a ping without joining against the sharks collection.
type Ping struct {
	// ID is the unique ping identifier.
	ID string `json:"id" validate:"required"`
	// SharkID references Shark.ID.
	SharkID string `json:"sharkId" validate:"required"`
	// Datetime is the observation time, formatted with PingTimeLayout.
	Datetime string `json:"datetime"`
	// Latitude in degrees.
	Latitude float64 `json:"latitude" validate:"gte=-90,lte=90"`
	// Longitude in degrees.
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	// Depth is optional free text with unit (e.g., "18 m").
	Depth *string `json:"depth"`
	// Temperature is optional free text with unit (e.g., "16°C").
	Temperature *string `json:"temperature"`
	// Name of the owning shark.
	Name string `json:"name"`
	// Species of the owning shark.
	Species string `json:"species"`
	// ProfilePhoto of the owning shark.
	ProfilePhoto string `json:"profilePhoto"`
}

// PingResponse is the wire wrapper of the pings resource.
type PingResponse struct {
	Pings []Ping `json:"pings" validate:"dive"`
}

// Time parses Datetime.
func (p Ping) Time() (time.Time, error) {
	t, err := time.Parse(PingTimeLayout, p.Datetime)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ping datetime %q: %w", p.Datetime, err)
	}
	return t, nil
}

// LastSeen renders the observation time for a list row, falling back to the
// raw value when it cannot be parsed.
func (p Ping) LastSeen() string {
	t, err := p.Time()
	if err != nil {
		return "Last seen: " + p.Datetime
	}
	return "Last seen: " + t.Format(lastSeenLayout)
}

// CoordinatesLabel renders the coordinates with four decimals.
func (p Ping) CoordinatesLabel() string {
	return fmt.Sprintf("Lat: %.4f, Long: %.4f", p.Latitude, p.Longitude)
}

// MarkerSnippet is the text shown under a map marker's title.
func (p Ping) MarkerSnippet() string {
	return fmt.Sprintf("%s - Last seen: %s", p.Species, p.Datetime)
}

// FilterBySharkID returns the pings owned by sharkID, preserving order.
// The result is never nil.
func FilterBySharkID(pings []Ping, sharkID string) []Ping {
	filtered := make([]Ping, 0)
	for _, p := range pings {
		if p.SharkID == sharkID {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
