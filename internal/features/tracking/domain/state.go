package domain

import (
	"time"

	sharks "shark-tracker/internal/features/sharks/domain"
)

// State is the Tracking State published to observers. Values handed out by
// the controller are snapshots; mutating them has no effect on the controller.
type State struct {
	// Sharks holds the current shark profiles in fetch order.
	Sharks []sharks.Shark `json:"sharks"`
	// Pings holds the current pings in fetch order.
	Pings []sharks.Ping `json:"pings"`
	// Loading is true only while a controller-triggered fetch is in flight.
	Loading bool `json:"loading"`
	// Error is the last error message, empty when there is none.
	Error string `json:"error,omitempty"`
	// ErrorKind classifies Error.
	ErrorKind ErrorKind `json:"errorKind,omitempty"`
	// Version increases by one on every published change.
	Version uint64 `json:"version"`
	// UpdatedAt is the time of the last published change.
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewState returns the empty initial state.
func NewState() State {
	return State{
		Sharks: []sharks.Shark{},
		Pings:  []sharks.Ping{},
	}
}

// HasError reports whether an error is waiting to be acknowledged.
func (s State) HasError() bool {
	return s.Error != ""
}

// Clone returns a copy that shares no slices with s.
func (s State) Clone() State {
	out := s
	out.Sharks = append(make([]sharks.Shark, 0, len(s.Sharks)), s.Sharks...)
	out.Pings = make([]sharks.Ping, len(s.Pings))
	for i, p := range s.Pings {
		out.Pings[i] = p
		if p.Depth != nil {
			depth := *p.Depth
			out.Pings[i].Depth = &depth
		}
		if p.Temperature != nil {
			temperature := *p.Temperature
			out.Pings[i].Temperature = &temperature
		}
	}
	return out
}

// SetError records err as the last error.
func (s *State) SetError(err *LoadError) {
	s.Error = err.Error()
	s.ErrorKind = err.Kind
}

// ClearError removes the last error.
func (s *State) ClearError() {
	s.Error = ""
	s.ErrorKind = ErrorKindNone
}
