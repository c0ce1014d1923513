package domain

import "errors"

// PermissionResult is the outcome of a location permission request.
type PermissionResult string

const (
	// PermissionGranted covers both fine and coarse location.
	PermissionGranted PermissionResult = "granted"
	// PermissionDenied means no location access.
	PermissionDenied PermissionResult = "denied"
)

// ErrPingNotVisible is returned when a selection refers to a ping that is not rendered.
var ErrPingNotVisible = errors.New("ping not visible")
