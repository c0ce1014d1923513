package domain

import (
	"errors"

	sharks "shark-tracker/internal/features/sharks/domain"
)

// ErrorKind is the category of a failure shown to the user.
type ErrorKind string

const (
	// ErrorKindNone means no error.
	ErrorKindNone ErrorKind = ""
	// ErrorKindSharkMetadata means the shark profiles failed to load.
	ErrorKindSharkMetadata ErrorKind = "shark_metadata"
	// ErrorKindSharkLocation means the pings failed to load.
	ErrorKindSharkLocation ErrorKind = "shark_location"
)

// LoadError is a failed half of a load sequence.
type LoadError struct {
	Kind ErrorKind
	Err  error
}

// NewSharksError wraps a failed sharks fetch.
func NewSharksError(err error) *LoadError {
	return &LoadError{Kind: ErrorKindSharkMetadata, Err: err}
}

// NewPingsError wraps a failed pings fetch.
func NewPingsError(err error) *LoadError {
	return &LoadError{Kind: ErrorKindSharkLocation, Err: err}
}

func (e *LoadError) Error() string {
	switch e.Kind {
	case ErrorKindSharkMetadata:
		return "Failed to load sharks: " + e.cause()
	case ErrorKindSharkLocation:
		return "Failed to load shark locations: " + e.cause()
	default:
		return e.cause()
	}
}

func (e *LoadError) Unwrap() error { return e.Err }

// cause is the message of the underlying failure, without the fetch prefix.
func (e *LoadError) cause() string {
	if e.Err == nil {
		return "unknown error"
	}
	var fe *sharks.FetchError
	if errors.As(e.Err, &fe) && fe.Err != nil {
		return fe.Err.Error()
	}
	return e.Err.Error()
}
