package domain

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Resource names a Data Source collection.
type Resource string

const (
	// ResourceSharks is the shark profile collection.
	ResourceSharks Resource = "sharks"
	// ResourcePings is the ping collection.
	ResourcePings Resource = "pings"
)

// ErrInvalidPayload is wrapped when a fetched collection fails validation.
var ErrInvalidPayload = errors.New("invalid payload")

// FetchError is the typed failure every Data Source returns.
type FetchError struct {
	Resource Resource
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// NewFetchError wraps err as a FetchError unless it already is one.
func NewFetchError(resource Resource, err error) error {
	if err == nil {
		return nil
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return err
	}
	return &FetchError{Resource: resource, Err: err}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func payloadValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// ValidateSharks checks every shark of a fetched collection.
func ValidateSharks(sharks []Shark) error {
	if err := payloadValidator().Struct(SharkResponse{Sharks: sharks}); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}

// ValidatePings checks every ping of a fetched collection.
func ValidatePings(pings []Ping) error {
	if err := payloadValidator().Struct(PingResponse{Pings: pings}); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}
