package domain

import (
	"errors"
	"fmt"
)

var (
	ErrGeocodeFailure       = errors.New("geocode failure")
	ErrRemoteGeneration     = errors.New("remote generation failure")
	ErrGenerationInProgress = errors.New("generation already in progress for session")
	ErrInvalidRequest       = errors.New("invalid request")
	ErrNoItinerary          = errors.New("no itinerary generated yet")
)

// GeocodeError reports a place name the geocoder could not resolve.
// Its message is shown to users verbatim.
type GeocodeError struct {
	Place string
	Err   error
}

func (e *GeocodeError) Error() string {
	return fmt.Sprintf("Could not geocode '%s'. Try another city.", e.Place)
}

func (e *GeocodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrGeocodeFailure}
	}
	return []error{ErrGeocodeFailure, e.Err}
}

// ValidationError describes a rejected request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidRequest }
