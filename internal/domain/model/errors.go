package model

import "errors"

var (
	// ErrLocationNotFound is returned when no tracked location has the requested id
	ErrLocationNotFound = errors.New("location not found")

	// ErrCityNotFound is returned when geocoding yields no match for a city name
	ErrCityNotFound = errors.New("city not found")

	// ErrProviderUnavailable is returned when the weather provider could not answer
	ErrProviderUnavailable = errors.New("weather provider unavailable")
)
