package geo

import (
	"errors"
	"fmt"
	"math"
)

// ErrOfficeNotConfigured is returned when the office coordinate is unset.
var ErrOfficeNotConfigured = errors.New("office location not configured")

// ErrOutOfRange is the sentinel for geofence failures; the concrete error
// is an *OutOfRangeError carrying the measured distance.
var ErrOutOfRange = errors.New("outside the allowed office radius")

type OutOfRangeError struct {
	DistanceMeters int
	MaxMeters      int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("you are %dm away from office, must be within %dm", e.DistanceMeters, e.MaxMeters)
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}

// Geofence validates reported coordinates against a fixed office location.
type Geofence struct {
	officeLat float64
	officeLng float64
	maxMeters float64
}

func NewGeofence(officeLat, officeLng, maxMeters float64) *Geofence {
	return &Geofence{
		officeLat: officeLat,
		officeLng: officeLng,
		maxMeters: maxMeters,
	}
}

// Validate checks that (lat, lng) lies within the allowed radius of the
// office. It must pass before any punch mutates state.
func (g *Geofence) Validate(lat, lng float64) error {
	if g.officeLat == 0 || g.officeLng == 0 ||
		math.IsNaN(g.officeLat) || math.IsNaN(g.officeLng) {
		return ErrOfficeNotConfigured
	}

	distance := HaversineDistance(lat, lng, g.officeLat, g.officeLng)
	if distance > g.maxMeters {
		return &OutOfRangeError{
			DistanceMeters: int(math.Round(distance)),
			MaxMeters:      int(g.maxMeters),
		}
	}
	return nil
}
