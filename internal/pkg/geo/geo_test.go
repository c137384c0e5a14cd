package geo

import (
	"errors"
	"math"
	"testing"
)

func TestHaversineDistanceZero(t *testing.T) {
	if d := HaversineDistance(12.9716, 77.5946, 12.9716, 77.5946); d != 0 {
		t.Errorf("distance to self = %f, want 0", d)
	}
}

func TestHaversineDistanceKnownValues(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64 // meters
		tolerance              float64
	}{
		// One degree of latitude on a 6371 km sphere
		{"one degree latitude", 0, 0, 1, 0, 111195, 10},
		// ~0.001 degree of latitude, typical geofence scale
		{"small offset", 12.9716, 77.5946, 12.9726, 77.5946, 111.2, 1},
	}
	for _, c := range cases {
		got := HaversineDistance(c.lat1, c.lon1, c.lat2, c.lon2)
		if math.Abs(got-c.want) > c.tolerance {
			t.Errorf("%s: distance = %f, want %f ± %f", c.name, got, c.want, c.tolerance)
		}
	}
}

func TestHaversineDistanceSymmetric(t *testing.T) {
	d1 := HaversineDistance(12.9716, 77.5946, 13.0358, 77.5970)
	d2 := HaversineDistance(13.0358, 77.5970, 12.9716, 77.5946)
	if math.Abs(d1-d2) > 1e-9 {
		t.Errorf("distance is not symmetric: %f vs %f", d1, d2)
	}
}

func TestGeofenceValidateInsideRadius(t *testing.T) {
	g := NewGeofence(12.9716, 77.5946, 100)

	if err := g.Validate(12.9716, 77.5946); err != nil {
		t.Errorf("exact office coordinate: %v, want nil", err)
	}
	// ~55m north
	if err := g.Validate(12.9721, 77.5946); err != nil {
		t.Errorf("coordinate inside radius: %v, want nil", err)
	}
}

func TestGeofenceValidateOutsideRadius(t *testing.T) {
	g := NewGeofence(12.9716, 77.5946, 100)

	// ~111m north, just past the 100m limit
	err := g.Validate(12.9726, 77.5946)
	if err == nil {
		t.Fatal("coordinate outside radius: want error, got nil")
	}
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("errors.Is(err, ErrOutOfRange) = false for %v", err)
	}

	var outOfRange *OutOfRangeError
	if !errors.As(err, &outOfRange) {
		t.Fatalf("error is not *OutOfRangeError: %v", err)
	}
	if outOfRange.MaxMeters != 100 {
		t.Errorf("MaxMeters = %d, want 100", outOfRange.MaxMeters)
	}
	// Reported distance must match the haversine computation to the meter
	want := int(math.Round(HaversineDistance(12.9726, 77.5946, 12.9716, 77.5946)))
	if outOfRange.DistanceMeters != want {
		t.Errorf("DistanceMeters = %d, want %d", outOfRange.DistanceMeters, want)
	}
}

func TestGeofenceValidateUnconfiguredOffice(t *testing.T) {
	cases := []struct {
		name     string
		lat, lng float64
	}{
		{"zero coordinates", 0, 0},
		{"zero latitude", 0, 77.5946},
		{"NaN latitude", math.NaN(), 77.5946},
	}
	for _, c := range cases {
		g := NewGeofence(c.lat, c.lng, 100)
		if err := g.Validate(12.9716, 77.5946); !errors.Is(err, ErrOfficeNotConfigured) {
			t.Errorf("%s: err = %v, want ErrOfficeNotConfigured", c.name, err)
		}
	}
}
