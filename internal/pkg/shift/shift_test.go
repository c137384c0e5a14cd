package shift

import (
	"testing"
	"time"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		label    string
		hour     int
		minute   int
		grace    time.Duration
		duration time.Duration
	}{
		{"10:00", 10, 0, 10 * time.Minute, 9 * time.Hour},
		{"10:30", 10, 30, 0, 9 * time.Hour},
		{"13:00", 13, 0, 0, 6*time.Hour + 30*time.Minute},
		// Unrecognized but well-formed starts keep their time with defaults
		{"09:00", 9, 0, 0, 9 * time.Hour},
		{"23:59", 23, 59, 0, 9 * time.Hour},
	}
	for _, c := range cases {
		got := Resolve(c.label)
		if got.StartHour != c.hour || got.StartMinute != c.minute {
			t.Errorf("Resolve(%q) start = %d:%d, want %d:%d", c.label, got.StartHour, got.StartMinute, c.hour, c.minute)
		}
		if got.GracePeriod != c.grace {
			t.Errorf("Resolve(%q) grace = %v, want %v", c.label, got.GracePeriod, c.grace)
		}
		if got.Duration != c.duration {
			t.Errorf("Resolve(%q) duration = %v, want %v", c.label, got.Duration, c.duration)
		}
	}
}

func TestResolveMalformedFallsBackToDefault(t *testing.T) {
	malformed := []string{"", "banana", "25:00", "10:60", "10", "10:00:00", "-1:30"}
	want := Resolve(DefaultLabel)
	for _, label := range malformed {
		got := Resolve(label)
		if got != want {
			t.Errorf("Resolve(%q) = %+v, want default %+v", label, got, want)
		}
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		if Resolve("13:00") != Resolve("13:00") {
			t.Fatal("Resolve is not deterministic for the same label")
		}
	}
}

func TestStartOn(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatal(err)
	}

	cfg := Resolve("10:30")
	got := cfg.StartOn(2024, time.March, 5, loc)
	want := time.Date(2024, time.March, 5, 10, 30, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("StartOn = %v, want %v", got, want)
	}
}
