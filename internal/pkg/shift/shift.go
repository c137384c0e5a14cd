package shift

import (
	"strconv"
	"strings"
	"time"
)

// Config is the working-time configuration derived from a shift label.
// Resolution is deterministic: the same label always yields the same Config.
type Config struct {
	StartHour   int
	StartMinute int
	GracePeriod time.Duration
	Duration    time.Duration
}

// DefaultLabel is assumed when an employee profile carries no shift.
const DefaultLabel = "10:00"

type rule struct {
	hour, minute int
	grace        time.Duration
	duration     time.Duration
}

// Known shift rules. Unrecognized start times fall through to the default
// 9 hour duration with no grace.
var rules = []rule{
	{10, 0, 10 * time.Minute, 9 * time.Hour},
	{10, 30, 0, 9 * time.Hour},
	{13, 0, 0, 6*time.Hour + 30*time.Minute},
}

// Resolve derives a Config from a "HH:mm" shift label. Malformed labels
// never fail: they resolve to the default 10:00 shift.
func Resolve(label string) Config {
	hour, minute, ok := parseLabel(label)
	if !ok {
		hour, minute = 10, 0
	}

	cfg := Config{
		StartHour:   hour,
		StartMinute: minute,
		Duration:    9 * time.Hour,
	}
	for _, r := range rules {
		if r.hour == hour && r.minute == minute {
			cfg.GracePeriod = r.grace
			cfg.Duration = r.duration
			break
		}
	}
	return cfg
}

// StartOn returns the shift start as an absolute instant on the given
// calendar day in loc.
func (c Config) StartOn(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, c.StartHour, c.StartMinute, 0, 0, loc)
}

func parseLabel(label string) (hour, minute int, ok bool) {
	parts := strings.Split(label, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}
