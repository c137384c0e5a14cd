package calendar

import "time"

// OverrideType controls how a configured date entry affects the default
// weekend rule.
type OverrideType string

const (
	// OverrideHoliday forces the date to be a non-working day.
	OverrideHoliday OverrideType = "holiday"
	// OverrideWorking forces a default-off date (Sunday, 2nd/4th Saturday)
	// to count as a working day.
	OverrideWorking OverrideType = "working"
)

// Override is a per-date exception to the weekend rule.
type Override struct {
	Name string
	Type OverrideType
}

// Day is the resolved classification for a calendar date.
type Day struct {
	IsHoliday bool
	Label     string
}

// ResolveDay classifies a date as working or holiday. Defaults: Sundays
// are off, as are the 2nd and 4th Saturday of each month. An override for
// the date wins over the default either way. Override keys are local
// "2006-01-02" date strings.
func ResolveDay(d time.Time, overrides map[string]Override) Day {
	day := Day{}

	if d.Weekday() == time.Sunday {
		day.IsHoliday = true
		day.Label = "Sunday"
	}

	if d.Weekday() == time.Saturday {
		weekNum := (d.Day() + 6) / 7
		if weekNum == 2 || weekNum == 4 {
			day.IsHoliday = true
			day.Label = "Saturday Holiday"
		}
	}

	if ov, ok := overrides[d.Format("2006-01-02")]; ok {
		if ov.Type == OverrideWorking {
			day.IsHoliday = false
			day.Label = ""
		} else {
			day.IsHoliday = true
			day.Label = ov.Name
			if day.Label == "" {
				day.Label = "Holiday"
			}
		}
	}

	return day
}
