package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveDayDefaults(t *testing.T) {
	cases := []struct {
		name      string
		d         time.Time
		isHoliday bool
		label     string
	}{
		{"weekday", date(2024, time.March, 5), false, ""},
		{"sunday", date(2024, time.March, 3), true, "Sunday"},
		{"first saturday", date(2024, time.March, 2), false, ""},
		{"second saturday", date(2024, time.March, 9), true, "Saturday Holiday"},
		{"third saturday", date(2024, time.March, 16), false, ""},
		{"fourth saturday", date(2024, time.March, 23), true, "Saturday Holiday"},
		{"fifth saturday", date(2024, time.March, 30), false, ""},
	}
	for _, c := range cases {
		got := ResolveDay(c.d, nil)
		if got.IsHoliday != c.isHoliday || got.Label != c.label {
			t.Errorf("%s: ResolveDay = %+v, want {%v %q}", c.name, got, c.isHoliday, c.label)
		}
	}
}

func TestResolveDayHolidayOverride(t *testing.T) {
	overrides := map[string]Override{
		"2024-03-25": {Name: "Holi", Type: OverrideHoliday},
	}

	got := ResolveDay(date(2024, time.March, 25), overrides)
	if !got.IsHoliday || got.Label != "Holi" {
		t.Errorf("ResolveDay = %+v, want holiday %q", got, "Holi")
	}
}

func TestResolveDayWorkingOverrideOnSunday(t *testing.T) {
	overrides := map[string]Override{
		"2024-03-03": {Name: "Release weekend", Type: OverrideWorking},
	}

	got := ResolveDay(date(2024, time.March, 3), overrides)
	if got.IsHoliday {
		t.Errorf("working override on Sunday still resolved as holiday: %+v", got)
	}
}

func TestResolveDayUnnamedOverrideGetsGenericLabel(t *testing.T) {
	overrides := map[string]Override{
		"2024-03-05": {Type: OverrideHoliday},
	}

	got := ResolveDay(date(2024, time.March, 5), overrides)
	if !got.IsHoliday || got.Label != "Holiday" {
		t.Errorf("ResolveDay = %+v, want holiday %q", got, "Holiday")
	}
}

func TestResolveDayOverrideWinsOverSaturdayRule(t *testing.T) {
	// Second Saturday marked as working
	overrides := map[string]Override{
		"2024-03-09": {Type: OverrideWorking},
	}

	got := ResolveDay(date(2024, time.March, 9), overrides)
	if got.IsHoliday {
		t.Errorf("working override on second Saturday still resolved as holiday: %+v", got)
	}
}
