package holiday

import "time"

// Type mirrors calendar override semantics: "holiday" forces a day off,
// "working" forces a default-off day (Sunday, 2nd/4th Saturday) to count
// as a working day.
type Type string

const (
	TypeHoliday Type = "holiday"
	TypeWorking Type = "working"
)

// Holiday is a per-date override of the weekend rule, keyed by date.
type Holiday struct {
	Date      string // "2006-01-02"
	Name      string
	Type      Type
	CreatedAt time.Time
	UpdatedAt time.Time
}
