package holiday

import "context"

// HolidayService defines business logic for holiday overrides (admin only).
type HolidayService interface {
	UpsertHoliday(ctx context.Context, req UpsertHolidayRequest) (HolidayResponse, error)
	DeleteHoliday(ctx context.Context, date string) error
	ListHolidays(ctx context.Context) ([]HolidayResponse, error)
}
