package holiday

import "context"

// HolidayRepository stores per-date overrides, keyed by date string.
type HolidayRepository interface {
	// Upsert creates or replaces the override for req date.
	Upsert(ctx context.Context, h Holiday) error

	// Delete removes the override. Returns ErrHolidayNotFound when absent.
	Delete(ctx context.Context, date string) error

	// List retrieves all overrides, most recent date first.
	List(ctx context.Context) ([]Holiday, error)

	// GetRange retrieves overrides with start <= date <= end, keyed by date.
	GetRange(ctx context.Context, start, end string) (map[string]Holiday, error)
}
