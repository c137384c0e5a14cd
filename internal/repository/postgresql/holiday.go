package postgresql

import (
	"context"
	"fmt"

	"github.com/punchdesk/attendance-backend-go/internal/domain/holiday"
	"github.com/punchdesk/attendance-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

// Upsert implements holiday.HolidayRepository.
func (h *holidayRepository) Upsert(ctx context.Context, hol holiday.Holiday) error {
	q := GetQuerier(ctx, h.db)

	query := `
		INSERT INTO holidays (date, name, type)
		VALUES ($1, $2, $3)
		ON CONFLICT (date) DO UPDATE
		SET name = EXCLUDED.name, type = EXCLUDED.type, updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, hol.Date, hol.Name, hol.Type); err != nil {
		return fmt.Errorf("failed to upsert holiday: %w", err)
	}
	return nil
}

// Delete implements holiday.HolidayRepository.
func (h *holidayRepository) Delete(ctx context.Context, date string) error {
	q := GetQuerier(ctx, h.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE date = $1`, date)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}

// List implements holiday.HolidayRepository.
func (h *holidayRepository) List(ctx context.Context) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT date, name, type, created_at, updated_at
		FROM holidays
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var result []holiday.Holiday
	for rows.Next() {
		var hol holiday.Holiday
		if err := rows.Scan(&hol.Date, &hol.Name, &hol.Type, &hol.CreatedAt, &hol.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		result = append(result, hol)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read holidays: %w", err)
	}

	return result, nil
}

// GetRange implements holiday.HolidayRepository.
func (h *holidayRepository) GetRange(ctx context.Context, start, end string) (map[string]holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT date, name, type, created_at, updated_at
		FROM holidays
		WHERE date >= $1 AND date <= $2
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get holidays in range: %w", err)
	}
	defer rows.Close()

	result := make(map[string]holiday.Holiday)
	for rows.Next() {
		var hol holiday.Holiday
		if err := rows.Scan(&hol.Date, &hol.Name, &hol.Type, &hol.CreatedAt, &hol.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		result[hol.Date] = hol
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read holidays: %w", err)
	}

	return result, nil
}
