package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/punchdesk/attendance-backend-go/internal/domain/attendance"
	"github.com/punchdesk/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	uid, date, name, email, shift_start,
	punch_in_time, punch_in_lat, punch_in_lng,
	punch_out_time, punch_out_lat, punch_out_lng,
	required_punch_out, late_minutes, status,
	overtime_minutes, overtime_status,
	created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.UID, &att.Date, &att.Name, &att.Email, &att.ShiftStart,
		&att.PunchInTime, &att.PunchInLat, &att.PunchInLng,
		&att.PunchOutTime, &att.PunchOutLat, &att.PunchOutLng,
		&att.RequiredPunchOut, &att.LateMinutes, &att.Status,
		&att.OvertimeMinutes, &att.OvertimeStatus,
		&att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository. The composite
// primary key (uid, date) plus ON CONFLICT DO NOTHING gives the
// create-if-absent guarantee: of two concurrent punch-ins for the same
// employee and day exactly one insert wins.
func (a *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			uid, date, name, email, shift_start,
			punch_in_time, punch_in_lat, punch_in_lng,
			required_punch_out, late_minutes, status,
			overtime_minutes, overtime_status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		) ON CONFLICT (uid, date) DO NOTHING
	`

	tag, err := q.Exec(ctx, query,
		att.UID,
		att.Date,
		att.Name,
		att.Email,
		att.ShiftStart,
		att.PunchInTime,
		att.PunchInLat,
		att.PunchInLng,
		att.RequiredPunchOut,
		att.LateMinutes,
		att.Status,
		att.OvertimeMinutes,
		att.OvertimeStatus,
	)
	if err != nil {
		return fmt.Errorf("failed to create attendance: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return attendance.ErrAlreadyPunchedIn
	}
	return nil
}

// GetByKey implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByKey(ctx context.Context, uid, date string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT` + attendanceColumns + `
		FROM attendances
		WHERE uid = $1 AND date = $2`

	att, err := scanAttendance(q.QueryRow(ctx, query, uid, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by key: %w", err)
	}

	return att, nil
}

// GetByKeys implements attendance.AttendanceRepository. One round trip
// for the whole date range of a report.
func (a *attendanceRepository) GetByKeys(ctx context.Context, uid string, dates []string) (map[string]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT` + attendanceColumns + `
		FROM attendances
		WHERE uid = $1 AND date = ANY($2)`

	rows, err := q.Query(ctx, query, uid, dates)
	if err != nil {
		return nil, fmt.Errorf("failed to batch get attendances: %w", err)
	}
	defer rows.Close()

	result := make(map[string]attendance.Attendance, len(dates))
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		result[att.Date] = att
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendances: %w", err)
	}

	return result, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances SET
			punch_in_time = $3,
			punch_in_lat = $4,
			punch_in_lng = $5,
			punch_out_time = $6,
			punch_out_lat = $7,
			punch_out_lng = $8,
			required_punch_out = $9,
			late_minutes = $10,
			status = $11,
			overtime_minutes = $12,
			overtime_status = $13,
			updated_at = NOW()
		WHERE uid = $1 AND date = $2
	`

	tag, err := q.Exec(ctx, query,
		att.UID,
		att.Date,
		att.PunchInTime,
		att.PunchInLat,
		att.PunchInLng,
		att.PunchOutTime,
		att.PunchOutLat,
		att.PunchOutLng,
		att.RequiredPunchOut,
		att.LateMinutes,
		att.Status,
		att.OvertimeMinutes,
		att.OvertimeStatus,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepository) Delete(ctx context.Context, uid, date string) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE uid = $1 AND date = $2`, uid, date)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// ListByDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByDate(ctx context.Context, date string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT` + attendanceColumns + `
		FROM attendances
		WHERE date = $1
		ORDER BY name ASC`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances by date: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		result = append(result, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendances: %w", err)
	}

	return result, nil
}

// ListRecentByUID implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListRecentByUID(ctx context.Context, uid string, limit int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT` + attendanceColumns + `
		FROM attendances
		WHERE uid = $1
		ORDER BY date DESC
		LIMIT $2`

	rows, err := q.Query(ctx, query, uid, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent attendances: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		result = append(result, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendances: %w", err)
	}

	return result, nil
}
