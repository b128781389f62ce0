package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceSelect = `
	SELECT a.id, a.employee_id, a.date, a.time_in, a.time_out, a.status, a.hours_worked,
		a.created_at, a.updated_at, e.first_name || ' ' || e.last_name
	FROM attendance_records a
	JOIN employees e ON e.id = a.employee_id
`

func scanAttendance(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID,
		&rec.EmployeeID,
		&rec.Date,
		&rec.TimeIn,
		&rec.TimeOut,
		&rec.Status,
		&rec.HoursWorked,
		&rec.CreatedAt,
		&rec.UpdatedAt,
		&rec.EmployeeName,
	)
	return rec, err
}

func collectAttendance(rows pgx.Rows) ([]attendance.Record, error) {
	defer rows.Close()

	records := []attendance.Record{}
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return records, nil
}

// GetOrCreateForUpdate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetOrCreateForUpdate(ctx context.Context, employeeID string, date time.Time, defaultStatus attendance.Status) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	insert := `
		INSERT INTO attendance_records (employee_id, date, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id, date) DO NOTHING
	`
	if _, err := q.Exec(ctx, insert, employeeID, date, defaultStatus); err != nil {
		return attendance.Record{}, fmt.Errorf("failed to ensure attendance record: %w", err)
	}

	rec, err := scanAttendance(q.QueryRow(ctx,
		attendanceSelect+" WHERE a.employee_id = $1 AND a.date = $2 FOR UPDATE OF a", employeeID, date))
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to lock attendance record: %w", err)
	}
	return rec, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	rec, err := scanAttendance(q.QueryRow(ctx,
		attendanceSelect+" WHERE a.employee_id = $1 AND a.date = $2", employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	return &rec, nil
}

// Update implements attendance.AttendanceRepository. A completed day is never rewritten.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET time_in = $1, time_out = $2, status = $3, hours_worked = $4, updated_at = NOW()
		WHERE id = $5 AND time_out IS NULL
	`

	tag, err := q.Exec(ctx, query, rec.TimeIn, rec.TimeOut, rec.Status, rec.HoursWorked, rec.ID)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM attendance_records WHERE id = $1)`, rec.ID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check attendance: %w", err)
	}
	if !exists {
		return attendance.ErrAttendanceNotFound
	}
	return attendance.ErrAlreadyCompleted
}

// List implements attendance.AttendanceRepository. A zero limit returns every match.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d::date", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d::date", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM attendance_records a" + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance: %w", err)
	}

	query := attendanceSelect + where + " ORDER BY a.date DESC, a.employee_id ASC"
	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
		args = append(args, filter.Limit, (page-1)*filter.Limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance: %w", err)
	}
	records, err := collectAttendance(rows)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, attendanceSelect+" WHERE a.date = $1 ORDER BY a.employee_id ASC", date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}
	return collectAttendance(rows)
}

// ListRecent implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, attendanceSelect+" ORDER BY a.date DESC, a.employee_id ASC LIMIT $1", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent attendance: %w", err)
	}
	return collectAttendance(rows)
}

// CountDistinctDates implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CountDistinctDates(ctx context.Context, employeeID string, start, end time.Time, statuses []attendance.Status) (int, error) {
	q := GetQuerier(ctx, r.db)

	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}

	query := `
		SELECT COUNT(DISTINCT date)
		FROM attendance_records
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3 AND status = ANY($4)
	`

	var n int
	if err := q.QueryRow(ctx, query, employeeID, start, end, names).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count attendance dates: %w", err)
	}
	return n, nil
}

// CountByStatus implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CountByStatus(ctx context.Context, employeeID string, start, end time.Time) (map[attendance.Status]int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT status, COUNT(*)
		FROM attendance_records
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		GROUP BY status
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[attendance.Status]int)
	for rows.Next() {
		var status attendance.Status
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return counts, nil
}
