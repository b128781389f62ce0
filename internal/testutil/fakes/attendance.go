package fakes

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

type AttendanceRepository struct {
	mu      sync.Mutex
	Records map[string]attendance.Record
	seq     int
}

func NewAttendanceRepository(records ...attendance.Record) *AttendanceRepository {
	r := &AttendanceRepository{Records: map[string]attendance.Record{}}
	for _, rec := range records {
		r.put(rec)
	}
	return r
}

func recordKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (r *AttendanceRepository) put(rec attendance.Record) attendance.Record {
	if rec.ID == "" {
		r.seq++
		rec.ID = fmt.Sprintf("att-%d", r.seq)
	}
	r.Records[recordKey(rec.EmployeeID, rec.Date)] = rec
	return rec
}

func (r *AttendanceRepository) Snapshot() func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	records := make(map[string]attendance.Record, len(r.Records))
	for k, v := range r.Records {
		records[k] = v
	}
	seq := r.seq
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.Records, r.seq = records, seq
	}
}

// Put stores rec, replacing any record for the same employee and date.
func (r *AttendanceRepository) Put(rec attendance.Record) attendance.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.put(rec)
}

func (r *AttendanceRepository) GetOrCreateForUpdate(ctx context.Context, employeeID string, date time.Time, defaultStatus attendance.Status) (attendance.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec, ok := r.Records[recordKey(employeeID, date)]; ok {
		return rec, nil
	}
	return r.put(attendance.Record{
		EmployeeID:  employeeID,
		Date:        date,
		Status:      defaultStatus,
		HoursWorked: decimal.Zero,
	}), nil
}

func (r *AttendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.Records[recordKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *AttendanceRepository) Update(ctx context.Context, rec attendance.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := recordKey(rec.EmployeeID, rec.Date)
	existing, ok := r.Records[key]
	if !ok {
		return attendance.ErrAttendanceNotFound
	}
	if existing.State() == attendance.StateCompleted {
		return attendance.ErrAlreadyCompleted
	}
	r.Records[key] = rec
	return nil
}

func (r *AttendanceRepository) sorted(keep func(attendance.Record) bool) []attendance.Record {
	var out []attendance.Record
	for _, rec := range r.Records {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].EmployeeID < out[j].EmployeeID
	})
	return out
}

func (r *AttendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Record, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.sorted(func(rec attendance.Record) bool {
		d := rec.Date.Format("2006-01-02")
		switch {
		case filter.EmployeeID != nil && rec.EmployeeID != *filter.EmployeeID:
			return false
		case filter.StartDate != nil && d < *filter.StartDate:
			return false
		case filter.EndDate != nil && d > *filter.EndDate:
			return false
		case filter.Status != nil && string(rec.Status) != *filter.Status:
			return false
		}
		return true
	})
	total := int64(len(all))
	if filter.Limit <= 0 {
		return all, total, nil
	}
	start := (filter.Page - 1) * filter.Limit
	if start >= len(all) {
		return []attendance.Record{}, total, nil
	}
	end := start + filter.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *AttendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d := date.Format("2006-01-02")
	return r.sorted(func(rec attendance.Record) bool { return rec.Date.Format("2006-01-02") == d }), nil
}

func (r *AttendanceRepository) ListRecent(ctx context.Context, limit int) ([]attendance.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.sorted(func(attendance.Record) bool { return true })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func inDateRange(d, start, end time.Time) bool {
	s := d.Format("2006-01-02")
	return s >= start.Format("2006-01-02") && s <= end.Format("2006-01-02")
}

func (r *AttendanceRepository) CountDistinctDates(ctx context.Context, employeeID string, start, end time.Time, statuses []attendance.Status) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dates := map[string]bool{}
	for _, rec := range r.Records {
		if rec.EmployeeID != employeeID || !inDateRange(rec.Date, start, end) {
			continue
		}
		for _, s := range statuses {
			if rec.Status == s {
				dates[rec.Date.Format("2006-01-02")] = true
			}
		}
	}
	return len(dates), nil
}

func (r *AttendanceRepository) CountByStatus(ctx context.Context, employeeID string, start, end time.Time) (map[attendance.Status]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := map[attendance.Status]int{}
	for _, rec := range r.Records {
		if rec.EmployeeID == employeeID && inDateRange(rec.Date, start, end) {
			out[rec.Status]++
		}
	}
	return out, nil
}
