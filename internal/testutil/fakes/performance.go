package fakes

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/performance"
)

type PerformanceRepository struct {
	mu         sync.Mutex
	Objectives []performance.Objective
	Summaries  map[string]performance.WeeklySummary
	Activities []performance.WeeklyActivity
	seq        int
}

func NewPerformanceRepository() *PerformanceRepository {
	return &PerformanceRepository{Summaries: map[string]performance.WeeklySummary{}}
}

func (r *PerformanceRepository) Snapshot() func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	objectives := append([]performance.Objective(nil), r.Objectives...)
	activities := append([]performance.WeeklyActivity(nil), r.Activities...)
	summaries := make(map[string]performance.WeeklySummary, len(r.Summaries))
	for k, v := range r.Summaries {
		summaries[k] = v
	}
	seq := r.seq
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.Objectives, r.Activities, r.Summaries, r.seq = objectives, activities, summaries, seq
	}
}

func (r *PerformanceRepository) nextID(prefix string) string {
	r.seq++
	return fmt.Sprintf("%s-%d", prefix, r.seq)
}

func (r *PerformanceRepository) CreateObjective(ctx context.Context, obj performance.Objective) (performance.Objective, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	obj.ID = r.nextID("obj")
	obj.IsActive = true
	r.Objectives = append(r.Objectives, obj)
	return obj, nil
}

func (r *PerformanceRepository) UpdateObjectiveProgress(ctx context.Context, id string, progress int, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.Objectives {
		if r.Objectives[i].ID == id {
			r.Objectives[i].ProgressPercent = progress
			r.Objectives[i].IsActive = active
			return nil
		}
	}
	return performance.ErrObjectiveNotFound
}

func (r *PerformanceRepository) ListActiveObjectives(ctx context.Context, employeeID string, limit int) ([]performance.Objective, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []performance.Objective
	for i := len(r.Objectives) - 1; i >= 0 && len(out) < limit; i-- {
		o := r.Objectives[i]
		if o.EmployeeID == employeeID && o.IsActive {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *PerformanceRepository) CreateSummary(ctx context.Context, s performance.WeeklySummary) (performance.WeeklySummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = r.nextID("sum")
	r.Summaries[s.ID] = s
	return s, nil
}

func (r *PerformanceRepository) GetSummary(ctx context.Context, id string) (performance.WeeklySummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.Summaries[id]
	if !ok {
		return performance.WeeklySummary{}, performance.ErrSummaryNotFound
	}
	return s, nil
}

func (r *PerformanceRepository) GetLatestSummary(ctx context.Context, employeeID string) (*performance.WeeklySummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest *performance.WeeklySummary
	for _, s := range r.Summaries {
		if s.EmployeeID != employeeID {
			continue
		}
		if latest == nil || s.WeekEnd.After(latest.WeekEnd) {
			s := s
			latest = &s
		}
	}
	return latest, nil
}

func (r *PerformanceRepository) RefreshSummaryCounts(ctx context.Context, summaryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.Summaries[summaryID]
	if !ok {
		return performance.ErrSummaryNotFound
	}
	s.ActivitiesDone, s.TotalActivities = 0, 0
	for _, a := range r.Activities {
		if a.SummaryID != summaryID {
			continue
		}
		s.TotalActivities++
		if a.IsDone {
			s.ActivitiesDone++
		}
	}
	r.Summaries[summaryID] = s
	return nil
}

func (r *PerformanceRepository) CreateActivity(ctx context.Context, a performance.WeeklyActivity) (performance.WeeklyActivity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = r.nextID("act")
	r.Activities = append(r.Activities, a)
	return a, nil
}

func (r *PerformanceRepository) GetActivity(ctx context.Context, id string) (performance.WeeklyActivity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.Activities {
		if a.ID == id {
			return a, nil
		}
	}
	return performance.WeeklyActivity{}, performance.ErrActivityNotFound
}

func (r *PerformanceRepository) SetActivityDone(ctx context.Context, id string, done bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.Activities {
		if r.Activities[i].ID == id {
			r.Activities[i].IsDone = done
			return nil
		}
	}
	return performance.ErrActivityNotFound
}

func (r *PerformanceRepository) ListActivities(ctx context.Context, summaryID string) ([]performance.WeeklyActivity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []performance.WeeklyActivity
	for _, a := range r.Activities {
		if a.SummaryID == summaryID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *PerformanceRepository) ListPendingActivities(ctx context.Context, employeeID string) ([]performance.WeeklyActivity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []performance.WeeklyActivity
	for _, a := range r.Activities {
		s, ok := r.Summaries[a.SummaryID]
		if !ok || s.EmployeeID != employeeID || a.IsDone {
			continue
		}
		we := s.WeekEnd
		a.WeekEnd = &we
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].WeekEnd.Equal(*out[j].WeekEnd) {
			return out[i].WeekEnd.Before(*out[j].WeekEnd)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
