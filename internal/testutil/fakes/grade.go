package fakes

import (
	"context"
	"sort"
	"sync"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/master/grade"
	"github.com/shopspring/decimal"
)

type GradeRepository struct {
	mu     sync.Mutex
	Grades map[int]grade.SalaryGrade
}

// NewGradeRepository seeds grades from grade -> monthly salary strings.
func NewGradeRepository(salaries map[int]string) *GradeRepository {
	r := &GradeRepository{Grades: map[int]grade.SalaryGrade{}}
	for g, s := range salaries {
		r.Grades[g] = grade.SalaryGrade{Grade: g, MonthlySalary: decimal.RequireFromString(s)}
	}
	return r
}

func (r *GradeRepository) GetByGrade(ctx context.Context, g int) (grade.SalaryGrade, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sg, ok := r.Grades[g]
	if !ok {
		return grade.SalaryGrade{}, grade.ErrGradeNotFound
	}
	return sg, nil
}

func (r *GradeRepository) List(ctx context.Context) ([]grade.SalaryGrade, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]grade.SalaryGrade, 0, len(r.Grades))
	for _, sg := range r.Grades {
		out = append(out, sg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Grade < out[j].Grade })
	return out, nil
}

func (r *GradeRepository) Upsert(ctx context.Context, sg grade.SalaryGrade) (grade.SalaryGrade, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Grades[sg.Grade] = sg
	return sg, nil
}

func (r *GradeRepository) Delete(ctx context.Context, g int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.Grades[g]; !ok {
		return grade.ErrGradeNotFound
	}
	delete(r.Grades, g)
	return nil
}
