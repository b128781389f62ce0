package grade

import "context"

type GradeRepository interface {
	GetByGrade(ctx context.Context, grade int) (SalaryGrade, error)
	List(ctx context.Context) ([]SalaryGrade, error)
	Upsert(ctx context.Context, sg SalaryGrade) (SalaryGrade, error)
	Delete(ctx context.Context, grade int) error
}
