package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/master/grade"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type gradeRepositoryImpl struct {
	db *database.DB
}

func NewGradeRepository(db *database.DB) grade.GradeRepository {
	return &gradeRepositoryImpl{db: db}
}

// GetByGrade implements grade.GradeRepository.
func (r *gradeRepositoryImpl) GetByGrade(ctx context.Context, g int) (grade.SalaryGrade, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT grade, monthly_salary, created_at, updated_at
		FROM salary_grades
		WHERE grade = $1
	`

	var result grade.SalaryGrade
	err := q.QueryRow(ctx, query, g).Scan(
		&result.Grade,
		&result.MonthlySalary,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return grade.SalaryGrade{}, grade.ErrGradeNotFound
	}

	if err != nil {
		return grade.SalaryGrade{}, fmt.Errorf("failed to get salary grade: %w", err)
	}

	return result, nil
}

// List implements grade.GradeRepository.
func (r *gradeRepositoryImpl) List(ctx context.Context) ([]grade.SalaryGrade, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT grade, monthly_salary, created_at, updated_at
		FROM salary_grades
		ORDER BY grade ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get salary grades: %w", err)
	}
	defer rows.Close()

	var grades []grade.SalaryGrade
	for rows.Next() {
		var g grade.SalaryGrade
		err := rows.Scan(
			&g.Grade,
			&g.MonthlySalary,
			&g.CreatedAt,
			&g.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary grade: %w", err)
		}
		grades = append(grades, g)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return grades, nil
}

// Upsert implements grade.GradeRepository.
func (r *gradeRepositoryImpl) Upsert(ctx context.Context, sg grade.SalaryGrade) (grade.SalaryGrade, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_grades (grade, monthly_salary)
		VALUES ($1, $2)
		ON CONFLICT (grade) DO UPDATE
		SET monthly_salary = EXCLUDED.monthly_salary, updated_at = NOW()
		RETURNING grade, monthly_salary, created_at, updated_at
	`

	var result grade.SalaryGrade
	err := q.QueryRow(ctx, query, sg.Grade, sg.MonthlySalary).Scan(
		&result.Grade,
		&result.MonthlySalary,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return grade.SalaryGrade{}, fmt.Errorf("failed to upsert salary grade: %w", err)
	}

	return result, nil
}

// Delete implements grade.GradeRepository.
func (r *gradeRepositoryImpl) Delete(ctx context.Context, g int) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM salary_grades WHERE grade = $1`, g)
	if err != nil {
		return fmt.Errorf("failed to delete salary grade: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return grade.ErrGradeNotFound
	}

	return nil
}
