package master

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/master/grade"
	payrollservice "github.com/cmlabs-hris/hris-timekeeping-go/internal/service/payroll"
)

type MasterService interface {
	// Salary grade operations
	UpsertGrade(ctx context.Context, req grade.UpsertGradeRequest) (grade.GradeResponse, error)
	GetGrade(ctx context.Context, g int) (grade.GradeResponse, error)
	ListGrades(ctx context.Context) ([]grade.GradeResponse, error)
	DeleteGrade(ctx context.Context, g int) error
}

type masterServiceImpl struct {
	gradeRepo grade.GradeRepository
}

func NewMasterService(gradeRepo grade.GradeRepository) MasterService {
	return &masterServiceImpl{gradeRepo: gradeRepo}
}

func mapGradeToResponse(sg grade.SalaryGrade) grade.GradeResponse {
	return grade.GradeResponse{
		Grade:         sg.Grade,
		Label:         fmt.Sprintf("SG-%d", sg.Grade),
		MonthlySalary: sg.MonthlySalary,
		DailyRate:     payrollservice.DailyRateFromMonthly(sg.MonthlySalary),
	}
}

// ==================== SALARY GRADE OPERATIONS ====================

func (s *masterServiceImpl) UpsertGrade(ctx context.Context, req grade.UpsertGradeRequest) (grade.GradeResponse, error) {
	if err := req.Validate(); err != nil {
		return grade.GradeResponse{}, err
	}

	saved, err := s.gradeRepo.Upsert(ctx, grade.SalaryGrade{
		Grade:         req.Grade,
		MonthlySalary: req.MonthlySalary.Round(2),
	})
	if err != nil {
		return grade.GradeResponse{}, fmt.Errorf("failed to save salary grade: %w", err)
	}
	return mapGradeToResponse(saved), nil
}

func (s *masterServiceImpl) GetGrade(ctx context.Context, g int) (grade.GradeResponse, error) {
	sg, err := s.gradeRepo.GetByGrade(ctx, g)
	if err != nil {
		if errors.Is(err, grade.ErrGradeNotFound) {
			return grade.GradeResponse{}, err
		}
		return grade.GradeResponse{}, fmt.Errorf("failed to get salary grade: %w", err)
	}
	return mapGradeToResponse(sg), nil
}

func (s *masterServiceImpl) ListGrades(ctx context.Context) ([]grade.GradeResponse, error) {
	grades, err := s.gradeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary grades: %w", err)
	}

	responses := make([]grade.GradeResponse, 0, len(grades))
	for _, sg := range grades {
		responses = append(responses, mapGradeToResponse(sg))
	}
	return responses, nil
}

func (s *masterServiceImpl) DeleteGrade(ctx context.Context, g int) error {
	return s.gradeRepo.Delete(ctx, g)
}
