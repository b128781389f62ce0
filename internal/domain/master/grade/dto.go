package grade

import (
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// monthly_salary is NUMERIC(12, 2).
const monthlySalaryPrecision = 12

type UpsertGradeRequest struct {
	Grade         int             `json:"grade" validate:"gte=1,lte=33"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
}

func (r *UpsertGradeRequest) Validate() error {
	var errs validator.ValidationErrors
	if err := validator.Struct(r); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			errs = append(errs, fieldErrs...)
		} else {
			return err
		}
	}

	switch {
	case !r.MonthlySalary.IsPositive():
		errs.Add("monthly_salary", "monthly_salary must be greater than zero")
	case !validator.FitsNumeric(r.MonthlySalary.Round(2), monthlySalaryPrecision, 2):
		errs.Add("monthly_salary", "monthly_salary must be less than 10000000000")
	}

	return errs.Err()
}

type GradeResponse struct {
	Grade         int             `json:"grade"`
	Label         string          `json:"label"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	DailyRate     decimal.Decimal `json:"daily_rate"`
}
