package employee

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

// EmployeeRequest carries the admin create/edit form. The employment
// category decides which fields are mandatory.
// jo_daily_rate is NUMERIC(10, 2).
const joDailyRatePrecision = 10

type EmployeeRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Position    string `json:"position"`
	Department  string `json:"department"`
	SalaryGrade string `json:"salary_grade"`
	DOB         string `json:"dob"`
	DateHired   string `json:"date_hired"`
	CivilStatus string `json:"civil_status"`
	EmpStatus   string `json:"emp_status"`
	Address     string `json:"address"`
	Barangay    string `json:"barangay"`
	City        string `json:"city"`
	Province    string `json:"province"`
	Zipcode     string `json:"zipcode"`

	EmergencyContactName     string `json:"emergency_contact_name"`
	EmergencyContactRelation string `json:"emergency_contact_relation"`
	EmergencyContactPhone    string `json:"emergency_contact_phone"`

	JODailyRate string `json:"jo_daily_rate"`
}

func (r *EmployeeRequest) trim() {
	for _, f := range []*string{
		&r.FirstName, &r.LastName, &r.Email, &r.Phone, &r.Position, &r.Department,
		&r.SalaryGrade, &r.DOB, &r.DateHired, &r.CivilStatus, &r.EmpStatus,
		&r.Address, &r.Barangay, &r.City, &r.Province, &r.Zipcode,
		&r.EmergencyContactName, &r.EmergencyContactRelation, &r.EmergencyContactPhone,
		&r.JODailyRate,
	} {
		*f = strings.TrimSpace(*f)
	}
}

func (r *EmployeeRequest) Validate() error {
	r.trim()
	var errs validator.ValidationErrors

	required := []struct {
		field string
		value string
	}{
		{"first_name", r.FirstName},
		{"last_name", r.LastName},
		{"email", r.Email},
		{"emp_status", r.EmpStatus},
		{"dob", r.DOB},
		{"date_hired", r.DateHired},
		{"address", r.Address},
		{"barangay", r.Barangay},
		{"city", r.City},
		{"province", r.Province},
		{"zipcode", r.Zipcode},
		{"civil_status", r.CivilStatus},
		{"emergency_contact_name", r.EmergencyContactName},
		{"emergency_contact_relation", r.EmergencyContactRelation},
		{"emergency_contact_phone", r.EmergencyContactPhone},
	}

	switch EmpStatus(r.EmpStatus) {
	case EmpStatusJobOrder:
		required = append(required, struct {
			field string
			value string
		}{"jo_daily_rate", r.JODailyRate})
	default:
		required = append(required, []struct {
			field string
			value string
		}{
			{"department", r.Department},
			{"position", r.Position},
			{"salary_grade", r.SalaryGrade},
		}...)
	}

	for _, f := range required {
		if validator.IsEmpty(f.value) {
			errs.Add(f.field, f.field+" is required")
		}
	}

	if r.EmpStatus != "" && r.EmpStatus != string(EmpStatusRegular) && r.EmpStatus != string(EmpStatusJobOrder) {
		errs.Add("emp_status", "emp_status must be Regular or Job Order")
	}

	if r.Email != "" && !validator.IsValidEmail(r.Email) {
		errs.Add("email", "invalid email format")
	}

	if r.CivilStatus != "" && !validator.IsInSlice(r.CivilStatus, []string{
		string(CivilStatusSingle), string(CivilStatusMarried), string(CivilStatusSeparated), string(CivilStatusWidowed),
	}) {
		errs.Add("civil_status", "civil_status must be one of Single, Married, Separated, Widowed")
	}

	if r.DOB != "" {
		if _, ok := validator.IsValidDate(r.DOB); !ok {
			errs.Add("dob", "dob must be in YYYY-MM-DD format")
		}
	}
	if r.DateHired != "" {
		if _, ok := validator.IsValidDate(r.DateHired); !ok {
			errs.Add("date_hired", "date_hired must be in YYYY-MM-DD format")
		}
	}

	if EmpStatus(r.EmpStatus) == EmpStatusJobOrder && r.JODailyRate != "" {
		if rate, ok := validator.ParseAmount(r.JODailyRate); !ok {
			errs.Add("jo_daily_rate", "jo_daily_rate must be a non-negative amount with at most 2 decimal places")
		} else if !validator.FitsNumeric(rate, joDailyRatePrecision, 2) {
			errs.Add("jo_daily_rate", "jo_daily_rate must be less than 100000000")
		}
	}

	return errs.Err()
}

// Apply copies a validated request onto emp. Job Order employees never carry
// department, position or salary grade; Regular employees never carry a daily rate.
func (r *EmployeeRequest) Apply(emp *Employee, loc *time.Location) {
	emp.FirstName = r.FirstName
	emp.LastName = r.LastName
	emp.Email = r.Email
	emp.Phone = r.Phone
	emp.EmpStatus = EmpStatus(r.EmpStatus)
	emp.Address = r.Address
	emp.Barangay = r.Barangay
	emp.City = r.City
	emp.Province = r.Province
	emp.Zipcode = r.Zipcode
	emp.EmergencyContactName = r.EmergencyContactName
	emp.EmergencyContactRelation = r.EmergencyContactRelation
	emp.EmergencyContactPhone = r.EmergencyContactPhone

	emp.DOB = parseDatePtr(r.DOB, loc)
	emp.DateHired = parseDatePtr(r.DateHired, loc)

	emp.CivilStatus = nil
	if r.CivilStatus != "" {
		cs := CivilStatus(r.CivilStatus)
		emp.CivilStatus = &cs
	}

	if emp.IsJobOrder() {
		emp.Department = ""
		emp.Position = ""
		emp.SalaryGrade = ""
		emp.JODailyRate = nil
		if rate, ok := validator.ParseAmount(r.JODailyRate); ok {
			emp.JODailyRate = &rate
		}
	} else {
		emp.Department = r.Department
		emp.Position = r.Position
		emp.SalaryGrade = r.SalaryGrade
		emp.JODailyRate = nil
	}
}

func parseDatePtr(s string, loc *time.Location) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return nil
	}
	return &t
}

// UpdateContactRequest is the employee self-service profile form.
type UpdateContactRequest struct {
	Phone                    string `json:"phone" validate:"max=20"`
	Address                  string `json:"address" validate:"max=150"`
	Barangay                 string `json:"barangay" validate:"max=80"`
	City                     string `json:"city" validate:"max=80"`
	Province                 string `json:"province" validate:"max=80"`
	Zipcode                  string `json:"zipcode" validate:"max=10"`
	EmergencyContactName     string `json:"emergency_contact_name" validate:"max=100"`
	EmergencyContactRelation string `json:"emergency_contact_relation" validate:"max=50"`
	EmergencyContactPhone    string `json:"emergency_contact_phone" validate:"max=20"`
}

func (r *UpdateContactRequest) Validate() error {
	return validator.Struct(r)
}

type EmployeeFilter struct {
	Query      string
	Department string
	Status     string
	Archived   bool
}

type TodayAttendance struct {
	Status      string  `json:"status"`
	TimeIn      *string `json:"time_in,omitempty"`
	TimeOut     *string `json:"time_out,omitempty"`
	HoursWorked string  `json:"hours_worked"`
}

type EmployeeResponse struct {
	ID          string  `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Position    string  `json:"position"`
	Department  string  `json:"department"`
	SalaryGrade string  `json:"salary_grade"`
	DOB         *string `json:"dob,omitempty"`
	DateHired   *string `json:"date_hired,omitempty"`
	CivilStatus *string `json:"civil_status,omitempty"`
	EmpStatus   string  `json:"emp_status"`
	Address     string  `json:"address"`
	Barangay    string  `json:"barangay"`
	City        string  `json:"city"`
	Province    string  `json:"province"`
	Zipcode     string  `json:"zipcode"`

	EmergencyContactName     string `json:"emergency_contact_name"`
	EmergencyContactRelation string `json:"emergency_contact_relation"`
	EmergencyContactPhone    string `json:"emergency_contact_phone"`

	JODailyRate *decimal.Decimal `json:"jo_daily_rate,omitempty"`
	IsArchived  bool             `json:"is_archived"`
	HasAccount  bool             `json:"has_account"`

	TodayAttendance *TodayAttendance `json:"today_attendance,omitempty"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                       e.ID,
		FirstName:                e.FirstName,
		LastName:                 e.LastName,
		FullName:                 e.FullName(),
		Email:                    e.Email,
		Phone:                    e.Phone,
		Position:                 e.Position,
		Department:               e.Department,
		SalaryGrade:              e.SalaryGrade,
		EmpStatus:                string(e.EmpStatus),
		Address:                  e.Address,
		Barangay:                 e.Barangay,
		City:                     e.City,
		Province:                 e.Province,
		Zipcode:                  e.Zipcode,
		EmergencyContactName:     e.EmergencyContactName,
		EmergencyContactRelation: e.EmergencyContactRelation,
		EmergencyContactPhone:    e.EmergencyContactPhone,
		JODailyRate:              e.JODailyRate,
		IsArchived:               e.IsArchived,
		HasAccount:               e.UserID != nil,
	}
	if e.DOB != nil {
		s := e.DOB.Format("2006-01-02")
		resp.DOB = &s
	}
	if e.DateHired != nil {
		s := e.DateHired.Format("2006-01-02")
		resp.DateHired = &s
	}
	if e.CivilStatus != nil {
		s := string(*e.CivilStatus)
		resp.CivilStatus = &s
	}
	return resp
}

type ListEmployeeResponse struct {
	Employees   []EmployeeResponse `json:"employees"`
	Departments []string           `json:"departments"`
	NextID      string             `json:"next_id"`
}
