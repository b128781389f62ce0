package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID          string
	UserID      *string
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Position    string
	Department  string
	SalaryGrade string
	DOB         *time.Time
	DateHired   *time.Time
	CivilStatus *CivilStatus
	EmpStatus   EmpStatus
	Address     string
	Barangay    string
	City        string
	Province    string
	Zipcode     string

	EmergencyContactName     string
	EmergencyContactRelation string
	EmergencyContactPhone    string

	JODailyRate *decimal.Decimal
	IsArchived  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

func (e Employee) IsJobOrder() bool {
	return e.EmpStatus == EmpStatusJobOrder
}

func (e Employee) IsRegular() bool {
	return e.EmpStatus == EmpStatusRegular
}

type CivilStatus string

const (
	CivilStatusSingle    CivilStatus = "Single"
	CivilStatusMarried   CivilStatus = "Married"
	CivilStatusSeparated CivilStatus = "Separated"
	CivilStatusWidowed   CivilStatus = "Widowed"
)

type EmpStatus string

const (
	EmpStatusRegular  EmpStatus = "Regular"
	EmpStatusJobOrder EmpStatus = "Job Order"
)

const EmployeeIDPrefix = "EMP"
