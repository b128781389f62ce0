package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/clock"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/database"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	tx             database.Transactor
	employeeRepo   employee.EmployeeRepository
	userRepo       user.UserRepository
	attendanceRepo attendance.AttendanceRepository
	clock          clock.Clock
}

func NewEmployeeService(
	tx database.Transactor,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
	attendanceRepo attendance.AttendanceRepository,
	clk clock.Clock,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		tx:             tx,
		employeeRepo:   employeeRepo,
		userRepo:       userRepo,
		attendanceRepo: attendanceRepo,
		clock:          clk,
	}
}

// FormatEmployeeID renders the sequential number as EMP001, EMP002, ...
func FormatEmployeeID(n int) string {
	return fmt.Sprintf("%s%03d", employee.EmployeeIDPrefix, n)
}

func hashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func (s *EmployeeServiceImpl) todayAttendance(r attendance.Record) *employee.TodayAttendance {
	resp := attendance.NewAttendanceResponse(r, s.clock.Location())
	return &employee.TodayAttendance{
		Status:      resp.Status,
		TimeIn:      resp.TimeIn,
		TimeOut:     resp.TimeOut,
		HoursWorked: resp.HoursWorked,
	}
}

func (s *EmployeeServiceImpl) withToday(ctx context.Context, emp employee.Employee) (employee.EmployeeResponse, error) {
	resp := employee.NewEmployeeResponse(emp)
	rec, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, clock.Today(s.clock.Now()))
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if rec != nil {
		resp.TodayAttendance = s.todayAttendance(*rec)
	}
	return resp, nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.EmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var created employee.Employee
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.employeeRepo.LockIDSequence(ctx); err != nil {
			return err
		}
		last, err := s.employeeRepo.MaxEmployeeNumber(ctx)
		if err != nil {
			return err
		}

		newEmployee := employee.Employee{ID: FormatEmployeeID(last + 1)}
		req.Apply(&newEmployee, s.clock.Location())

		created, err = s.employeeRepo.Create(ctx, newEmployee)
		if err != nil {
			return err
		}

		hashed, err := hashPassword(created.ID)
		if err != nil {
			return err
		}
		email := created.Email
		account, err := s.userRepo.Create(ctx, user.User{
			Username:     created.ID,
			PasswordHash: hashed,
			FirstName:    created.FirstName,
			LastName:     created.LastName,
			Email:        &email,
			IsActive:     true,
			EmployeeID:   &created.ID,
		})
		if err != nil {
			return fmt.Errorf("failed to provision login for %s: %w", created.ID, err)
		}

		if err := s.employeeRepo.LinkUser(ctx, created.ID, account.ID); err != nil {
			return err
		}
		created.UserID = &account.ID
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("employee created", "employee_id", created.ID, "emp_status", created.EmpStatus)
	return employee.NewEmployeeResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id string, req employee.EmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var updated employee.Employee
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		emp, err := s.employeeRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		req.Apply(&emp, s.clock.Location())

		if err := s.employeeRepo.Update(ctx, emp); err != nil {
			return err
		}

		if emp.UserID != nil {
			email := emp.Email
			if err := s.userRepo.UpdateProfile(ctx, *emp.UserID, emp.FirstName, emp.LastName, &email); err != nil {
				if !errors.Is(err, user.ErrUserNotFound) {
					return err
				}
				slog.Warn("linked user missing while syncing profile", "employee_id", emp.ID, "user_id", *emp.UserID)
			}
		}
		updated = emp
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.withToday(ctx, updated)
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.withToday(ctx, emp)
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	departments, err := s.employeeRepo.ListDepartments(ctx, filter.Archived)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list departments: %w", err)
	}

	records, err := s.attendanceRepo.ListByDate(ctx, clock.Today(s.clock.Now()))
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list today's attendance: %w", err)
	}
	byEmployee := make(map[string]attendance.Record, len(records))
	for _, r := range records {
		byEmployee[r.EmployeeID] = r
	}

	nextID, err := s.NextEmployeeID(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	resp := employee.ListEmployeeResponse{
		Employees:   make([]employee.EmployeeResponse, 0, len(employees)),
		Departments: departments,
		NextID:      nextID,
	}
	if resp.Departments == nil {
		resp.Departments = []string{}
	}
	for _, emp := range employees {
		row := employee.NewEmployeeResponse(emp)
		if r, ok := byEmployee[emp.ID]; ok {
			row.TodayAttendance = s.todayAttendance(r)
		}
		resp.Employees = append(resp.Employees, row)
	}
	return resp, nil
}

// NextEmployeeID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) NextEmployeeID(ctx context.Context) (string, error) {
	last, err := s.employeeRepo.MaxEmployeeNumber(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get max employee number: %w", err)
	}
	return FormatEmployeeID(last + 1), nil
}

// ArchiveEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ArchiveEmployee(ctx context.Context, id string) error {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if emp.IsArchived {
		return employee.ErrEmployeeArchived
	}
	return s.employeeRepo.SetArchived(ctx, id, true)
}

// RecoverEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) RecoverEmployee(ctx context.Context, id string) error {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !emp.IsArchived {
		return employee.ErrEmployeeNotArchive
	}
	return s.employeeRepo.SetArchived(ctx, id, false)
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		emp, err := s.employeeRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.employeeRepo.Delete(ctx, id); err != nil {
			return err
		}
		if emp.UserID != nil {
			if err := s.userRepo.Delete(ctx, *emp.UserID); err != nil && !errors.Is(err, user.ErrUserNotFound) {
				return err
			}
		}
		slog.Info("employee deleted", "employee_id", id)
		return nil
	})
}

// ResetPassword implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ResetPassword(ctx context.Context, id string) error {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if emp.UserID == nil {
		return employee.ErrNoLinkedUser
	}

	hashed, err := hashPassword(emp.ID)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, *emp.UserID, hashed); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return employee.ErrNoLinkedUser
		}
		return err
	}
	return nil
}

// GetMyProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetMyProfile(ctx context.Context, userID string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.withToday(ctx, emp)
}

// UpdateMyContact implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateMyContact(ctx context.Context, userID string, req employee.UpdateContactRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := s.employeeRepo.UpdateContact(ctx, emp.ID, req); err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.GetEmployee(ctx, emp.ID)
}
