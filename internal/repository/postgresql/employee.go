package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// employeeIDLockKey is the advisory lock held while a new employee ID is chosen.
const employeeIDLockKey int64 = 0x454d50 // "EMP"

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, user_id, first_name, last_name, email, phone, position, department, salary_grade,
	dob, date_hired, civil_status, emp_status, address, barangay, city, province, zipcode,
	emergency_contact_name, emergency_contact_relation, emergency_contact_phone,
	jo_daily_rate, is_archived, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.FirstName,
		&e.LastName,
		&e.Email,
		&e.Phone,
		&e.Position,
		&e.Department,
		&e.SalaryGrade,
		&e.DOB,
		&e.DateHired,
		&e.CivilStatus,
		&e.EmpStatus,
		&e.Address,
		&e.Barangay,
		&e.City,
		&e.Province,
		&e.Zipcode,
		&e.EmergencyContactName,
		&e.EmergencyContactRelation,
		&e.EmergencyContactPhone,
		&e.JODailyRate,
		&e.IsArchived,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

func (r *employeeRepositoryImpl) getOne(ctx context.Context, where string, arg interface{}) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEmployee(q.QueryRow(ctx, "SELECT "+employeeColumns+" FROM employees "+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return r.getOne(ctx, "WHERE id = $1", id)
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	return r.getOne(ctx, "WHERE user_id = $1", userID)
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, user_id, first_name, last_name, email, phone, position, department, salary_grade,
			dob, date_hired, civil_status, emp_status, address, barangay, city, province, zipcode,
			emergency_contact_name, emergency_contact_relation, emergency_contact_phone,
			jo_daily_rate, is_archived
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
			$19, $20, $21, $22, $23
		)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		e.ID,
		e.UserID,
		e.FirstName,
		e.LastName,
		e.Email,
		e.Phone,
		e.Position,
		e.Department,
		e.SalaryGrade,
		e.DOB,
		e.DateHired,
		e.CivilStatus,
		e.EmpStatus,
		e.Address,
		e.Barangay,
		e.City,
		e.Province,
		e.Zipcode,
		e.EmergencyContactName,
		e.EmergencyContactRelation,
		e.EmergencyContactPhone,
		e.JODailyRate,
		e.IsArchived,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmployeeIDExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// Update implements employee.EmployeeRepository. The user link and archive
// flag have dedicated methods and are not touched here.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			first_name = $1, last_name = $2, email = $3, phone = $4, position = $5,
			department = $6, salary_grade = $7, dob = $8, date_hired = $9, civil_status = $10,
			emp_status = $11, address = $12, barangay = $13, city = $14, province = $15,
			zipcode = $16, emergency_contact_name = $17, emergency_contact_relation = $18,
			emergency_contact_phone = $19, jo_daily_rate = $20, updated_at = NOW()
		WHERE id = $21
	`

	tag, err := q.Exec(ctx, query,
		e.FirstName,
		e.LastName,
		e.Email,
		e.Phone,
		e.Position,
		e.Department,
		e.SalaryGrade,
		e.DOB,
		e.DateHired,
		e.CivilStatus,
		e.EmpStatus,
		e.Address,
		e.Barangay,
		e.City,
		e.Province,
		e.Zipcode,
		e.EmergencyContactName,
		e.EmergencyContactRelation,
		e.EmergencyContactPhone,
		e.JODailyRate,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee %s: %w", e.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// UpdateContact implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) UpdateContact(ctx context.Context, id string, req employee.UpdateContactRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			phone = $1, address = $2, barangay = $3, city = $4, province = $5, zipcode = $6,
			emergency_contact_name = $7, emergency_contact_relation = $8, emergency_contact_phone = $9,
			updated_at = NOW()
		WHERE id = $10
	`

	tag, err := q.Exec(ctx, query,
		req.Phone,
		req.Address,
		req.Barangay,
		req.City,
		req.Province,
		req.Zipcode,
		req.EmergencyContactName,
		req.EmergencyContactRelation,
		req.EmergencyContactPhone,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update contact for employee %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) exec(ctx context.Context, action, query string, args ...interface{}) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", action, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// LinkUser implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) LinkUser(ctx context.Context, id string, userID string) error {
	return r.exec(ctx, "link user",
		`UPDATE employees SET user_id = $1, updated_at = NOW() WHERE id = $2`, userID, id)
}

// SetArchived implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SetArchived(ctx context.Context, id string, archived bool) error {
	return r.exec(ctx, "set archived flag",
		`UPDATE employees SET is_archived = $1, updated_at = NOW() WHERE id = $2`, archived, id)
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.exec(ctx, "delete employee", `DELETE FROM employees WHERE id = $1`, id)
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"is_archived = $1"}
	args := []interface{}{filter.Archived}
	argIdx := 2

	if query := strings.TrimSpace(filter.Query); query != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(id ILIKE $%d OR first_name ILIKE $%d OR last_name ILIKE $%d OR position ILIKE $%d OR department ILIKE $%d)",
			argIdx, argIdx, argIdx, argIdx, argIdx))
		args = append(args, "%"+query+"%")
		argIdx++
	}
	if filter.Department != "" {
		conditions = append(conditions, fmt.Sprintf("department = $%d", argIdx))
		args = append(args, filter.Department)
		argIdx++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("emp_status = $%d", argIdx))
		args = append(args, filter.Status)
	}

	query := "SELECT " + employeeColumns + " FROM employees WHERE " +
		strings.Join(conditions, " AND ") + " ORDER BY id ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, nil
}

// ListDepartments implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListDepartments(ctx context.Context, archived bool) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT department
		FROM employees
		WHERE is_archived = $1 AND department <> ''
		ORDER BY department ASC
	`

	rows, err := q.Query(ctx, query, archived)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	departments, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan departments: %w", err)
	}
	return departments, nil
}

// CountActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) CountActive(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var n int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE is_archived = FALSE`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return n, nil
}

// LockIDSequence implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) LockIDSequence(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, employeeIDLockKey); err != nil {
		return fmt.Errorf("failed to lock employee id sequence: %w", err)
	}
	return nil
}

// MaxEmployeeNumber implements employee.EmployeeRepository. Archived
// employees keep their numbers reserved.
func (r *employeeRepositoryImpl) MaxEmployeeNumber(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(MAX(CAST(SUBSTRING(id FROM 4) AS INTEGER)), 0)
		FROM employees
		WHERE id ~ '^EMP[0-9]+$'
	`

	var n int
	if err := q.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to get max employee number: %w", err)
	}
	return n, nil
}
