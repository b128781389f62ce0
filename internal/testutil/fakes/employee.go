package fakes

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/employee"
)

type EmployeeRepository struct {
	mu        sync.Mutex
	Employees map[string]employee.Employee
	Locks     int
}

func NewEmployeeRepository(emps ...employee.Employee) *EmployeeRepository {
	r := &EmployeeRepository{Employees: map[string]employee.Employee{}}
	for _, e := range emps {
		r.Employees[e.ID] = e
	}
	return r
}

func (r *EmployeeRepository) Snapshot() func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	emps := make(map[string]employee.Employee, len(r.Employees))
	for k, v := range r.Employees {
		emps[k] = v
	}
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.Employees = emps
	}
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.Employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *EmployeeRepository) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.Employees {
		if e.UserID != nil && *e.UserID == userID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *EmployeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.Employees[e.ID]; ok {
		return employee.Employee{}, employee.ErrEmployeeIDExists
	}
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	r.Employees[e.ID] = e
	return e, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e employee.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.Employees[e.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	r.Employees[e.ID] = e
	return nil
}

func (r *EmployeeRepository) UpdateContact(ctx context.Context, id string, req employee.UpdateContactRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.Employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.Phone = req.Phone
	e.Address = req.Address
	e.Barangay = req.Barangay
	e.City = req.City
	e.Province = req.Province
	e.Zipcode = req.Zipcode
	e.EmergencyContactName = req.EmergencyContactName
	e.EmergencyContactRelation = req.EmergencyContactRelation
	e.EmergencyContactPhone = req.EmergencyContactPhone
	r.Employees[id] = e
	return nil
}

func (r *EmployeeRepository) LinkUser(ctx context.Context, id string, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.Employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.UserID = &userID
	r.Employees[id] = e
	return nil
}

func (r *EmployeeRepository) SetArchived(ctx context.Context, id string, archived bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.Employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.IsArchived = archived
	r.Employees[id] = e
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.Employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.Employees, id)
	return nil
}

func (r *EmployeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q := strings.ToLower(filter.Query)
	var out []employee.Employee
	for _, e := range r.Employees {
		if e.IsArchived != filter.Archived {
			continue
		}
		if filter.Department != "" && e.Department != filter.Department {
			continue
		}
		if filter.Status != "" && string(e.EmpStatus) != filter.Status {
			continue
		}
		if q != "" {
			hay := strings.ToLower(strings.Join([]string{e.ID, e.FirstName, e.LastName, e.Position, e.Department}, " "))
			if !strings.Contains(hay, q) {
				continue
			}
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *EmployeeRepository) ListDepartments(ctx context.Context, archived bool) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for _, e := range r.Employees {
		if e.IsArchived != archived || e.Department == "" || seen[e.Department] {
			continue
		}
		seen[e.Department] = true
		out = append(out, e.Department)
	}
	sort.Strings(out)
	return out, nil
}

func (r *EmployeeRepository) CountActive(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, e := range r.Employees {
		if !e.IsArchived {
			n++
		}
	}
	return n, nil
}

func (r *EmployeeRepository) LockIDSequence(ctx context.Context) error {
	r.Locks++
	return nil
}

func (r *EmployeeRepository) MaxEmployeeNumber(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	highest := 0
	for id := range r.Employees {
		n, err := strconv.Atoi(strings.TrimPrefix(id, employee.EmployeeIDPrefix))
		if err != nil {
			return 0, fmt.Errorf("bad id %q", id)
		}
		if n > highest {
			highest = n
		}
	}
	return highest, nil
}
