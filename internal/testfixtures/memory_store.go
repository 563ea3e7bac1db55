// Package testfixtures provides in-memory stand-ins for the PostgreSQL
// repositories. They reproduce the store behaviour the services rely on:
// byte-ordered sorted reads, microsecond timestamps, the unique email
// constraint, the department foreign key and pgx.ErrNoRows for missing rows.
package testfixtures

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/clinic-roster/internal/domain"
	"github.com/spec-kit/clinic-roster/internal/repository"
)

// storePrecision matches TIMESTAMPTZ.
const storePrecision = time.Microsecond

// MemoryStore holds both tables behind one lock.
type MemoryStore struct {
	mu          sync.Mutex
	departments map[string]domain.Department
	employees   map[string]domain.Employee
	now         func() time.Time
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		departments: make(map[string]domain.Department),
		employees:   make(map[string]domain.Employee),
		now:         func() time.Time { return time.Now().UTC().Truncate(storePrecision) },
	}
}

// Departments exposes the store as a DepartmentRepository.
func (m *MemoryStore) Departments() repository.DepartmentRepository {
	return memoryDepartments{m}
}

// Employees exposes the store as an EmployeeRepository.
func (m *MemoryStore) Employees() repository.EmployeeRepository {
	return memoryEmployees{m}
}

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505", ConstraintName: "employees_email_key"}
}

func foreignKeyViolation(constraint string) error {
	return &pgconn.PgError{Code: "23503", ConstraintName: constraint}
}

type memoryDepartments struct{ m *MemoryStore }

func (r memoryDepartments) Create(_ context.Context, dept *domain.Department) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	now := r.m.now()
	dept.ID = uuid.NewString()
	dept.CreatedAt, dept.UpdatedAt = now, now
	r.m.departments[dept.ID] = *dept
	return nil
}

func (r memoryDepartments) Update(_ context.Context, dept *domain.Department) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	stored, ok := r.m.departments[dept.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	dept.CreatedAt = stored.CreatedAt
	dept.UpdatedAt = r.m.now()
	r.m.departments[dept.ID] = *dept
	return nil
}

func (r memoryDepartments) GetByID(_ context.Context, id string) (*domain.Department, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	dept, ok := r.m.departments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &dept, nil
}

func (r memoryDepartments) List(_ context.Context) ([]domain.Department, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := make([]domain.Department, 0, len(r.m.departments))
	for _, dept := range r.m.departments {
		out = append(out, dept)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r memoryDepartments) ListRefs(_ context.Context, ids []string) ([]domain.DepartmentRef, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []domain.DepartmentRef
	for _, id := range ids {
		if dept, ok := r.m.departments[id]; ok {
			out = append(out, domain.DepartmentRef{ID: dept.ID, Name: dept.Name})
		}
	}
	return out, nil
}

func (r memoryDepartments) Delete(_ context.Context, id string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.departments[id]; !ok {
		return pgx.ErrNoRows
	}
	for _, emp := range r.m.employees {
		if emp.DepartmentID != nil && *emp.DepartmentID == id {
			return foreignKeyViolation("employees_department_id_fkey")
		}
	}
	delete(r.m.departments, id)
	return nil
}

func (r memoryDepartments) DeleteAll(_ context.Context) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if len(r.m.employees) > 0 {
		return foreignKeyViolation("employees_department_id_fkey")
	}
	r.m.departments = make(map[string]domain.Department)
	return nil
}

type memoryEmployees struct{ m *MemoryStore }

// checkLocked enforces the employee table constraints; callers hold the lock.
func (r memoryEmployees) checkLocked(emp *domain.Employee) error {
	for id, other := range r.m.employees {
		if id != emp.ID && other.Email == emp.Email {
			return uniqueViolation()
		}
	}
	if emp.DepartmentID != nil {
		if _, ok := r.m.departments[*emp.DepartmentID]; !ok {
			return foreignKeyViolation("employees_department_id_fkey")
		}
	}
	return nil
}

func (r memoryEmployees) Create(_ context.Context, emp *domain.Employee) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if err := r.checkLocked(emp); err != nil {
		return err
	}
	now := r.m.now()
	emp.ID = uuid.NewString()
	emp.HireDate = emp.HireDate.Truncate(storePrecision)
	emp.CreatedAt, emp.UpdatedAt = now, now
	r.m.employees[emp.ID] = *emp
	return nil
}

func (r memoryEmployees) Update(_ context.Context, emp *domain.Employee) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	stored, ok := r.m.employees[emp.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	if err := r.checkLocked(emp); err != nil {
		return err
	}
	emp.HireDate = emp.HireDate.Truncate(storePrecision)
	emp.CreatedAt = stored.CreatedAt
	emp.UpdatedAt = r.m.now()
	r.m.employees[emp.ID] = *emp
	return nil
}

func (r memoryEmployees) GetByID(_ context.Context, id string) (*domain.Employee, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	emp, ok := r.m.employees[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &emp, nil
}

func (r memoryEmployees) List(_ context.Context) ([]domain.Employee, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := make([]domain.Employee, 0, len(r.m.employees))
	for _, emp := range r.m.employees {
		out = append(out, emp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		return out[i].FirstName < out[j].FirstName
	})
	return out, nil
}

func (r memoryEmployees) CountByDepartment(_ context.Context, departmentID string) (int, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	count := 0
	for _, emp := range r.m.employees {
		if emp.DepartmentID != nil && *emp.DepartmentID == departmentID {
			count++
		}
	}
	return count, nil
}

func (r memoryEmployees) Delete(_ context.Context, id string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.employees[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.m.employees, id)
	return nil
}

func (r memoryEmployees) DeleteAll(_ context.Context) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.employees = make(map[string]domain.Employee)
	return nil
}
