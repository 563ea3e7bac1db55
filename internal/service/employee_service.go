package service

import (
	"context"
	"time"

	"github.com/spec-kit/clinic-roster/internal/domain"
	"github.com/spec-kit/clinic-roster/internal/repository"
	apperrors "github.com/spec-kit/clinic-roster/pkg/util/errorutil"
)

const employeeResource = "Employee"

// EmployeeService coordinates employee CRUD and department resolution.
type EmployeeService struct {
	employees   repository.EmployeeRepository
	departments repository.DepartmentRepository
	now         func() time.Time
}

// EmployeeDependencies bundles repositories for the employee service.
type EmployeeDependencies struct {
	EmployeeRepo   repository.EmployeeRepository
	DepartmentRepo repository.DepartmentRepository
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// NewEmployeeService constructs the service.
func NewEmployeeService(deps EmployeeDependencies) *EmployeeService {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &EmployeeService{
		employees:   deps.EmployeeRepo,
		departments: deps.DepartmentRepo,
		now:         clock,
	}
}

// List returns every employee ordered by last then first name, departments resolved.
func (s *EmployeeService) List(ctx context.Context) ([]domain.EmployeeDetail, error) {
	emps, err := s.employees.List(ctx)
	if err != nil {
		return nil, apperrors.FromStoreError(err, employeeResource)
	}
	return s.resolve(ctx, emps)
}

// Get fetches an employee with its department resolved.
func (s *EmployeeService) Get(ctx context.Context, id string) (*domain.EmployeeDetail, error) {
	id, ok := canonicalID(id)
	if !ok {
		return nil, apperrors.NewNotFound(employeeResource)
	}
	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromStoreError(err, employeeResource)
	}
	return s.resolveOne(ctx, *emp)
}

// Create validates and stores a new employee. HireDate defaults to now and
// IsActive to true.
func (s *EmployeeService) Create(ctx context.Context, in domain.EmployeeInput) (*domain.EmployeeDetail, error) {
	in, err := s.prepare(ctx, in)
	if err != nil {
		return nil, err
	}

	emp := &domain.Employee{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		Role:         in.Role,
		DepartmentID: in.DepartmentID,
		HireDate:     s.now().UTC(),
		IsActive:     true,
	}
	if in.HireDate != nil {
		emp.HireDate = in.HireDate.UTC()
	}
	if in.IsActive != nil {
		emp.IsActive = *in.IsActive
	}

	if err := s.employees.Create(ctx, emp); err != nil {
		return nil, apperrors.FromStoreError(err, employeeResource)
	}
	return s.resolveOne(ctx, *emp)
}

// Update replaces the employee's fields. Omitted HireDate and IsActive keep
// their stored values.
func (s *EmployeeService) Update(ctx context.Context, id string, in domain.EmployeeInput) (*domain.EmployeeDetail, error) {
	id, ok := canonicalID(id)
	if !ok {
		return nil, apperrors.NewNotFound(employeeResource)
	}
	in, err := s.prepare(ctx, in)
	if err != nil {
		return nil, err
	}

	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromStoreError(err, employeeResource)
	}
	emp.FirstName = in.FirstName
	emp.LastName = in.LastName
	emp.Email = in.Email
	emp.Phone = in.Phone
	emp.Role = in.Role
	emp.DepartmentID = in.DepartmentID
	if in.HireDate != nil {
		emp.HireDate = in.HireDate.UTC()
	}
	if in.IsActive != nil {
		emp.IsActive = *in.IsActive
	}

	if err := s.employees.Update(ctx, emp); err != nil {
		return nil, apperrors.FromStoreError(err, employeeResource)
	}
	return s.resolveOne(ctx, *emp)
}

// Delete removes an employee.
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	id, ok := canonicalID(id)
	if !ok {
		return apperrors.NewNotFound(employeeResource)
	}
	if err := s.employees.Delete(ctx, id); err != nil {
		return apperrors.FromStoreError(err, employeeResource)
	}
	return nil
}

// prepare normalizes and validates input, including that the referenced
// department exists.
func (s *EmployeeService) prepare(ctx context.Context, in domain.EmployeeInput) (domain.EmployeeInput, error) {
	in = in.Normalize()
	if complaints := in.Validate(); len(complaints) > 0 {
		return in, apperrors.NewValidationError(complaints...)
	}
	if in.DepartmentID == nil {
		return in, nil
	}
	if _, err := s.departments.GetByID(ctx, *in.DepartmentID); err != nil {
		mapped := apperrors.FromStoreError(err, departmentResource)
		if apperrors.IsNotFound(mapped) {
			return in, apperrors.NewValidationError("Department does not exist")
		}
		return in, mapped
	}
	return in, nil
}

func (s *EmployeeService) resolveOne(ctx context.Context, emp domain.Employee) (*domain.EmployeeDetail, error) {
	details, err := s.resolve(ctx, []domain.Employee{emp})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

// resolve batch-loads the departments referenced by emps and embeds them.
func (s *EmployeeService) resolve(ctx context.Context, emps []domain.Employee) ([]domain.EmployeeDetail, error) {
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, emp := range emps {
		if emp.DepartmentID == nil {
			continue
		}
		if _, ok := seen[*emp.DepartmentID]; ok {
			continue
		}
		seen[*emp.DepartmentID] = struct{}{}
		ids = append(ids, *emp.DepartmentID)
	}

	byID := make(map[string]domain.DepartmentRef, len(ids))
	if len(ids) > 0 {
		refs, err := s.departments.ListRefs(ctx, ids)
		if err != nil {
			return nil, apperrors.FromStoreError(err, departmentResource)
		}
		for _, ref := range refs {
			byID[ref.ID] = ref
		}
	}

	details := make([]domain.EmployeeDetail, 0, len(emps))
	for _, emp := range emps {
		detail := domain.EmployeeDetail{Employee: emp}
		if emp.DepartmentID != nil {
			if ref, ok := byID[*emp.DepartmentID]; ok {
				detail.Department = &ref
			}
		}
		details = append(details, detail)
	}
	return details, nil
}
