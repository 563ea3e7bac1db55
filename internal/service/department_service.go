package service

import (
	"context"

	"github.com/spec-kit/clinic-roster/internal/domain"
	"github.com/spec-kit/clinic-roster/internal/repository"
	apperrors "github.com/spec-kit/clinic-roster/pkg/util/errorutil"
)

const departmentResource = "Department"

// ErrDepartmentInUse is returned when deleting a department that still has employees.
var ErrDepartmentInUse = apperrors.NewConflict("Cannot delete department with assigned employees")

// DepartmentService manages departments and guards their deletion.
type DepartmentService struct {
	departments repository.DepartmentRepository
	employees   repository.EmployeeRepository
}

// DepartmentDependencies bundles repositories for the department service.
type DepartmentDependencies struct {
	DepartmentRepo repository.DepartmentRepository
	EmployeeRepo   repository.EmployeeRepository
}

// NewDepartmentService constructs the service.
func NewDepartmentService(deps DepartmentDependencies) *DepartmentService {
	return &DepartmentService{
		departments: deps.DepartmentRepo,
		employees:   deps.EmployeeRepo,
	}
}

// List returns every department ordered by name.
func (s *DepartmentService) List(ctx context.Context) ([]domain.Department, error) {
	depts, err := s.departments.List(ctx)
	if err != nil {
		return nil, apperrors.FromStoreError(err, departmentResource)
	}
	return depts, nil
}

// Get fetches a department.
func (s *DepartmentService) Get(ctx context.Context, id string) (*domain.Department, error) {
	id, ok := canonicalID(id)
	if !ok {
		return nil, apperrors.NewNotFound(departmentResource)
	}
	dept, err := s.departments.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromStoreError(err, departmentResource)
	}
	return dept, nil
}

// Create validates and stores a new department.
func (s *DepartmentService) Create(ctx context.Context, in domain.DepartmentInput) (*domain.Department, error) {
	in = in.Normalize()
	if complaints := in.Validate(); len(complaints) > 0 {
		return nil, apperrors.NewValidationError(complaints...)
	}
	dept := &domain.Department{
		Name:        in.Name,
		Description: in.Description,
	}
	if err := s.departments.Create(ctx, dept); err != nil {
		return nil, apperrors.FromStoreError(err, departmentResource)
	}
	return dept, nil
}

// Update replaces the department's fields after validating them as on create.
func (s *DepartmentService) Update(ctx context.Context, id string, in domain.DepartmentInput) (*domain.Department, error) {
	id, ok := canonicalID(id)
	if !ok {
		return nil, apperrors.NewNotFound(departmentResource)
	}
	in = in.Normalize()
	if complaints := in.Validate(); len(complaints) > 0 {
		return nil, apperrors.NewValidationError(complaints...)
	}
	dept := &domain.Department{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
	}
	if err := s.departments.Update(ctx, dept); err != nil {
		return nil, apperrors.FromStoreError(err, departmentResource)
	}
	return dept, nil
}

// Delete removes a department unless employees still reference it.
func (s *DepartmentService) Delete(ctx context.Context, id string) error {
	id, ok := canonicalID(id)
	if !ok {
		return apperrors.NewNotFound(departmentResource)
	}
	count, err := s.employees.CountByDepartment(ctx, id)
	if err != nil {
		return apperrors.FromStoreError(err, departmentResource)
	}
	if count > 0 {
		return ErrDepartmentInUse
	}
	if err := s.departments.Delete(ctx, id); err != nil {
		return apperrors.FromStoreError(err, departmentResource)
	}
	return nil
}
