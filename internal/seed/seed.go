// Package seed clears the roster and repopulates it with a fixed sample
// clinic staff.
package seed

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/clinic-roster/internal/domain"
	"github.com/spec-kit/clinic-roster/internal/repository"
)

// Departments are the sample departments in insertion order.
var Departments = []domain.DepartmentInput{
	{Name: "General Dentistry", Description: "Routine dental care and examinations"},
	{Name: "Pediatric Dentistry", Description: "Dental care for children and adolescents"},
	{Name: "Restorative Dentistry", Description: "Restoration of teeth and oral function"},
	{Name: "Surgery", Description: "Oral and maxillofacial surgical procedures"},
	{Name: "Orthodontics", Description: "Correction of teeth alignment and bite issues"},
	{Name: "Periodontics", Description: "Gum disease treatment"},
	{Name: "Endodontics", Description: "Root canal therapy"},
	{Name: "Prosthodontics", Description: "Implants, crowns & dentures"},
	{Name: "Radiology", Description: "Dental imaging & X-rays"},
	{Name: "Hygiene", Description: "Cleaning & preventive care"},
	{Name: "Administration", Description: "Office & operations"},
}

// Employee is a sample employee; Department indexes Departments.
type Employee struct {
	FirstName  string
	LastName   string
	Email      string
	Role       string
	Department int
}

// Employees are the sample employees.
var Employees = []Employee{
	{FirstName: "Lisa", LastName: "Harris", Email: "lisa.harris@apollonia.com", Role: "Restorative Dentist", Department: 2},
	{FirstName: "Alfred", LastName: "Christensen", Email: "alfred.christensen@apollonia.com", Role: "General Dentist", Department: 0},
	{FirstName: "John", LastName: "Dudley", Email: "john.dudley@apollonia.com", Role: "General Dentist", Department: 0},
	{FirstName: "Danny", LastName: "Perez", Email: "danny.perez@apollonia.com", Role: "Restorative Dentist", Department: 2},
	{FirstName: "Sarah", LastName: "Alvarez", Email: "sarah.alvarez@apollonia.com", Role: "Pediatric Dentist", Department: 1},
	{FirstName: "Constance", LastName: "Smith", Email: "constance.smith@apollonia.com", Role: "Oral Surgeon", Department: 3},
	{FirstName: "Travis", LastName: "Combs", Email: "travis.combs@apollonia.com", Role: "Dental Assistant", Department: 0},
	{FirstName: "Francisco", LastName: "Willard", Email: "francisco.willard@apollonia.com", Role: "Pediatric Dentist", Department: 1},
	{FirstName: "Janet", LastName: "Doe", Email: "janet.doe@apollonia.com", Role: "General Dentist", Department: 0},
	{FirstName: "Leslie", LastName: "Roche", Email: "leslie.roche@apollonia.com", Role: "Orthodontist", Department: 4},
}

// Seeder rewrites both tables.
type Seeder struct {
	departments repository.DepartmentRepository
	employees   repository.EmployeeRepository
	logger      *zap.Logger
	now         func() time.Time
}

// NewSeeder constructs a Seeder.
func NewSeeder(departments repository.DepartmentRepository, employees repository.EmployeeRepository, logger *zap.Logger) *Seeder {
	return &Seeder{
		departments: departments,
		employees:   employees,
		logger:      logger,
		now:         time.Now,
	}
}

// Result reports how many rows were written.
type Result struct {
	Departments int
	Employees   int
}

// Run deletes every employee and department, then inserts the sample data.
// Employees are cleared first so the department foreign key never blocks.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	var res Result

	if err := s.employees.DeleteAll(ctx); err != nil {
		return res, fmt.Errorf("clear employees: %w", err)
	}
	if err := s.departments.DeleteAll(ctx); err != nil {
		return res, fmt.Errorf("clear departments: %w", err)
	}
	s.logger.Info("roster cleared")

	ids := make([]string, 0, len(Departments))
	for _, in := range Departments {
		dept := &domain.Department{Name: in.Name, Description: in.Description}
		if err := s.departments.Create(ctx, dept); err != nil {
			return res, fmt.Errorf("insert department %q: %w", in.Name, err)
		}
		ids = append(ids, dept.ID)
		res.Departments++
	}

	hired := s.now().UTC()
	for _, sample := range Employees {
		if sample.Department < 0 || sample.Department >= len(ids) {
			return res, fmt.Errorf("employee %s: department index %d out of range", sample.Email, sample.Department)
		}
		deptID := ids[sample.Department]
		emp := &domain.Employee{
			FirstName:    sample.FirstName,
			LastName:     sample.LastName,
			Email:        sample.Email,
			Role:         sample.Role,
			DepartmentID: &deptID,
			HireDate:     hired,
			IsActive:     true,
		}
		if err := s.employees.Create(ctx, emp); err != nil {
			return res, fmt.Errorf("insert employee %s: %w", sample.Email, err)
		}
		res.Employees++
	}

	s.logger.Info("seed complete",
		zap.Int("departments", res.Departments),
		zap.Int("employees", res.Employees),
	)
	return res, nil
}
