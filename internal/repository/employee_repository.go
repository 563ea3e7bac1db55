package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/clinic-roster/internal/domain"
	"github.com/spec-kit/clinic-roster/internal/observability"
)

// EmployeeRepository handles persistence for employees.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	Update(ctx context.Context, emp *domain.Employee) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	CountByDepartment(ctx context.Context, departmentID string) (int, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

type employeeRepository struct {
	db      Database
	metrics *observability.Metrics
}

// NewEmployeeRepository instantiates the repository.
func NewEmployeeRepository(db Database, metrics *observability.Metrics) EmployeeRepository {
	return &employeeRepository{db: db, metrics: metrics}
}

const employeeColumns = `id, first_name, last_name, email, phone, role, department_id, hire_date, is_active, created_at, updated_at`

// Create and Update read hire_date back at the precision the column stores.
func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	defer r.metrics.ObserveQuery("create_employee")()
	const query = `
        INSERT INTO employees (first_name, last_name, email, phone, role, department_id, hire_date, is_active)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, hire_date, created_at, updated_at`

	if err := r.db.QueryRow(ctx, query,
		emp.FirstName,
		emp.LastName,
		emp.Email,
		emp.Phone,
		emp.Role,
		emp.DepartmentID,
		emp.HireDate,
		emp.IsActive,
	).Scan(&emp.ID, &emp.HireDate, &emp.CreatedAt, &emp.UpdatedAt); err != nil {
		return fmt.Errorf("create employee: %w", err)
	}
	return nil
}

// Update returns pgx.ErrNoRows when the employee does not exist.
func (r *employeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	defer r.metrics.ObserveQuery("update_employee")()
	const query = `
        UPDATE employees
        SET first_name=$1, last_name=$2, email=$3, phone=$4, role=$5, department_id=$6, hire_date=$7, is_active=$8, updated_at=NOW()
        WHERE id=$9
        RETURNING hire_date, created_at, updated_at`

	if err := r.db.QueryRow(ctx, query,
		emp.FirstName,
		emp.LastName,
		emp.Email,
		emp.Phone,
		emp.Role,
		emp.DepartmentID,
		emp.HireDate,
		emp.IsActive,
		emp.ID,
	).Scan(&emp.HireDate, &emp.CreatedAt, &emp.UpdatedAt); err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	defer r.metrics.ObserveQuery("get_employee")()
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id=$1`

	emp, err := scanEmployee(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return emp, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	defer r.metrics.ObserveQuery("list_employees")()
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY last_name COLLATE "C" ASC, first_name COLLATE "C" ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	result := []domain.Employee{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		result = append(result, *emp)
	}
	return result, rows.Err()
}

func (r *employeeRepository) CountByDepartment(ctx context.Context, departmentID string) (int, error) {
	defer r.metrics.ObserveQuery("count_employees_by_department")()
	var count int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM employees WHERE department_id=$1`,
		departmentID,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return count, nil
}

// Delete returns pgx.ErrNoRows when nothing was deleted.
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	defer r.metrics.ObserveQuery("delete_employee")()
	cmd, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("delete employee: %w", pgx.ErrNoRows)
	}
	return nil
}

func (r *employeeRepository) DeleteAll(ctx context.Context) error {
	defer r.metrics.ObserveQuery("delete_all_employees")()
	if _, err := r.db.Exec(ctx, `DELETE FROM employees`); err != nil {
		return fmt.Errorf("clear employees: %w", err)
	}
	return nil
}

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var emp domain.Employee
	if err := row.Scan(
		&emp.ID,
		&emp.FirstName,
		&emp.LastName,
		&emp.Email,
		&emp.Phone,
		&emp.Role,
		&emp.DepartmentID,
		&emp.HireDate,
		&emp.IsActive,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &emp, nil
}
