package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/clinic-roster/internal/domain"
	"github.com/spec-kit/clinic-roster/internal/observability"
)

// DepartmentRepository manages department persistence.
type DepartmentRepository interface {
	Create(ctx context.Context, dept *domain.Department) error
	Update(ctx context.Context, dept *domain.Department) error
	GetByID(ctx context.Context, id string) (*domain.Department, error)
	List(ctx context.Context) ([]domain.Department, error)
	ListRefs(ctx context.Context, ids []string) ([]domain.DepartmentRef, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

type departmentRepository struct {
	db      Database
	metrics *observability.Metrics
}

// NewDepartmentRepository builds the repository.
func NewDepartmentRepository(db Database, metrics *observability.Metrics) DepartmentRepository {
	return &departmentRepository{db: db, metrics: metrics}
}

func (r *departmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	defer r.metrics.ObserveQuery("create_department")()
	const query = `
        INSERT INTO departments (name, description)
        VALUES ($1,$2)
        RETURNING id, created_at, updated_at`
	if err := r.db.QueryRow(ctx, query,
		dept.Name,
		dept.Description,
	).Scan(&dept.ID, &dept.CreatedAt, &dept.UpdatedAt); err != nil {
		return fmt.Errorf("create department: %w", err)
	}
	return nil
}

// Update returns pgx.ErrNoRows when the department does not exist.
func (r *departmentRepository) Update(ctx context.Context, dept *domain.Department) error {
	defer r.metrics.ObserveQuery("update_department")()
	const query = `
        UPDATE departments SET name=$1, description=$2, updated_at=NOW()
        WHERE id=$3
        RETURNING created_at, updated_at`
	if err := r.db.QueryRow(ctx, query,
		dept.Name,
		dept.Description,
		dept.ID,
	).Scan(&dept.CreatedAt, &dept.UpdatedAt); err != nil {
		return fmt.Errorf("update department: %w", err)
	}
	return nil
}

func (r *departmentRepository) GetByID(ctx context.Context, id string) (*domain.Department, error) {
	defer r.metrics.ObserveQuery("get_department")()
	const query = `
        SELECT id, name, description, created_at, updated_at
        FROM departments WHERE id=$1`
	var dept domain.Department
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&dept.ID,
		&dept.Name,
		&dept.Description,
		&dept.CreatedAt,
		&dept.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("get department: %w", err)
	}
	return &dept, nil
}

// List orders by byte value, independent of the database locale.
func (r *departmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	defer r.metrics.ObserveQuery("list_departments")()
	const query = `
        SELECT id, name, description, created_at, updated_at
        FROM departments ORDER BY name COLLATE "C" ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	result := []domain.Department{}
	for rows.Next() {
		var dept domain.Department
		if err := rows.Scan(&dept.ID, &dept.Name, &dept.Description, &dept.CreatedAt, &dept.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		result = append(result, dept)
	}
	return result, rows.Err()
}

// ListRefs resolves ids to {id, name} pairs. Unknown ids are skipped.
func (r *departmentRepository) ListRefs(ctx context.Context, ids []string) ([]domain.DepartmentRef, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	defer r.metrics.ObserveQuery("list_department_refs")()
	const query = `SELECT id, name FROM departments WHERE id = ANY($1::uuid[])`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve departments: %w", err)
	}
	defer rows.Close()

	var result []domain.DepartmentRef
	for rows.Next() {
		var ref domain.DepartmentRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, fmt.Errorf("scan department ref: %w", err)
		}
		result = append(result, ref)
	}
	return result, rows.Err()
}

// Delete returns pgx.ErrNoRows when nothing was deleted.
func (r *departmentRepository) Delete(ctx context.Context, id string) error {
	defer r.metrics.ObserveQuery("delete_department")()
	cmd, err := r.db.Exec(ctx, `DELETE FROM departments WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete department: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("delete department: %w", pgx.ErrNoRows)
	}
	return nil
}

func (r *departmentRepository) DeleteAll(ctx context.Context) error {
	defer r.metrics.ObserveQuery("delete_all_departments")()
	if _, err := r.db.Exec(ctx, `DELETE FROM departments`); err != nil {
		return fmt.Errorf("clear departments: %w", err)
	}
	return nil
}
