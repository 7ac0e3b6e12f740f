package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/presensia/employee-system/internal/core/domain"
	"github.com/presensia/employee-system/internal/core/ports"
)

// uniqueViolation is the PostgreSQL error code for unique constraint
// violations. The constraints on employee.nik and users.username make the
// store the authority on uniqueness; the service pre-checks only provide
// deterministic errors in the sequential case.
const uniqueViolation = "23505"

type EmployeeRepository struct {
	pool *pgxpool.Pool
}

func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

func (r *EmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	query := `SELECT id, name, birthday, birth_place, nik, position, date_hired, created_at
	          FROM employee`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Birthday, &e.BirthPlace, &e.NIK, &e.Position, &e.DateHired, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate employees: %w", err)
	}

	return employees, nil
}

func (r *EmployeeRepository) FindByNIK(ctx context.Context, nik int64) (*domain.Employee, error) {
	query := `SELECT id, name, birthday, birth_place, nik, position, date_hired, created_at
	          FROM employee WHERE nik = $1`

	var e domain.Employee
	err := r.pool.QueryRow(ctx, query, nik).Scan(
		&e.ID, &e.Name, &e.Birthday, &e.BirthPlace, &e.NIK, &e.Position, &e.DateHired, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee by nik: %w", err)
	}

	return &e, nil
}

func (r *EmployeeRepository) ExistsByNIK(ctx context.Context, nik int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employee WHERE nik = $1)`, nik).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check employee exists: %w", err)
	}
	return exists, nil
}

// Create inserts the record. created_at is the transaction time truncated to
// whole seconds, assigned by the store, and the generated id and timestamp
// are written back into e.
func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	query := `INSERT INTO employee (name, birthday, birth_place, nik, position, date_hired, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, date_trunc('second', CURRENT_TIMESTAMP))
	          RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		e.Name, e.Birthday, e.BirthPlace, e.NIK, e.Position, e.DateHired,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrEmployeeExists
		}
		return fmt.Errorf("insert employee: %w", err)
	}

	return nil
}

func (r *EmployeeRepository) Update(ctx context.Context, nik int64, fields ports.EmployeeUpdate) error {
	query := `UPDATE employee SET name = $1, birthday = $2, birth_place = $3, position = $4
	          WHERE nik = $5`

	_, err := r.pool.Exec(ctx, query, fields.Name, fields.Birthday, fields.BirthPlace, fields.Position, nik)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, nik int64) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM employee WHERE nik = $1`, nik)
	if err != nil {
		return 0, fmt.Errorf("delete employee: %w", err)
	}
	return tag.RowsAffected(), nil
}
