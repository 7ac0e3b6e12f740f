package ports

import (
	"context"

	"github.com/presensia/employee-system/internal/core/domain"
)

// EmployeeRepository defines persistence operations for employee records.
// All lookups and mutations are keyed by NIK, the natural business key.
type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.Employee, error)
	FindByNIK(ctx context.Context, nik int64) (*domain.Employee, error)
	ExistsByNIK(ctx context.Context, nik int64) (bool, error)
	// Create inserts a new record. The store assigns id and created_at
	// (transaction time truncated to whole seconds).
	Create(ctx context.Context, e *domain.Employee) error
	Update(ctx context.Context, nik int64, fields EmployeeUpdate) error
	// Delete removes all rows matching nik and returns the affected count.
	Delete(ctx context.Context, nik int64) (int64, error)
}
