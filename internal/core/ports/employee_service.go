package ports

import (
	"context"
	"time"

	"github.com/presensia/employee-system/internal/core/domain"
)

// EmployeeInput carries all data needed to create an employee record.
// NIK is immutable after creation.
type EmployeeInput struct {
	Name       string
	Birthday   time.Time
	BirthPlace string
	NIK        int64
	Position   string
	DateHired  time.Time
}

// EmployeeUpdate carries the four mutable fields. An update is a full
// overwrite of these fields for the row matching the NIK.
type EmployeeUpdate struct {
	Name       string
	Birthday   time.Time
	BirthPlace string
	Position   string
}

// EmployeeService defines use-case operations for employee records.
type EmployeeService interface {
	List(ctx context.Context) ([]domain.Employee, error)
	// GetByNIK returns the matching record, or domain.ErrEmployeeNotFound
	// when no row matches.
	GetByNIK(ctx context.Context, nik int64) (*domain.Employee, error)
	Create(ctx context.Context, input EmployeeInput) error
	Update(ctx context.Context, nik int64, fields EmployeeUpdate) error
	// Delete returns the number of rows removed (expected exactly one).
	Delete(ctx context.Context, nik int64) (int64, error)
}
