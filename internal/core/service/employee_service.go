package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/presensia/employee-system/internal/api/metrics"
	"github.com/presensia/employee-system/internal/core/domain"
	"github.com/presensia/employee-system/internal/core/ports"
)

// EmployeeService implements CRUD over employee records. Uniqueness of NIK is
// pre-checked here for deterministic errors in the sequential case; the
// store's unique constraint closes the concurrent race, and the repository
// maps constraint violations to domain.ErrEmployeeExists.
type EmployeeService struct {
	repo   ports.EmployeeRepository
	logger zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, logger: logger}
}

// List returns all employee records in store-native order.
func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.repo.List(ctx)
}

// GetByNIK returns the record matching nik, or domain.ErrEmployeeNotFound.
func (s *EmployeeService) GetByNIK(ctx context.Context, nik int64) (*domain.Employee, error) {
	return s.repo.FindByNIK(ctx, nik)
}

func (s *EmployeeService) Create(ctx context.Context, input ports.EmployeeInput) error {
	exists, err := s.repo.ExistsByNIK(ctx, input.NIK)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrEmployeeExists
	}

	employee := &domain.Employee{
		Name:       input.Name,
		Birthday:   input.Birthday,
		BirthPlace: input.BirthPlace,
		NIK:        input.NIK,
		Position:   input.Position,
		DateHired:  input.DateHired,
	}
	if err := s.repo.Create(ctx, employee); err != nil {
		return err
	}

	metrics.EmployeesCreatedTotal.Inc()
	s.logger.Info().Int64("nik", input.NIK).Msg("employee created")
	return nil
}

// Update overwrites the four mutable fields of the row matching nik.
func (s *EmployeeService) Update(ctx context.Context, nik int64, fields ports.EmployeeUpdate) error {
	exists, err := s.repo.ExistsByNIK(ctx, nik)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrEmployeeNotFound
	}

	if err := s.repo.Update(ctx, nik, fields); err != nil {
		return err
	}

	s.logger.Info().Int64("nik", nik).Msg("employee updated")
	return nil
}

// Delete removes the row matching nik and reports how many rows went away.
func (s *EmployeeService) Delete(ctx context.Context, nik int64) (int64, error) {
	exists, err := s.repo.ExistsByNIK(ctx, nik)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, domain.ErrEmployeeNotFound
	}

	rows, err := s.repo.Delete(ctx, nik)
	if err != nil {
		return 0, err
	}

	metrics.EmployeesDeletedTotal.Add(float64(rows))
	s.logger.Info().Int64("nik", nik).Int64("rows", rows).Msg("employee deleted")
	return rows, nil
}
