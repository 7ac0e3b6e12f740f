package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/presensia/employee-system/internal/core/domain"
	"github.com/presensia/employee-system/internal/core/ports"
)

type stubEmployeeRepo struct {
	employees []domain.Employee
	nextID    int64
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{nextID: 1}
}

func (r *stubEmployeeRepo) List(_ context.Context) ([]domain.Employee, error) {
	out := make([]domain.Employee, len(r.employees))
	copy(out, r.employees)
	return out, nil
}

func (r *stubEmployeeRepo) FindByNIK(_ context.Context, nik int64) (*domain.Employee, error) {
	for _, e := range r.employees {
		if e.NIK == nik {
			found := e
			return &found, nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) ExistsByNIK(_ context.Context, nik int64) (bool, error) {
	for _, e := range r.employees {
		if e.NIK == nik {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubEmployeeRepo) Create(_ context.Context, e *domain.Employee) error {
	for _, existing := range r.employees {
		if existing.NIK == e.NIK {
			return domain.ErrEmployeeExists
		}
	}
	e.ID = r.nextID
	r.nextID++
	e.CreatedAt = time.Now().UTC().Truncate(time.Second)
	r.employees = append(r.employees, *e)
	return nil
}

func (r *stubEmployeeRepo) Update(_ context.Context, nik int64, fields ports.EmployeeUpdate) error {
	for i := range r.employees {
		if r.employees[i].NIK == nik {
			r.employees[i].Name = fields.Name
			r.employees[i].Birthday = fields.Birthday
			r.employees[i].BirthPlace = fields.BirthPlace
			r.employees[i].Position = fields.Position
		}
	}
	return nil
}

func (r *stubEmployeeRepo) Delete(_ context.Context, nik int64) (int64, error) {
	var kept []domain.Employee
	var removed int64
	for _, e := range r.employees {
		if e.NIK == nik {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	r.employees = kept
	return removed, nil
}

func testEmployeeInput(nik int64) ports.EmployeeInput {
	return ports.EmployeeInput{
		Name:       "Budi Santoso",
		Birthday:   time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		BirthPlace: "Bandung",
		NIK:        nik,
		Position:   "Engineer",
		DateHired:  time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestEmployeeService_Create_RoundTrip(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := NewEmployeeService(repo, zerolog.Nop())

	input := testEmployeeInput(3201)
	if err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := svc.GetByNIK(context.Background(), 3201)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != input.Name || got.BirthPlace != input.BirthPlace || got.Position != input.Position {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
	if !got.Birthday.Equal(input.Birthday) || !got.DateHired.Equal(input.DateHired) {
		t.Fatalf("timestamp mismatch: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Fatalf("expected server-assigned created_at")
	}
}

func TestEmployeeService_Create_DuplicateNIK(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := NewEmployeeService(repo, zerolog.Nop())

	if err := svc.Create(context.Background(), testEmployeeInput(3201)); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if err := svc.Create(context.Background(), testEmployeeInput(3201)); !errors.Is(err, domain.ErrEmployeeExists) {
		t.Fatalf("expected ErrEmployeeExists, got %v", err)
	}
	if len(repo.employees) != 1 {
		t.Fatalf("store changed by duplicate create: %d rows", len(repo.employees))
	}
}

func TestEmployeeService_Update_Idempotent(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := NewEmployeeService(repo, zerolog.Nop())

	if err := svc.Create(context.Background(), testEmployeeInput(3201)); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	fields := ports.EmployeeUpdate{
		Name:       "Budi S.",
		Birthday:   time.Date(1990, 5, 2, 0, 0, 0, 0, time.UTC),
		BirthPlace: "Jakarta",
		Position:   "Lead Engineer",
	}
	if err := svc.Update(context.Background(), 3201, fields); err != nil {
		t.Fatalf("first update failed: %v", err)
	}
	first, _ := svc.GetByNIK(context.Background(), 3201)

	if err := svc.Update(context.Background(), 3201, fields); err != nil {
		t.Fatalf("second update failed: %v", err)
	}
	second, _ := svc.GetByNIK(context.Background(), 3201)

	if *first != *second {
		t.Fatalf("update not idempotent: %+v vs %+v", first, second)
	}
	if second.Name != "Budi S." || second.Position != "Lead Engineer" {
		t.Fatalf("fields not overwritten: %+v", second)
	}
}

func TestEmployeeService_Update_NotFound(t *testing.T) {
	svc := NewEmployeeService(newStubEmployeeRepo(), zerolog.Nop())

	err := svc.Update(context.Background(), 9999, ports.EmployeeUpdate{Name: "x"})
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestEmployeeService_Delete_ThenGet(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := NewEmployeeService(repo, zerolog.Nop())

	if err := svc.Create(context.Background(), testEmployeeInput(3201)); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	rows, err := svc.Delete(context.Background(), 3201)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected 1 row deleted, got %d", rows)
	}

	if _, err := svc.GetByNIK(context.Background(), 3201); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound after delete, got %v", err)
	}
}

func TestEmployeeService_Delete_NotFound(t *testing.T) {
	svc := NewEmployeeService(newStubEmployeeRepo(), zerolog.Nop())

	if _, err := svc.Delete(context.Background(), 9999); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestEmployeeService_List_Empty(t *testing.T) {
	svc := NewEmployeeService(newStubEmployeeRepo(), zerolog.Nop())

	employees, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(employees) != 0 {
		t.Fatalf("expected empty list, got %d", len(employees))
	}
}
