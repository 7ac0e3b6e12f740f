package domain

import (
	"errors"
	"time"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeExists   = errors.New("employee already exists")
)

// Employee is the core record of this system. NIK is the natural business
// key: no two rows may share one, enforced by a unique constraint in the
// store in addition to the service-level pre-check.
type Employee struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Birthday   time.Time `json:"birthday"`
	BirthPlace string    `json:"birth_place"`
	NIK        int64     `json:"nik"`
	Position   string    `json:"position"`
	DateHired  time.Time `json:"date_hired"`
	CreatedAt  time.Time `json:"created_at"`
}
