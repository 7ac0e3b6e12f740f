package ports

import (
	"context"

	"github.com/presensia/employee-system/internal/core/domain"
)

// UserRepository defines persistence for credential store rows.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Exists reports whether a row matches email, username and role jointly.
	Exists(ctx context.Context, email, username, role string) (bool, error)
	Create(ctx context.Context, user *domain.User) error
}
