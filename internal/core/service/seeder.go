package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/presensia/employee-system/internal/core/domain"
	"github.com/presensia/employee-system/internal/core/ports"
)

// Seeder guarantees exactly one admin account exists. It runs out-of-band
// (cmd/seed), never from the request path.
type Seeder struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewSeeder(users ports.UserRepository, logger zerolog.Logger) *Seeder {
	return &Seeder{users: users, logger: logger}
}

// Seed inserts the admin account unless one already exists. Returns true when
// a row was inserted. Safe to run repeatedly: the existence check plus the
// unique constraint on username keep the admin row singular.
func (s *Seeder) Seed(ctx context.Context, email, password string) (bool, error) {
	_, err := s.users.FindByUsername(ctx, domain.AdminUsername)
	switch {
	case err == nil:
		s.logger.Info().Msg("admin account already present, nothing to do")
		return false, nil
	case !errors.Is(err, domain.ErrUserNotFound):
		return false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	admin := &domain.User{
		Email:        email,
		Username:     domain.AdminUsername,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		// A concurrent seed run may have won the insert.
		if errors.Is(err, domain.ErrUserExists) {
			s.logger.Info().Msg("admin account created concurrently, nothing to do")
			return false, nil
		}
		return false, err
	}

	s.logger.Info().Str("email", email).Msg("administrator created")
	return true, nil
}
