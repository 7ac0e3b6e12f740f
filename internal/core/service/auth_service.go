package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/presensia/employee-system/internal/api/metrics"
	"github.com/presensia/employee-system/internal/core/domain"
	"github.com/presensia/employee-system/internal/core/ports"
)

// AuthService implements login and admin-gated registration.
type AuthService struct {
	users     ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Login verifies the credentials against the stored bcrypt hash and issues a
// signed token. The token's identity is the account's role string, nothing
// else: two admins are indistinguishable downstream.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("not_found").Inc()
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
		return "", domain.ErrPasswordMismatch
	}

	token, err := s.generateToken(user.Role)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("email", email).Str("role", user.Role).Msg("login succeeded")
	return token, nil
}

// Register creates a new credential store row. The reserved admin username is
// rejected before any store access, regardless of whether an admin row exists.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) error {
	if strings.EqualFold(input.Username, domain.AdminUsername) {
		return domain.ErrAdminReserved
	}

	exists, err := s.users.Exists(ctx, input.Email, input.Username, input.Role)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &domain.User{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: string(hash),
		Role:         input.Role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.WithLabelValues(input.Role).Inc()
	s.logger.Info().Str("username", input.Username).Str("role", input.Role).Msg("user registered")
	return nil
}

func (s *AuthService) generateToken(role string) (string, error) {
	claims := jwt.MapClaims{
		"role": role,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
