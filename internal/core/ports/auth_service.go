package ports

import "context"

// RegisterInput carries all data needed to create a credential store row.
type RegisterInput struct {
	Email    string
	Username string
	Role     string
	Password string
}

// AuthService defines use-case operations for authentication.
type AuthService interface {
	// Login verifies credentials and returns a signed access token whose
	// embedded identity is the account's role.
	Login(ctx context.Context, email, password string) (string, error)
	// Register creates a new account. RBAC gating happens at the transport
	// layer; Register still rejects the reserved admin username itself.
	Register(ctx context.Context, input RegisterInput) error
}
