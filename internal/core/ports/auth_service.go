package ports

import (
	"context"

	"github.com/trendythreads/storefront/internal/core/domain"
)

// SignupInput carries the signup form fields.
type SignupInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput carries the login form fields.
type LoginInput struct {
	Username string
	Password string
}

// AuthService implements signup and login against the user repository.
// Signup deliberately does not establish a session: the user logs in
// separately afterwards.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	Login(ctx context.Context, input LoginInput) (*domain.User, error)
}
