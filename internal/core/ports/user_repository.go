package ports

import (
	"context"

	"github.com/trendythreads/storefront/internal/core/domain"
)

// UserRepository defines persistence for registered users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
