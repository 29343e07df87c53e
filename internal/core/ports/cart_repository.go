package ports

import (
	"context"

	"github.com/trendythreads/storefront/internal/core/domain"
)

// CartRepository defines persistence for user carts. At most one cart
// exists per user; Save upserts on user_id to keep it that way.
type CartRepository interface {
	// FindByUser returns the user's cart or domain.ErrCartNotFound.
	// Absence is translated into an empty shell one layer up, never here.
	FindByUser(ctx context.Context, userID string) (*domain.Cart, error)
	// Save persists the cart, creating it on first write.
	Save(ctx context.Context, cart *domain.Cart) error
}
