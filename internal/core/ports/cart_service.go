package ports

import (
	"context"

	"github.com/trendythreads/storefront/internal/core/domain"
)

// MutationOutcome tells callers what a cart mutation actually did, so a
// silent no-op is distinguishable from a successful update.
type MutationOutcome string

const (
	OutcomeAdded       MutationOutcome = "added"
	OutcomeIncremented MutationOutcome = "incremented"
	OutcomeDecremented MutationOutcome = "decremented"
	OutcomeRemoved     MutationOutcome = "removed"
	OutcomeNoop        MutationOutcome = "noop"
)

// CartLine is a cart item joined with its resolved product.
type CartLine struct {
	Product  domain.Product
	Quantity int
}

// Subtotal is the line price times quantity.
func (l CartLine) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}

// CartView is the render-ready cart: lines whose product no longer
// resolves are already filtered out.
type CartView struct {
	Lines []CartLine
	Total float64
}

// CartService maintains the single cart belonging to a user.
//
// Mutations never validate that productID refers to an existing product;
// a dangling reference is tolerated and filtered out at read time.
type CartService interface {
	Add(ctx context.Context, userID, productID string) (MutationOutcome, error)
	Increase(ctx context.Context, userID, productID string) (MutationOutcome, error)
	Decrease(ctx context.Context, userID, productID string) (MutationOutcome, error)
	Remove(ctx context.Context, userID, productID string) (MutationOutcome, error)
	// View returns the user's cart with product data populated. An empty
	// userID or a user without a cart yields an empty view.
	View(ctx context.Context, userID string) (*CartView, error)
	// ItemCount returns the quantity sum over non-orphaned lines, or 0
	// when userID is empty. Computed fresh on every call.
	ItemCount(ctx context.Context, userID string) (int, error)
}
