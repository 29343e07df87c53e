package ports

import (
	"context"

	"github.com/trendythreads/storefront/internal/core/domain"
)

// ProductRepository defines read access to the catalog plus the bulk
// insert used by the one-time seeding routine.
type ProductRepository interface {
	// List returns products in insertion order. limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]domain.Product, error)
	// FindByIDs returns the products whose IDs appear in ids. IDs that do
	// not resolve are simply absent from the result (no error).
	FindByIDs(ctx context.Context, ids []string) (map[string]domain.Product, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, products []domain.Product) error
}
