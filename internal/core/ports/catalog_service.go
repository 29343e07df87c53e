package ports

import (
	"context"

	"github.com/trendythreads/storefront/internal/core/domain"
)

// CatalogService is the read-only product listing plus the one-time
// startup seeding of the starter catalog.
type CatalogService interface {
	ListFeatured(ctx context.Context) ([]domain.Product, error)
	ListAll(ctx context.Context) ([]domain.Product, error)
	// EnsureSeeded inserts the fixed starter catalog when the collection
	// is empty. Idempotent by count check.
	EnsureSeeded(ctx context.Context) error
}
