package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/trendythreads/storefront/internal/core/domain"
	"github.com/trendythreads/storefront/internal/core/ports"
)

const featuredLimit = 3

// CatalogService serves read-only product listings and performs the
// one-time seeding of the starter catalog.
type CatalogService struct {
	products ports.ProductRepository
	log      zerolog.Logger
}

func NewCatalogService(products ports.ProductRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{products: products, log: log}
}

// ListFeatured returns the first three products in insertion order.
// There is no ranking logic.
func (s *CatalogService) ListFeatured(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx, featuredLimit)
}

// ListAll returns every product in insertion order.
func (s *CatalogService) ListAll(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx, 0)
}

// EnsureSeeded bulk-inserts the starter catalog when the collection is
// empty. The count check makes repeated calls no-ops.
func (s *CatalogService) EnsureSeeded(ctx context.Context) error {
	count, err := s.products.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := s.products.InsertMany(ctx, starterCatalog()); err != nil {
		return err
	}

	s.log.Info().Int("products", len(starterCatalog())).Msg("catalog seeded")
	return nil
}
