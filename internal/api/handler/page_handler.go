package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trendythreads/storefront/internal/core/ports"
)

// PageHandler renders the catalog pages.
type PageHandler struct {
	catalog ports.CatalogService
}

func NewPageHandler(catalog ports.CatalogService) *PageHandler {
	return &PageHandler{catalog: catalog}
}

// Home handles GET / — the landing page with the three featured products.
func (h *PageHandler) Home(c echo.Context) error {
	products, err := h.catalog.ListFeatured(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "index.html", viewData(c, "Home", echo.Map{"Products": products}))
}

// Shop handles GET /shop and GET /products — the full catalog. Both
// routes render the same page; the gate to /signup sits in middleware.
func (h *PageHandler) Shop(c echo.Context) error {
	products, err := h.catalog.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "shop.html", viewData(c, "All Products", echo.Map{"Products": products}))
}
