package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trendythreads/storefront/internal/api/metrics"
	"github.com/trendythreads/storefront/internal/api/middleware"
	"github.com/trendythreads/storefront/internal/core/ports"
)

// CartHandler serves the cart page and the four mutation routes. All
// mutations redirect to /cart regardless of outcome, mirroring the
// storefront's form-post navigation; outcomes surface in metrics, not in
// the response.
type CartHandler struct {
	carts ports.CartService
}

func NewCartHandler(carts ports.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// View handles GET /cart. Deliberately ungated: an anonymous visitor sees
// an empty cart rather than a redirect.
func (h *CartHandler) View(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	cart, err := h.carts.View(c.Request().Context(), sess.UserID)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "cart.html", viewData(c, "Your Cart", echo.Map{"Cart": cart}))
}

// Add handles POST /cart/add/:id.
func (h *CartHandler) Add(c echo.Context) error {
	return h.mutate(c, "add", h.carts.Add)
}

// Increase handles POST /cart/increase/:id.
func (h *CartHandler) Increase(c echo.Context) error {
	return h.mutate(c, "increase", h.carts.Increase)
}

// Decrease handles POST /cart/decrease/:id.
func (h *CartHandler) Decrease(c echo.Context) error {
	return h.mutate(c, "decrease", h.carts.Decrease)
}

// Remove handles POST /cart/remove/:id.
func (h *CartHandler) Remove(c echo.Context) error {
	return h.mutate(c, "remove", h.carts.Remove)
}

// mutate runs one cart operation and issues the /cart redirect. Anonymous
// requests skip the service call entirely: there is no user to own a
// cart, so the mutation is a no-op by definition.
func (h *CartHandler) mutate(c echo.Context, op string, fn func(ctx context.Context, userID, productID string) (ports.MutationOutcome, error)) error {
	sess := middleware.CurrentSession(c)
	if !sess.Authenticated() {
		metrics.CartMutationsTotal.WithLabelValues(op, string(ports.OutcomeNoop)).Inc()
		return c.Redirect(http.StatusFound, "/cart")
	}

	outcome, err := fn(c.Request().Context(), sess.UserID, c.Param("id"))
	if err != nil {
		metrics.CartMutationsTotal.WithLabelValues(op, "error").Inc()
		return err
	}

	metrics.CartMutationsTotal.WithLabelValues(op, string(outcome)).Inc()
	return c.Redirect(http.StatusFound, "/cart")
}
