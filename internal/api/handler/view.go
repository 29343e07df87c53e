package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/trendythreads/storefront/internal/api/middleware"
)

// viewData builds the payload every template expects: the page-specific
// fields plus the globals the session middleware attached (display name
// and cart count).
func viewData(c echo.Context, title string, extra echo.Map) echo.Map {
	data := echo.Map{
		"Title":     title,
		"User":      middleware.CurrentSession(c).Username,
		"CartCount": middleware.CartCount(c),
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}
