package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/trendythreads/storefront/internal/api/session"
	"github.com/trendythreads/storefront/internal/core/domain"
	"github.com/trendythreads/storefront/internal/core/ports"
)

// Context keys set by Attach.
const (
	KeySession   = "session"
	KeyCartCount = "cart_count"
)

// Attach resolves the session cookie and puts the current session (or the
// anonymous zero value) plus a freshly computed cart item count into the
// request context. Every failure along the way degrades to anonymous —
// a broken cookie or an unreachable session store must never take a page
// down.
func Attach(codec *session.Codec, store ports.SessionStore, carts ports.CartService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := domain.Session{}

			if cookie, err := c.Cookie(session.CookieName); err == nil && cookie.Value != "" {
				if sid, err := codec.Decode(cookie.Value); err == nil {
					found, err := store.Find(c.Request().Context(), sid)
					switch {
					case err == nil:
						sess = *found
					case !errors.Is(err, domain.ErrSessionNotFound):
						log.Warn().Err(err).Msg("session lookup failed, treating request as anonymous")
					}
				}
			}

			count, err := carts.ItemCount(c.Request().Context(), sess.UserID)
			if err != nil {
				log.Warn().Err(err).Str("user_id", sess.UserID).Msg("cart count failed")
				count = 0
			}

			c.Set(KeySession, sess)
			c.Set(KeyCartCount, count)
			return next(c)
		}
	}
}

// RequireUser gates a route on an authenticated session, redirecting
// anonymous visitors to the signup page.
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, _ := c.Get(KeySession).(domain.Session)
			if !sess.Authenticated() {
				return c.Redirect(http.StatusFound, "/signup")
			}
			return next(c)
		}
	}
}

// CurrentSession returns the session attached by Attach, or the anonymous
// zero value when the middleware did not run.
func CurrentSession(c echo.Context) domain.Session {
	sess, _ := c.Get(KeySession).(domain.Session)
	return sess
}

// CartCount returns the item count attached by Attach.
func CartCount(c echo.Context) int {
	count, _ := c.Get(KeyCartCount).(int)
	return count
}
