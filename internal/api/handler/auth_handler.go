package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/trendythreads/storefront/internal/api/metrics"
	"github.com/trendythreads/storefront/internal/api/middleware"
	"github.com/trendythreads/storefront/internal/api/session"
	"github.com/trendythreads/storefront/internal/core/domain"
	"github.com/trendythreads/storefront/internal/core/ports"
)

// AuthHandler serves the signup/login/logout routes. Auth failures are
// re-rendered as inline form text; only store failures bubble up.
type AuthHandler struct {
	auth     ports.AuthService
	sessions ports.SessionStore
	codec    *session.Codec
	log      zerolog.Logger
}

func NewAuthHandler(auth ports.AuthService, sessions ports.SessionStore, codec *session.Codec, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, codec: codec, log: log}
}

// SignupForm handles GET /signup.
func (h *AuthHandler) SignupForm(c echo.Context) error {
	return c.Render(http.StatusOK, "signup.html", viewData(c, "Signup", echo.Map{"Error": nil}))
}

// Signup handles POST /signup. A new account is created but no session is
// established; the user is redirected to /login.
func (h *AuthHandler) Signup(c echo.Context) error {
	var form signupForm
	if err := c.Bind(&form); err != nil {
		return h.renderSignupError(c, "Invalid form submission.")
	}
	if err := c.Validate(&form); err != nil {
		metrics.SignupsTotal.WithLabelValues("invalid").Inc()
		return h.renderSignupError(c, err.Error())
	}

	_, err := h.auth.Signup(c.Request().Context(), ports.SignupInput{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			metrics.SignupsTotal.WithLabelValues("duplicate_email").Inc()
			return h.renderSignupError(c, "Email already exists!")
		}
		metrics.SignupsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.SignupsTotal.WithLabelValues("ok").Inc()
	return c.Redirect(http.StatusFound, "/login")
}

// LoginForm handles GET /login.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", viewData(c, "Login", echo.Map{"Error": nil}))
}

// Login handles POST /login. Success creates a session, sets the cookie
// and redirects to /products.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return h.renderLoginError(c, "Invalid form submission.")
	}
	if err := c.Validate(&form); err != nil {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return h.renderLoginError(c, "Invalid username or password!")
	}

	user, err := h.auth.Login(c.Request().Context(), ports.LoginInput{
		Username: form.Username,
		Password: form.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
			return h.renderLoginError(c, "Invalid username or password!")
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	sess, err := h.sessions.Create(c.Request().Context(), user.ID, user.Username)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	token, err := h.codec.Encode(sess.ID)
	if err != nil {
		return err
	}
	c.SetCookie(sessionCookie(token, h.codec.TTL()))

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return c.Redirect(http.StatusFound, "/products")
}

// Logout handles GET /logout. A failed destroy falls back to the landing
// page instead of surfacing the error.
func (h *AuthHandler) Logout(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	if sess.ID != "" {
		if err := h.sessions.Destroy(c.Request().Context(), sess.ID); err != nil {
			h.log.Error().Err(err).Str("session_id", sess.ID).Msg("session destroy failed")
			return c.Redirect(http.StatusFound, "/")
		}
	}

	c.SetCookie(sessionCookie("", -time.Hour))
	return c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) renderSignupError(c echo.Context, msg string) error {
	return c.Render(http.StatusOK, "signup.html", viewData(c, "Signup", echo.Map{"Error": msg}))
}

func (h *AuthHandler) renderLoginError(c echo.Context, msg string) error {
	return c.Render(http.StatusOK, "login.html", viewData(c, "Login", echo.Map{"Error": msg}))
}

func sessionCookie(value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     session.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
