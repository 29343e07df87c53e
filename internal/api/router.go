package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/trendythreads/storefront/internal/api/handler"
	"github.com/trendythreads/storefront/internal/api/middleware"
	"github.com/trendythreads/storefront/internal/api/session"
	storemongo "github.com/trendythreads/storefront/internal/infrastructure/db/mongo"
	storeredis "github.com/trendythreads/storefront/internal/infrastructure/db/redis"

	"github.com/trendythreads/storefront/internal/core/service"
)

// Deps carries everything the router needs to assemble the application.
type Deps struct {
	Mongo         *mongo.Database
	Redis         *redis.Client
	SessionSecret string
	SessionTTL    time.Duration
	Logger        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Dependencies ---
	users := storemongo.NewUserRepository(deps.Mongo)
	products := storemongo.NewProductRepository(deps.Mongo)
	carts := storemongo.NewCartRepository(deps.Mongo)
	sessions := storeredis.NewSessionStore(deps.Redis, deps.SessionTTL)

	authService := service.NewAuthService(users, deps.Logger)
	catalogService := service.NewCatalogService(products, deps.Logger)
	cartService := service.NewCartService(carts, products, deps.Logger)

	codec := session.NewCodec(deps.SessionSecret, deps.SessionTTL)

	pageHandler := handler.NewPageHandler(catalogService)
	authHandler := handler.NewAuthHandler(authService, sessions, codec, deps.Logger)
	cartHandler := handler.NewCartHandler(cartService)

	attach := middleware.Attach(codec, sessions, cartService, deps.Logger)
	requireUser := middleware.RequireUser()
	e.Use(attach)

	// --- Pages ---
	e.GET("/", pageHandler.Home)
	e.GET("/shop", pageHandler.Shop, requireUser)
	e.GET("/products", pageHandler.Shop, requireUser)

	// --- Auth ---
	e.GET("/signup", authHandler.SignupForm)
	e.POST("/signup", authHandler.Signup)
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)

	// --- Cart (view route deliberately ungated) ---
	e.GET("/cart", cartHandler.View)
	e.POST("/cart/add/:id", cartHandler.Add)
	e.POST("/cart/increase/:id", cartHandler.Increase)
	e.POST("/cart/decrease/:id", cartHandler.Decrease)
	e.POST("/cart/remove/:id", cartHandler.Remove)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)
	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e, nil
}
