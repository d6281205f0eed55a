package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sportshop/shop-system/internal/api/handler"
	"github.com/sportshop/shop-system/internal/api/middleware"
	"github.com/sportshop/shop-system/internal/core/domain"
	"github.com/sportshop/shop-system/internal/core/ports"
	"github.com/sportshop/shop-system/internal/core/service"
	"github.com/sportshop/shop-system/internal/infrastructure/config"
	mongoshop "github.com/sportshop/shop-system/internal/infrastructure/db/mongo"
	redisshop "github.com/sportshop/shop-system/internal/infrastructure/db/redis"
	"github.com/sportshop/shop-system/internal/infrastructure/render"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, recorder ports.LoginRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("shop"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	users := mongoshop.NewUserRepository(db)
	sessions := redisshop.NewSessionStore(rdb, cfg.SessionTTL)
	catalog := domain.DefaultCatalog()

	// One credential discipline for the whole deployment; never mixed
	// per route.
	var issuer ports.CredentialIssuer
	var verifier ports.CredentialVerifier
	if cfg.AuthMode == "session" {
		issuer = service.NewMarkerIssuer()
		verifier = service.NewMarkerVerifier()
	} else {
		issuer = service.NewTokenIssuer(users, cfg.JWTSecret, cfg.TokenTTL)
		verifier = service.NewTokenVerifier(users, cfg.JWTSecret)
	}

	authService := service.NewAuthService(users, issuer, log)
	cartService := service.NewCartService(catalog, log)
	breaker := service.NewBreaker(cfg.BreakerLimit)
	views := render.NewJSONRenderer()

	authHandler := handler.NewAuthHandler(authService, sessions, recorder, catalog, views)
	cartHandler := handler.NewCartHandler(cartService, sessions, catalog, views)
	orderHandler := handler.NewOrderHandler(breaker, views)

	guard := middleware.Guard(sessions, verifier)

	// --- Public routes ---
	e.GET("/", authHandler.Index)
	e.GET("/register", authHandler.RegisterForm)
	e.POST("/register", authHandler.Register)
	e.POST("/api/utilisateurs", authHandler.Login)

	// --- Guarded routes ---
	e.GET("/api/article", cartHandler.Catalog, guard)
	e.POST("/api/article", cartHandler.Update, guard)
	e.POST("/api/commande", orderHandler.Checkout, guard)
	e.GET("/retour-articles", cartHandler.Resume, guard)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
