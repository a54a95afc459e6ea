package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vidhive/accounts-api/internal/api/handler"
	"github.com/vidhive/accounts-api/internal/api/middleware"
	"github.com/vidhive/accounts-api/internal/core/domain"
	"github.com/vidhive/accounts-api/internal/core/service"
	"github.com/vidhive/accounts-api/internal/infrastructure/config"
	mongodb "github.com/vidhive/accounts-api/internal/infrastructure/db/mongo"
	redisdb "github.com/vidhive/accounts-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Each route lists its gate chain explicitly; the first failing gate
// terminates the request before the controller runs.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("accounts"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	ratingRepo := mongodb.NewRatingRepository(db)
	tokenStore := redisdb.NewTokenStore(rdb)

	userService := service.NewUserService(userRepo, ratingRepo, log)
	tokenService := service.NewTokenService(userRepo, tokenStore, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, log)
	userHandler := handler.NewUserHandler(userService)

	auth := middleware.Auth(cfg.JWTSecret)
	admin := middleware.RBAC(string(domain.RoleAdmin))

	// --- User routes ---
	users := e.Group("/api/v1/users")
	users.GET("/me", userHandler.GetMe, auth)
	users.GET("/me/videos/:videoId/rating", userHandler.GetVideoRating, auth, middleware.VideoRatingValidator())
	users.GET("", userHandler.List,
		middleware.PaginationValidator(), middleware.SortValidator(),
		middleware.ResolveUsersSort(), middleware.ResolvePagination())
	users.POST("", userHandler.Create, auth, admin, middleware.AddUserValidator())
	users.POST("/register", userHandler.Register, middleware.Signup(cfg.SignupEnabled), middleware.AddUserValidator())
	users.PUT("/:id", userHandler.Update, auth, middleware.UpdateUserValidator())
	users.DELETE("/:id", userHandler.Remove, auth, admin, middleware.RemoveUserValidator())
	users.POST("/token", handler.TokenSuccess, middleware.TokenGrant(tokenService))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
