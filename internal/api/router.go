package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/registrydesk/object-service/internal/api/handler"
	"github.com/registrydesk/object-service/internal/api/middleware"
	"github.com/registrydesk/object-service/internal/core/domain"
	"github.com/registrydesk/object-service/internal/core/ports"
)

// Per-IP budget for POST /token.
const (
	tokenRateLimit = rate.Limit(1)
	tokenRateBurst = 5
)

// Dependencies carries everything the router needs. Services are interfaces
// so tests can drop in stubs; db and rdb feed the readiness probe and may be
// nil in tests.
type Dependencies struct {
	Auth      ports.AuthService
	Verifier  ports.TokenVerifier
	Objects   ports.ObjectService
	Tasks     ports.TaskService
	Employees ports.EmployeeService
	Stats     ports.StatsService
	DB        *sql.DB
	Redis     *redis.Client
	Logger    zerolog.Logger
	// Registry overrides the default Prometheus registry. Tests building
	// multiple routers must supply their own to avoid duplicate registration.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())

	registerer := prometheus.Registerer(prometheus.DefaultRegisterer)
	gatherer := prometheus.Gatherer(prometheus.DefaultGatherer)
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "objectapi",
		Registerer: registerer,
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	objectHandler := handler.NewObjectHandler(deps.Objects)
	taskHandler := handler.NewTaskHandler(deps.Tasks)
	employeeHandler := handler.NewEmployeeHandler(deps.Employees)
	statsHandler := handler.NewStatsHandler(deps.Stats)
	healthHandler := handler.NewHealthHandler(deps.DB, deps.Redis)
	miscHandler := handler.NewMiscHandler()

	// --- Public routes ---
	e.GET("/", miscHandler.Root)
	e.POST("/echo", miscHandler.Echo)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: gatherer,
	}))

	tokenLimiter := middleware.NewRateLimiter(tokenRateLimit, tokenRateBurst)
	e.POST("/token", authHandler.Token, tokenLimiter.Middleware())

	// --- Protected routes ---
	auth := middleware.Auth(deps.Verifier)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	objects := e.Group("/objects", auth)
	objects.GET("", objectHandler.List)
	objects.POST("", objectHandler.Create)
	objects.GET("/:id", objectHandler.Get)
	objects.PUT("/:id", objectHandler.Replace)
	objects.PATCH("/:id", objectHandler.Patch)
	objects.DELETE("/:id", objectHandler.Delete)
	objects.GET("/:id/profile", objectHandler.Profile)

	tasks := e.Group("/tasks", auth)
	tasks.GET("", taskHandler.List)
	tasks.POST("", taskHandler.Create)
	tasks.GET("/:id", taskHandler.Get)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)

	employees := e.Group("/employees", auth)
	employees.GET("", employeeHandler.List)
	employees.POST("", employeeHandler.CreateBatch, adminOnly)
	employees.GET("/:id", employeeHandler.Get)
	employees.GET("/stores/:store_id", employeeHandler.ListByStore)

	e.GET("/stats", statsHandler.Get, auth, adminOnly)

	return e
}
