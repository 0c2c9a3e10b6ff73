package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/pulsepoint/wellness-api/docs"
	"github.com/pulsepoint/wellness-api/internal/api/handler"
	"github.com/pulsepoint/wellness-api/internal/api/middleware"
	"github.com/pulsepoint/wellness-api/internal/core/domain"
	"github.com/pulsepoint/wellness-api/internal/core/ports"
	"github.com/pulsepoint/wellness-api/internal/infrastructure/http/handlers"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Auth       ports.AuthService
	Entries    ports.EntryService
	Stats      ports.StatsService
	Workplaces ports.WorkplaceService
	Tokens     middleware.TokenVerifier
	// Readiness maps a dependency name to its probe, e.g. "postgres", "redis".
	Readiness  map[string]handlers.Pinger
	CORSOrigin string
	Log        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{d.CORSOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
			handler.HeaderIdempotencyKey,
		},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("pulsepoint"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth)
	userHandler := handler.NewUserHandler(d.Auth)
	entryHandler := handler.NewEntryHandler(d.Entries, d.Stats)
	workplaceHandler := handler.NewWorkplaceHandler(d.Workplaces)
	requireAuth := middleware.Auth(d.Tokens)

	api := e.Group("/api")

	// --- Auth routes ---
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/me", authHandler.Me, requireAuth)

	// --- Health entries ---
	entries := api.Group("/healthentries", requireAuth)
	entries.GET("", entryHandler.List)
	entries.POST("", entryHandler.Create)
	entries.GET("/stats/daily", entryHandler.DailyStats, middleware.RBAC(domain.RoleManager))
	entries.GET("/:id", entryHandler.Get)
	entries.PUT("/:id", entryHandler.Update)
	entries.DELETE("/:id", entryHandler.Delete)

	// --- Workplaces: reads are public for the registration form ---
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	workplaces := api.Group("/workplaces")
	workplaces.GET("", workplaceHandler.List)
	workplaces.GET("/:id", workplaceHandler.Get)
	workplaces.POST("", workplaceHandler.Create, requireAuth, adminOnly)
	workplaces.PUT("/:id", workplaceHandler.Update, requireAuth, adminOnly)
	workplaces.DELETE("/:id", workplaceHandler.Delete, requireAuth, adminOnly)

	// --- User administration ---
	api.POST("/users/:id/roles", userHandler.GrantRole, requireAuth, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	readinessHandler := handlers.NewReadinessHandler(d.Readiness)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger writes one zerolog record per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
