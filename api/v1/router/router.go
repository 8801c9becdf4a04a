package router

import (
	"context"
	"net/http"
	"time"

	"github.com/GHutch55/exlog/api/v1/database"
	"github.com/GHutch55/exlog/api/v1/handlers"
	"github.com/GHutch55/exlog/api/v1/middleware"
	"github.com/GHutch55/exlog/config"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/heptiolabs/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const (
	readinessTimeout   = time.Second
	goroutineThreshold = 1000
)

// Deps is everything the route table needs from the outside.
type Deps struct {
	DB     database.Pool
	Config *config.Config
	Logger zerolog.Logger
}

func New(deps Deps) http.Handler {
	cfg := deps.Config

	userHandler := &handlers.UserHandler{DB: deps.DB, ReportConflicts: cfg.API.ReportConflicts}
	exerciseHandler := &handlers.ExerciseHandler{DB: deps.DB}

	health := healthcheck.NewHandler()
	health.AddLivenessCheck("goroutine-threshold", healthcheck.GoroutineCountCheck(goroutineThreshold))
	health.AddReadinessCheck("database", databasePingCheck(deps.DB, readinessTimeout))

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Metrics)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.NotFound(handlers.NotFound)

	r.Get("/", handlers.HomeHandler)
	r.Get("/health", handlers.HealthHandler(deps.DB))
	r.Get("/live", health.LiveEndpoint)
	r.Get("/ready", health.ReadyEndpoint)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		if cfg.RateLimit.Enabled {
			r.Use(httprate.LimitByIP(cfg.RateLimit.Requests, cfg.RateLimit.Window))
		}

		r.Get("/", handlers.ApiInfoHandler)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.ListUsers)
			r.Post("/", userHandler.CreateUser)

			r.Get("/{id}/logs", exerciseHandler.GetLog)
			r.Post("/{id}/exercises", exerciseHandler.CreateExercise)
		})
	})

	return r
}

func databasePingCheck(db database.Pool, timeout time.Duration) healthcheck.Check {
	return func() error {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return db.Ping(ctx)
	}
}
