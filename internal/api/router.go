package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/solagora/agentmarket/internal/api/handlers"
	mw "github.com/solagora/agentmarket/internal/api/middleware"
	"github.com/solagora/agentmarket/internal/buildconfig"
	"github.com/solagora/agentmarket/internal/config"
	"github.com/solagora/agentmarket/internal/domain"
	"github.com/solagora/agentmarket/internal/service"
	"github.com/solagora/agentmarket/internal/store"
	"go.uber.org/zap"
)

// App bundles the router with runtime counters for /metrics.
type App struct {
	Router       *chi.Mux
	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

// NewApp wires the agent store into the service and handlers and
// builds the middleware chain.
func NewApp(agents domain.AgentStore, logger *zap.Logger) *App {
	agentSvc := service.NewAgentService(agents, logger)
	agentHandler := handlers.NewAgentHandler(agentSvc)

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		startTime: time.Now(),
	}

	metricsCollector := mw.NewMetricsCollector(&app.requestCount, &app.errorCount)

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metricsCollector.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst()))

	r.Get("/health", healthHandler(agentSvc))
	r.Get("/metrics", app.metricsHandler(agentSvc))

	r.Route("/api", func(r chi.Router) {
		r.Route("/agents", func(r chi.Router) {
			r.Get("/", agentHandler.List)
			r.Post("/", agentHandler.Create)
		})
	})

	return app
}

// NewRouter returns just the chi.Mux.
func NewRouter(agents domain.AgentStore, logger *zap.Logger) *chi.Mux {
	return NewApp(agents, logger).Router
}

func healthHandler(svc *service.AgentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := svc.Count(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
			return
		}
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok", "version": buildconfig.Version()})
	}
}

func (app *App) metricsHandler(svc *service.AgentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)
		agentCount, _ := svc.Count(r.Context())

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.requestCount.Load(),
			"error_count":    app.errorCount.Load(),
			"agent_count":    agentCount,
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb": float64(memStats.Alloc) / 1024 / 1024,
				"sys_mb":   float64(memStats.Sys) / 1024 / 1024,
				"num_gc":   memStats.NumGC,
			},
			"go_version": runtime.Version(),
			"version":    buildconfig.VersionInfo(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Compile-time checks that every store variant satisfies the
// directory interface.
var (
	_ domain.AgentStore = (*store.AgentStore)(nil)
	_ domain.AgentStore = (*store.SQLiteAgentStore)(nil)
	_ domain.AgentStore = (*store.CachedAgentStore)(nil)
)
