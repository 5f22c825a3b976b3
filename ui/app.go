package ui

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Nitesh1413/ai-data-cleaner/internal/errors"
	"github.com/Nitesh1413/ai-data-cleaner/internal/profiling"
	"github.com/Nitesh1413/ai-data-cleaner/internal/store"
	"github.com/Nitesh1413/ai-data-cleaner/ports"
)

// App represents the HTTP application
type App struct {
	router         *chi.Mux
	store          *store.DatasetStore
	profiler       *profiling.Profiler
	insights       ports.InsightGenerator
	maxUploadBytes int64
}

// Config holds HTTP application configuration
type Config struct {
	Port        string
	MaxUploadMB int64
}

// NewApp creates a new HTTP application
func NewApp(cfg Config, profiler *profiling.Profiler, insights ports.InsightGenerator) *App {
	app := &App{
		router:         chi.NewRouter(),
		store:          store.NewDatasetStore(),
		profiler:       profiler,
		insights:       insights,
		maxUploadBytes: cfg.MaxUploadMB * 1024 * 1024,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app
}

func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

func (a *App) setupRoutes() {
	a.router.Route("/api/datasets", func(r chi.Router) {
		r.Post("/", a.handleUpload)
		r.Get("/", a.handleList)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/report", a.handleReport)
			r.Get("/report.html", a.handleReportHTML)
			r.Get("/columns/{name}", a.handleColumnProfile)
			r.Post("/columns/{name}/insights", a.handleColumnInsights)
			r.Post("/transform", a.handleTransform)
			r.Delete("/", a.handleDelete)
		})
	})

	a.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

// Handler exposes the router for serving and tests
func (a *App) Handler() http.Handler {
	return a.router
}

// Serve starts the HTTP server
func (a *App) Serve(port string) error {
	log.Printf("[App] listening on :%s", port)
	return http.ListenAndServe(":"+port, a.router)
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[App] failed to encode response: %v", err)
	}
}

// respondError maps application errors to HTTP status codes
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeNotFound:
		status = http.StatusNotFound
	case errors.CodeInvalidInput:
		status = http.StatusBadRequest
	case errors.CodeExternalService:
		status = http.StatusBadGateway
	case errors.CodeConfigInvalid:
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, map[string]string{"error": err.Error()})
}
