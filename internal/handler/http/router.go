package http

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/breakdesk/breakdesk-backend-go/internal/config"
	"github.com/breakdesk/breakdesk-backend-go/internal/domain/registry"
	"github.com/breakdesk/breakdesk-backend-go/internal/handler/http/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	cfg *config.Config,
	registryService registry.Service,
	authHandler AuthHandler,
	registryHandler RegistryHandler,
	timerHandler TimerHandler,
	analyticsHandler AnalyticsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "breakdesk"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:8080"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Employee-ID"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writePingMessage(w)
	})
	r.Get("/api/demo", func(w http.ResponseWriter, r *http.Request) {
		writeDemoMessage(w)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/verify-pin", authHandler.VerifyPIN)
		})

		r.Route("/timer", func(r chi.Router) {
			r.Get("/", timerHandler.Status)
			r.Post("/select", timerHandler.Select)
			r.Post("/start", timerHandler.Start)
			r.Post("/pause", timerHandler.Pause)
			r.Post("/resume", timerHandler.Resume)
			r.Post("/stop", timerHandler.Stop)
			r.Post("/reset", timerHandler.Reset)
		})

		// Admin only
		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminOnly(registryService))

			r.Route("/registry", func(r chi.Router) {
				r.Get("/", registryHandler.ListTeams)
				r.Post("/employees", registryHandler.AddEmployee)
				r.Delete("/employees/{id}", registryHandler.DeleteEmployee)
				r.Put("/employees/{id}/pin", registryHandler.SetPIN)
			})

			r.Route("/analytics", func(r chi.Router) {
				r.Get("/summary", analyticsHandler.Summary)
				r.Get("/export", analyticsHandler.Export)
			})
		})
	})

	// Unmatched API routes answer JSON, not the SPA fallback.
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		if strings.HasPrefix(req.URL.Path, "/api/") {
			writeAPINotFound(w)
			return
		}
		serveSPA(cfg.App.StaticDir, w, req)
	})

	return r
}

func writePingMessage(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"message":"Hello from Express server v2!"}`))
}

func writeDemoMessage(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"message":"Hello from the server"}`))
}

func writeAPINotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(`{"error":"API endpoint not found"}`))
}

// serveSPA serves the built frontend. Existing files are served as-is;
// everything else falls back to index.html so client-side routing works.
func serveSPA(staticDir string, w http.ResponseWriter, r *http.Request) {
	if staticDir == "" {
		http.NotFound(w, r)
		return
	}

	requested := filepath.Join(staticDir, filepath.Clean("/"+r.URL.Path))
	if info, err := os.Stat(requested); err == nil && !info.IsDir() {
		http.ServeFile(w, r, requested)
		return
	}

	index := filepath.Join(staticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, index)
}
