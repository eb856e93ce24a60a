package server

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"

	"empreg/internal/domain/registry"
	"empreg/internal/domain/reports"
	"empreg/internal/platform/config"
	"empreg/internal/platform/metrics"
	"empreg/internal/transport/http/api"
	recordhandler "empreg/internal/transport/http/handlers/records"
	reporthandler "empreg/internal/transport/http/handlers/reports"
	"empreg/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	store := registry.NewStore()
	if cfg.RunSeed {
		if n := registry.Seed(store); n > 0 {
			log.Printf("seeded %d demo records", n)
		}
	}

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.New()
	}

	router := NewRouter(cfg, store, collector)

	log.Printf("employee registry listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// NewRouter assembles the full middleware chain and route table.
func NewRouter(cfg config.Config, store *registry.Store, collector *metrics.Collector) http.Handler {
	reportService := reports.NewService(store)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recover)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.Metrics(collector))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if collector != nil {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			active, archived := store.Counts()
			snapshot := collector.Snapshot()
			snapshot["recordsActive"] = active
			snapshot["recordsArchived"] = archived
			api.Success(w, snapshot, middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(600, time.Minute))

		recordHandler := recordhandler.NewHandler(store, cfg.MaxAttachmentBytes, cfg.DefaultPageSize)
		recordHandler.RegisterRoutes(r)

		reportHandler := reporthandler.NewHandler(reportService)
		reportHandler.RegisterRoutes(r)
	})

	router.Mount("/", spaHandler{staticPath: cfg.FrontendDir, indexPath: "index.html"})
	return router
}

type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.staticPath, r.URL.Path)
	_, err := os.Stat(path)
	if err == nil {
		http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
		return
	}

	if os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}

	http.NotFound(w, r)
}
