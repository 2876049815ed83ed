// Package server provides the HTTP server for the school activity signup API.
//
// The server exposes a small JSON API to list extracurricular activities and
// let students register or unregister by email, plus the embedded web UI.
//
// # Endpoints
//
//   - GET / - 307 redirect to the web UI
//   - GET /static/ - Web UI assets
//   - GET /activities - All activities with their rosters
//   - POST /activities/{activity}/signup - Sign a student up (email query param)
//   - DELETE /activities/{activity}/unregister - Remove a student (email query param)
//   - GET /healthz - Simple health check, returns "ok"
//   - GET /metrics - Prometheus scrape endpoint
//   - GET /config - Returns current configuration as YAML
//   - POST /reload - Reloads configuration from disk
//
// # Architecture
//
// The activity registry is created once at startup from the seed file (or the
// built-in default set) and lives for the life of the process. Config reloads
// swap the config snapshot atomically but never reseed rosters; listener
// settings take effect on restart.
//
// # Example
//
//	srv, err := server.New("/etc/activityserver/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server

import (
	"context"
	"crypto/tls"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/mergington/activityserver/buildinfo"
	"github.com/mergington/activityserver/config"
	"github.com/mergington/activityserver/logging"
	"github.com/mergington/activityserver/metrics"
	"github.com/mergington/activityserver/registry"
	"github.com/mergington/activityserver/server/cron"
	"github.com/mergington/activityserver/server/handlers"
	"github.com/mergington/activityserver/server/report"
)

//go:embed static
var staticFiles embed.FS

const (
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 10 * time.Second
	defaultShutdownTimeout = 5 * time.Second
)

// serverDeps holds config-derived dependencies that are swapped atomically on reload.
type serverDeps struct {
	config *config.Config
}

// Server is the HTTP server for the activity signup API.
type Server struct {
	configPath string
	logger     *slog.Logger
	deps       atomic.Pointer[serverDeps]
	registry   *registry.Registry
	scrape     *metrics.ScrapeRegistry
	recorder   *metrics.Recorder
	reporter   *report.Reporter
	trigger    *cron.Trigger
	httpServer *http.Server
}

// Option configures a Server.
type Option func(*Server) error

// WithLogger overrides the logger built from the config file.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		s.logger = logger
		return nil
	}
}

// WithSeed overrides the activity seed, bypassing the seed file.
func WithSeed(seed map[string]registry.Activity) Option {
	return func(s *Server) error {
		s.registry = registry.New(seed)
		return nil
	}
}

// New creates a new Server from the config file at the given path.
// It loads the configuration, seeds the activity registry, and initializes
// all dependencies.
func New(configPath string, opts ...Option) (*Server, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, err
	}

	s := &Server{
		configPath: configPath,
		logger:     logger,
	}
	s.deps.Store(&serverDeps{config: cfg})

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if s.registry == nil {
		seed := registry.DefaultSeed()
		if cfg.SeedFile != "" {
			if seed, err = registry.LoadSeed(cfg.SeedFile); err != nil {
				return nil, err
			}
		}
		s.registry = registry.New(seed)
	}

	if err := s.initMetrics(cfg); err != nil {
		return nil, err
	}

	if cfg.Report.Enabled {
		trigger, err := cron.NewTrigger(cfg.Report.Schedule, s.reporter, s.logger)
		if err != nil {
			return nil, fmt.Errorf("creating report trigger: %w", err)
		}
		s.trigger = trigger
	}

	return s, nil
}

// initMetrics sets up the scrape registry, the request recorder, and the
// roster reporter (with a push recorder when remote write is configured).
func (s *Server) initMetrics(cfg *config.Config) error {
	scrape, err := metrics.NewScrapeRegistry()
	if err != nil {
		return err
	}
	recorder, err := metrics.NewRecorder(scrape)
	if err != nil {
		return err
	}
	s.scrape = scrape
	s.recorder = recorder

	recorders := []*metrics.Recorder{recorder}
	if cfg.Monitoring.VictoriaMetricsURL != "" {
		push := metrics.NewPushRegistry(metrics.PushConfig{
			URL:    cfg.Monitoring.VictoriaMetricsURL,
			Prefix: cfg.Monitoring.MetricsPrefix,
			Job:    cfg.Monitoring.JobName,
		})
		pushRecorder, err := metrics.NewRecorder(push)
		if err != nil {
			return err
		}
		recorders = append(recorders, pushRecorder)
	}

	s.reporter = report.NewReporter(s.registry, s.logger, recorders...)
	return nil
}

// Logger returns the server's logger.
func (s *Server) Logger() *slog.Logger {
	return s.logger
}

// Config returns the current configuration.
func (s *Server) Config() *config.Config {
	return s.deps.Load().config
}

// Registry returns the activity registry.
func (s *Server) Registry() *registry.Registry {
	return s.registry
}

// Reload reads the config from disk and swaps the config snapshot.
// Rosters are never reseeded; listener changes take effect on restart.
func (s *Server) Reload() error {
	cfg, err := config.LoadConfig(s.configPath)
	if err != nil {
		return err
	}

	s.deps.Store(&serverDeps{config: cfg})
	s.logger.Info("configuration loaded", "config_path", s.configPath)

	return nil
}

// NextReport returns the next scheduled report time, or nil if no report
// schedule is configured.
func (s *Server) NextReport() *time.Time {
	if s.trigger == nil {
		return nil
	}
	next := s.trigger.NextRun()
	return &next
}

// Run starts the HTTP server and blocks until the context is cancelled.
// It performs a graceful shutdown when the context is done.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	s.registerRoutes(mux)

	cfg := s.Config()
	s.httpServer = &http.Server{
		Addr:         cfg.Listener.Addr,
		Handler:      handlers.Logging(s.logger, mux),
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
	}

	// Prime the roster gauges before serving traffic.
	if err := s.reporter.Run(); err != nil {
		s.logger.Warn("initial roster report failed", "error", err)
	}

	if s.trigger != nil {
		s.logger.Info("starting report trigger",
			"next_run", s.trigger.NextRun(),
		)
		s.trigger.Start(ctx)
	}

	serve := s.httpServer.ListenAndServe
	if tlsCfg := cfg.Listener.TLS; tlsCfg != nil {
		loader, err := NewCertLoader(tlsCfg.CertFile, tlsCfg.KeyFile, s.logger)
		if err != nil {
			return err
		}
		s.httpServer.TLSConfig = &tls.Config{GetCertificate: loader.GetCertificate}
		serve = func() error { return s.httpServer.ListenAndServeTLS("", "") }
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server",
			"addr", cfg.Listener.Addr,
			"config_path", s.configPath,
			"version", buildinfo.Get().Version,
		)
		if err := serve(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	activitiesHandler := handlers.NewActivitiesHandler(s.registry)
	signupHandler := handlers.NewSignupHandler(s.logger, s.registry, s.recorder)
	unregisterHandler := handlers.NewUnregisterHandler(s.logger, s.registry, s.recorder)
	configHandler := handlers.NewConfigHandler(s)
	reloadHandler := handlers.NewReloadHandler(s.logger, s)

	// API endpoints
	mux.Handle("GET /activities", activitiesHandler)
	mux.Handle("POST /activities/{activity}/signup", signupHandler)
	mux.Handle("DELETE /activities/{activity}/unregister", unregisterHandler)
	mux.HandleFunc("GET /healthz", handlers.HandleHealth)
	mux.Handle("GET /metrics", s.scrape.Handler())
	mux.Handle("GET /config", configHandler)
	mux.Handle("POST /reload", reloadHandler)

	// Web UI
	mux.HandleFunc("GET /{$}", handleRoot)
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		s.logger.Error("failed to create static file system", "error", err)
		return
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
}

// handleRoot redirects the bare root to the web UI entry page.
func handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}
