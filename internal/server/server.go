package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/yigit/egresados/internal/bootstrap"
	"github.com/yigit/egresados/internal/config"
	"github.com/yigit/egresados/internal/pkg/filestorage"
	"github.com/yigit/egresados/internal/pkg/helpers"
)

// Upload categories exposed under filestorage.URLPrefix.
var servedCategories = []filestorage.Category{
	filestorage.CategoryCertificates,
	filestorage.CategoryProfilePhotos,
	filestorage.CategoryNews,
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds the state for the HTTP server.
type Server struct {
	config *config.Config
	router *gin.Engine
	dbPool *pgxpool.Pool
	logger zerolog.Logger
	http   *http.Server
}

// NewServer wires configuration, database, dependencies and routes.
func NewServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(cfg, dbPool, lgr)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	router := bootstrap.SetupRouter(cfg, deps, lgr)
	if err := serveUploads(router, cfg.Server.StoragePath, lgr); err != nil {
		dbPool.Close()
		return nil, err
	}
	router.GET("/ready", readiness(dbPool, 2*time.Second))

	return &Server{
		config: cfg,
		router: router,
		dbPool: dbPool,
		logger: lgr,
	}, nil
}

// serveUploads creates one directory per upload category and serves each of them read-only.
// Anything else under the storage root stays private.
func serveUploads(router gin.IRoutes, root string, lgr zerolog.Logger) error {
	for _, category := range servedCategories {
		dir := filepath.Join(root, string(category))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s upload directory: %w", category, err)
		}
		router.Static(filestorage.URLPrefix+"/"+string(category), dir)
	}
	lgr.Info().Str("path", root).Int("categories", len(servedCategories)).Msg("Upload directories served")
	return nil
}

// readiness answers 200 while the database responds within timeout, 503 otherwise.
func readiness(db Pinger, timeout time.Duration) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), timeout)
		defer cancel()

		if err := db.Ping(pingCtx); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}

// newHTTPServer applies the configured timeouts. The write timeout is the report render
// budget plus ten seconds.
func newHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	renderTimeout := helpers.ParseDuration(cfg.Reports.RenderTimeout, time.Minute)
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  helpers.ParseDuration(cfg.Server.ReadTimeout, 30*time.Second),
		WriteTimeout: renderTimeout + 10*time.Second,
		IdleTimeout:  helpers.ParseDuration(cfg.Server.IdleTimeout, 2*time.Minute),
	}
}

// Run serves until the listener fails or SIGINT/SIGTERM arrives, then shuts down.
func (s *Server) Run() error {
	s.http = newHTTPServer(s.config, s.router)

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Dur("writeTimeout", s.http.WriteTimeout).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
	}

	return s.Shutdown(context.Background())
}

// Shutdown drains in-flight requests within the configured shutdown timeout and closes the pool.
func (s *Server) Shutdown(ctx context.Context) error {
	timeout := helpers.ParseDuration(s.config.Server.ShutdownTimeout, 15*time.Second)
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var shutdownErr error
	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Dur("timeout", timeout).Msg("HTTP server shutdown error")
			shutdownErr = fmt.Errorf("http shutdown: %w", err)
		}
	}

	if s.dbPool != nil {
		s.dbPool.Close()
	}

	s.logger.Info().Bool("clean", shutdownErr == nil).Msg("Server stopped")
	return shutdownErr
}
