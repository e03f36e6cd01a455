package server

import (
	"context"
	"log/slog"
	"net/http"

	appplayers "github.com/preston-bernstein/nba-props-service/internal/app/players"
	apppicks "github.com/preston-bernstein/nba-props-service/internal/app/picks"
	appteams "github.com/preston-bernstein/nba-props-service/internal/app/teams"
	"github.com/preston-bernstein/nba-props-service/internal/config"
	httpserver "github.com/preston-bernstein/nba-props-service/internal/http"
	"github.com/preston-bernstein/nba-props-service/internal/http/handlers"
	"github.com/preston-bernstein/nba-props-service/internal/http/middleware"
	"github.com/preston-bernstein/nba-props-service/internal/logging"
	"github.com/preston-bernstein/nba-props-service/internal/mcptools"
	"github.com/preston-bernstein/nba-props-service/internal/metrics"
	"github.com/preston-bernstein/nba-props-service/internal/providers"
	"github.com/preston-bernstein/nba-props-service/internal/store"
)

// Version is reported in logs and by the MCP server.
var Version = "dev"

var metricsSetup = metrics.Setup

type Server struct {
	cfg            config.Config
	logger         *slog.Logger
	metrics        *metrics.Recorder
	store          *store.MemoryStore
	playersService *appplayers.Service
	teamsService   *appteams.Service
	picksService   *apppicks.Service
	httpServer     httpServer
	metricsServer  httpServer
	metricsStop    func(context.Context) error
}

// New selects the configured data source, loads both tables and wires the
// HTTP surface. A failed load is returned as a *providers.DataLoadError.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(ctx, cfg, logger, nil, nil)
}

func newServerWithProvider(ctx context.Context, cfg config.Config, logger *slog.Logger, provider providers.DataProvider) (*Server, error) {
	return newServerWithMetrics(ctx, cfg, logger, provider, nil)
}

func newServerWithMetrics(ctx context.Context, cfg config.Config, logger *slog.Logger, provider providers.DataProvider, recorder *metrics.Recorder) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)
	factory := newProviderFactory(logger, recorder)

	var src dataSource
	if provider == nil {
		var err error
		if src, err = factory.build(cfg.Data); err != nil {
			stopMetrics(metricsShutdown)
			return nil, err
		}
	} else {
		src = dataSource{name: cfg.Data.Source, provider: factory.wrap(cfg.Data.Source, provider)}
	}

	memoryStore, playerSvc, teamSvc, pickSvc := buildServices(recorder)
	err := loadTables(ctx, src.provider, playerSvc, teamSvc, cfg.Data.LoadTimeout, logger)
	if src.close != nil {
		if cerr := src.close(); cerr != nil {
			logger.Warn("data source close failed", "error", cerr)
		}
	}
	if err != nil {
		stopMetrics(metricsShutdown)
		return nil, err
	}
	memoryStore.MarkLoaded()

	httpSrv := buildHTTPServer(cfg, memoryStore, playerSvc, teamSvc, pickSvc, logger, recorder)

	return &Server{
		cfg:            cfg,
		logger:         logger,
		metrics:        recorder,
		store:          memoryStore,
		playersService: playerSvc,
		teamsService:   teamSvc,
		picksService:   pickSvc,
		httpServer:     httpSrv,
		metricsServer:  metricsSrv,
		metricsStop:    metricsShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
	}
}

func buildServices(recorder *metrics.Recorder) (*store.MemoryStore, *appplayers.Service, *appteams.Service, *apppicks.Service) {
	memoryStore := store.NewMemoryStore()
	playerSvc := appplayers.NewService(memoryStore)
	teamSvc := appteams.NewService(memoryStore)
	return memoryStore, playerSvc, teamSvc, apppicks.NewService(playerSvc, teamSvc, recorder)
}

func buildHTTPServer(cfg config.Config, memoryStore *store.MemoryStore, playerSvc *appplayers.Service, teamSvc *appteams.Service, pickSvc *apppicks.Service, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(playerSvc, teamSvc, pickSvc, memoryStore.Loaded, logger)

	var mcpHandler http.Handler
	if cfg.MCP.Enabled {
		mcpHandler = mcptools.NewHandler(mcptools.NewServer(playerSvc, teamSvc, pickSvc, Version, logger))
	}
	router := httpserver.NewRouter(handler, mcpHandler, cfg.MCP.Path)
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP and metrics servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func stopMetrics(shutdown func(context.Context) error) {
	if shutdown == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	_ = shutdown(ctx)
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
