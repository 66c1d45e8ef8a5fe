// Package server wires configuration, providers, services, and the HTTP
// surface into one runnable unit with graceful shutdown.
package server

import (
	"context"
	"log/slog"
	"net/http"

	appgames "nba-companion-service/internal/app/games"
	appnews "nba-companion-service/internal/app/news"
	apprefresh "nba-companion-service/internal/app/refresh"
	appschedule "nba-companion-service/internal/app/schedule"
	appteams "nba-companion-service/internal/app/teams"
	"nba-companion-service/internal/config"
	httpserver "nba-companion-service/internal/http"
	"nba-companion-service/internal/http/handlers"
	"nba-companion-service/internal/metrics"
	"nba-companion-service/internal/poller"
	"nba-companion-service/internal/providers"
	"nba-companion-service/internal/store"
)

var metricsSetup = metrics.Setup

// Server owns the component graph and its lifecycle.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	providers     providerSet
	poller        *poller.Poller
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a fully wired server from configuration.
func New(cfg config.Config, logger *slog.Logger) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	set := buildProviders(cfg, logger, recorder)
	memoryStore := store.NewMemoryStore()

	refreshSvc := apprefresh.NewService(set.scoreboard, set.odds, set.teams, set.news, memoryStore, logger, recorder)
	scheduleSvc := appschedule.NewService(set.dated, logger, recorder)
	scheduleSvc.SetLocation(providers.ResolveTimezone(cfg.Schedule.Timezone))
	plr := poller.New(refreshSvc, logger, recorder, cfg.PollInterval)

	handler := handlers.New(handlers.Config{
		Games:      appgames.NewService(memoryStore),
		Teams:      appteams.NewService(memoryStore),
		News:       appnews.NewService(memoryStore),
		Schedule:   scheduleSvc,
		Roster:     set.roster,
		Readiness:  plr,
		DaysBefore: cfg.Schedule.DaysBefore,
		DaysAfter:  cfg.Schedule.DaysAfter,
		Logger:     logger,
	})

	router := httpserver.NewRouter(httpserver.RouterConfig{
		Handler: handler,
		Logger:  logger,
		Metrics: recorder,
	})

	return &Server{
		cfg:       cfg,
		logger:    logger,
		metrics:   recorder,
		store:     memoryStore,
		providers: set,
		poller:    plr,
		httpServer: netHTTPServer{srv: &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      router,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		}},
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// Run starts the poller and HTTP servers, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

func (s *Server) startServer(stop context.CancelFunc) {
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

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop poller", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	// Rate-limited providers carry a pacing ticker that needs stopping.
	if closer, ok := s.providers.dated.(interface{ Close() }); ok {
		closer.Close()
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
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
			logger.Warn("metrics setup failed, continuing without telemetry", "error", err)
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
