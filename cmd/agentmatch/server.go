package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kickai/agentmatch/api/handlers"
	"github.com/kickai/agentmatch/capability"
	"github.com/kickai/agentmatch/config"
	"github.com/kickai/agentmatch/internal/metrics"
	"github.com/kickai/agentmatch/internal/server"
	"github.com/kickai/agentmatch/internal/telemetry"
	"github.com/kickai/agentmatch/presence"
	"github.com/kickai/agentmatch/routing"
)

// Server wires the capability manager, router, presence store and HTTP
// listeners together.
type Server struct {
	cfg    *config.Config
	logger *zap.Logger

	httpManager    *server.Manager
	metricsManager *server.Manager

	manager *capability.Manager
	router  *routing.Router
	store   presence.Store

	healthHandler     *handlers.HealthHandler
	capabilityHandler *handlers.CapabilityHandler
	routeHandler      *handlers.RouteHandler
	presenceHandler   *handlers.PresenceHandler

	collector     *metrics.Collector
	otelProviders *telemetry.Providers

	rateLimiterCancel context.CancelFunc
}

// NewServer creates an unstarted Server.
func NewServer(cfg *config.Config, logger *zap.Logger, otelProviders *telemetry.Providers) *Server {
	return &Server{
		cfg:           cfg,
		logger:        logger,
		otelProviders: otelProviders,
	}
}

// Start initializes every component and brings up the listeners.
func (s *Server) Start() error {
	if s.cfg.Metrics.Enabled {
		s.collector = metrics.NewCollector(s.cfg.Metrics.Namespace, s.logger)
	}

	if err := s.initCapabilities(); err != nil {
		return fmt.Errorf("init capabilities: %w", err)
	}
	if err := s.initPresence(); err != nil {
		return fmt.Errorf("init presence: %w", err)
	}
	if err := s.initRouter(); err != nil {
		return fmt.Errorf("init router: %w", err)
	}
	s.initHandlers()

	if err := s.startHTTPServer(); err != nil {
		return fmt.Errorf("start HTTP server: %w", err)
	}
	if s.cfg.Metrics.Enabled {
		if err := s.startMetricsServer(); err != nil {
			return fmt.Errorf("start metrics server: %w", err)
		}
	}

	s.logger.Info("all servers started",
		zap.String("addr", s.cfg.Server.Addr),
		zap.String("metrics_addr", s.cfg.Server.MetricsAddr),
		zap.String("presence_backend", s.cfg.Presence.Backend),
	)
	return nil
}

// initCapabilities builds the capability manager from the configured
// catalog file, or the compiled-in tables when no file is set.
func (s *Server) initCapabilities() error {
	catalog := capability.DefaultCatalog()
	matrix := capability.DefaultMatrix()

	if path := s.cfg.Routing.CatalogPath; path != "" {
		file, err := capability.LoadCatalogFile(path)
		if err != nil {
			return fmt.Errorf("load catalog %s: %w", path, err)
		}
		catalog = file.Catalog()
		matrix = file.Matrix()
		s.logger.Info("loaded capability catalog", zap.String("path", path))
	}

	manager, err := capability.NewManager(catalog, matrix, s.logger)
	if err != nil {
		return err
	}
	s.manager = manager
	return nil
}

func (s *Server) initPresence() error {
	switch s.cfg.Presence.Backend {
	case "redis":
		redisCfg := presence.RedisConfig{
			Addr:       s.cfg.Presence.Redis.Addr,
			Password:   s.cfg.Presence.Redis.Password,
			DB:         s.cfg.Presence.Redis.DB,
			KeyPrefix:  s.cfg.Presence.Redis.KeyPrefix,
			MaxRetries: s.cfg.Presence.Redis.MaxRetries,
			PoolSize:   s.cfg.Presence.Redis.PoolSize,
		}
		store, err := presence.NewRedisStore(redisCfg, s.logger)
		if err != nil {
			return fmt.Errorf("connect redis presence store: %w", err)
		}
		s.store = store
	default:
		s.store = presence.NewMemoryStore(s.logger)
	}
	return nil
}

// initRouter builds the router from the configured rules file, or the
// compiled-in rule table.
func (s *Server) initRouter() error {
	rules := routing.DefaultRules()
	routerCfg := routing.Config{
		FallbackRole:    capability.AgentRole(s.cfg.Routing.FallbackRole),
		MinProficiency:  s.cfg.Routing.MinProficiency,
		RequirePresence: s.cfg.Routing.RequirePresence,
	}

	if path := s.cfg.Routing.RulesPath; path != "" {
		file, err := routing.LoadRulesFile(path)
		if err != nil {
			return fmt.Errorf("load rules %s: %w", path, err)
		}
		rules = file.RuleSet()
		routerCfg = file.RouterConfig()
		s.logger.Info("loaded routing rules", zap.String("path", path), zap.Int("rules", len(rules)))
	}

	router, err := routing.NewRouter(rules, s.manager, s.store, routerCfg, s.logger)
	if err != nil {
		return err
	}
	s.router = router
	return nil
}

func (s *Server) initHandlers() {
	s.healthHandler = handlers.NewHealthHandler(s.logger)
	s.healthHandler.RegisterCheck(handlers.HealthCheckFunc{
		CheckName: "presence",
		Fn: func(ctx context.Context) error {
			_, err := s.store.Online(ctx)
			return err
		},
	})

	// The Collector satisfies the handler recorder interfaces; a nil
	// *Collector must stay a nil interface, hence the explicit checks.
	var lookupRec handlers.LookupRecorder
	var routeRec handlers.RouteRecorder
	var presenceRec handlers.PresenceRecorder
	if s.collector != nil {
		lookupRec = s.collector
		routeRec = s.collector
		presenceRec = s.collector
	}

	s.capabilityHandler = handlers.NewCapabilityHandler(s.manager, lookupRec, s.logger)
	s.routeHandler = handlers.NewRouteHandler(s.router, routeRec, s.logger)
	s.presenceHandler = handlers.NewPresenceHandler(s.store, s.manager, presenceRec, s.cfg.Presence.HeartbeatTTL, s.logger)
}

func (s *Server) startHTTPServer() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.healthHandler.HandleHealth)
	mux.HandleFunc("GET /healthz", s.healthHandler.HandleHealth)
	mux.HandleFunc("GET /ready", s.healthHandler.HandleReady)
	mux.HandleFunc("GET /readyz", s.healthHandler.HandleReady)
	mux.HandleFunc("GET /version", s.healthHandler.HandleVersion(Version, BuildTime, GitCommit))

	mux.HandleFunc("GET /api/v1/capabilities", s.capabilityHandler.HandleList)
	mux.HandleFunc("GET /api/v1/capabilities/summary", s.capabilityHandler.HandleSummary)
	mux.HandleFunc("GET /api/v1/capabilities/{type}", s.capabilityHandler.HandleGet)
	mux.HandleFunc("GET /api/v1/capabilities/{type}/hierarchy", s.capabilityHandler.HandleHierarchy)
	mux.HandleFunc("GET /api/v1/capabilities/{type}/related", s.capabilityHandler.HandleRelated)
	mux.HandleFunc("GET /api/v1/capabilities/{type}/agents", s.capabilityHandler.HandleAgents)
	mux.HandleFunc("GET /api/v1/capabilities/{type}/best-agent", s.capabilityHandler.HandleBestAgent)

	mux.HandleFunc("GET /api/v1/agents", s.capabilityHandler.HandleRoles)
	mux.HandleFunc("GET /api/v1/agents/online", s.presenceHandler.HandleOnline)
	mux.HandleFunc("GET /api/v1/agents/{role}/capabilities", s.capabilityHandler.HandleRoleCapabilities)
	mux.HandleFunc("GET /api/v1/agents/{role}/presence", s.presenceHandler.HandleStatus)
	mux.HandleFunc("POST /api/v1/agents/{role}/heartbeat", s.presenceHandler.HandleHeartbeat)

	mux.HandleFunc("POST /api/v1/route", s.routeHandler.HandleRoute)

	rateLimiterCtx, rateLimiterCancel := context.WithCancel(context.Background())
	s.rateLimiterCancel = rateLimiterCancel

	chain := []Middleware{
		Recovery(s.logger),
		RequestID(),
		SecurityHeaders(),
		RequestLogger(s.logger),
		RateLimiter(rateLimiterCtx, s.cfg.Server.RateLimitRPS, s.cfg.Server.RateLimitBurst, s.logger),
	}
	if s.cfg.Telemetry.Enabled {
		chain = append(chain, OTelTracing())
	}
	if s.collector != nil {
		chain = append(chain, MetricsMiddleware(s.collector))
	}
	handler := Chain(mux, chain...)

	serverConfig := server.Config{
		Addr:            s.cfg.Server.Addr,
		ReadTimeout:     s.cfg.Server.ReadTimeout,
		WriteTimeout:    s.cfg.Server.WriteTimeout,
		IdleTimeout:     2 * s.cfg.Server.ReadTimeout,
		MaxHeaderBytes:  1 << 20,
		ShutdownTimeout: s.cfg.Server.ShutdownTimeout,
	}

	s.httpManager = server.NewManager(handler, serverConfig, s.logger)
	if err := s.httpManager.Start(); err != nil {
		return err
	}

	s.logger.Info("HTTP server started", zap.String("addr", s.httpManager.Addr()))
	return nil
}

func (s *Server) startMetricsServer() error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	serverConfig := server.Config{
		Addr:            s.cfg.Server.MetricsAddr,
		ReadTimeout:     s.cfg.Server.ReadTimeout,
		WriteTimeout:    s.cfg.Server.WriteTimeout,
		ShutdownTimeout: s.cfg.Server.ShutdownTimeout,
	}

	s.metricsManager = server.NewManager(mux, serverConfig, s.logger)
	if err := s.metricsManager.Start(); err != nil {
		return err
	}

	s.logger.Info("metrics server started", zap.String("addr", s.metricsManager.Addr()))
	return nil
}

// WaitForShutdown blocks until a shutdown signal arrives, then tears
// everything down.
func (s *Server) WaitForShutdown() {
	if s.httpManager != nil {
		s.httpManager.WaitForShutdown()
	}
	s.Shutdown()
}

// Shutdown stops the listeners and releases the presence store and
// telemetry exporters.
func (s *Server) Shutdown() {
	s.logger.Info("starting graceful shutdown")

	ctx := context.Background()

	if s.rateLimiterCancel != nil {
		s.rateLimiterCancel()
	}
	if s.httpManager != nil {
		if err := s.httpManager.Shutdown(ctx); err != nil {
			s.logger.Error("HTTP server shutdown error", zap.Error(err))
		}
	}
	if s.metricsManager != nil {
		if err := s.metricsManager.Shutdown(ctx); err != nil {
			s.logger.Error("metrics server shutdown error", zap.Error(err))
		}
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Error("presence store close error", zap.Error(err))
		}
	}
	if err := s.otelProviders.Shutdown(ctx); err != nil {
		s.logger.Error("telemetry shutdown error", zap.Error(err))
	}

	s.logger.Info("graceful shutdown completed")
}
