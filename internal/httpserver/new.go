package httpserver

import (
	"errors"
	"time"

	"token-srv/internal/auth"
	"token-srv/pkg/discord"
	"token-srv/pkg/jwt"
	"token-srv/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) serves until the context is cancelled.
type HTTPServer struct {
	// Server configuration
	gin             *gin.Engine
	logger          log.Logger
	host            string
	port            int
	mode            string
	baseURL         string
	shutdownTimeout time.Duration
	corsOrigins     []string

	// Auth & security
	jwtMgr jwt.Manager
	gate   auth.Gate

	// Monitoring
	registry       *prometheus.Registry
	metricsEnabled bool
	discord        discord.IDiscord
}

// Config is the constructor input for HTTPServer.
type Config struct {
	// Server configuration
	Host            string
	Port            int
	Mode            string
	BaseURL         string
	ShutdownTimeout time.Duration
	CORSOrigins     []string

	// Auth & security
	JWTManager jwt.Manager
	Gate       auth.Gate

	// Monitoring. Discord may be nil.
	MetricsEnabled bool
	Discord        discord.IDiscord
}

// New creates a new HTTPServer and maps its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		gin:             gin.New(),
		logger:          logger,
		host:            cfg.Host,
		port:            cfg.Port,
		mode:            cfg.Mode,
		baseURL:         cfg.BaseURL,
		shutdownTimeout: cfg.ShutdownTimeout,
		corsOrigins:     cfg.CORSOrigins,

		jwtMgr: cfg.JWTManager,
		gate:   cfg.Gate,

		registry:       prometheus.NewRegistry(),
		metricsEnabled: cfg.MetricsEnabled,
		discord:        cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.logger == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.jwtMgr == nil {
		return errors.New("JWTManager is required")
	}
	if srv.gate == nil {
		return errors.New("Gate is required")
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 10 * time.Second
	}
	return nil
}
