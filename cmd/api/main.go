package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"token-srv/config"
	"token-srv/internal/auth"
	"token-srv/internal/httpserver"
	"token-srv/pkg/discord"
	"token-srv/pkg/jwt"
	"token-srv/pkg/log"
)

// @title       Token Service API
// @description Issues and verifies signed access tokens.
// @version     1.0
// @BasePath    /api
// @schemes     http
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath(),
		FileLevel:    cfg.Logger.FileLevel,
		MaxSizeMB:    cfg.Logger.MaxSizeMB,
		MaxBackups:   cfg.Logger.MaxBackups,
	})
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize JWT manager
	jwtMgr, err := jwt.New(jwt.Config{
		SecretKey:  cfg.JWT.SecretKey,
		Algorithm:  cfg.JWT.Algorithm,
		DefaultTTL: cfg.JWT.AccessTTL(),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}

	// Initialize access gate
	gate, err := auth.New(logger, jwtMgr, auth.Config{MasterToken: cfg.Master.Token})
	if err != nil {
		logger.Error(ctx, "Failed to initialize access gate: ", err)
		return
	}

	// Initialize Discord (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.Enabled() {
		d, err := discord.New(logger, discord.Webhook{
			ID:    cfg.Discord.WebhookID,
			Token: cfg.Discord.WebhookToken,
		}, discord.DefaultConfig())
		if err != nil {
			logger.Error(ctx, "Failed to initialize Discord: ", err)
			return
		}
		defer d.Close()
		discordClient = d
		logger.Info(ctx, "Discord error reporting enabled")
	}

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Host:            cfg.HTTPServer.Host,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		BaseURL:         cfg.HTTPServer.BaseURL,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		CORSOrigins:     cfg.HTTPServer.CORSAllowedOrigins,

		// Authentication & Security Configuration
		JWTManager: jwtMgr,
		Gate:       gate,

		// Monitoring & Notification Configuration
		MetricsEnabled: cfg.Metrics.Enabled,
		Discord:        discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
	logger.Info(context.Background(), "Shutdown completed")
}
