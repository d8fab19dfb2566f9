// Package main is the entry point for the dailyspin API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dailyspin/internal/cache"
	"dailyspin/internal/config"
	"dailyspin/internal/database"
	"dailyspin/internal/feed"
	"dailyspin/internal/handlers"
	"dailyspin/internal/router"
	"dailyspin/internal/session"
	"dailyspin/internal/store"
	"dailyspin/internal/theme"
)

func main() {
	// Structured logger — outputs JSON in production, text in development.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"reset_timezone", cfg.ResetTimezone,
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (session store + current-theme cache).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	sessionStore := session.NewStore(valkeyClient)
	themeCache := cache.NewThemeCache(valkeyClient, cache.DefaultThemeTTL)

	// Initialize data stores.
	userStore := store.NewUserStore(db)
	themeStore := store.NewThemeStore(db)
	scheduleStore := store.NewScheduleStore(db)
	postStore := store.NewPostStore(db)
	settingStore := store.NewAppSettingStore(db)

	// The theme subsystem: resolver, midnight reset, and admin service. The
	// clock runs in the configured reset timezone so the daily boundary is
	// consistent for every client.
	clock := theme.NewSystemClock(cfg.Location())
	resolver := theme.NewResolver(scheduleStore, themeStore, settingStore, themeCache, clock)
	service := theme.NewService(themeStore, scheduleStore, resolver, clock)

	scheduler := theme.NewScheduler(resolver, settingStore, clock)
	scheduler.RecoverMissedReset(context.Background())
	scheduler.Start()
	defer scheduler.Stop()

	gate := feed.NewGate(postStore, resolver, clock)

	// Create handler groups with their dependencies.
	authHandlers := handlers.NewAuth(sessionStore, userStore)
	themeHandlers := handlers.NewThemes(service)
	scheduleHandlers := handlers.NewSchedule(service)
	feedHandlers := handlers.NewFeed(gate, postStore, service, userStore)
	postHandlers := handlers.NewPosts(postStore, service)

	// Set up the Chi router with all middleware and routes.
	r := router.New(sessionStore, authHandlers, themeHandlers, scheduleHandlers, feedHandlers, postHandlers)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
