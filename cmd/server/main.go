package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/iudanet/criticalmaps/internal/server/handlers"
	"github.com/iudanet/criticalmaps/internal/server/middleware"
	"github.com/iudanet/criticalmaps/internal/server/retention"
	"github.com/iudanet/criticalmaps/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const shutdownTimeout = 10 * time.Second

type config struct {
	addr          string
	dbPath        string
	locationTTL   time.Duration
	messageTTL    time.Duration
	pruneInterval time.Duration
	rateWindow    time.Duration
	rateLimit     int
	verbose       bool
}

func main() {
	// Parse flags
	showVersion := flag.Bool("version", false, "Show version information")

	var cfg config
	flag.StringVar(&cfg.addr, "addr", ":8080", "HTTP listen address")
	flag.StringVar(&cfg.dbPath, "db", "criticalmaps.db", "Path to SQLite database")
	flag.DurationVar(&cfg.locationTTL, "location-ttl", 5*time.Minute, "How long a reported position stays visible (0 keeps forever)")
	flag.DurationVar(&cfg.messageTTL, "message-ttl", 30*time.Minute, "How long a chat message stays visible (0 keeps forever)")
	flag.DurationVar(&cfg.pruneInterval, "prune-interval", time.Minute, "How often expired rows are deleted")
	flag.IntVar(&cfg.rateLimit, "rate-limit", 60, "Max POST requests per IP per window (0 disables)")
	flag.DurationVar(&cfg.rateWindow, "rate-window", time.Minute, "Rate limit window")
	flag.BoolVar(&cfg.verbose, "verbose", false, "Enable debug logging")
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Переменные окружения имеют приоритет над флагами
	if env := os.Getenv("CRITICALMAPS_ADDR"); env != "" {
		cfg.addr = env
	}
	if env := os.Getenv("CRITICALMAPS_DB"); env != "" {
		cfg.dbPath = env
	}

	logger := newLogger(cfg.verbose)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.New(ctx, cfg.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()

	// Очистка работает, пока не отменен ctx
	pruner := retention.NewPruner(retention.Config{
		LocationTTL: cfg.locationTTL,
		MessageTTL:  cfg.messageTTL,
		Interval:    cfg.pruneInterval,
	}, db, db, logger)
	pruneDone := make(chan struct{})
	go func() {
		defer close(pruneDone)
		pruner.Run(ctx)
	}()

	var limiter *middleware.RateLimiter
	if cfg.rateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.rateLimit, cfg.rateWindow, logger)
		defer limiter.Stop()
	}

	router := handlers.NewRouter(handlers.RouterConfig{
		Logger: logger,
		API: handlers.NewAPIHandler(logger, db, db, handlers.Config{
			LocationTTL: cfg.locationTTL,
			MessageTTL:  cfg.messageTTL,
		}),
		Health:  handlers.NewHealthHandler(logger, db, Version),
		Limiter: limiter,
	})

	srv := &http.Server{
		Addr:              cfg.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Critical Maps server starting",
			"addr", cfg.addr,
			"db", cfg.dbPath,
			"version", Version,
			"location_ttl", cfg.locationTTL,
			"message_ttl", cfg.messageTTL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			stop()
			<-pruneDone
			return fmt.Errorf("failed to serve: %w", err)
		}
	case <-ctx.Done():
		logger.Info("Shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	<-pruneDone

	logger.Info("Server stopped")
	return nil
}

// newLogger пишет в stderr: текстом в терминал, JSON при перенаправлении
func newLogger(verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}

	if term.IsTerminal(int(os.Stderr.Fd())) {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

func printVersion() {
	fmt.Printf("Critical Maps Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
