package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/iudanet/criticalmaps/internal/client/api"
	"github.com/iudanet/criticalmaps/internal/client/cli"
	"github.com/iudanet/criticalmaps/internal/client/identity"
	"github.com/iudanet/criticalmaps/internal/client/iocli"
	"github.com/iudanet/criticalmaps/internal/client/lease"
	"github.com/iudanet/criticalmaps/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080/", "Server URL")
	dbPath := flag.String("db", "criticalmaps-client.db", "Path to local database")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Usage = cli.PrintUsage

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Переменные окружения имеют приоритет над флагами
	if env := os.Getenv("CRITICALMAPS_SERVER"); env != "" {
		*serverURL = env
	}
	if env := os.Getenv("CRITICALMAPS_DB"); env != "" {
		*dbPath = env
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	logger := newLogger(*verbose)

	// Ctrl+C останавливает run и прерывает ожидание send
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	provider, err := identity.New(ctx, boltStorage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load device identity: %v\n", err)
		os.Exit(1)
	}

	client := cli.New(cli.Config{
		IO:        iocli.NewStdio(),
		Store:     boltStorage,
		Identity:  provider,
		Transport: api.NewClient("criticalmaps-cli/" + Version),
		Host:      lease.NewHost(lease.DefaultGracePeriod, logger),
		Logger:    logger,
		ServerURL: *serverURL,
	})

	if err := client.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		// defer не выполняется после os.Exit
		_ = boltStorage.Close()
		os.Exit(1)
	}
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
	fmt.Printf("Critical Maps Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
