package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/iudanet/criticalmaps/internal/client/iocli"
	"github.com/iudanet/criticalmaps/internal/client/lease"
	"github.com/iudanet/criticalmaps/internal/client/storage"
	"github.com/iudanet/criticalmaps/internal/client/sync"
)

// shutdownTimeout ограничивает ожидание незавершенных отправок при выходе
const shutdownTimeout = 10 * time.Second

// Config содержит зависимости CLI. Все поля, кроме Stdin, обязательны.
type Config struct {
	IO        iocli.IO
	Store     storage.Store
	Identity  sync.IdentityProvider
	Transport sync.Transport
	Host      *lease.Host
	Logger    *slog.Logger
	// Stdin источник координат для run --stdin, по умолчанию os.Stdin
	Stdin     io.Reader
	ServerURL string
}

type Cli struct {
	io        iocli.IO
	store     storage.Store
	identity  sync.IdentityProvider
	transport sync.Transport
	host      *lease.Host
	logger    *slog.Logger
	stdin     io.Reader
	now       func() time.Time
	serverURL string
}

func New(cfg Config) *Cli {
	stdin := cfg.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	return &Cli{
		io:        cfg.IO,
		store:     cfg.Store,
		identity:  cfg.Identity,
		transport: cfg.Transport,
		host:      cfg.Host,
		logger:    cfg.Logger,
		stdin:     stdin,
		now:       time.Now,
		serverURL: cfg.ServerURL,
	}
}

// newController собирает контроллер синхронизации поверх зависимостей CLI
func (c *Cli) newController(cfg sync.Config, locations sync.LocationSource) *sync.Controller {
	cfg.Endpoint = c.serverURL
	return sync.NewController(cfg, c.store, locations, c.transport, c.identity, c.host, c.logger)
}

func PrintUsage() {
	fmt.Println("Critical Maps Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  criticalmaps [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version                    Show version information")
	fmt.Println("  --server URL                 Server URL (default: http://localhost:8080/)")
	fmt.Println("  --db PATH                    Path to local database (default: criticalmaps-client.db)")
	fmt.Println("  --verbose                    Enable debug logging")
	fmt.Println()
	fmt.Println("Environment (overrides flags):")
	fmt.Println("  CRITICALMAPS_SERVER          Server URL")
	fmt.Println("  CRITICALMAPS_DB              Path to local database")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  run [OPTIONS]           Share position and receive updates until interrupted")
	fmt.Println("      --lat, --lon        Fixed position to report")
	fmt.Println("      --name, --color     Optional rider name and color")
	fmt.Println("      --stdin             Read \"latitude,longitude\" lines from stdin")
	fmt.Println("      --max-age           Stop reporting stdin positions older than this")
	fmt.Println("      --interval          Poll interval (default: 12s)")
	fmt.Println("  send <text...>          Send a chat message")
	fmt.Println("  sync                    Fetch the current state from the server and show it")
	fmt.Println("  status                  Show riders and chat messages from the last update")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  criticalmaps run --lat 52.5200 --lon 13.4050 --name bike")
	fmt.Println("  gpspipe ... | criticalmaps run --stdin")
	fmt.Println("  criticalmaps send 'Meet at the fountain'")
	fmt.Println("  criticalmaps --server https://example.com/ status")
}
