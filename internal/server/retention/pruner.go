// Package retention periodically removes positions and chat messages
// that are older than the server keeps them.
package retention

import (
	"context"
	"log/slog"
	"time"

	"github.com/iudanet/criticalmaps/internal/server/storage"
)

// Config задает сроки хранения и период очистки
type Config struct {
	LocationTTL time.Duration
	MessageTTL  time.Duration
	Interval    time.Duration
}

// Pruner удаляет устаревшие записи по таймеру
type Pruner struct {
	locations storage.LocationStorage
	messages  storage.MessageStorage
	logger    *slog.Logger
	now       func() time.Time
	cfg       Config
}

// NewPruner creates a pruner. A zero TTL disables pruning of that kind.
func NewPruner(cfg Config, locations storage.LocationStorage, messages storage.MessageStorage, logger *slog.Logger) *Pruner {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	return &Pruner{
		locations: locations,
		messages:  messages,
		logger:    logger,
		now:       time.Now,
		cfg:       cfg,
	}
}

// Run prunes once immediately and then every interval until ctx is done.
func (p *Pruner) Run(ctx context.Context) {
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	p.Prune(ctx)

	for {
		select {
		case <-ticker.C:
			p.Prune(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// Prune removes expired rows once. Errors are logged and do not stop
// later runs.
func (p *Pruner) Prune(ctx context.Context) {
	now := p.now()

	var locations, messages int64
	var err error

	if p.cfg.LocationTTL > 0 {
		locations, err = p.locations.DeleteLocationsBefore(ctx, now.Add(-p.cfg.LocationTTL))
		if err != nil {
			p.logger.Error("Failed to prune locations", "error", err)
		}
	}

	if p.cfg.MessageTTL > 0 {
		messages, err = p.messages.DeleteMessagesBefore(ctx, now.Add(-p.cfg.MessageTTL))
		if err != nil {
			p.logger.Error("Failed to prune chat messages", "error", err)
		}
	}

	if locations > 0 || messages > 0 {
		p.logger.Info("Pruned expired data",
			"locations_deleted", locations,
			"messages_deleted", messages)
	}
}
