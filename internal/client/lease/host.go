// Package lease emulates the extended-execution lease a hosting environment
// grants to work that must finish after the application is asked to stop.
//
// Each lease expires after a grace period; the expiry handler runs only if
// the lease has not been ended by then.
package lease

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultGracePeriod время, которое дается работе после начала аренды
const DefaultGracePeriod = 30 * time.Second

// Token identifies an active lease
type Token uint64

// Host выдает и отзывает аренды с таймером истечения
type Host struct {
	logger  *slog.Logger
	active  map[Token]*time.Timer
	drained chan struct{}
	grace   time.Duration
	next    Token
	mu      sync.Mutex
}

// NewHost creates a host whose leases expire after grace
func NewHost(grace time.Duration, logger *slog.Logger) *Host {
	if grace <= 0 {
		grace = DefaultGracePeriod
	}
	return &Host{
		logger:  logger,
		active:  make(map[Token]*time.Timer),
		drained: make(chan struct{}),
		grace:   grace,
	}
}

// Begin starts a lease. expiry runs on its own goroutine if End is not
// called within the grace period.
func (h *Host) Begin(expiry func()) Token {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.next++
	token := h.next

	h.active[token] = time.AfterFunc(h.grace, func() {
		// Аренда могла быть завершена, пока таймер уже срабатывал
		if !h.remove(token) {
			return
		}
		h.logger.Warn("Extended execution expired", "token", uint64(token), "grace", h.grace)
		if expiry != nil {
			expiry()
		}
	})

	return token
}

// End releases a lease. Ending an unknown or expired token is a no-op.
func (h *Host) End(token Token) {
	h.mu.Lock()
	timer, ok := h.active[token]
	h.mu.Unlock()

	if !ok {
		return
	}
	timer.Stop()
	h.remove(token)
}

// Active returns the number of leases not yet ended or expired
func (h *Host) Active() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.active)
}

// Wait blocks until every lease has ended or expired, or ctx is done.
func (h *Host) Wait(ctx context.Context) error {
	h.mu.Lock()
	if len(h.active) == 0 {
		h.mu.Unlock()
		return nil
	}
	drained := h.drained
	h.mu.Unlock()

	select {
	case <-drained:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// remove удаляет аренду и будит ожидающих, если активных не осталось.
// Возвращает false, если аренда уже была удалена.
func (h *Host) remove(token Token) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.active[token]; !ok {
		return false
	}
	delete(h.active, token)

	if len(h.active) == 0 {
		close(h.drained)
		h.drained = make(chan struct{})
	}
	return true
}
