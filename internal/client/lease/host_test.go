package lease

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHost(grace time.Duration) *Host {
	return NewHost(grace, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNewHost_DefaultGrace(t *testing.T) {
	host := newTestHost(0)
	assert.Equal(t, DefaultGracePeriod, host.grace)
}

func TestHost_EndBeforeExpiry(t *testing.T) {
	host := newTestHost(50 * time.Millisecond)

	var expired atomic.Bool
	token := host.Begin(func() { expired.Store(true) })
	assert.Equal(t, 1, host.Active())

	host.End(token)
	assert.Equal(t, 0, host.Active())

	time.Sleep(100 * time.Millisecond)
	assert.False(t, expired.Load())
}

func TestHost_ExpiryRunsHandler(t *testing.T) {
	host := newTestHost(10 * time.Millisecond)

	done := make(chan struct{})
	host.Begin(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expiry handler was not called")
	}

	require.Eventually(t, func() bool { return host.Active() == 0 }, time.Second, 5*time.Millisecond)
}

func TestHost_EndAfterExpiryIsNoop(t *testing.T) {
	host := newTestHost(10 * time.Millisecond)

	done := make(chan struct{})
	token := host.Begin(func() { close(done) })
	<-done

	assert.NotPanics(t, func() { host.End(token) })
	assert.NotPanics(t, func() { host.End(token + 100) })
	assert.Equal(t, 0, host.Active())
}

func TestHost_NilExpiry(t *testing.T) {
	host := newTestHost(10 * time.Millisecond)
	host.Begin(nil)

	require.Eventually(t, func() bool { return host.Active() == 0 }, time.Second, 5*time.Millisecond)
}

func TestHost_TokensAreUnique(t *testing.T) {
	host := newTestHost(time.Minute)

	a := host.Begin(nil)
	b := host.Begin(nil)
	defer host.End(a)
	defer host.End(b)

	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, host.Active())
}

func TestHost_Wait(t *testing.T) {
	host := newTestHost(time.Minute)

	// Без активных аренд Wait возвращается сразу
	require.NoError(t, host.Wait(context.Background()))

	token := host.Begin(nil)

	go func() {
		time.Sleep(20 * time.Millisecond)
		host.End(token)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, host.Wait(ctx))
}

func TestHost_WaitContextDone(t *testing.T) {
	host := newTestHost(time.Minute)
	token := host.Begin(nil)
	defer host.End(token)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, host.Wait(ctx), context.DeadlineExceeded)
}
