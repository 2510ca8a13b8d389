package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	gosync "sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/criticalmaps/internal/client/iocli"
	"github.com/iudanet/criticalmaps/internal/client/lease"
	"github.com/iudanet/criticalmaps/internal/client/storage"
	"github.com/iudanet/criticalmaps/internal/client/sync"
	"github.com/iudanet/criticalmaps/internal/models"
	"github.com/iudanet/criticalmaps/pkg/api"
)

const testDevice = "0123456789abcdef0123456789abcdef"

// output собирает все, что CLI печатает через IO
type output struct {
	buf bytes.Buffer
	mu  gosync.Mutex
}

func (o *output) String() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.buf.String()
}

func (o *output) mock() *iocli.IOMock {
	return &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			o.mu.Lock()
			defer o.mu.Unlock()
			_, _ = fmt.Fprintln(&o.buf, a...)
		},
		PrintfFunc: func(format string, a ...any) {
			o.mu.Lock()
			defer o.mu.Unlock()
			_, _ = fmt.Fprintf(&o.buf, format, a...)
		},
		WriteFunc: func(p []byte) (int, error) {
			o.mu.Lock()
			defer o.mu.Unlock()
			return o.buf.Write(p)
		},
		ReadInputFunc: func(prompt string) (string, error) {
			return "", io.EOF
		},
	}
}

type testCli struct {
	cli       *Cli
	out       *output
	io        *iocli.IOMock
	store     *storage.StoreMock
	transport *sync.TransportMock
}

func newTestCli(t *testing.T) *testCli {
	t.Helper()

	out := &output{}
	tc := &testCli{
		out: out,
		io:  out.mock(),
		store: &storage.StoreMock{
			UpdateFunc: func(ctx context.Context, resp *api.Response) error {
				return nil
			},
			RidersFunc: func(ctx context.Context) ([]models.Rider, error) {
				return nil, nil
			},
			ChatMessagesFunc: func(ctx context.Context) ([]models.StoredMessage, error) {
				return nil, nil
			},
			LastUpdateFunc: func(ctx context.Context) (time.Time, error) {
				return time.Time{}, nil
			},
		},
		transport: &sync.TransportMock{
			CancelActiveRequestsIfNeededFunc: func() {},
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tc.cli = New(Config{
		IO:        tc.io,
		Store:     tc.store,
		Identity:  &sync.IdentityProviderMock{IDFunc: func() string { return testDevice }},
		Transport: tc.transport,
		Host:      lease.NewHost(time.Second, logger),
		Logger:    logger,
		Stdin:     strings.NewReader(""),
		ServerURL: "http://localhost:8080/",
	})

	return tc
}

// echoMessages возвращает в ответе все сообщения из тела запроса
func echoMessages(body []byte) (*api.Response, error) {
	var req api.MessagesPostBody
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, err
	}
	resp := &api.Response{
		Locations:    map[string]models.Location{},
		ChatMessages: map[string]models.ChatMessage{},
	}
	for _, m := range req.Messages {
		resp.ChatMessages[m.Identifier] = models.ChatMessage{Message: m.Text, Timestamp: m.Timestamp}
	}
	return resp, nil
}

func TestCli_Run_UnknownCommand(t *testing.T) {
	tc := newTestCli(t)

	err := tc.cli.Run(context.Background(), "register", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestCli_runStatus_Empty(t *testing.T) {
	tc := newTestCli(t)

	require.NoError(t, tc.cli.Run(context.Background(), "status", nil))

	out := tc.out.String()
	assert.Contains(t, out, "=== Critical Maps Status ===")
	assert.Contains(t, out, "Device:      "+testDevice)
	assert.Contains(t, out, "Last update: never")
	assert.Contains(t, out, "Riders (0):")
	assert.Contains(t, out, "No riders nearby.")
	assert.Contains(t, out, "No messages.")
}

func TestCli_runStatus_WithData(t *testing.T) {
	tc := newTestCli(t)

	lastUpdate := time.Date(2026, 5, 29, 18, 30, 0, 0, time.UTC)
	tc.cli.now = func() time.Time { return lastUpdate.Add(42 * time.Second) }

	tc.store.RidersFunc = func(ctx context.Context) ([]models.Rider, error) {
		return []models.Rider{
			{DeviceID: testDevice, Location: models.Location{Latitude: 52.52, Longitude: 13.405}},
			{DeviceID: "other-device", Location: models.Location{Latitude: 52.5, Longitude: 13.4, Name: "tandem"}},
		}, nil
	}
	tc.store.ChatMessagesFunc = func(ctx context.Context) ([]models.StoredMessage, error) {
		return []models.StoredMessage{
			{ID: "m1", ChatMessage: models.ChatMessage{Message: "Meet at the fountain", Timestamp: 1}},
		}, nil
	}
	tc.store.LastUpdateFunc = func(ctx context.Context) (time.Time, error) {
		return lastUpdate, nil
	}

	require.NoError(t, tc.cli.Run(context.Background(), "status", nil))

	out := tc.out.String()
	assert.Contains(t, out, "Last update: 2026-05-29 18:30:00 (42s ago)")
	assert.Contains(t, out, "Riders (2):")
	assert.Contains(t, out, testDevice+"   52.52000   13.40500  (you)")
	assert.Contains(t, out, "other-device")
	assert.Contains(t, out, "tandem")
	assert.Contains(t, out, "Chat (1):")
	assert.Contains(t, out, "Meet at the fountain")
	assert.NotContains(t, out, "No messages.")
}

func TestCli_runSync(t *testing.T) {
	tc := newTestCli(t)

	tc.transport.GetFunc = func(ctx context.Context, endpoint string) (*api.Response, error) {
		return &api.Response{
			Locations: map[string]models.Location{
				"other-device": {Latitude: 52.5, Longitude: 13.4, Timestamp: 1},
			},
			ChatMessages: map[string]models.ChatMessage{},
		}, nil
	}
	tc.store.RidersFunc = func(ctx context.Context) ([]models.Rider, error) {
		return []models.Rider{
			{DeviceID: "other-device", Location: models.Location{Latitude: 52.5, Longitude: 13.4}},
		}, nil
	}

	require.NoError(t, tc.cli.Run(context.Background(), "sync", nil))

	require.Len(t, tc.transport.GetCalls(), 1)
	assert.Equal(t, "http://localhost:8080/", tc.transport.GetCalls()[0].Endpoint)
	assert.Empty(t, tc.transport.PostCalls())
	require.Len(t, tc.store.UpdateCalls(), 1)
	assert.Contains(t, tc.store.UpdateCalls()[0].Resp.Locations, "other-device")

	out := tc.out.String()
	assert.Contains(t, out, "✓ Synchronization completed successfully!")
	assert.Contains(t, out, "Riders (1):")
}

func TestCli_runSync_ServerUnavailable(t *testing.T) {
	tc := newTestCli(t)
	tc.transport.GetFunc = func(ctx context.Context, endpoint string) (*api.Response, error) {
		return nil, errors.New("connection refused")
	}

	err := tc.cli.Run(context.Background(), "sync", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, sync.ErrRefreshFailed)
	assert.Contains(t, err.Error(), "synchronization failed")
	assert.Empty(t, tc.store.UpdateCalls())
	assert.NotContains(t, tc.out.String(), "Riders")
}

func TestCli_runStatus_StoreErrors(t *testing.T) {
	storeErr := errors.New("database not open")

	tests := []struct {
		setup   func(*storage.StoreMock)
		name    string
		wantMsg string
	}{
		{
			name: "riders",
			setup: func(m *storage.StoreMock) {
				m.RidersFunc = func(ctx context.Context) ([]models.Rider, error) { return nil, storeErr }
			},
			wantMsg: "failed to get riders",
		},
		{
			name: "messages",
			setup: func(m *storage.StoreMock) {
				m.ChatMessagesFunc = func(ctx context.Context) ([]models.StoredMessage, error) { return nil, storeErr }
			},
			wantMsg: "failed to get chat messages",
		},
		{
			name: "last update",
			setup: func(m *storage.StoreMock) {
				m.LastUpdateFunc = func(ctx context.Context) (time.Time, error) { return time.Time{}, storeErr }
			},
			wantMsg: "failed to get last update time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestCli(t)
			tt.setup(tc.store)

			err := tc.cli.runStatus(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, storeErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestCli_runSend_Success(t *testing.T) {
	tc := newTestCli(t)

	var sent api.MessagesPostBody
	tc.transport.PostFunc = func(ctx context.Context, endpoint string, body []byte) (*api.Response, error) {
		if err := json.Unmarshal(body, &sent); err != nil {
			return nil, err
		}
		return echoMessages(body)
	}

	require.NoError(t, tc.cli.Run(context.Background(), "send", []string{"Meet", "at", "the", "fountain"}))

	require.Len(t, tc.transport.PostCalls(), 1)
	assert.Equal(t, "http://localhost:8080/", tc.transport.PostCalls()[0].Endpoint)
	assert.Equal(t, testDevice, sent.Device)
	require.Len(t, sent.Messages, 1)
	assert.Equal(t, "Meet at the fountain", sent.Messages[0].Text)
	assert.NotEmpty(t, sent.Messages[0].Identifier)

	assert.Contains(t, tc.out.String(), "✓ Message sent ("+sent.Messages[0].Identifier+")")
	assert.Len(t, tc.store.UpdateCalls(), 1)
}

func TestCli_runSend_ReadsTextFromInput(t *testing.T) {
	tc := newTestCli(t)
	tc.io.ReadInputFunc = func(prompt string) (string, error) {
		return "hello from stdin", nil
	}

	var sent api.MessagesPostBody
	tc.transport.PostFunc = func(ctx context.Context, endpoint string, body []byte) (*api.Response, error) {
		_ = json.Unmarshal(body, &sent)
		return echoMessages(body)
	}

	require.NoError(t, tc.cli.runSend(context.Background(), nil))

	require.Len(t, tc.io.ReadInputCalls(), 1)
	assert.Equal(t, "Message: ", tc.io.ReadInputCalls()[0].Prompt)
	require.Len(t, sent.Messages, 1)
	assert.Equal(t, "hello from stdin", sent.Messages[0].Text)
}

func TestCli_runSend_EmptyText(t *testing.T) {
	tc := newTestCli(t)
	tc.io.ReadInputFunc = func(prompt string) (string, error) {
		return "", nil
	}

	err := tc.cli.runSend(context.Background(), []string{"  "})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "message text is required")
	assert.Empty(t, tc.transport.PostCalls())
}

func TestCli_runSend_Failure(t *testing.T) {
	tc := newTestCli(t)
	tc.transport.PostFunc = func(ctx context.Context, endpoint string, body []byte) (*api.Response, error) {
		return nil, errors.New("connection refused")
	}

	err := tc.cli.runSend(context.Background(), []string{"hello"})

	require.Error(t, err)
	assert.ErrorIs(t, err, sync.ErrSendFailed)
	assert.Empty(t, tc.store.UpdateCalls())
}

func TestCli_runSend_NotConfirmed(t *testing.T) {
	tc := newTestCli(t)
	tc.transport.PostFunc = func(ctx context.Context, endpoint string, body []byte) (*api.Response, error) {
		return &api.Response{}, nil
	}

	require.NoError(t, tc.cli.runSend(context.Background(), []string{"hello"}))
	assert.Contains(t, tc.out.String(), "did not confirm")
}

func TestCli_runDaemon_StaticPosition(t *testing.T) {
	tc := newTestCli(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bodies := make(chan []byte, 8)
	tc.transport.PostFunc = func(ctx context.Context, endpoint string, body []byte) (*api.Response, error) {
		bodies <- body
		return &api.Response{}, nil
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- tc.cli.runDaemon(ctx, []string{"--lat", "52.52", "--lon", "13.405", "--name", "bike", "--interval", "1h"})
	}()

	var report api.LocationPostBody
	select {
	case body := <-bodies:
		require.NoError(t, json.Unmarshal(body, &report))
	case <-time.After(2 * time.Second):
		t.Fatal("position was not reported on start")
	}

	assert.Equal(t, testDevice, report.Device)
	assert.Equal(t, 52.52, report.Location.Latitude)
	assert.Equal(t, 13.405, report.Location.Longitude)
	assert.Equal(t, "bike", report.Location.Name)
	assert.NotZero(t, report.Location.Timestamp)

	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("run did not stop")
	}

	out := tc.out.String()
	assert.Contains(t, out, "Syncing with http://localhost:8080/ every 1h0m0s")
	assert.Contains(t, out, "Stopped.")
}

func TestCli_runDaemon_WithoutPositionPolls(t *testing.T) {
	tc := newTestCli(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	polled := make(chan struct{}, 8)
	tc.transport.GetFunc = func(ctx context.Context, endpoint string) (*api.Response, error) {
		polled <- struct{}{}
		return &api.Response{}, nil
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- tc.cli.runDaemon(ctx, nil)
	}()

	select {
	case <-polled:
	case <-time.After(2 * time.Second):
		t.Fatal("state was not polled on start")
	}

	cancel()
	require.NoError(t, <-errCh)
	assert.Empty(t, tc.transport.PostCalls())
}

func TestCli_runDaemon_Stdin(t *testing.T) {
	tc := newTestCli(t)
	tc.cli.stdin = strings.NewReader("52.5,13.4\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tc.transport.GetFunc = func(ctx context.Context, endpoint string) (*api.Response, error) {
		return &api.Response{}, nil
	}
	bodies := make(chan []byte, 64)
	tc.transport.PostFunc = func(ctx context.Context, endpoint string, body []byte) (*api.Response, error) {
		select {
		case bodies <- body:
		default:
		}
		return &api.Response{}, nil
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- tc.cli.runDaemon(ctx, []string{"--stdin", "--interval", "10ms"})
	}()

	select {
	case body := <-bodies:
		var report api.LocationPostBody
		require.NoError(t, json.Unmarshal(body, &report))
		assert.Equal(t, 52.5, report.Location.Latitude)
		assert.Equal(t, 13.4, report.Location.Longitude)
	case <-time.After(2 * time.Second):
		t.Fatal("stdin position was not reported")
	}

	cancel()
	require.NoError(t, <-errCh)
}

func TestCli_runDaemon_InvalidArguments(t *testing.T) {
	tests := []struct {
		name    string
		wantMsg string
		args    []string
	}{
		{
			name:    "latitude only",
			args:    []string{"--lat", "52.5"},
			wantMsg: "both --lat and --lon are required",
		},
		{
			name:    "stdin with position",
			args:    []string{"--stdin", "--lon", "13.4"},
			wantMsg: "--stdin cannot be combined",
		},
		{
			name:    "out of range",
			args:    []string{"--lat", "95", "--lon", "13.4"},
			wantMsg: "invalid position",
		},
		{
			name:    "bad color",
			args:    []string{"--lat", "52.5", "--lon", "13.4", "--color", "orange"},
			wantMsg: "invalid --color",
		},
		{
			name:    "unknown flag",
			args:    []string{"--speed", "20"},
			wantMsg: "flag provided but not defined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestCli(t)

			err := tc.cli.runDaemon(context.Background(), tt.args)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Empty(t, tc.transport.GetCalls())
			assert.Empty(t, tc.transport.PostCalls())
		})
	}
}

func TestFormatAge(t *testing.T) {
	assert.Equal(t, "0s", formatAge(-time.Minute))
	assert.Equal(t, "1m30s", formatAge(90*time.Second+200*time.Millisecond))
}
