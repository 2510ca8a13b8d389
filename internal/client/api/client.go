package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/iudanet/criticalmaps/pkg/api"
)

// DefaultTimeout ограничивает время одного запроса к серверу
const DefaultTimeout = 30 * time.Second

// ErrEmptyResponse возвращается, если сервер ответил 2xx без тела
var ErrEmptyResponse = errors.New("empty response body")

// StatusError описывает ответ сервера с кодом вне диапазона 2xx
type StatusError struct {
	Message    string
	StatusCode int
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// Client представляет HTTP транспорт для взаимодействия с сервером Critical Maps.
// Отслеживает активные запросы, чтобы их можно было отменить.
type Client struct {
	httpClient *http.Client
	active     map[uint64]context.CancelFunc
	userAgent  string
	nextID     uint64
	mu         sync.Mutex
}

// NewClient создает новый транспорт с таймаутом DefaultTimeout
func NewClient(userAgent string) *Client {
	return &Client{
		userAgent: userAgent,
		active:    make(map[uint64]context.CancelFunc),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
}

// Get запрашивает текущее состояние у сервера
func (c *Client) Get(ctx context.Context, endpoint string) (*api.Response, error) {
	var resp api.Response
	if err := c.doRequest(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, fmt.Errorf("get request failed: %w", err)
	}
	return &resp, nil
}

// Post отправляет уже закодированное тело и декодирует ответ сервера
func (c *Client) Post(ctx context.Context, endpoint string, body []byte) (*api.Response, error) {
	var resp api.Response
	if err := c.doRequest(ctx, http.MethodPost, endpoint, body, &resp); err != nil {
		return nil, fmt.Errorf("post request failed: %w", err)
	}
	return &resp, nil
}

// CancelActiveRequestsIfNeeded отменяет все запросы, которые сейчас выполняются.
// Если активных запросов нет, ничего не делает.
func (c *Client) CancelActiveRequestsIfNeeded() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, cancel := range c.active {
		cancel()
		delete(c.active, id)
	}
}

// ActiveRequests returns the number of requests currently in flight.
func (c *Client) ActiveRequests() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.active)
}

func (c *Client) track(ctx context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancel(ctx)

	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.active[id] = cancel
	c.mu.Unlock()

	return ctx, func() {
		c.mu.Lock()
		delete(c.active, id)
		c.mu.Unlock()
		cancel()
	}
}

// doRequest выполняет HTTP запрос и декодирует JSON ответ в result
func (c *Client) doRequest(ctx context.Context, method, url string, body []byte, result any) error {
	ctx, done := c.track(ctx)
	defer done()

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			// message содержит детали, error только текст статуса
			statusErr.Message = errResp.Message
			if statusErr.Message == "" {
				statusErr.Message = errResp.Error
			}
		}
		return statusErr
	}

	if len(bytes.TrimSpace(respBody)) == 0 {
		return ErrEmptyResponse
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
