package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/iudanet/criticalmaps/internal/models"
	"github.com/iudanet/criticalmaps/pkg/api"
)

// DefaultInterval период опроса сервера по умолчанию
const DefaultInterval = 12 * time.Second

var (
	// ErrSendFailed возвращается SendAndWait, если сообщения не были приняты
	ErrSendFailed = errors.New("message submission failed")

	// ErrAlreadyStarted возвращается при повторном вызове Start
	ErrAlreadyStarted = errors.New("controller already started")

	// ErrNoEndpoint возвращается Start и Refresh, если адрес сервера не задан
	ErrNoEndpoint = errors.New("endpoint is required")

	// ErrRefreshFailed возвращается Refresh, если состояние не удалось получить
	ErrRefreshFailed = errors.New("state refresh failed")

	errEmptyResponse = errors.New("empty response")
)

// Config содержит неизменяемые параметры контроллера
type Config struct {
	Endpoint string
	Interval time.Duration
	// PollOnStart выполняет первый цикл сразу при старте, не дожидаясь таймера
	PollOnStart bool
}

// Controller периодически отправляет позицию устройства (или запрашивает
// состояние, если позиции нет) и по запросу отправляет сообщения чата.
//
// Все изменения busy и все слияния в Store выполняются в одной горутине
// цикла; сетевые запросы выполняются в отдельных горутинах и возвращают
// результат в цикл через канал events.
type Controller struct {
	store     Store
	locations LocationSource
	transport Transport
	identity  IdentityProvider
	host      ExecutionHost
	logger    *slog.Logger

	newTicker func(time.Duration) (<-chan time.Time, func())
	events    chan func()
	stopped   chan struct{}
	cancel    context.CancelFunc

	endpoint    string
	interval    time.Duration
	requests    sync.WaitGroup
	mu          sync.Mutex
	busy        atomic.Bool
	started     atomic.Bool
	pollOnStart bool
}

// NewController creates a controller. Collaborators are not owned by the
// controller and must outlive it.
func NewController(
	cfg Config,
	store Store,
	locations LocationSource,
	transport Transport,
	identity IdentityProvider,
	host ExecutionHost,
	logger *slog.Logger,
) *Controller {
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Controller{
		store:       store,
		locations:   locations,
		transport:   transport,
		identity:    identity,
		host:        host,
		logger:      logger,
		newTicker:   newTimeTicker,
		events:      make(chan func()),
		stopped:     make(chan struct{}),
		endpoint:    cfg.Endpoint,
		interval:    interval,
		pollOnStart: cfg.PollOnStart,
	}
}

// Start launches the periodic poll loop. The loop runs until ctx is
// cancelled or Stop is called.
func (c *Controller) Start(ctx context.Context) error {
	if c.endpoint == "" {
		return ErrNoEndpoint
	}

	// started и cancel меняются вместе, чтобы Stop не застал одно без другого
	c.mu.Lock()
	if c.started.Load() {
		c.mu.Unlock()
		return ErrAlreadyStarted
	}
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.started.Store(true)
	c.mu.Unlock()

	ticks, stopTicker := c.newTicker(c.interval)

	c.logger.Info("Sync controller started",
		"endpoint", c.endpoint,
		"interval", c.interval)

	go c.loop(ctx, ticks, stopTicker)
	return nil
}

// Stop cancels the poll loop and waits for it and for every in-flight
// request to finish. Stop on a controller that was never started is a no-op.
func (c *Controller) Stop() {
	c.mu.Lock()
	cancel := c.cancel
	c.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-c.stopped
	c.requests.Wait()
}

// Busy reports whether a poll request is currently in flight
func (c *Controller) Busy() bool {
	return c.busy.Load()
}

func (c *Controller) loop(ctx context.Context, ticks <-chan time.Time, stopTicker func()) {
	defer close(c.stopped)
	defer stopTicker()

	if c.pollOnStart {
		c.onTick(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("Sync controller stopped")
			return
		case <-ticks:
			c.logger.Debug("Timer did update")
			c.onTick(ctx)
		case fn := <-c.events:
			fn()
		}
	}
}

// onTick выполняет один цикл опроса. Вызывается только из цикла.
func (c *Controller) onTick(ctx context.Context) {
	if c.busy.Load() {
		c.logger.Debug("Don't attempt to request new data because a request is still active")
		return
	}
	c.busy.Store(true)

	// POST используем только если есть позиция для отправки
	location, ok := c.locations.CurrentLocation()
	if !ok {
		c.dispatch(func() (*api.Response, error) {
			return c.transport.Get(ctx, c.endpoint)
		}, func(resp *api.Response, err error) {
			c.onRequestComplete(ctx, resp, err)
		})
		return
	}

	body, err := json.Marshal(api.LocationPostBody{
		Device:   c.identity.ID(),
		Location: location,
	})
	if err != nil {
		c.busy.Store(false)
		c.onRequestComplete(ctx, nil, err)
		return
	}

	c.dispatch(func() (*api.Response, error) {
		return c.transport.Post(ctx, c.endpoint, body)
	}, func(resp *api.Response, err error) {
		c.onRequestComplete(ctx, resp, err)
	})
}

// onRequestComplete завершает цикл опроса. busy сбрасывается при любом исходе,
// это единственное место, возвращающее контроллер в состояние ожидания.
func (c *Controller) onRequestComplete(ctx context.Context, resp *api.Response, err error) {
	defer c.busy.Store(false)

	if !c.merge(ctx, resp, err) {
		c.logger.Error("API update failed", "error", err)
		return
	}

	c.logger.Info("Successfully finished API update",
		"riders", len(resp.Locations),
		"chat_messages", len(resp.ChatMessages))
}

// merge сливает успешный ответ в Store. Возвращает false, если ответа нет.
func (c *Controller) merge(ctx context.Context, resp *api.Response, err error) bool {
	if err != nil || resp == nil {
		return false
	}

	// Слияние не должно срываться из-за отмены запроса, ответ уже получен
	if err := c.store.Update(context.WithoutCancel(ctx), resp); err != nil {
		c.logger.Warn("Failed to merge response into store", "error", err)
	}
	return true
}

// Refresh fetches the current state with a GET outside the poll cycle and
// merges it into the store. It works with or without Start and does not
// touch the busy flag, so an in-flight poll keeps its guard.
func (c *Controller) Refresh(ctx context.Context) error {
	if c.endpoint == "" {
		return ErrNoEndpoint
	}

	result := make(chan error, 1)

	c.dispatch(func() (*api.Response, error) {
		return c.transport.Get(ctx, c.endpoint)
	}, func(resp *api.Response, err error) {
		if !c.merge(ctx, resp, err) {
			if err == nil {
				err = errEmptyResponse
			}
			c.logger.Error("State refresh failed", "error", err)
			result <- fmt.Errorf("%w: %w", ErrRefreshFailed, err)
			return
		}

		c.logger.Info("State refreshed",
			"riders", len(resp.Locations),
			"chat_messages", len(resp.ChatMessages))
		result <- nil
	})

	select {
	case err := <-result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Send submits messages independently of the poll cycle. done, if not nil,
// is called exactly once with the messages the server accepted, or with nil
// if the submission failed or the extended-execution lease expired first.
func (c *Controller) Send(ctx context.Context, messages []models.SendChatMessage, done func(map[string]models.ChatMessage)) {
	var finished atomic.Bool
	finish := func(accepted map[string]models.ChatMessage) {
		if !finished.CompareAndSwap(false, true) {
			return
		}
		if done != nil {
			done(accepted)
		}
	}

	token := c.host.Begin(func() {
		c.logger.Warn("Message submission did not finish in time, cancelling")
		finish(nil)
		c.transport.CancelActiveRequestsIfNeeded()
	})

	// Копия защищает от изменения слайса вызывающим и дает [] вместо null
	batch := append([]models.SendChatMessage{}, messages...)

	body, err := json.Marshal(api.MessagesPostBody{
		Device:   c.identity.ID(),
		Messages: batch,
	})
	if err != nil {
		c.logger.Error("Failed to encode message batch", "error", err, "count", len(batch))
		finish(nil)
		c.host.End(token)
		return
	}

	c.dispatch(func() (*api.Response, error) {
		return c.transport.Post(ctx, c.endpoint, body)
	}, func(resp *api.Response, err error) {
		var accepted map[string]models.ChatMessage
		if c.merge(ctx, resp, err) {
			accepted = resp.AcceptedMessages(batch)
			c.logger.Info("Messages submitted", "sent", len(batch), "accepted", len(accepted))
		} else {
			c.logger.Error("Message submission failed", "error", err, "count", len(batch))
		}

		c.host.End(token)
		finish(accepted)
	})
}

// SendAndWait is the blocking form of Send. It returns ErrSendFailed when
// the server did not accept the batch.
func (c *Controller) SendAndWait(ctx context.Context, messages []models.SendChatMessage) (map[string]models.ChatMessage, error) {
	result := make(chan map[string]models.ChatMessage, 1)

	c.Send(ctx, messages, func(accepted map[string]models.ChatMessage) {
		result <- accepted
	})

	select {
	case accepted := <-result:
		if accepted == nil {
			return nil, ErrSendFailed
		}
		return accepted, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// dispatch выполняет запрос в отдельной горутине и передает результат в цикл
func (c *Controller) dispatch(do func() (*api.Response, error), complete func(*api.Response, error)) {
	c.requests.Add(1)
	go func() {
		defer c.requests.Done()

		resp, err := do()
		c.post(func() { complete(resp, err) })
	}()
}

// post передает fn в цикл. Если цикл не запущен или уже остановлен,
// fn выполняется на месте, чтобы колбэки вызывающих все равно были вызваны.
func (c *Controller) post(fn func()) {
	if !c.started.Load() {
		fn()
		return
	}

	select {
	case c.events <- fn:
	case <-c.stopped:
		fn()
	}
}

func newTimeTicker(d time.Duration) (<-chan time.Time, func()) {
	ticker := time.NewTicker(d)
	return ticker.C, ticker.Stop
}
