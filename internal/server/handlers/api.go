package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/iudanet/criticalmaps/internal/models"
	"github.com/iudanet/criticalmaps/internal/server/storage"
	"github.com/iudanet/criticalmaps/internal/validation"
	"github.com/iudanet/criticalmaps/pkg/api"
)

const (
	// MaxBodySize ограничивает размер тела POST запроса
	MaxBodySize = 1 << 20

	// MaxMessageLength максимальная длина сообщения чата в символах
	MaxMessageLength = 255

	// MaxMessagesPerRequest максимальное количество сообщений в одном запросе
	MaxMessagesPerRequest = 50
)

// Config задает, как долго позиции и сообщения попадают в ответ.
// Нулевое значение отключает ограничение.
type Config struct {
	LocationTTL time.Duration
	MessageTTL  time.Duration
}

// APIHandler обслуживает единственный эндпоинт синхронизации клиентов
type APIHandler struct {
	logger    *slog.Logger
	locations storage.LocationStorage
	messages  storage.MessageStorage
	now       func() time.Time
	cfg       Config
}

// NewAPIHandler creates a new sync endpoint handler
func NewAPIHandler(logger *slog.Logger, locations storage.LocationStorage, messages storage.MessageStorage, cfg Config) *APIHandler {
	return &APIHandler{
		logger:    logger,
		locations: locations,
		messages:  messages,
		now:       time.Now,
		cfg:       cfg,
	}
}

// Get обрабатывает GET /
// Возвращает актуальные позиции и сообщения чата
func (h *APIHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.sendState(w, r)
}

// Post обрабатывает POST /
// Принимает позицию устройства и/или сообщения чата и возвращает то же, что и GET
func (h *APIHandler) Post(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	var req api.PostBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode request body", "error", err)
		sendError(w, h.logger, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validatePostBody(&req); err != nil {
		h.logger.Warn("Rejected update", "error", err, "device", req.Device)
		sendError(w, h.logger, err.Error(), http.StatusBadRequest)
		return
	}

	receivedAt := h.now()

	if req.Location != nil {
		if err := h.locations.SaveLocation(ctx, req.Device, *req.Location, receivedAt); err != nil {
			h.storageError(w, "Failed to save location", err)
			return
		}
	}

	if len(req.Messages) > 0 {
		if err := h.messages.SaveMessages(ctx, req.Device, req.Messages, receivedAt); err != nil {
			h.storageError(w, "Failed to save chat messages", err)
			return
		}
	}

	h.logger.Debug("Update accepted",
		"device", req.Device,
		"has_location", req.Location != nil,
		"messages", len(req.Messages))

	h.sendState(w, r)
}

// sendState отправляет текущее состояние в формате api.Response
func (h *APIHandler) sendState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := h.now()

	locations, err := h.locations.Locations(ctx, since(now, h.cfg.LocationTTL))
	if err != nil {
		h.storageError(w, "Failed to get locations", err)
		return
	}

	messages, err := h.messages.ChatMessages(ctx, since(now, h.cfg.MessageTTL))
	if err != nil {
		h.storageError(w, "Failed to get chat messages", err)
		return
	}

	sendJSON(w, h.logger, api.Response{
		Locations:    locations,
		ChatMessages: messages,
	}, http.StatusOK)
}

// storageError отвечает 400 на ошибки валидации хранилища и 500 на остальные
func (h *APIHandler) storageError(w http.ResponseWriter, msg string, err error) {
	if errors.Is(err, storage.ErrInvalidDeviceID) || errors.Is(err, storage.ErrInvalidMessage) {
		sendError(w, h.logger, err.Error(), http.StatusBadRequest)
		return
	}

	h.logger.Error(msg, "error", err)
	sendError(w, h.logger, "internal server error", http.StatusInternalServerError)
}

func validatePostBody(req *api.PostBody) error {
	if strings.TrimSpace(req.Device) == "" {
		return storage.ErrInvalidDeviceID
	}
	if err := validation.ValidateDeviceID(req.Device); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrInvalidDeviceID, err)
	}

	if req.Location != nil {
		if err := req.Location.Validate(); err != nil {
			return err
		}
		if err := validation.ValidateName(req.Location.Name); err != nil {
			return fmt.Errorf("%w: %v", models.ErrInvalidLocation, err)
		}
		if err := validation.ValidateColor(req.Location.Color); err != nil {
			return fmt.Errorf("%w: %v", models.ErrInvalidLocation, err)
		}
	}

	if len(req.Messages) > MaxMessagesPerRequest {
		return fmt.Errorf("%w: at most %d messages per request", storage.ErrInvalidMessage, MaxMessagesPerRequest)
	}

	for i, msg := range req.Messages {
		text := strings.TrimSpace(msg.Text)
		switch {
		case msg.Identifier == "":
			return fmt.Errorf("%w: message %d has no identifier", storage.ErrInvalidMessage, i)
		case text == "":
			return fmt.Errorf("%w: message %d is empty", storage.ErrInvalidMessage, i)
		case utf8.RuneCountInString(text) > MaxMessageLength:
			return fmt.Errorf("%w: message %d is longer than %d characters", storage.ErrInvalidMessage, i, MaxMessageLength)
		}
		req.Messages[i].Text = text
	}

	return nil
}

func since(now time.Time, ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return now.Add(-ttl)
}

