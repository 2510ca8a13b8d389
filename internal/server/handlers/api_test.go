package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/criticalmaps/internal/models"
	"github.com/iudanet/criticalmaps/internal/server/storage"
	"github.com/iudanet/criticalmaps/pkg/api"
)

var testNow = time.Date(2026, 5, 29, 19, 0, 0, 0, time.UTC)

// newTestAPIHandler создает handler с моками, которые по умолчанию ничего не хранят
func newTestAPIHandler(cfg Config) (*APIHandler, *storage.LocationStorageMock, *storage.MessageStorageMock) {
	locations := &storage.LocationStorageMock{
		SaveLocationFunc: func(ctx context.Context, deviceID string, loc models.Location, receivedAt time.Time) error {
			return nil
		},
		LocationsFunc: func(ctx context.Context, since time.Time) (map[string]models.Location, error) {
			return map[string]models.Location{}, nil
		},
	}
	messages := &storage.MessageStorageMock{
		SaveMessagesFunc: func(ctx context.Context, deviceID string, msgs []models.SendChatMessage, receivedAt time.Time) error {
			return nil
		},
		ChatMessagesFunc: func(ctx context.Context, since time.Time) (map[string]models.ChatMessage, error) {
			return map[string]models.ChatMessage{}, nil
		},
	}

	h := NewAPIHandler(setupTestLogger(), locations, messages, cfg)
	h.now = func() time.Time { return testNow }
	return h, locations, messages
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) api.ErrorResponse {
	t.Helper()

	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestAPIHandler_Get(t *testing.T) {
	h, locations, messages := newTestAPIHandler(Config{LocationTTL: 5 * time.Minute, MessageTTL: time.Hour})

	locations.LocationsFunc = func(ctx context.Context, since time.Time) (map[string]models.Location, error) {
		return map[string]models.Location{
			"device-1": {Latitude: 52.52, Longitude: 13.405, Timestamp: 1780081200},
		}, nil
	}
	messages.ChatMessagesFunc = func(ctx context.Context, since time.Time) (map[string]models.ChatMessage, error) {
		return map[string]models.ChatMessage{
			"msg-1": {Message: "hello", Timestamp: 1780081100},
		}, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.Get(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp api.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 52.52, resp.Locations["device-1"].Latitude, 1e-9)
	assert.Equal(t, "hello", resp.ChatMessages["msg-1"].Message)

	// Окна выборки считаются от текущего времени
	require.Len(t, locations.LocationsCalls(), 1)
	assert.Equal(t, testNow.Add(-5*time.Minute), locations.LocationsCalls()[0].Since)
	require.Len(t, messages.ChatMessagesCalls(), 1)
	assert.Equal(t, testNow.Add(-time.Hour), messages.ChatMessagesCalls()[0].Since)
}

func TestAPIHandler_Get_NoTTL(t *testing.T) {
	h, locations, messages := newTestAPIHandler(Config{})

	w := httptest.NewRecorder()
	h.Get(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"locations":{},"chatMessages":{}}`, w.Body.String())
	assert.True(t, locations.LocationsCalls()[0].Since.IsZero())
	assert.True(t, messages.ChatMessagesCalls()[0].Since.IsZero())
}

func TestAPIHandler_Get_StorageError(t *testing.T) {
	h, locations, _ := newTestAPIHandler(Config{})
	locations.LocationsFunc = func(ctx context.Context, since time.Time) (map[string]models.Location, error) {
		return nil, errors.New("disk I/O error")
	}

	w := httptest.NewRecorder()
	h.Get(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "internal server error", resp.Message)
	assert.NotContains(t, w.Body.String(), "disk I/O")
}

func TestAPIHandler_Post_Location(t *testing.T) {
	h, locations, messages := newTestAPIHandler(Config{})

	body := `{"device":"device-1","location":{"latitude":52.52,"longitude":13.405,"timestamp":1780081200,"name":"anna"}}`
	w := httptest.NewRecorder()
	h.Post(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, w.Code)

	calls := locations.SaveLocationCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "device-1", calls[0].DeviceID)
	assert.Equal(t, "anna", calls[0].Loc.Name)
	assert.Equal(t, testNow, calls[0].ReceivedAt)
	assert.Empty(t, messages.SaveMessagesCalls())

	// Ответ на POST такой же, как на GET
	assert.Len(t, locations.LocationsCalls(), 1)
	assert.Len(t, messages.ChatMessagesCalls(), 1)
}

func TestAPIHandler_Post_Messages(t *testing.T) {
	h, locations, messages := newTestAPIHandler(Config{})

	body := `{"device":"device-1","messages":[{"text":"  hi there  ","identifier":"m1","timestamp":1780081200}]}`
	w := httptest.NewRecorder()
	h.Post(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, locations.SaveLocationCalls())

	calls := messages.SaveMessagesCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "device-1", calls[0].DeviceID)
	require.Len(t, calls[0].Messages, 1)
	assert.Equal(t, "hi there", calls[0].Messages[0].Text)
	assert.Equal(t, "m1", calls[0].Messages[0].Identifier)
}

func TestAPIHandler_Post_EmptyMessagesIsPoll(t *testing.T) {
	h, locations, messages := newTestAPIHandler(Config{})

	w := httptest.NewRecorder()
	h.Post(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"device":"device-1","messages":[]}`)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, locations.SaveLocationCalls())
	assert.Empty(t, messages.SaveMessagesCalls())
	assert.Len(t, messages.ChatMessagesCalls(), 1)
}

func TestAPIHandler_Post_Invalid(t *testing.T) {
	longText := strings.Repeat("я", MaxMessageLength+1)

	var tooMany strings.Builder
	tooMany.WriteString(`{"device":"d","messages":[`)
	for i := 0; i <= MaxMessagesPerRequest; i++ {
		if i > 0 {
			tooMany.WriteString(",")
		}
		fmt.Fprintf(&tooMany, `{"text":"x","identifier":"m%d","timestamp":1}`, i)
	}
	tooMany.WriteString("]}")

	tests := []struct {
		name            string
		body            string
		expectedMessage string
	}{
		{
			name:            "Malformed JSON",
			body:            `{"device":`,
			expectedMessage: "invalid request body",
		},
		{
			name:            "Missing device",
			body:            `{"location":{"latitude":1,"longitude":2,"timestamp":3}}`,
			expectedMessage: "invalid device id",
		},
		{
			name:            "Latitude out of range",
			body:            `{"device":"d","location":{"latitude":91,"longitude":2,"timestamp":3}}`,
			expectedMessage: "invalid location",
		},
		{
			name:            "Malformed device id",
			body:            `{"device":"../device","location":{"latitude":1,"longitude":2,"timestamp":3}}`,
			expectedMessage: "device id can only contain",
		},
		{
			name:            "Bad marker color",
			body:            `{"device":"d","location":{"latitude":1,"longitude":2,"timestamp":3,"color":"red"}}`,
			expectedMessage: "color must be a hex value",
		},
		{
			name:            "Message without identifier",
			body:            `{"device":"d","messages":[{"text":"hi","timestamp":1}]}`,
			expectedMessage: "has no identifier",
		},
		{
			name:            "Blank message",
			body:            `{"device":"d","messages":[{"text":"   ","identifier":"m1","timestamp":1}]}`,
			expectedMessage: "is empty",
		},
		{
			name:            "Message too long",
			body:            `{"device":"d","messages":[{"text":"` + longText + `","identifier":"m1","timestamp":1}]}`,
			expectedMessage: "longer than",
		},
		{
			name:            "Too many messages",
			body:            tooMany.String(),
			expectedMessage: "at most",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, locations, messages := newTestAPIHandler(Config{})

			w := httptest.NewRecorder()
			h.Post(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, "Bad Request", resp.Error)
			assert.Contains(t, resp.Message, tt.expectedMessage)

			assert.Empty(t, locations.SaveLocationCalls())
			assert.Empty(t, messages.SaveMessagesCalls())
		})
	}
}

func TestAPIHandler_Post_BodyTooLarge(t *testing.T) {
	h, _, _ := newTestAPIHandler(Config{})

	body := `{"device":"d","pad":"` + strings.Repeat("x", MaxBodySize) + `"}`
	w := httptest.NewRecorder()
	h.Post(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPIHandler_Post_StorageErrors(t *testing.T) {
	tests := []struct {
		err            error
		name           string
		expectedStatus int
	}{
		{
			name:           "Validation error from storage",
			err:            fmt.Errorf("%w: duplicate text", storage.ErrInvalidMessage),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Internal storage error",
			err:            errors.New("database is locked"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, messages := newTestAPIHandler(Config{})
			messages.SaveMessagesFunc = func(ctx context.Context, deviceID string, msgs []models.SendChatMessage, receivedAt time.Time) error {
				return tt.err
			}

			body := `{"device":"d","messages":[{"text":"hi","identifier":"m1","timestamp":1}]}`
			w := httptest.NewRecorder()
			h.Post(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

			assert.Equal(t, tt.expectedStatus, w.Code)
			// Состояние не отправляется после ошибки записи
			assert.Empty(t, messages.ChatMessagesCalls())
		})
	}
}
