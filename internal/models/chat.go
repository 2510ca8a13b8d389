package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// ChatMessage представляет сообщение чата в том виде, в котором его хранит сервер.
type ChatMessage struct {
	Message   string  `json:"message"`
	Timestamp float64 `json:"timestamp"`
}

// SendChatMessage представляет исходящее сообщение.
// Identifier генерируется клиентом и является ключом в ответе сервера.
type SendChatMessage struct {
	Text       string  `json:"text"`
	Identifier string  `json:"identifier"`
	Timestamp  float64 `json:"timestamp"`
}

// NewSendChatMessage creates an outgoing message with a fresh identifier
// and the current time as timestamp.
func NewSendChatMessage(text string) SendChatMessage {
	return SendChatMessage{
		Text:       text,
		Identifier: uuid.New().String(),
		Timestamp:  UnixTimestamp(time.Now()),
	}
}

// Time returns the message timestamp as time.Time
func (m ChatMessage) Time() time.Time {
	return TimeFromUnix(m.Timestamp)
}

// StoredMessage is a chat message together with its identifier.
type StoredMessage struct {
	ID string `json:"id"`
	ChatMessage
}

// UnixTimestamp converts t to fractional unix seconds used on the wire.
func UnixTimestamp(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}

// TimeFromUnix converts fractional unix seconds back to time.Time.
func TimeFromUnix(ts float64) time.Time {
	sec, frac := math.Modf(ts)
	return time.Unix(int64(sec), int64(frac*1e9))
}
