package api

import "github.com/iudanet/criticalmaps/internal/models"

// LocationPostBody представляет отчет о позиции устройства (POST /)
type LocationPostBody struct {
	Device   string          `json:"device"`
	Location models.Location `json:"location"`
}

// MessagesPostBody представляет пакет исходящих сообщений чата (POST /)
type MessagesPostBody struct {
	Device   string                   `json:"device"`
	Messages []models.SendChatMessage `json:"messages"`
}

// PostBody объединение обоих видов POST запроса, как его разбирает сервер.
// Клиент всегда отправляет только одну из частей.
type PostBody struct {
	Location *models.Location        `json:"location,omitempty"`
	Device   string                   `json:"device"`
	Messages []models.SendChatMessage `json:"messages,omitempty"`
}

// Response представляет ответ сервера на GET и POST.
// Locations - последние позиции по device id, ChatMessages - сообщения по identifier.
type Response struct {
	Locations    map[string]models.Location    `json:"locations"`
	ChatMessages map[string]models.ChatMessage `json:"chatMessages"`
}

// AcceptedMessages returns the chat messages of the response whose
// identifiers belong to sent. Messages from other devices are dropped.
func (r *Response) AcceptedMessages(sent []models.SendChatMessage) map[string]models.ChatMessage {
	accepted := make(map[string]models.ChatMessage, len(sent))
	if r == nil {
		return accepted
	}
	for _, msg := range sent {
		if chat, ok := r.ChatMessages[msg.Identifier]; ok {
			accepted[msg.Identifier] = chat
		}
	}
	return accepted
}

// ErrorResponse представляет ошибку, возвращаемую сервером
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
