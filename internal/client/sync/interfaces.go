package sync

import (
	"context"

	"github.com/iudanet/criticalmaps/internal/client/lease"
	"github.com/iudanet/criticalmaps/internal/models"
	"github.com/iudanet/criticalmaps/pkg/api"
)

//go:generate moq -out transport_mock.go . Transport
//go:generate moq -out store_mock.go . Store
//go:generate moq -out location_mock.go . LocationSource
//go:generate moq -out identity_mock.go . IdentityProvider
//go:generate moq -out host_mock.go . ExecutionHost

// Transport выполняет запросы к серверу и декодирует ответ.
// Ошибка сети и ошибка декодирования для контроллера равнозначны.
type Transport interface {
	Get(ctx context.Context, endpoint string) (*api.Response, error)
	Post(ctx context.Context, endpoint string, body []byte) (*api.Response, error)

	// CancelActiveRequestsIfNeeded best-effort отмена всех запросов в полете
	CancelActiveRequestsIfNeeded()
}

// Store принимает декодированный ответ и сливает его в локальное состояние
type Store interface {
	Update(ctx context.Context, resp *api.Response) error
}

// LocationSource отдает текущую позицию устройства, если она известна
type LocationSource interface {
	CurrentLocation() (models.Location, bool)
}

// IdentityProvider отдает идентификатор устройства, читается на каждый запрос
type IdentityProvider interface {
	ID() string
}

// ExecutionHost выдает аренду на продленное выполнение для отправки сообщений
type ExecutionHost interface {
	Begin(expiry func()) lease.Token
	End(token lease.Token)
}
