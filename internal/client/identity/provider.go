// Package identity provides the device identifier sent with every request.
//
// The identifier is derived from a random per-installation seed and the
// current UTC date, so it rotates daily and riders cannot be tracked across
// days by the server.
package identity

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"github.com/iudanet/criticalmaps/internal/client/storage"
)

// IDLength длина идентификатора в hex символах
const IDLength = 32

const dayLayout = "2006-01-02"

// Provider выдает стабильный в пределах суток идентификатор устройства
type Provider struct {
	now      func() time.Time
	seed     string
	day      string
	cachedID string
	mu       sync.Mutex
}

// New loads the device seed from meta, generating and saving a new one on
// first start.
func New(ctx context.Context, meta storage.MetadataStorage) (*Provider, error) {
	seed, err := meta.GetDeviceSeed(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrSeedNotFound) {
			return nil, fmt.Errorf("failed to get device seed: %w", err)
		}

		// Первый запуск - генерируем seed
		seed = uuid.New().String()
		if err := meta.SaveDeviceSeed(ctx, seed); err != nil {
			return nil, fmt.Errorf("failed to save device seed: %w", err)
		}
	}

	return NewWithSeed(seed), nil
}

// NewWithSeed creates a provider for a known seed. Used in tests.
func NewWithSeed(seed string) *Provider {
	return &Provider{
		seed: seed,
		now:  time.Now,
	}
}

// ID returns the identifier for the current UTC day.
func (p *Provider) ID() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	day := p.now().UTC().Format(dayLayout)
	if day != p.day {
		p.day = day
		p.cachedID = deriveID(p.seed, day)
	}
	return p.cachedID
}

// deriveID хеширует seed и дату через BLAKE2b-256
func deriveID(seed, day string) string {
	sum := blake2b.Sum256([]byte(seed + day))
	return hex.EncodeToString(sum[:])[:IDLength]
}
