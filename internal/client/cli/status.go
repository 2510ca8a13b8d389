package cli

import (
	"context"
	"fmt"
	"text/template"
	"time"

	"github.com/iudanet/criticalmaps/internal/models"
)

var statusTmpl = template.Must(template.New("status").
	Funcs(template.FuncMap{"formatTimestamp": formatTimestamp}).
	Parse(statusTemplate))

type statusView struct {
	LastUpdate time.Time
	Server     string
	Device     string
	Age        string
	Riders     []models.Rider
	Messages   []models.StoredMessage
}

// runStatus печатает локальное состояние после последнего обновления
func (c *Cli) runStatus(ctx context.Context) error {
	riders, err := c.store.Riders(ctx)
	if err != nil {
		return fmt.Errorf("failed to get riders: %w", err)
	}

	messages, err := c.store.ChatMessages(ctx)
	if err != nil {
		return fmt.Errorf("failed to get chat messages: %w", err)
	}

	lastUpdate, err := c.store.LastUpdate(ctx)
	if err != nil {
		return fmt.Errorf("failed to get last update time: %w", err)
	}

	view := statusView{
		LastUpdate: lastUpdate,
		Server:     c.serverURL,
		Device:     c.identity.ID(),
		Age:        formatAge(c.now().Sub(lastUpdate)),
		Riders:     riders,
		Messages:   messages,
	}

	if err := statusTmpl.Execute(c.io, view); err != nil {
		return fmt.Errorf("failed to render status: %w", err)
	}
	return nil
}
