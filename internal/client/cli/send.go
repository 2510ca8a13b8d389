package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/criticalmaps/internal/client/location"
	"github.com/iudanet/criticalmaps/internal/client/sync"
	"github.com/iudanet/criticalmaps/internal/models"
)

// runSend отправляет одно сообщение чата и ждет подтверждения сервера
func (c *Cli) runSend(ctx context.Context, args []string) error {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		var err error
		text, err = c.io.ReadInput("Message: ")
		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}
	}
	if text == "" {
		return errors.New("message text is required")
	}

	msg := models.NewSendChatMessage(text)

	// Отправка не зависит от позиции, источник остается пустым
	controller := c.newController(sync.Config{}, location.NewSource(0))

	accepted, err := controller.SendAndWait(ctx, []models.SendChatMessage{msg})
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	if _, ok := accepted[msg.Identifier]; !ok {
		c.io.Println("⚠️  Message was sent but the server did not confirm it.")
		return nil
	}

	c.io.Printf("✓ Message sent (%s)\n", msg.Identifier)
	return nil
}
