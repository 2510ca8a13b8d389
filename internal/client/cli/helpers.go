package cli

import (
	"time"

	"github.com/iudanet/criticalmaps/internal/models"
)

// formatTimestamp форматирует время сообщения в локальной зоне
func formatTimestamp(ts float64) string {
	return models.TimeFromUnix(ts).Local().Format("15:04:05")
}

// formatAge округляет возраст до секунд, отрицательный возраст считаем нулевым
func formatAge(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return d.Round(time.Second).String()
}
