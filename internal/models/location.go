package models

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidLocation возвращается для координат вне допустимого диапазона
var ErrInvalidLocation = errors.New("invalid location")

// Location представляет позицию устройства в момент времени.
// Координаты в градусах WGS84, Timestamp в unix-секундах.
type Location struct {
	Name      string  `json:"name,omitempty"`  // Name опциональное имя участника
	Color     string  `json:"color,omitempty"` // Color опциональный цвет маркера на карте (hex)
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Timestamp float64 `json:"timestamp"`
}

// Time returns the location timestamp as time.Time.
func (l Location) Time() time.Time {
	return TimeFromUnix(l.Timestamp)
}

// Validate checks that the coordinates are finite and inside WGS84 bounds.
func (l Location) Validate() error {
	if math.IsNaN(l.Latitude) || math.IsNaN(l.Longitude) || math.IsInf(l.Latitude, 0) || math.IsInf(l.Longitude, 0) {
		return fmt.Errorf("%w: coordinates must be finite", ErrInvalidLocation)
	}
	if l.Latitude < -90 || l.Latitude > 90 {
		return fmt.Errorf("%w: latitude %f out of range", ErrInvalidLocation, l.Latitude)
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return fmt.Errorf("%w: longitude %f out of range", ErrInvalidLocation, l.Longitude)
	}
	return nil
}

// Rider представляет последнюю известную позицию устройства.
type Rider struct {
	DeviceID string   `json:"device_id"`
	Location Location `json:"location"`
}

// IsNewerThan определяет, какая из двух позиций одного устройства свежее.
// Last-Write-Wins по Timestamp; при равных Timestamp побеждает
// лексикографически больший DeviceID, чтобы результат был детерминированным.
func (r *Rider) IsNewerThan(other *Rider) bool {
	if r.Location.Timestamp > other.Location.Timestamp {
		return true
	}
	if r.Location.Timestamp < other.Location.Timestamp {
		return false
	}
	return r.DeviceID > other.DeviceID
}
