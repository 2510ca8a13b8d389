package location

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/criticalmaps/internal/models"
)

// Source хранит последнюю известную позицию устройства.
// Позицию выставляет внешний источник (флаги CLI, поток координат),
// контроллер синхронизации только читает ее.
type Source struct {
	current *models.Location
	now     func() time.Time
	name    string
	color   string
	maxAge  time.Duration
	static  bool
	mu      sync.RWMutex
}

// NewSource creates an empty source. Positions older than maxAge are
// reported as absent; zero maxAge disables the check.
func NewSource(maxAge time.Duration) *Source {
	return &Source{
		now:    time.Now,
		maxAge: maxAge,
	}
}

// NewStaticSource creates a source that always reports loc, stamped with
// the time of the read.
func NewStaticSource(loc models.Location) (*Source, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}
	s := NewSource(0)
	s.static = true
	s.current = &loc
	return s, nil
}

// WithProfile sets the name and color reported with positions that carry
// none of their own.
func (s *Source) WithProfile(name, color string) *Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
	s.color = color
	return s
}

// Set replaces the current position. A zero timestamp is replaced with now.
func (s *Source) Set(loc models.Location) error {
	if err := loc.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if loc.Timestamp == 0 {
		loc.Timestamp = models.UnixTimestamp(s.now())
	}
	s.current = &loc
	return nil
}

// Clear forgets the current position
func (s *Source) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// CurrentLocation returns a copy of the current position, if any.
func (s *Source) CurrentLocation() (models.Location, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return models.Location{}, false
	}

	loc := *s.current
	if loc.Name == "" {
		loc.Name = s.name
	}
	if loc.Color == "" {
		loc.Color = s.color
	}

	now := s.now()
	if s.static {
		loc.Timestamp = models.UnixTimestamp(now)
		return loc, true
	}

	if s.maxAge > 0 && now.Sub(loc.Time()) > s.maxAge {
		return models.Location{}, false
	}
	return loc, true
}

// Feed reads positions from r, one "latitude,longitude" pair per line.
// An empty line clears the position. Feed returns when r is exhausted
// or ctx is cancelled.
func (s *Source) Feed(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line++

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			s.Clear()
			continue
		}

		loc, err := ParseCoordinates(text)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if err := s.Set(loc); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read positions: %w", err)
	}
	return nil
}

// ParseCoordinates parses "latitude,longitude" into a location without timestamp
func ParseCoordinates(text string) (models.Location, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return models.Location{}, fmt.Errorf("expected \"latitude,longitude\", got %q", text)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return models.Location{}, fmt.Errorf("invalid latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return models.Location{}, fmt.Errorf("invalid longitude: %w", err)
	}

	loc := models.Location{Latitude: lat, Longitude: lon}
	if err := loc.Validate(); err != nil {
		return models.Location{}, err
	}
	return loc, nil
}
