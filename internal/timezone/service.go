// Package timezone resolves IANA timezones from coordinates. The safety
// pipeline uses it to decide what "today" means for the boundary region when
// a request omits the month/day to annotate for.
package timezone

import (
	"fmt"
	"sync"
	"time"

	"github.com/ringsaturn/tzf"
)

// Service provides timezone lookup functionality.
type Service interface {
	GetTimezone(latitude, longitude float64) (string, error)
	// LocalNow returns the current wall-clock time at the given
	// coordinates, falling back to UTC when no timezone matches.
	LocalNow(latitude, longitude float64) time.Time
}

type service struct {
	finder tzf.F
	mu     sync.RWMutex
}

var (
	instance *service
	once     sync.Once
)

// NewService creates or returns the singleton timezone service.
// Uses singleton pattern because tzf.Finder loads timezone data into memory (~50MB)
func NewService() (Service, error) {
	var err error
	once.Do(func() {
		finder, findErr := tzf.NewDefaultFinder()
		if findErr != nil {
			err = fmt.Errorf("failed to initialize timezone finder: %w", findErr)
			return
		}
		instance = &service{
			finder: finder,
		}
	})
	if err != nil {
		return nil, err
	}
	return instance, nil
}

// GetTimezone returns the IANA timezone name for the given coordinates,
// e.g. "Asia/Kolkata".
func (s *service) GetTimezone(latitude, longitude float64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	timezone := s.finder.GetTimezoneName(longitude, latitude)
	if timezone == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", latitude, longitude)
	}

	return timezone, nil
}

func (s *service) LocalNow(latitude, longitude float64) time.Time {
	name, err := s.GetTimezone(latitude, longitude)
	if err != nil {
		return time.Now().UTC()
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Now().UTC()
	}
	return time.Now().In(loc)
}
