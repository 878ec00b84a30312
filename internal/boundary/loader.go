// Package boundary loads the static zone boundary GeoJSON. The file is read
// once per process; the decoded collection is immutable afterwards and safe
// for unsynchronized concurrent reads.
package boundary

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"sentry-safety/internal/faults"
)

type Loader struct {
	path   string
	logger *slog.Logger

	once       sync.Once
	collection *FeatureCollection
	err        error
}

func NewLoader(path string, logger *slog.Logger) *Loader {
	return &Loader{
		path:   path,
		logger: logger.With("component", "boundary-loader"),
	}
}

// Load returns the boundary FeatureCollection, reading and decoding the file
// on first call only. A missing or malformed file is a DataIntegrityError and
// is not retried on later calls.
func (l *Loader) Load() (*FeatureCollection, error) {
	l.once.Do(func() {
		l.collection, l.err = l.read()
	})
	return l.collection, l.err
}

func (l *Loader) read() (*FeatureCollection, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		l.logger.Error("failed to read boundary file", "path", l.path, "error", err)
		return nil, &faults.DataIntegrityError{Source: l.path, Err: err}
	}

	var fc FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		l.logger.Error("failed to decode boundary file", "path", l.path, "error", err)
		return nil, &faults.DataIntegrityError{Source: l.path, Err: fmt.Errorf("decode: %w", err)}
	}
	if fc.Type != "FeatureCollection" || len(fc.Features) == 0 {
		l.logger.Error("boundary file has no features", "path", l.path, "type", fc.Type)
		return nil, &faults.DataIntegrityError{Source: l.path, Err: fmt.Errorf("expected non-empty FeatureCollection, got %q with %d features", fc.Type, len(fc.Features))}
	}

	l.logger.Info("loaded zone boundaries", "path", l.path, "feature_count", len(fc.Features))
	return &fc, nil
}
