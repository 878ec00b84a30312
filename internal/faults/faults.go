// Package faults defines the typed failure taxonomy shared by the safety and
// routing services. Handlers map these onto HTTP statuses; services create
// them with enough context (zone id, provider status, stage) to diagnose a
// failure without retrying it.
package faults

import (
	"errors"
	"fmt"
)

// ConfigError reports a missing or unusable credential or artifact. Fatal,
// never retried.
type ConfigError struct {
	Setting string
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Setting, e.Reason)
}

// DataIntegrityError reports a missing or malformed static dataset, such as
// the boundary file. Fatal at startup or on first access.
type DataIntegrityError struct {
	Source string
	Err    error
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("data integrity error in %s: %v", e.Source, e.Err)
}

func (e *DataIntegrityError) Unwrap() error { return e.Err }

// UpstreamError reports an unreachable or failing external provider. The
// provider's own status code is preserved so callers can apply policy
// (e.g. the routing fallback) against it.
type UpstreamError struct {
	Provider string
	Status   int
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s returned status %d: %v", e.Provider, e.Status, e.Err)
	}
	return fmt.Sprintf("%s unavailable: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// InvalidInput rejects a malformed request before it reaches the pipeline.
type InvalidInput struct {
	Field  string
	Reason string
}

func (e *InvalidInput) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ErrNotFound marks lookups that returned no result, such as a geocoding
// query with no match.
var ErrNotFound = errors.New("not found")

// NewInvalidInput builds an InvalidInput for the given field.
func NewInvalidInput(field, reason string) error {
	return &InvalidInput{Field: field, Reason: reason}
}
