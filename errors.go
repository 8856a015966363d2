package panomark

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by marker operations. All of them indicate
// programming or configuration mistakes, not transient failures: there is
// no retry path, and the marker's prior state is never partially mutated.
var (
	// ErrMissingID is reported when a marker is constructed without an id.
	ErrMissingID = errors.New("panomark: marker requires an id")

	// ErrAmbiguousVariant is reported when a configuration defines zero or
	// more than one content field, so no single variant can be resolved.
	ErrAmbiguousVariant = errors.New("panomark: marker configuration must define exactly one content field")

	// ErrVariantChange is reported when an update supplies a content field
	// belonging to a different variant than the one fixed at creation.
	ErrVariantChange = errors.New("panomark: marker variant cannot change after creation")

	// ErrDestroyed is reported when an operation is invoked on a marker
	// after Destroy.
	ErrDestroyed = errors.New("panomark: marker has been destroyed")

	// ErrDuplicateID is reported by Collection.Add when the id is taken.
	ErrDuplicateID = errors.New("panomark: marker id already in use")

	// ErrMarkerNotFound is reported by Collection.Update for unknown ids.
	ErrMarkerNotFound = errors.New("panomark: no marker with that id")
)

// ConfigError reports an invalid marker configuration. It wraps one of the
// sentinel errors above, or a parse error for malformed angle or anchor
// values, so callers can match with errors.Is.
type ConfigError struct {
	// MarkerID is the id of the marker being configured. Empty when the
	// failure is the missing id itself.
	MarkerID string

	// Field names the offending configuration field.
	Field string

	// Err is the underlying cause.
	Err error
}

func (e *ConfigError) Error() string {
	if e.MarkerID == "" {
		return fmt.Sprintf("invalid marker configuration (%s): %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid configuration for marker %q (%s): %v", e.MarkerID, e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// configErr wraps err in a ConfigError for the given marker and field.
func configErr(id, field string, err error) error {
	return &ConfigError{MarkerID: id, Field: field, Err: err}
}
