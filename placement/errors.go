// Package placement implements the constraint compiler and enumerator:
// it builds the full variable/clause system for a placement problem,
// drives a solver.Adapter, and decodes each model into a Placement.
package placement

import "github.com/pkg/errors"

// ConfigError reports an invalid Options value, detected fail-fast before
// any variable is allocated.
type ConfigError struct {
	cause error
}

func (e *ConfigError) Error() string { return "placement: config error: " + e.cause.Error() }
func (e *ConfigError) Unwrap() error { return e.cause }

func configErrorf(format string, args ...interface{}) error {
	return &ConfigError{cause: errors.Errorf(format, args...)}
}

// GeometryError reports that the geometry adapter handed the encoder a
// Position landing off-board.
type GeometryError struct {
	cause error
}

func (e *GeometryError) Error() string { return "placement: geometry error: " + e.cause.Error() }
func (e *GeometryError) Unwrap() error { return e.cause }

func geometryErrorf(format string, args ...interface{}) error {
	return &GeometryError{cause: errors.Errorf(format, args...)}
}

// NetError reports that a terminal appears in zero or more than one net,
// detected during encoding. Fatal.
type NetError struct {
	cause error
}

func (e *NetError) Error() string { return "placement: net error: " + e.cause.Error() }
func (e *NetError) Unwrap() error { return e.cause }

func netErrorf(format string, args ...interface{}) error {
	return &NetError{cause: errors.Errorf(format, args...)}
}

// EncoderInvariant reports that a post-solve sanity check failed (e.g.
// not exactly one position per component in a decoded model), indicating
// a bug in the encoder or the solver backend, never in caller input.
// Fatal.
type EncoderInvariant struct {
	cause error
}

func (e *EncoderInvariant) Error() string { return "placement: encoder invariant violated: " + e.cause.Error() }
func (e *EncoderInvariant) Unwrap() error { return e.cause }

func encoderInvariantf(format string, args ...interface{}) error {
	return &EncoderInvariant{cause: errors.Errorf(format, args...)}
}
