package quantum

import (
	"errors"
	"fmt"
)

// Configuration errors, reported eagerly at construction or run start.
// Numerical degradation mid-run (NaN, blow-up before imaginary-time
// convergence) is never an error; it surfaces only in the output.
var (
	// ErrUnknownIntegrator indicates an unrecognized integration method name.
	ErrUnknownIntegrator = errors.New("quantum: unknown integration method")

	// ErrGridParams indicates invalid grid construction parameters.
	ErrGridParams = errors.New("quantum: invalid grid parameters")

	// ErrConfig indicates an invalid simulation configuration value.
	ErrConfig = errors.New("quantum: invalid configuration")

	// ErrShapeMismatch indicates a wavefunction or potential whose size
	// does not match the grid.
	ErrShapeMismatch = errors.New("quantum: array shape does not match grid")
)

// ConfigError wraps a configuration sentinel with detail.
type ConfigError struct {
	Detail  string
	Wrapped error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s", e.Wrapped, e.Detail)
}

func (e *ConfigError) Unwrap() error {
	return e.Wrapped
}

func NewConfigError(wrapped error, format string, args ...any) *ConfigError {
	return &ConfigError{Detail: fmt.Sprintf(format, args...), Wrapped: wrapped}
}
