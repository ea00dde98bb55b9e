package artgen

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Render and the Surface constructors.
// None of them is retried by artgen; the surface content is undefined
// after a failed render.
var (
	// ErrInvalidDimensions is returned when a surface width or height is not positive.
	ErrInvalidDimensions = errors.New("artgen: invalid dimensions")

	// ErrInvalidConfig is returned when a GenerationConfig fails validation.
	ErrInvalidConfig = errors.New("artgen: invalid config")

	// ErrSurfaceUnavailable is returned when no drawing context can be acquired.
	ErrSurfaceUnavailable = errors.New("artgen: surface unavailable")
)

// ConfigError describes a single rejected GenerationConfig field.
// It unwraps to ErrInvalidConfig.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("artgen: invalid config: %s: %s", e.Field, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidConfig) hold.
func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

func configErrorf(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
