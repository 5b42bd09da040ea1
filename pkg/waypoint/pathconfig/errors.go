package pathconfig

import (
	"errors"
	"fmt"
)

// ErrUnknownFormat is returned when a configuration's format cannot be determined.
var ErrUnknownFormat = errors.New("pathconfig: unknown format")

// ErrDocumentTooLarge is returned when a fetched configuration exceeds the size limit.
var ErrDocumentTooLarge = errors.New("pathconfig: document too large")

// ConfigError reports a failure to load, fetch or compile a path configuration.
type ConfigError struct {
	Op  string // Operation that failed (e.g., "read", "decode", "compile", "fetch")
	Err error  // Underlying error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pathconfig: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("pathconfig: %s", e.Op)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new configuration error.
func NewConfigError(op string, err error) *ConfigError {
	return &ConfigError{Op: op, Err: err}
}

// IsConfigError checks if an error is a configuration error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
