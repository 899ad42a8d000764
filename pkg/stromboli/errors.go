package stromboli

import (
	"errors"
	"fmt"
)

// ConfigError represents a mistake in the transition configuration supplied
// by the consuming application (an ambiguous rule table, a malformed rule
// file, an unknown style preset). These indicate a programming error, not a
// runtime condition, and are surfaced immediately rather than absorbed.
//
// Recoverable runtime conditions (a failed geometry query, an unmount racing
// a measurement) are never ConfigErrors; they degrade to a missing or
// imperfect animation and are logged, not returned.
type ConfigError struct {
	Op  string // Operation that failed (e.g., "match_rule", "load_rules")
	Err error  // Underlying error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("stromboli: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("stromboli: %s", e.Op)
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
