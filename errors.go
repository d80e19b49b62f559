// Package unitops defines the cross-cutting types shared by all packages of
// the unit-operation framework.
package unitops

import "fmt"

// A ConfigError reports a malformed configuration, such as an out-of-range
// split fraction or an invalid cost-correlation exponent. Configuration
// errors are raised by panicking at definition or build time. They are fatal
// and must not be retried.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string {
	return "configuration error: " + e.msg
}

// ConfigErrorf creates a ConfigError with a formatted message.
func ConfigErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

// PanicConfigErrorf panics with a ConfigError. Builders and correlation
// definitions use it to reject invalid parameters eagerly.
func PanicConfigErrorf(format string, args ...any) {
	panic(ConfigErrorf(format, args...))
}

// A ValidationError reports a physically invalid input discovered while
// running or designing a unit, such as a zero-flow inlet or a negative
// design metric. It propagates to the flowsheet scheduler. The inputs are
// deterministic, so retrying without changing them cannot succeed.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.msg
}

// ValidationErrorf creates a ValidationError with a formatted message.
func ValidationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}
