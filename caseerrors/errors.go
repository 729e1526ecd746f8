package caseerrors

import (
	"errors"
	"fmt"

	"github.com/erraggy/textcase/internal/stringutil"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrConfig indicates an invalid configuration or input option.
	ErrConfig = errors.New("textcase: invalid option")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("textcase: limit exceeded")
)

// ConfigError represents an invalid configuration or input.
// This includes unknown case styles, unsupported output formats, and
// missing or conflicting input sources.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a message of the form
// `textcase: invalid style "snake": must be one of title, pascal, camel`.
func (e *ConfigError) Error() string {
	option := e.Option
	if option == "" {
		option = "option"
	}
	head := "textcase: invalid " + option
	switch v := e.Value.(type) {
	case nil:
	case string:
		head += fmt.Sprintf(" %q", v)
	default:
		head += fmt.Sprintf(" (got %v)", v)
	}

	var cause string
	if e.Cause != nil {
		cause = e.Cause.Error()
	}
	return stringutil.CombineWith(": ", []string{head, e.Message, cause})
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// ResourceLimitError represents a request that exceeds a configured limit.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded
	// Common values: "batch_size", "input_bytes"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a message of the form
// "textcase: batch_size 150 exceeds limit 100: split the texts".
func (e *ResourceLimitError) Error() string {
	resource := e.ResourceType
	if resource == "" {
		resource = "resource"
	}

	var head string
	switch {
	case e.Limit > 0 && e.Actual > 0:
		head = fmt.Sprintf("textcase: %s %d exceeds limit %d", resource, e.Actual, e.Limit)
	case e.Limit > 0:
		head = fmt.Sprintf("textcase: %s exceeds limit %d", resource, e.Limit)
	default:
		head = "textcase: " + resource + " limit exceeded"
	}
	return stringutil.CombineWith(": ", []string{head, e.Message})
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}
