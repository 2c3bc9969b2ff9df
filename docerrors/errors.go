// Package docerrors provides structured error types for routedoc.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParseError: malformed version strings in constraints or requests
//   - NoMatchingVersionError: a version map has no entry for a requested version
//   - CyclicDescriptorError: a data-shape descriptor references itself transitively
//   - LinkError: a single endpoint could not be compiled or inserted
//   - ConfigError: invalid configuration or input options
//
// # Usage with errors.Is
//
//	doc, err := gen.Generate("1.7")
//	if err != nil {
//	    if errors.Is(err, docerrors.ErrNoMatchingVersion) {
//	        // Surface as HTTP 400: the requested version is not served
//	    }
//	}
package docerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a malformed version string.
	ErrParse = errors.New("parse error")

	// ErrNoMatchingVersion indicates no version map entry matched.
	ErrNoMatchingVersion = errors.New("no matching version")

	// ErrCyclicDescriptor indicates a descriptor nests itself transitively.
	ErrCyclicDescriptor = errors.New("cyclic descriptor")

	// ErrLink indicates a single endpoint failed to compile.
	ErrLink = errors.New("link compilation error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to parse a version string, either inside a
// declared constraint or in a runtime version request.
type ParseError struct {
	// Input is the version or clause text that failed to parse
	Input string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Input != "" {
		msg += fmt.Sprintf(" in %q", e.Input)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// NoMatchingVersionError is returned when no entry of a version map matches
// the requested runtime version. It is never recovered silently; the caller
// decides how to surface it (typically HTTP 400).
type NoMatchingVersionError struct {
	// Requested is the runtime version string that failed to match
	Requested string
}

// Error returns a human-readable error message.
func (e *NoMatchingVersionError) Error() string {
	return fmt.Sprintf("no matching version for request version %q", e.Requested)
}

// Is reports whether target matches this error type.
func (e *NoMatchingVersionError) Is(target error) bool {
	return target == ErrNoMatchingVersion
}

// CyclicDescriptorError is returned when response schema composition finds a
// descriptor that nests itself, directly or transitively.
type CyclicDescriptorError struct {
	// Descriptor is the name of the descriptor where the cycle closed
	Descriptor string
	// Path is the field path that led back to the descriptor, if known
	Path string
}

// Error returns a human-readable error message.
func (e *CyclicDescriptorError) Error() string {
	msg := "cyclic descriptor"
	if e.Descriptor != "" {
		msg += ": " + e.Descriptor
	}
	if e.Path != "" {
		msg += " via " + e.Path
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *CyclicDescriptorError) Is(target error) bool {
	return target == ErrCyclicDescriptor
}

// LinkError represents an isolated per-endpoint compilation failure, such as
// a tree insertion collision. Document generation recovers from it by
// skipping the affected link.
type LinkError struct {
	// Path is the URL template of the endpoint
	Path string
	// Method is the HTTP method of the endpoint
	Method string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *LinkError) Error() string {
	msg := "link compilation error"
	if e.Method != "" && e.Path != "" {
		msg += fmt.Sprintf(" for %s %s", e.Method, e.Path)
	} else if e.Path != "" {
		msg += " for " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *LinkError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *LinkError) Is(target error) bool {
	return target == ErrLink
}

// ConfigError represents an invalid configuration or input.
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

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
