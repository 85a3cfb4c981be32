// Package errors provides structured error reporting for the skeleton loader.
//
// Loader operations themselves never fail: missing colors fall back to a
// default, missing children produce a fully opaque cover, and hiding an
// absent loader is a no-op. Errors only surface from configuration and scene
// loading, and from panics recovered while reacting to host events.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid or unreadable configuration.
	KindConfig
	// KindParsing indicates a scene or event parsing failure.
	KindParsing
	// KindRender indicates a rendering or encoding error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindHost indicates a failure reported by the host collaborator.
	KindHost
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindParsing:
		return "parsing"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	case KindHost:
		return "host"
	default:
		return "unknown"
	}
}

// LoaderError represents a structured error raised around the loader.
type LoaderError struct {
	// Op is the operation that failed (e.g., "skeleton.LoadConfig").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Path is the file involved, if any.
	Path string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *LoaderError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *LoaderError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "platform.AppearanceService.Update").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError represents a failure to parse a field of an input document.
type ParseError struct {
	// Field is the dotted path of the offending field.
	Field string
	// DataType is the expected type name.
	DataType string
	// Got is the actual data received.
	Got any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s as %s: got %v", e.Field, e.DataType, e.Got)
}

// ErrorHandler receives reported errors.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *LoaderError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
