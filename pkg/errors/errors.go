// Package errors provides structured error reporting for the layout core.
//
// The measure and layout passes never return errors: they report through the
// global handler and degrade to a well-defined geometry instead.
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
	// KindNullGuard indicates a missing collaborator such as an absent
	// layout algorithm, layout property or geometry node.
	KindNullGuard
	// KindInvalidInput indicates a malformed constraint or property that
	// was clamped before use.
	KindInvalidInput
	// KindOverflow indicates children that could not be fitted even after
	// shrinking and displayPriority culling.
	KindOverflow
	// KindConfig indicates an invalid configuration file.
	KindConfig
	// KindScene indicates an invalid scene document.
	KindScene
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindNullGuard:
		return "null_guard"
	case KindInvalidInput:
		return "invalid_input"
	case KindOverflow:
		return "overflow"
	case KindConfig:
		return "config"
	case KindScene:
		return "scene"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// LayoutError represents a structured error in the layout core.
type LayoutError struct {
	// Op is the operation that failed (e.g., "flex.Measure").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Node is the tag and index of the node involved, if any.
	Node string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *LayoutError) Error() string {
	if e.Node != "" {
		return fmt.Sprintf("%s [%s] node=%s: %v", e.Op, e.Kind, e.Node, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *LayoutError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "cmd.measure").
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

// ErrorHandler receives errors reported by the layout core.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *LayoutError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
