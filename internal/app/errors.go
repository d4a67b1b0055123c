// Package app provides the application context shared by commands: the
// current project state, the event bus, the command executor, user
// feedback and configuration.
package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrNoProject indicates no project is currently loaded.
	ErrNoProject = errors.New("no project loaded")

	// ErrEmptyInput indicates a required text input is empty after trimming.
	ErrEmptyInput = errors.New("input cannot be empty")

	// ErrNotFound indicates an id did not resolve to an item.
	ErrNotFound = errors.New("item not found")

	// ErrWrongKind indicates an id resolved to an item of another kind.
	ErrWrongKind = errors.New("item has the wrong kind")

	// ErrCancelled indicates the user declined to continue.
	ErrCancelled = errors.New("cancelled by user")

	// ErrInvalidState indicates a command lifecycle method was called out of order.
	ErrInvalidState = errors.New("invalid command state")
)

// ErrorKind classifies a CommandError for reporting.
type ErrorKind int

const (
	// KindUnexpected is anything the command could not anticipate.
	KindUnexpected ErrorKind = iota
	// KindValidation is missing or invalid input, including no loaded project.
	KindValidation
	// KindNotFound is an id that does not resolve.
	KindNotFound
	// KindCancelled is a user decision not to proceed.
	KindCancelled
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not found"
	case KindCancelled:
		return "cancelled"
	default:
		return "unexpected"
	}
}

// Title returns the heading used when reporting the kind to the user.
func (k ErrorKind) Title() string {
	switch k {
	case KindValidation:
		return "Validation Error"
	case KindNotFound:
		return "Not Found"
	case KindCancelled:
		return "Cancelled"
	default:
		return "Error"
	}
}

// CommandError represents an error that occurred while running a command.
type CommandError struct {
	Kind   ErrorKind // Reporting class
	Op     string    // Operation name (e.g., "create folder", "undo delete")
	Target string    // Target of the operation (e.g., item id or name)
	Err    error     // Underlying error
}

// NewCommandError creates a new CommandError.
func NewCommandError(kind ErrorKind, op, target string, err error) *CommandError {
	return &CommandError{
		Kind:   kind,
		Op:     op,
		Target: target,
		Err:    err,
	}
}

// Validation returns a validation CommandError.
func Validation(op, target string, err error) *CommandError {
	return NewCommandError(KindValidation, op, target, err)
}

// NotFound returns a not-found CommandError wrapping ErrNotFound.
func NotFound(op, id string) *CommandError {
	return NewCommandError(KindNotFound, op, id, fmt.Errorf("%w: %s", ErrNotFound, id))
}

// Unexpected returns an unexpected CommandError.
func Unexpected(op, target string, err error) *CommandError {
	return NewCommandError(KindUnexpected, op, target, err)
}

// Cancelled returns a cancelled CommandError wrapping ErrCancelled.
func Cancelled(op, target string) *CommandError {
	return NewCommandError(KindCancelled, op, target, ErrCancelled)
}

func (e *CommandError) Error() string {
	if e == nil {
		return ""
	}

	var msg string
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	} else {
		msg = e.Op
	}

	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}

	return msg
}

func (e *CommandError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is implements errors.Is for CommandError.
// Matches both the wrapper itself and the wrapped error.
func (e *CommandError) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*CommandError); ok {
		return e == t
	}
	return errors.Is(e.Err, target)
}

// KindOf returns the kind of the first CommandError in err's chain.
// Errors without one are unexpected.
func KindOf(err error) ErrorKind {
	var ce *CommandError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnexpected
}
