// Package compileerrors holds the five fatal error kinds spec.md §7 names.
// The non-fatal register-exhaustion warning is not an error value here; the
// code generator logs it directly. Grounded on the teacher's
// internal/errors.SentraError (type tag + message, formatted once at the
// reporting boundary) and wrapped with github.com/pkg/errors so any
// underlying Go error (e.g. a failed os.Create) keeps a stack trace the same
// way SentraError carries a call stack.
package compileerrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind tags one of the five fatal error categories spec.md §7 enumerates.
type Kind string

const (
	Duplicate         Kind = "DuplicateDeclaration"
	Undeclared        Kind = "UndeclaredReference"
	IOFailure         Kind = "IOFailure"
	ResourceExhausted Kind = "ResourceExhaustion"
	Internal          Kind = "InternalConsistency"
)

// CompileError is a fatal, single-message compiler error. Propagation policy
// (spec.md §7): the first fatal error terminates the compilation; there is
// no recovery or accumulation.
type CompileError struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *CompileError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *CompileError) Unwrap() error { return e.cause }

// New builds a CompileError with a stack trace attached via pkg/errors, so
// that wherever it eventually surfaces (the Compilation driver's reporting
// boundary) a full trace is available without this package hand-rolling
// frame capture.
func New(kind Kind, format string, args ...interface{}) *CompileError {
	msg := fmt.Sprintf(format, args...)
	return &CompileError{Kind: kind, Message: msg, cause: errors.New(msg)}
}

// Wrap attaches a Kind and message to an underlying error (e.g. the os.Create
// failure behind an IOFailure), preserving it as the Unwrap-able cause.
func Wrap(kind Kind, cause error, format string, args ...interface{}) *CompileError {
	msg := fmt.Sprintf(format, args...)
	return &CompileError{Kind: kind, Message: msg, cause: errors.WithStack(cause)}
}

// Duplicate symbol is declared twice in the same scope.
func DuplicateDecl(name string) *CompileError {
	return New(Duplicate, "identifier %q already declared in this scope", name)
}

// UndeclaredRef names an identifier with no resolvable declaration.
func UndeclaredRef(name string) *CompileError {
	return New(Undeclared, "undeclared identifier %q", name)
}
