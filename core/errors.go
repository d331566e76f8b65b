// Package core holds the types and error kinds shared by every algorithmic
// package in satkernel: variables, literals, the PRNG capability injected
// into randomized solvers, and the typed error hierarchy described in the
// error handling design.
package core

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Kind classifies the errors this module can return. Algorithmic results
// (SAT/UNSAT/probabilistic UNSAT) are never errors; only construction-time
// and precondition failures are.
type Kind int

const (
	// InvalidInstance marks a validator rejection: a zero or duplicate
	// literal, a malformed bit matrix, or a non-binary clause passed to
	// the strict 2-SAT solver. No constructor checks that variables form
	// a contiguous range; Normalize relabels them instead.
	InvalidInstance Kind = iota
	// BitMatrixUnavailable marks a bit-matrix request on a formula that
	// has an empty clause or zero variables.
	BitMatrixUnavailable
	// LllNotApplicable marks a Lovász Local Lemma query on an instance
	// whose clauses do not all share one length.
	LllNotApplicable
)

func (k Kind) String() string {
	switch k {
	case InvalidInstance:
		return "InvalidInstance"
	case BitMatrixUnavailable:
		return "BitMatrixUnavailable"
	case LllNotApplicable:
		return "LllNotApplicable"
	default:
		return "UnknownError"
	}
}

// Error is the error type returned by every construction/precondition
// failure in this module. It names the offending Kind, the operation that
// raised it, and a human-readable message, and carries a stack trace via
// github.com/pkg/errors so the failure can be traced back to its origin.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("satkernel: %s: %s: %s", e.Op, e.Kind, e.Message)
	}
	return fmt.Sprintf("satkernel: %s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.cause }

// NewError builds a stack-annotated Error of the given kind.
func NewError(kind Kind, op, message string) *Error {
	return &Error{
		Kind:    kind,
		Op:      op,
		Message: message,
		cause:   errors.New(message),
	}
}

// WrapError builds a stack-annotated Error of the given kind around an
// existing cause.
func WrapError(kind Kind, op string, cause error) *Error {
	return &Error{
		Kind:    kind,
		Op:      op,
		Message: cause.Error(),
		cause:   errors.WithStack(cause),
	}
}

// IsKind reports whether err is a *Error of the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// CombineValidation aggregates multiple InvalidInstance violations found
// during a single validation pass into one error via multierr, instead of
// surfacing only the first violation encountered.
func CombineValidation(op string, violations ...string) error {
	if len(violations) == 0 {
		return nil
	}
	var combined error
	for _, v := range violations {
		combined = multierr.Append(combined, NewError(InvalidInstance, op, v))
	}
	return combined
}
