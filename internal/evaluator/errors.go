package evaluator

import (
	"fmt"

	"github.com/computorv2/computorv2/internal/value"
)

// Error is one of the evaluator-level members of the §7 taxonomy:
// NameError, TypeError, MathError or ArityError.
type Error struct {
	Kind string
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func nameErr(format string, a ...interface{}) *Error {
	return &Error{Kind: "NameError", Msg: fmt.Sprintf(format, a...)}
}

func typeErr(format string, a ...interface{}) *Error {
	return &Error{Kind: "TypeError", Msg: fmt.Sprintf(format, a...)}
}

func mathErr(format string, a ...interface{}) *Error {
	return &Error{Kind: "MathError", Msg: fmt.Sprintf(format, a...)}
}

func arityErr(format string, a ...interface{}) *Error {
	return &Error{Kind: "ArityError", Msg: fmt.Sprintf(format, a...)}
}

// wrapValueError reclassifies an error surfaced by internal/value or
// internal/symbolic into the evaluator's own §7 taxonomy, preserving kind
// and message.
func wrapValueError(err error) error {
	if err == nil {
		return nil
	}
	if ve, ok := err.(*value.Error); ok {
		return &Error{Kind: ve.Kind, Msg: ve.Msg}
	}
	return &Error{Kind: "MathError", Msg: err.Error()}
}
