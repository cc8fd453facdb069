package unparser

import (
	"errors"
	"fmt"

	"github.com/dhamidi/unparser/ruby/ast"
)

var (
	// ErrIndentUnderflow is reported when an emitter closes more indented
	// blocks than it opened.
	ErrIndentUnderflow = errors.New("indent underflow")
	// ErrIndentLeak is reported when emission ends deeper than it started.
	ErrIndentLeak = errors.New("indent not restored")
	// ErrMalformedNode is reported when a node's children do not have the
	// shape its type requires.
	ErrMalformedNode = errors.New("malformed node")
)

// UnsupportedNodeError is returned when no emitter is registered for a
// node type, typically because the parser produced a construct this
// package does not know.
type UnsupportedNodeError struct {
	Type ast.Type
}

func (e *UnsupportedNodeError) Error() string {
	return fmt.Sprintf("no emitter for node type %q", e.Type)
}

// InternalError reports a broken invariant inside the unparser. It wraps
// one of the Err* sentinels.
type InternalError struct {
	Err    error
	Detail string
}

func (e *InternalError) Error() string {
	if e.Detail == "" {
		return "unparser: " + e.Err.Error()
	}
	return fmt.Sprintf("unparser: %v: %s", e.Err, e.Detail)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

func internalError(err error, format string, args ...any) *InternalError {
	return &InternalError{Err: err, Detail: fmt.Sprintf(format, args...)}
}

// bailout carries an error out of the recursive emission; Unparse recovers
// it at the top of the call.
type bailout struct {
	err error
}
