package overlap

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind is the single descriptive kind attached to every error this
// package reports. There is exactly one kind per validated precondition;
// no error is ever produced mid-computation (see §7 of the design notes).
type ErrorKind string

const (
	ErrInvalidRadius      ErrorKind = "invalid-radius"
	ErrInvalidVertexOrder ErrorKind = "invalid-vertex-order"
	ErrNonPlanarFace      ErrorKind = "non-planar-face"
	ErrInvalidArgument    ErrorKind = "invalid-argument"
)

// Error is the error type returned by every constructor and entry point in
// this package. Callers should switch on Kind rather than matching message
// text.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// wrap attaches call-site context to a package Error without discarding its
// Kind, mirroring the wrap/unwrap idiom cockroachdb and dgraph both use
// github.com/pkg/errors for.
func wrap(err error, context string) error {
	if err == nil {
		return nil
	}

	return errors.WithMessage(err, context)
}

// KindOf extracts the ErrorKind from an error produced by this package, if
// any is present in its chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	for err != nil {
		if ae, ok := err.(*Error); ok {
			e = ae
			break
		}

		err = errors.Unwrap(err)
	}

	if e == nil {
		return "", false
	}

	return e.Kind, true
}
