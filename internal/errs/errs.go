// Package errs defines the error kinds reported by the NIfTI library.
//
// Every failure carries exactly one Kind. The kind table is fixed at
// compile time and never mutated, so it can be shared freely.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an error.
type Kind uint8

const (
	// Type is an argument of the wrong kind (e.g. a non-string name).
	Type Kind = iota + 1
	// Value is an argument of the right kind but an invalid value.
	Value
	// Domain is a format-level violation: bad magic, unsupported
	// datatype or extension, malformed dims or pixdim, header overflow.
	Domain
	// IO is a filesystem or compression-layer failure.
	IO
	// OutOfMemory is a refused buffer or scratch allocation.
	OutOfMemory
)

// Sentinels for use with errors.Is.
var (
	ErrType        = errors.New("type error")
	ErrValue       = errors.New("value error")
	ErrDomain      = errors.New("nifti error")
	ErrIO          = errors.New("i/o error")
	ErrOutOfMemory = errors.New("out of memory")
)

var kinds = [...]struct {
	name     string
	sentinel error
}{
	Type:        {"type", ErrType},
	Value:       {"value", ErrValue},
	Domain:      {"domain", ErrDomain},
	IO:          {"io", ErrIO},
	OutOfMemory: {"out of memory", ErrOutOfMemory},
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kinds) && kinds[k].name != "" {
		return kinds[k].name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Sentinel returns the errors.Is target for the kind.
func (k Kind) Sentinel() error {
	if int(k) < len(kinds) {
		return kinds[k].sentinel
	}
	return nil
}

// Error is the concrete error returned by the library.
type Error struct {
	Kind Kind
	Op   string // operation, e.g. "read", "write", "set order"
	Path string // file name, when one is involved
	Msg  string
	Err  error // underlying cause, if any
}

func (e *Error) Error() string {
	s := e.Msg
	if e.Path != "" {
		if s == "" {
			s = fmt.Sprintf("'%s'", e.Path)
		} else {
			s = fmt.Sprintf("%s: '%s'", s, e.Path)
		}
	}
	if e.Err != nil {
		if s == "" {
			s = e.Err.Error()
		} else {
			s = s + ": " + e.Err.Error()
		}
	}
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	return s
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.Sentinel()
}

// New returns an error of the given kind with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap returns an error of the given kind wrapping err.
func Wrap(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// WithPath sets the file name on e and returns it.
func (e *Error) WithPath(path string) *Error {
	e.Path = path
	return e
}

// WithOp sets the operation on e and returns it.
func (e *Error) WithOp(op string) *Error {
	e.Op = op
	return e
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
