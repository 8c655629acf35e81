package gma

import (
	"fmt"
	"reflect"

	"dasa.cc/gma/lock"

	"github.com/pkg/errors"
)

var (
	ErrNotImplemented  = errors.New("not implemented")
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotInvertible is the panic value of Inv and Div when the operand
	// has no inverse, including every zero-valued operand.
	ErrNotInvertible = errors.New("not invertible")
)

// NotImplementedError is raised by operations deliberately left unimplemented.
type NotImplementedError struct {
	Op string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, ErrNotImplemented)
}

func (e *NotImplementedError) Unwrap() error { return ErrNotImplemented }

// NotImplemented returns a *NotImplementedError for op.
func NotImplemented(op string) error { return &NotImplementedError{Op: op} }

// InvalidArgumentError reports a missing or malformed argument.
type InvalidArgumentError struct {
	Name   string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidArgument, e.Name, e.Reason)
}

func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidArgument }

// InvalidArgument returns an *InvalidArgumentError for the named argument.
func InvalidArgument(name, reason string) error {
	return &InvalidArgumentError{Name: name, Reason: reason}
}

// MustBeDefined panics with an *InvalidArgumentError if v is nil, including
// a nil pointer held in an interface.
func MustBeDefined(name string, v any) {
	if v == nil {
		panic(InvalidArgument(name, "must be defined"))
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		panic(InvalidArgument(name, "must be defined"))
	}
}

// Try calls f and returns the library error f panicked with, if any.
// Panics that do not carry a library error are propagated.
//
// Chainable mutators report locked targets, missing arguments and singular
// operands by panicking; Try turns those back into ordinary errors:
//
//	err := gma.Try(func() { g3.One.Add(g3.E1) })
//	errors.Is(err, lock.ErrLocked) // true
func Try(f func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok && isLibraryError(e) {
			err = e
			return
		}
		panic(r)
	}()
	f()
	return nil
}

var libraryErrors = []error{
	lock.ErrLocked,
	lock.ErrAlreadyLocked,
	ErrNotImplemented,
	ErrInvalidArgument,
	ErrNotInvertible,
}

func isLibraryError(err error) bool {
	for _, target := range libraryErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
