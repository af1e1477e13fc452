package serialization

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrUnsupportedType  = errors.New("unsupported type")
	ErrTruncated        = errors.New("unexpected end of input")
	ErrInvalidBool      = errors.New("invalid bool encoding")
	ErrInvalidUTF8      = errors.New("invalid utf-8 in string")
	ErrInvalidOptionTag = errors.New("invalid option tag")
	ErrOverflow         = errors.New("value overflows target type")
	ErrInvalidTarget    = errors.New("target must be a non-nil pointer")
	ErrNilValue         = errors.New("cannot serialize nil value")
)

// IOError reports a failure of the underlying reader or writer, as opposed
// to a malformed or truncated encoding.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func newUnsupportedTypeError(t reflect.Type) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedType, t)
}

func newInvalidBoolError(b byte) error {
	return fmt.Errorf("%w: 0x%02x", ErrInvalidBool, b)
}

func newInvalidOptionTagError(b byte) error {
	return fmt.Errorf("%w: 0x%02x", ErrInvalidOptionTag, b)
}

func newOverflowError(t reflect.Type, v any) error {
	return fmt.Errorf("%w: %v does not fit in %s", ErrOverflow, v, t)
}
