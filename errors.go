package bytex

import (
	"errors"
	"fmt"

	"github.com/hengadev/bytex/internal/serialization"
)

var (
	// Binary codec errors
	ErrBytesConversion = errors.New("bytes conversion error")
	ErrIO              = errors.New("io error")

	// Hex codec errors
	ErrFormat       = errors.New("fmt error")
	ErrUTF8         = errors.New("utf-8 error")
	ErrNumericParse = errors.New("parse int error")
	ErrOutOfBounds  = errors.New("out of bounds error")
	ErrOddLength    = errors.New("odd length")

	// Text format errors
	ErrJSON = errors.New("json conversion error")
	ErrYAML = errors.New("yaml conversion error")
	ErrTOML = errors.New("toml conversion error")
	ErrCBOR = errors.New("cbor conversion error")

	// Configuration errors
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrUnknownDigest        = errors.New("unknown digest algorithm")

	ErrNilPointer = errors.New("nil pointer")
)

// OutOfBoundsError reports a destination buffer that cannot hold the
// decoded bytes. Have is the destination capacity, Need the decoded length.
type OutOfBoundsError struct {
	Have int
	Need int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%s: %d < %d", ErrOutOfBounds, e.Have, e.Need)
}

// Is lets errors.Is(err, ErrOutOfBounds) match.
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

func NewOutOfBoundsError(have, need int) error {
	return &OutOfBoundsError{Have: have, Need: need}
}

// newConversionError classifies a failure from the binary engine: reader
// and writer failures become ErrIO, everything else ErrBytesConversion.
func newConversionError(err error) error {
	var ioErr *serialization.IOError
	if errors.As(err, &ioErr) {
		return fmt.Errorf("%w: %w", ErrIO, ioErr.Err)
	}
	return fmt.Errorf("%w: %w", ErrBytesConversion, err)
}

func newIOError(err error) error {
	return fmt.Errorf("%w: %w", ErrIO, err)
}

func newFormatError(err error) error {
	return fmt.Errorf("%w: %w", ErrFormat, err)
}

func wrapFormat(kind error, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", kind, err)
}

// IsConversionError returns true if the error came from encoding or decoding a value.
func IsConversionError(err error) bool {
	return errors.Is(err, ErrBytesConversion) ||
		errors.Is(err, ErrJSON) ||
		errors.Is(err, ErrYAML) ||
		errors.Is(err, ErrTOML) ||
		errors.Is(err, ErrCBOR)
}

// IsIOError returns true if the error came from the caller-supplied reader or writer.
func IsIOError(err error) bool {
	return errors.Is(err, ErrIO) || errors.Is(err, ErrFormat)
}

// IsHexError returns true if the error represents malformed hexadecimal input
// or an undersized destination buffer.
func IsHexError(err error) bool {
	return errors.Is(err, ErrOddLength) ||
		errors.Is(err, ErrNumericParse) ||
		errors.Is(err, ErrUTF8) ||
		errors.Is(err, ErrOutOfBounds)
}

// IsConfigurationError returns true if the error represents a configuration problem.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrInvalidConfiguration) ||
		errors.Is(err, ErrUnknownDigest)
}
