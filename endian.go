package bytex

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Endian selects the byte order of multi-byte integers and floats. The zero
// value is Little.
type Endian uint8

const (
	Little Endian = iota
	Big
	Native
)

// IsValid checks if the selector is one of Little, Big or Native.
func (e Endian) IsValid() bool {
	switch e {
	case Little, Big, Native:
		return true
	default:
		return false
	}
}

// ByteOrder returns the encoding/binary order for e. Unknown selectors fall
// back to little endian.
func (e Endian) ByteOrder() binary.ByteOrder {
	switch e {
	case Big:
		return binary.BigEndian
	case Native:
		return binary.NativeEndian
	default:
		return binary.LittleEndian
	}
}

func (e Endian) String() string {
	switch e {
	case Little:
		return "little"
	case Big:
		return "big"
	case Native:
		return "native"
	default:
		return fmt.Sprintf("Endian(%d)", uint8(e))
	}
}

// ParseEndian parses "little", "big" or "native" (also "le", "be", "ne"),
// ignoring case and surrounding space.
func ParseEndian(s string) (Endian, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "little", "le":
		return Little, nil
	case "big", "be":
		return Big, nil
	case "native", "ne":
		return Native, nil
	default:
		return Little, fmt.Errorf("%w: unknown endian '%s': must be one of [little, big, native]", ErrInvalidConfiguration, s)
	}
}

// MarshalText implements encoding.TextMarshaler so selectors read naturally
// in YAML configuration.
func (e Endian) MarshalText() ([]byte, error) {
	if !e.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfiguration, e)
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Endian) UnmarshalText(text []byte) error {
	parsed, err := ParseEndian(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
