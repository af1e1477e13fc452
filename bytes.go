package bytex

import (
	"io"

	"github.com/hengadev/bytex/internal/serialization"
)

// EncodeWith serializes v with the given byte order. Integers keep their
// full width, so the same value always yields the same bytes.
func EncodeWith(v any, e Endian) ([]byte, error) {
	data, err := serialization.Serialize(v, e.ByteOrder())
	if err != nil {
		return nil, newConversionError(err)
	}
	return data, nil
}

// EncodeToWith streams the serialization of v to w. On failure w may have
// received a prefix of the bytes.
func EncodeToWith(w io.Writer, v any, e Endian) error {
	if err := serialization.SerializeInto(w, v, e.ByteOrder()); err != nil {
		return newConversionError(err)
	}
	return nil
}

// DecodeWith populates target, a non-nil pointer, from data. Bytes beyond
// the target's layout are ignored, so data may be a prefix of a larger
// stream.
func DecodeWith(data []byte, target any, e Endian) error {
	if err := serialization.Deserialize(data, target, e.ByteOrder()); err != nil {
		return newConversionError(err)
	}
	return nil
}

// DecodeFromWith populates target from r, consuming only the target's bytes.
func DecodeFromWith(r io.Reader, target any, e Endian) error {
	if err := serialization.DeserializeFrom(r, target, e.ByteOrder()); err != nil {
		return newConversionError(err)
	}
	return nil
}

// ToBytes serializes v with the byte order its type declares through
// BytesConfigurer, little endian otherwise.
func ToBytes(v any) ([]byte, error) {
	switch EndianOf(v) {
	case Big:
		return ToBigEndianBytes(v)
	case Native:
		return ToNativeEndianBytes(v)
	default:
		return ToLittleEndianBytes(v)
	}
}

// ToBytesTo streams v to w with its type's default byte order.
func ToBytesTo(w io.Writer, v any) error {
	switch EndianOf(v) {
	case Big:
		return ToBigEndianBytesTo(w, v)
	case Native:
		return ToNativeEndianBytesTo(w, v)
	default:
		return ToLittleEndianBytesTo(w, v)
	}
}

// FromBytes populates target from data with the byte order target's type
// declares.
func FromBytes(data []byte, target any) error {
	switch EndianOf(target) {
	case Big:
		return FromBigEndianBytes(data, target)
	case Native:
		return FromNativeEndianBytes(data, target)
	default:
		return FromLittleEndianBytes(data, target)
	}
}

// FromBytesFrom populates target from r with its type's default byte order.
func FromBytesFrom(r io.Reader, target any) error {
	switch EndianOf(target) {
	case Big:
		return DecodeFromWith(r, target, Big)
	case Native:
		return DecodeFromWith(r, target, Native)
	default:
		return DecodeFromWith(r, target, Little)
	}
}

func ToBigEndianBytes(v any) ([]byte, error)    { return EncodeWith(v, Big) }
func ToLittleEndianBytes(v any) ([]byte, error) { return EncodeWith(v, Little) }
func ToNativeEndianBytes(v any) ([]byte, error) { return EncodeWith(v, Native) }

func ToBigEndianBytesTo(w io.Writer, v any) error    { return EncodeToWith(w, v, Big) }
func ToLittleEndianBytesTo(w io.Writer, v any) error { return EncodeToWith(w, v, Little) }
func ToNativeEndianBytesTo(w io.Writer, v any) error { return EncodeToWith(w, v, Native) }

func FromBigEndianBytes(data []byte, target any) error    { return DecodeWith(data, target, Big) }
func FromLittleEndianBytes(data []byte, target any) error { return DecodeWith(data, target, Little) }
func FromNativeEndianBytes(data []byte, target any) error { return DecodeWith(data, target, Native) }

// MustToBytes is like ToBytes but panics on error. Use it only where the
// value is known to be serializable.
func MustToBytes(v any) []byte {
	data, err := ToBytes(v)
	if err != nil {
		panic(err)
	}
	return data
}

// MustToBytesTo is like ToBytesTo but panics on error.
func MustToBytesTo(w io.Writer, v any) {
	if err := ToBytesTo(w, v); err != nil {
		panic(err)
	}
}

// MustFromBytes is like FromBytes but panics on error.
func MustFromBytes(data []byte, target any) {
	if err := FromBytes(data, target); err != nil {
		panic(err)
	}
}

// MustFromBytesFrom is like FromBytesFrom but panics on error.
func MustFromBytesFrom(r io.Reader, target any) {
	if err := FromBytesFrom(r, target); err != nil {
		panic(err)
	}
}

// MustEncodeWith is like EncodeWith but panics on error.
func MustEncodeWith(v any, e Endian) []byte {
	data, err := EncodeWith(v, e)
	if err != nil {
		panic(err)
	}
	return data
}

// MustEncodeToWith is like EncodeToWith but panics on error.
func MustEncodeToWith(w io.Writer, v any, e Endian) {
	if err := EncodeToWith(w, v, e); err != nil {
		panic(err)
	}
}

// MustDecodeWith is like DecodeWith but panics on error.
func MustDecodeWith(data []byte, target any, e Endian) {
	if err := DecodeWith(data, target, e); err != nil {
		panic(err)
	}
}

// MustDecodeFromWith is like DecodeFromWith but panics on error.
func MustDecodeFromWith(r io.Reader, target any, e Endian) {
	if err := DecodeFromWith(r, target, e); err != nil {
		panic(err)
	}
}
