package bytex

import (
	"io"

	"github.com/hengadev/bytex/internal/serialization"
)

// ToCBOR encodes v as Core Deterministic CBOR: equal values always produce
// equal bytes.
func ToCBOR(v any) ([]byte, error) {
	data, err := serialization.CBORSerializer{}.Serialize(v)
	if err != nil {
		return nil, wrapFormat(ErrCBOR, err)
	}
	return data, nil
}

// ToCBORTo streams v as deterministic CBOR to w.
func ToCBORTo(w io.Writer, v any) error {
	return wrapFormat(ErrCBOR, serialization.NewCBOREncoder(w).Encode(v))
}

// FromCBOR populates target from one CBOR data item.
func FromCBOR(data []byte, target any) error {
	return wrapFormat(ErrCBOR, serialization.CBORSerializer{}.Deserialize(data, target))
}

// FromCBORFrom populates target from the next CBOR data item in r.
func FromCBORFrom(r io.Reader, target any) error {
	return wrapFormat(ErrCBOR, serialization.NewCBORDecoder(r).Decode(target))
}

// MustToCBOR is like ToCBOR but panics on error.
func MustToCBOR(v any) []byte {
	data, err := ToCBOR(v)
	if err != nil {
		panic(err)
	}
	return data
}

// MustFromCBOR is like FromCBOR but panics on error.
func MustFromCBOR(data []byte, target any) {
	if err := FromCBOR(data, target); err != nil {
		panic(err)
	}
}
