package serialization

import (
	"bytes"
	"encoding/binary"
	"io"
	"reflect"
)

// Serialize converts value to bytes using the fixed-width layout: integers
// and floats occupy their full width in the given byte order, strings,
// slices and maps carry a u64 length prefix, pointers carry a one-byte
// option tag. The output is deterministic for a given value and order.
func Serialize(value any, order binary.ByteOrder) ([]byte, error) {
	var buf bytes.Buffer
	if err := SerializeInto(&buf, value, order); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SerializeInto streams the encoding of value to w. On failure w may have
// received a prefix of the output.
func SerializeInto(w io.Writer, value any, order binary.ByteOrder) error {
	return newEncoder(w, order).encode(reflect.ValueOf(value))
}

// Deserialize populates target, which must be a non-nil pointer, from data.
// Bytes beyond what the target's layout consumes are ignored.
func Deserialize(data []byte, target any, order binary.ByteOrder) error {
	return newDecoder(&sliceSource{data: data}, order).decode(target)
}

// DeserializeFrom populates target from r, reading only as many bytes as
// the target's layout requires.
func DeserializeFrom(r io.Reader, target any, order binary.ByteOrder) error {
	return newDecoder(&streamSource{r: r}, order).decode(target)
}
