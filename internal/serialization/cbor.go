package serialization

import (
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

var (
	cborEncMode cbor.EncMode
	cborDecMode cbor.DecMode
)

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	cborEncMode, err = encOptions.EncMode()
	if err != nil {
		panic("serialization: CBOR encoder initialization failed: " + err.Error())
	}

	cborDecMode, err = cbor.DecOptions{
		// any-typed targets decode string-keyed maps as map[string]any so
		// the result converts cleanly to JSON, YAML and TOML.
		DefaultMapType:  reflect.TypeOf(map[string]any(nil)),
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
	}.DecMode()
	if err != nil {
		panic("serialization: CBOR decoder initialization failed: " + err.Error())
	}
}

// CBORSerializer implements the Serializer interface with Core
// Deterministic CBOR (RFC 8949 §4.2.1).
type CBORSerializer struct{}

func (CBORSerializer) Serialize(v any) ([]byte, error) {
	return cborEncMode.Marshal(v)
}

func (CBORSerializer) Deserialize(data []byte, v any) error {
	return cborDecMode.Unmarshal(data, v)
}

// NewCBOREncoder returns a streaming deterministic CBOR encoder.
func NewCBOREncoder(w io.Writer) *cbor.Encoder {
	return cborEncMode.NewEncoder(w)
}

// NewCBORDecoder returns a streaming CBOR decoder.
func NewCBORDecoder(r io.Reader) *cbor.Decoder {
	return cborDecMode.NewDecoder(r)
}
