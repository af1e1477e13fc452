package serialization

import (
	"bytes"

	"github.com/pelletier/go-toml/v2"
)

// TOMLSerializer implements the Serializer interface using go-toml. TOML
// documents are tables, so only maps and structs serialize.
type TOMLSerializer struct {
	Indent bool
}

func (t TOMLSerializer) Serialize(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(t.Indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (TOMLSerializer) Deserialize(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}
