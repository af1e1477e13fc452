package serialization

import (
	"encoding/json"
)

// JSONSerializer implements the Serializer interface using the encoding/json package.
type JSONSerializer struct {
	// Indent, when non-empty, produces indented output.
	Indent string
}

func (j JSONSerializer) Serialize(v any) ([]byte, error) {
	if j.Indent != "" {
		return json.MarshalIndent(v, "", j.Indent)
	}
	return json.Marshal(v)
}

func (j JSONSerializer) Deserialize(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
