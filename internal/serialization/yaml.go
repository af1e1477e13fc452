package serialization

import (
	"gopkg.in/yaml.v3"
)

// YAMLSerializer implements the Serializer interface using gopkg.in/yaml.v3.
type YAMLSerializer struct{}

func (YAMLSerializer) Serialize(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (YAMLSerializer) Deserialize(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
