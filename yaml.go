package bytex

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/hengadev/bytex/internal/serialization"
)

// ToYAML renders v as a YAML document.
func ToYAML(v any) (string, error) {
	data, err := serialization.YAMLSerializer{}.Serialize(v)
	if err != nil {
		return "", wrapFormat(ErrYAML, err)
	}
	return string(data), nil
}

// ToYAMLTo streams v as a YAML document to w.
func ToYAMLTo(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return wrapFormat(ErrYAML, err)
	}
	return wrapFormat(ErrYAML, enc.Close())
}

// FromYAML populates target from YAML text.
func FromYAML[S ~string | ~[]byte](text S, target any) error {
	return wrapFormat(ErrYAML, serialization.YAMLSerializer{}.Deserialize([]byte(text), target))
}

// FromYAMLFrom populates target from the next YAML document in r. An empty
// stream is an error wrapping io.EOF.
func FromYAMLFrom(r io.Reader, target any) error {
	return wrapFormat(ErrYAML, yaml.NewDecoder(r).Decode(target))
}

// ToYAMLValue converts v into a YAML node tree.
func ToYAMLValue(v any) (*yaml.Node, error) {
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return nil, wrapFormat(ErrYAML, err)
	}
	return &node, nil
}

// FromYAMLValue populates target from a YAML node tree.
func FromYAMLValue(node *yaml.Node, target any) error {
	if node == nil {
		return wrapFormat(ErrYAML, ErrNilPointer)
	}
	return wrapFormat(ErrYAML, node.Decode(target))
}

// MustToYAML is like ToYAML but panics on error.
func MustToYAML(v any) string {
	s, err := ToYAML(v)
	if err != nil {
		panic(err)
	}
	return s
}

// MustFromYAML is like FromYAML but panics on error.
func MustFromYAML[S ~string | ~[]byte](text S, target any) {
	if err := FromYAML(text, target); err != nil {
		panic(err)
	}
}
