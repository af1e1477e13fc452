package bytex

import (
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/hengadev/bytex/internal/serialization"
)

// ToTOML renders v as a TOML document. v must be a struct or a map.
func ToTOML(v any) (string, error) {
	data, err := serialization.TOMLSerializer{}.Serialize(v)
	if err != nil {
		return "", wrapFormat(ErrTOML, err)
	}
	return string(data), nil
}

// ToTOMLPretty renders v as TOML with nested tables indented.
func ToTOMLPretty(v any) (string, error) {
	data, err := serialization.TOMLSerializer{Indent: true}.Serialize(v)
	if err != nil {
		return "", wrapFormat(ErrTOML, err)
	}
	return string(data), nil
}

// ToTOMLTo streams v as a TOML document to w.
func ToTOMLTo(w io.Writer, v any) error {
	return wrapFormat(ErrTOML, toml.NewEncoder(w).Encode(v))
}

// FromTOML populates target from TOML text.
func FromTOML[S ~string | ~[]byte](text S, target any) error {
	return wrapFormat(ErrTOML, serialization.TOMLSerializer{}.Deserialize([]byte(text), target))
}

// FromTOMLFrom populates target from a TOML document read from r.
func FromTOMLFrom(r io.Reader, target any) error {
	return wrapFormat(ErrTOML, toml.NewDecoder(r).Decode(target))
}

// ToTOMLValue converts v into its generic TOML table.
func ToTOMLValue(v any) (map[string]any, error) {
	data, err := toml.Marshal(v)
	if err != nil {
		return nil, wrapFormat(ErrTOML, err)
	}
	value := map[string]any{}
	if err := toml.Unmarshal(data, &value); err != nil {
		return nil, wrapFormat(ErrTOML, err)
	}
	return value, nil
}

// FromTOMLValue populates target from a generic TOML table.
func FromTOMLValue(value map[string]any, target any) error {
	data, err := toml.Marshal(value)
	if err != nil {
		return wrapFormat(ErrTOML, err)
	}
	return wrapFormat(ErrTOML, toml.Unmarshal(data, target))
}

// MustToTOML is like ToTOML but panics on error.
func MustToTOML(v any) string {
	s, err := ToTOML(v)
	if err != nil {
		panic(err)
	}
	return s
}

// MustFromTOML is like FromTOML but panics on error.
func MustFromTOML[S ~string | ~[]byte](text S, target any) {
	if err := FromTOML(text, target); err != nil {
		panic(err)
	}
}
