package bytex

import (
	"encoding/json"
	"io"

	"github.com/hengadev/bytex/internal/serialization"
)

// ToJSON renders v as compact JSON text.
func ToJSON(v any) (string, error) {
	data, err := serialization.JSONSerializer{}.Serialize(v)
	if err != nil {
		return "", wrapFormat(ErrJSON, err)
	}
	return string(data), nil
}

// ToJSONPretty renders v as JSON indented with two spaces.
func ToJSONPretty(v any) (string, error) {
	data, err := serialization.JSONSerializer{Indent: "  "}.Serialize(v)
	if err != nil {
		return "", wrapFormat(ErrJSON, err)
	}
	return string(data), nil
}

// ToJSONTo streams v as JSON to w, followed by a newline.
func ToJSONTo(w io.Writer, v any) error {
	return wrapFormat(ErrJSON, json.NewEncoder(w).Encode(v))
}

// FromJSON populates target from JSON text.
func FromJSON[S ~string | ~[]byte](text S, target any) error {
	return wrapFormat(ErrJSON, serialization.JSONSerializer{}.Deserialize([]byte(text), target))
}

// FromJSONFrom populates target from the next JSON value in r.
func FromJSONFrom(r io.Reader, target any) error {
	return wrapFormat(ErrJSON, json.NewDecoder(r).Decode(target))
}

// ToJSONValue converts v into its generic JSON form: map[string]any,
// []any, string, float64, bool or nil.
func ToJSONValue(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, wrapFormat(ErrJSON, err)
	}
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, wrapFormat(ErrJSON, err)
	}
	return value, nil
}

// FromJSONValue populates target from a generic JSON value.
func FromJSONValue(value any, target any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return wrapFormat(ErrJSON, err)
	}
	return wrapFormat(ErrJSON, json.Unmarshal(data, target))
}

// MustToJSON is like ToJSON but panics on error.
func MustToJSON(v any) string {
	s, err := ToJSON(v)
	if err != nil {
		panic(err)
	}
	return s
}

// MustToJSONPretty is like ToJSONPretty but panics on error.
func MustToJSONPretty(v any) string {
	s, err := ToJSONPretty(v)
	if err != nil {
		panic(err)
	}
	return s
}

// MustFromJSON is like FromJSON but panics on error.
func MustFromJSON[S ~string | ~[]byte](text S, target any) {
	if err := FromJSON(text, target); err != nil {
		panic(err)
	}
}
