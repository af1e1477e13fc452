package serialization

import (
	"fmt"
	"strings"
)

// Format names a self-describing document format the converter can read
// or write. The fixed-width layout is not one: it needs a Go type to decode.
type Format string

const (
	// JSON uses the standard encoding/json package.
	JSON Format = "json"
	// YAML uses gopkg.in/yaml.v3.
	YAML Format = "yaml"
	// TOML uses github.com/pelletier/go-toml/v2.
	TOML Format = "toml"
	// CBOR uses deterministic github.com/fxamacker/cbor/v2.
	CBOR Format = "cbor"
)

// IsValid checks if the format is supported
func (f Format) IsValid() bool {
	switch f {
	case JSON, YAML, TOML, CBOR:
		return true
	default:
		return false
	}
}

// IsText reports whether the format produces human-readable text.
func (f Format) IsText() bool {
	switch f {
	case JSON, YAML, TOML:
		return true
	default:
		return false
	}
}

// CreateSerializer creates a new instance of the serializer
func (f Format) CreateSerializer() Serializer {
	switch f {
	case JSON:
		return JSONSerializer{Indent: "  "}
	case YAML:
		return YAMLSerializer{}
	case TOML:
		return TOMLSerializer{}
	case CBOR:
		return CBORSerializer{}
	default:
		return nil
	}
}

// String returns the string representation of the format
func (f Format) String() string {
	return string(f)
}

// ParseFormat parses a string into a Format and validates it
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(s)))
	if format == "yml" {
		format = YAML
	}

	if !format.IsValid() {
		return "", fmt.Errorf("invalid format '%s': must be one of [%s, %s, %s, %s]",
			s, JSON, YAML, TOML, CBOR)
	}

	return format, nil
}

// AllFormats returns all supported formats
func AllFormats() []Format {
	return []Format{JSON, YAML, TOML, CBOR}
}
