package bytex

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// AsString interprets b as UTF-8 text.
func AsString[B ~[]byte](b B) (string, error) {
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: invalid utf-8 sequence", ErrUTF8)
	}
	return string(b), nil
}

// MustAsString is like AsString but panics on error.
func MustAsString[B ~[]byte](b B) string {
	s, err := AsString(b)
	if err != nil {
		panic(err)
	}
	return s
}

// ToStringLossy interprets b as UTF-8, replacing each run of invalid bytes
// with a single U+FFFD.
func ToStringLossy[B ~[]byte](b B) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), "�")
}
