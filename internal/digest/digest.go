// Package digest names the hash algorithms bytex can feed encoded values
// into. Each Algorithm constructs a fresh hash.Hash.
package digest

import (
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"strings"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// ErrUnknownAlgorithm is returned when an algorithm name is not recognized.
var ErrUnknownAlgorithm = errors.New("unknown digest algorithm")

// Algorithm identifies a digest.
type Algorithm string

const (
	SHA256     Algorithm = "sha256"
	SHA512     Algorithm = "sha512"
	SHA3_256   Algorithm = "sha3-256"
	SHA3_512   Algorithm = "sha3-512"
	BLAKE2b256 Algorithm = "blake2b-256"
	BLAKE2b512 Algorithm = "blake2b-512"
	BLAKE3     Algorithm = "blake3"
)

// Default is used when no algorithm is configured.
const Default = SHA256

// IsValid checks if the algorithm is supported
func (a Algorithm) IsValid() bool {
	switch a {
	case SHA256, SHA512, SHA3_256, SHA3_512, BLAKE2b256, BLAKE2b512, BLAKE3:
		return true
	default:
		return false
	}
}

func (a Algorithm) String() string {
	return string(a)
}

// Size returns the digest length in bytes, or 0 for an unknown algorithm.
func (a Algorithm) Size() int {
	switch a {
	case SHA256, SHA3_256, BLAKE2b256, BLAKE3:
		return 32
	case SHA512, SHA3_512, BLAKE2b512:
		return 64
	default:
		return 0
	}
}

// New returns a fresh hash for the algorithm.
func (a Algorithm) New() (hash.Hash, error) {
	switch a {
	case SHA256:
		return sha256.New(), nil
	case SHA512:
		return sha512.New(), nil
	case SHA3_256:
		return sha3.New256(), nil
	case SHA3_512:
		return sha3.New512(), nil
	case BLAKE2b256:
		// Only fails for keys longer than 64 bytes.
		return blake2b.New256(nil)
	case BLAKE2b512:
		return blake2b.New512(nil)
	case BLAKE3:
		return blake3.New(), nil
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownAlgorithm, a)
	}
}

// Constructor returns a constructor usable where a func() hash.Hash is
// expected.
func (a Algorithm) Constructor() (func() hash.Hash, error) {
	if !a.IsValid() {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownAlgorithm, a)
	}
	return func() hash.Hash {
		h, _ := a.New()
		return h
	}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.IsValid() {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownAlgorithm, a)
	}
	return []byte(a), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAlgorithm parses an algorithm name. Matching is case-insensitive and
// underscores are accepted in place of dashes (sha3_256).
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	switch name {
	case "sha-256":
		name = string(SHA256)
	case "sha-512":
		name = string(SHA512)
	case "blake2b":
		name = string(BLAKE2b512)
	}
	a := Algorithm(name)
	if !a.IsValid() {
		return "", fmt.Errorf("%w: '%s': must be one of %v", ErrUnknownAlgorithm, s, All())
	}
	return a, nil
}

// All returns every supported algorithm.
func All() []Algorithm {
	return []Algorithm{SHA256, SHA512, SHA3_256, SHA3_512, BLAKE2b256, BLAKE2b512, BLAKE3}
}
