package bytex

import (
	"fmt"
	"hash"
	"io"

	"github.com/hengadev/bytex/internal/digest"
)

// Digest algorithm names accepted by Hash.
type Digest = digest.Algorithm

const (
	SHA256     = digest.SHA256
	SHA512     = digest.SHA512
	SHA3_256   = digest.SHA3_256
	SHA3_512   = digest.SHA3_512
	BLAKE2b256 = digest.BLAKE2b256
	BLAKE2b512 = digest.BLAKE2b512
	BLAKE3     = digest.BLAKE3
)

// ParseDigest parses a digest algorithm name such as "sha256" or "blake3".
func ParseDigest(s string) (Digest, error) {
	alg, err := digest.ParseAlgorithm(s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnknownDigest, err)
	}
	return alg, nil
}

// Digests returns every supported digest algorithm.
func Digests() []Digest {
	return digest.All()
}

// HashInto feeds the default-endian binary encoding of v into h. It writes
// exactly the bytes ToBytes would return, so two equal values always feed
// the same bytes.
func HashInto(h io.Writer, v any) error {
	return ToBytesTo(h, v)
}

// HashWith encodes v into a fresh hash from newHash and returns its sum.
func HashWith(newHash func() hash.Hash, v any) ([]byte, error) {
	h := newHash()
	if err := HashInto(h, v); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}

// Hash returns the alg digest of v's binary encoding.
func Hash(alg Digest, v any) ([]byte, error) {
	h, err := alg.New()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownDigest, err)
	}
	if err := HashInto(h, v); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}

// HashHex is Hash rendered as lowercase hex.
func HashHex(alg Digest, v any) (string, error) {
	sum, err := Hash(alg, v)
	if err != nil {
		return "", err
	}
	return ToHex(sum), nil
}

// MustHashInto is like HashInto but panics on error.
func MustHashInto(h io.Writer, v any) {
	if err := HashInto(h, v); err != nil {
		panic(err)
	}
}

// MustHashWith is like HashWith but panics on error.
func MustHashWith(newHash func() hash.Hash, v any) []byte {
	sum, err := HashWith(newHash, v)
	if err != nil {
		panic(err)
	}
	return sum
}

// MustHash is like Hash but panics on error.
func MustHash(alg Digest, v any) []byte {
	sum, err := Hash(alg, v)
	if err != nil {
		panic(err)
	}
	return sum
}
