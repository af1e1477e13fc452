package bytex

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// HexMode selects letter case and whether a 0x prefix is emitted. The zero
// value is HexLower.
type HexMode uint8

const (
	HexLower HexMode = iota
	HexUpper
	HexLower0x
	HexUpper0x
)

// Has0x reports whether the mode emits a leading "0x".
func (m HexMode) Has0x() bool {
	return m == HexLower0x || m == HexUpper0x
}

// IsLower reports whether the mode emits lowercase digits.
func (m HexMode) IsLower() bool {
	return m == HexLower || m == HexLower0x
}

// IsUpper reports whether the mode emits uppercase digits.
func (m HexMode) IsUpper() bool {
	return m == HexUpper || m == HexUpper0x
}

// IsValid checks if the mode is one of the four defined modes.
func (m HexMode) IsValid() bool {
	return m <= HexUpper0x
}

func (m HexMode) String() string {
	switch m {
	case HexLower:
		return "lower"
	case HexUpper:
		return "upper"
	case HexLower0x:
		return "lower0x"
	case HexUpper0x:
		return "upper0x"
	default:
		return fmt.Sprintf("HexMode(%d)", uint8(m))
	}
}

// ParseHexMode parses lower, upper, lower0x or upper0x.
func ParseHexMode(s string) (HexMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lower":
		return HexLower, nil
	case "upper":
		return HexUpper, nil
	case "lower0x":
		return HexLower0x, nil
	case "upper0x":
		return HexUpper0x, nil
	default:
		return HexLower, fmt.Errorf("%w: unknown hex mode '%s': must be one of [lower, upper, lower0x, upper0x]", ErrInvalidConfiguration, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m HexMode) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfiguration, m)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *HexMode) UnmarshalText(text []byte) error {
	parsed, err := ParseHexMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

const (
	lowerHexDigits = "0123456789abcdef"
	upperHexDigits = "0123456789ABCDEF"

	hexPrefix = "0x"

	// hexChunk is how many source bytes EncodeHexTo renders per write.
	hexChunk = 512
)

// Byter is the minimal capability the hex helpers need: a view of the
// value's raw bytes.
type Byter interface {
	Bytes() []byte
}

// Bytes is a byte slice with hex shorthands.
type Bytes []byte

// Bytes implements Byter.
func (b Bytes) Bytes() []byte { return b }

// Hex renders b as lowercase hex.
func (b Bytes) Hex() string { return EncodeHex(b, HexLower) }

// UpperHex renders b as uppercase hex.
func (b Bytes) UpperHex() string { return EncodeHex(b, HexUpper) }

// HexWith0x renders b as lowercase hex after a "0x" prefix.
func (b Bytes) HexWith0x() string { return EncodeHex(b, HexLower0x) }

// UpperHexWith0x renders b as uppercase hex after a "0x" prefix.
func (b Bytes) UpperHexWith0x() string { return EncodeHex(b, HexUpper0x) }

// Text interprets b as UTF-8, failing with ErrUTF8.
func (b Bytes) Text() (string, error) { return AsString(b) }

// EncodeHex renders b in the given mode.
func (b Bytes) EncodeHex(m HexMode) string { return EncodeHex(b, m) }

// HexOf renders the bytes of any Byter.
func HexOf(b Byter, mode HexMode) string {
	return EncodeHex(b.Bytes(), mode)
}

// HexOfTo streams the bytes of any Byter as hex text to w.
func HexOfTo(w io.Writer, b Byter, mode HexMode) error {
	return EncodeHexTo(w, b.Bytes(), mode)
}

func hexLen(n int, mode HexMode) int {
	if mode.Has0x() {
		return 2*n + len(hexPrefix)
	}
	return 2 * n
}

func appendHex[B ~string | ~[]byte](dst []byte, src B, mode HexMode) []byte {
	digits := lowerHexDigits
	if mode.IsUpper() {
		digits = upperHexDigits
	}
	for i := 0; i < len(src); i++ {
		c := src[i]
		dst = append(dst, digits[c>>4], digits[c&0x0f])
	}
	return dst
}

// EncodeHex renders b as two hex digits per byte in the case mode selects,
// preceded by "0x" for the prefixed modes.
func EncodeHex[B ~string | ~[]byte](b B, mode HexMode) string {
	out := make([]byte, 0, hexLen(len(b), mode))
	if mode.Has0x() {
		out = append(out, hexPrefix...)
	}
	return string(appendHex(out, b, mode))
}

// EncodeHexTo streams the hex rendering of b to w without building the
// whole string. A failing writer yields ErrFormat; w may have received a
// prefix of the text.
func EncodeHexTo[B ~string | ~[]byte](w io.Writer, b B, mode HexMode) error {
	buf := make([]byte, 0, hexLen(min(len(b), hexChunk), mode))
	if mode.Has0x() {
		buf = append(buf, hexPrefix...)
	}
	for start := 0; start < len(b); start += hexChunk {
		end := min(start+hexChunk, len(b))
		buf = appendHex(buf, b[start:end], mode)
		if _, err := w.Write(buf); err != nil {
			return newFormatError(err)
		}
		buf = buf[:0]
	}
	if len(buf) > 0 {
		if _, err := w.Write(buf); err != nil {
			return newFormatError(err)
		}
	}
	return nil
}

// ToHex, ToUpperHex, ToHexWith0x and ToUpperHexWith0x are EncodeHex with a
// fixed mode.
func ToHex[B ~string | ~[]byte](b B) string            { return EncodeHex(b, HexLower) }
func ToUpperHex[B ~string | ~[]byte](b B) string       { return EncodeHex(b, HexUpper) }
func ToHexWith0x[B ~string | ~[]byte](b B) string      { return EncodeHex(b, HexLower0x) }
func ToUpperHexWith0x[B ~string | ~[]byte](b B) string { return EncodeHex(b, HexUpper0x) }

// ToHexTo and the other ...To forms are EncodeHexTo with a fixed mode.
func ToHexTo[B ~string | ~[]byte](w io.Writer, b B) error {
	return EncodeHexTo(w, b, HexLower)
}

func ToUpperHexTo[B ~string | ~[]byte](w io.Writer, b B) error {
	return EncodeHexTo(w, b, HexUpper)
}

func ToHexWith0xTo[B ~string | ~[]byte](w io.Writer, b B) error {
	return EncodeHexTo(w, b, HexLower0x)
}

func ToUpperHexWith0xTo[B ~string | ~[]byte](w io.Writer, b B) error {
	return EncodeHexTo(w, b, HexUpper0x)
}

// trimHexPrefix drops a leading lowercase "0x". "0X" is not a prefix and
// fails later as a non-hex digit.
func trimHexPrefix(s string) string {
	return strings.TrimPrefix(s, hexPrefix)
}

// parseHexPair parses one two-character window.
func parseHexPair(pair string) (byte, error) {
	if !utf8.ValidString(pair) {
		return 0, fmt.Errorf("%w: invalid utf-8 sequence %q", ErrUTF8, pair)
	}
	for i := 0; i < len(pair); i++ {
		if !isHexDigit(pair[i]) {
			return 0, fmt.Errorf("%w: %w", ErrNumericParse, &strconv.NumError{
				Func: "ParseUint",
				Num:  pair,
				Err:  strconv.ErrSyntax,
			})
		}
	}
	v, err := strconv.ParseUint(pair, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNumericParse, err)
	}
	return byte(v), nil
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// DecodeHex parses hex text into bytes. A leading "0x" is dropped, the rest
// must have an even length (ErrOddLength) and contain only hex digits of
// either case (ErrNumericParse). Empty input yields an empty slice.
func DecodeHex[S ~string | ~[]byte](hex S) ([]byte, error) {
	s := trimHexPrefix(string(hex))
	if len(s)%2 != 0 {
		return nil, ErrOddLength
	}
	out := make([]byte, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		b, err := parseHexPair(s[i : i+2])
		if err != nil {
			return nil, err
		}
		out[i/2] = b
	}
	return out, nil
}

// DecodeHexFrom parses hex text from r until end of stream, two characters
// at a time. A first pair equal to "0x" is dropped. A stream that ends
// between the two characters of a pair fails with ErrOddLength; any other
// read failure is ErrIO.
func DecodeHexFrom(r io.Reader) ([]byte, error) {
	br := bufio.NewReader(r)
	out := []byte{}

	var pair [2]byte
	first := true
	for {
		if _, err := io.ReadFull(br, pair[:]); err != nil {
			switch {
			case errors.Is(err, io.ErrUnexpectedEOF):
				return nil, ErrOddLength
			case errors.Is(err, io.EOF):
				return out, nil
			default:
				return nil, newIOError(err)
			}
		}
		if first {
			first = false
			if string(pair[:]) == hexPrefix {
				continue
			}
		}
		b, err := parseHexPair(string(pair[:]))
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
}

// CopyFromHex parses hex text into dst and returns the number of bytes
// written. If dst is too small nothing is written and the error is an
// *OutOfBoundsError carrying both sizes. On a parse error dst may hold the
// bytes decoded before the bad window.
func CopyFromHex[S ~string | ~[]byte](dst []byte, hex S) (int, error) {
	s := trimHexPrefix(string(hex))
	if len(s)%2 != 0 {
		return 0, ErrOddLength
	}
	need := len(s) / 2
	if need > len(dst) {
		return 0, NewOutOfBoundsError(len(dst), need)
	}
	for i := 0; i < len(s); i += 2 {
		b, err := parseHexPair(s[i : i+2])
		if err != nil {
			return 0, err
		}
		dst[i/2] = b
	}
	return need, nil
}

// MustEncodeHexTo is like EncodeHexTo but panics on error.
func MustEncodeHexTo[B ~string | ~[]byte](w io.Writer, b B, mode HexMode) {
	if err := EncodeHexTo(w, b, mode); err != nil {
		panic(err)
	}
}

// MustDecodeHex is like DecodeHex but panics on error. Use it only for
// input known to be valid, such as constants.
func MustDecodeHex[S ~string | ~[]byte](hex S) []byte {
	b, err := DecodeHex(hex)
	if err != nil {
		panic(err)
	}
	return b
}

// MustDecodeHexFrom is like DecodeHexFrom but panics on error.
func MustDecodeHexFrom(r io.Reader) []byte {
	b, err := DecodeHexFrom(r)
	if err != nil {
		panic(err)
	}
	return b
}

// MustCopyFromHex is like CopyFromHex but panics on error.
func MustCopyFromHex[S ~string | ~[]byte](dst []byte, hex S) int {
	n, err := CopyFromHex(dst, hex)
	if err != nil {
		panic(err)
	}
	return n
}
