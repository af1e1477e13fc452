package bytex

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeHexModes(t *testing.T) {
	input := "hello world"
	tests := []struct {
		mode HexMode
		want string
	}{
		{HexLower, "68656c6c6f20776f726c64"},
		{HexUpper, "68656C6C6F20776F726C64"},
		{HexLower0x, "0x68656c6c6f20776f726c64"},
		{HexUpper0x, "0x68656C6C6F20776F726C64"},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeHex(input, tt.mode))
			assert.Equal(t, tt.want, EncodeHex([]byte(input), tt.mode))

			var buf strings.Builder
			require.NoError(t, EncodeHexTo(&buf, input, tt.mode))
			assert.Equal(t, tt.want, buf.String())
		})
	}

	assert.Equal(t, "68656c6c6f20776f726c64", ToHex(input))
	assert.Equal(t, "68656C6C6F20776F726C64", ToUpperHex(input))
	assert.Equal(t, "0x68656c6c6f20776f726c64", ToHexWith0x(input))
	assert.Equal(t, "0x68656C6C6F20776F726C64", ToUpperHexWith0x(input))
}

func TestEncodeHexEmpty(t *testing.T) {
	assert.Equal(t, "", ToHex([]byte{}))
	assert.Equal(t, "", ToUpperHex(""))
	assert.Equal(t, "0x", ToHexWith0x([]byte(nil)))
	assert.Equal(t, "0x", ToUpperHexWith0x(""))

	var buf bytes.Buffer
	require.NoError(t, ToHexWith0xTo(&buf, []byte{}))
	assert.Equal(t, "0x", buf.String())
}

func TestEncodeHexToLargeInput(t *testing.T) {
	data := bytes.Repeat([]byte{0x00, 0x7f, 0x80, 0xff, 0x5a}, 1000)

	for _, mode := range []HexMode{HexLower, HexUpper, HexLower0x, HexUpper0x} {
		var buf bytes.Buffer
		require.NoError(t, EncodeHexTo(&buf, data, mode))
		assert.Equal(t, EncodeHex(data, mode), buf.String())
	}
}

func TestEncodeHexToWriterFailure(t *testing.T) {
	err := ToHexTo(failingWriter{}, []byte("abc"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFormat)
	assert.True(t, IsIOError(err))
	assert.ErrorContains(t, err, "disk full")

	// An empty input with a prefix still writes, so it still fails.
	assert.ErrorIs(t, ToUpperHexWith0xTo(failingWriter{}, ""), ErrFormat)
	// Nothing to write means nothing can fail.
	assert.NoError(t, ToUpperHexTo(failingWriter{}, ""))
}

func TestDecodeHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []byte
	}{
		{"lower", "68656c6c6f20776f726c64", []byte("hello world")},
		{"upper with prefix", "0x68656C6C6F20776F726C64", []byte("hello world")},
		{"mixed case", "DeAdBeEf", []byte{0xde, 0xad, 0xbe, 0xef}},
		{"empty", "", []byte{}},
		{"prefix only", "0x", []byte{}},
		{"zero bytes", "0000", []byte{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeHex(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			got, err = DecodeHex([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeHexErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		is    error
	}{
		{"odd length", "abc", ErrOddLength},
		{"odd after prefix", "0xabc", ErrOddLength},
		{"non hex digit", "zz", ErrNumericParse},
		{"upper case prefix", "0X00", ErrNumericParse},
		{"sign", "+f", ErrNumericParse},
		{"space", "a ", ErrNumericParse},
		{"invalid utf-8", "\xff\xfe", ErrUTF8},
		{"multi-byte rune", "é", ErrNumericParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeHex(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.is)
			assert.True(t, IsHexError(err))
		})
	}
}

func TestDecodeHexNumericErrorCause(t *testing.T) {
	_, err := DecodeHex("0g")

	var numErr *strconv.NumError
	require.True(t, errors.As(err, &numErr))
	assert.Equal(t, "0g", numErr.Num)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestHexRoundTrip(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	for _, mode := range []HexMode{HexLower, HexUpper, HexLower0x, HexUpper0x} {
		t.Run(mode.String(), func(t *testing.T) {
			got, err := DecodeHex(EncodeHex(data, mode))
			require.NoError(t, err)
			assert.Equal(t, data, got)
		})
	}
}

func TestPrefixIsStrippedOnce(t *testing.T) {
	got, err := DecodeHex("0x0x")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNumericParse)
	assert.Nil(t, got)

	// "0x00" is a prefix followed by one zero byte, never two bytes.
	got, err = DecodeHex("0x00")
	require.NoError(t, err)
	assert.Equal(t, []byte{0}, got)
}

func TestCopyFromHex(t *testing.T) {
	dst := make([]byte, 4)
	n, err := CopyFromHex(dst, "0xaabb")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{0xaa, 0xbb, 0, 0}, dst)

	n, err = CopyFromHex(dst, []byte("01020304"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte{1, 2, 3, 4}, dst)
}

func TestCopyFromHexOutOfBounds(t *testing.T) {
	dst := make([]byte, 2)
	n, err := CopyFromHex(dst, "aabbcc")
	require.Error(t, err)
	assert.Zero(t, n)

	var oob *OutOfBoundsError
	require.True(t, errors.As(err, &oob))
	assert.Equal(t, 2, oob.Have)
	assert.Equal(t, 3, oob.Need)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, []byte{0, 0}, dst, "destination must be untouched")
}

func TestCopyFromHexErrors(t *testing.T) {
	dst := make([]byte, 8)

	_, err := CopyFromHex(dst, "abc")
	assert.ErrorIs(t, err, ErrOddLength)

	_, err = CopyFromHex(dst, "00zz")
	assert.ErrorIs(t, err, ErrNumericParse)
}

func TestDecodeHexFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []byte
	}{
		{"empty", "", []byte{}},
		{"prefix only", "0x", []byte{}},
		{"one pair", "ab", []byte{0xab}},
		{"prefixed", "0xAB", []byte{0xab}},
		{"several pairs", "68656c6c6f", []byte("hello")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeHexFrom(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			got, err = DecodeHexFrom(iotest.OneByteReader(strings.NewReader(tt.input)))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeHexFromErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		is    error
	}{
		{"single byte", "a", ErrOddLength},
		{"ends mid pair", "abc", ErrOddLength},
		{"prefix then half pair", "0xa", ErrOddLength},
		{"non hex", "abzz", ErrNumericParse},
		{"invalid utf-8", "\xc3\x28", ErrUTF8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeHexFrom(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.is)
		})
	}

	_, err := DecodeHexFrom(failingReader{})
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorContains(t, err, "connection reset")

	_, err = DecodeHexFrom(iotest.TimeoutReader(strings.NewReader("abcdef")))
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, iotest.ErrTimeout)
}

func TestDecodeHexFromMatchesDecodeHex(t *testing.T) {
	text := ToUpperHexWith0x(bytes.Repeat([]byte("bytex"), 5000))

	want, err := DecodeHex(text)
	require.NoError(t, err)

	got, err := DecodeHexFrom(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

type fixedID [4]byte

func (id fixedID) Bytes() []byte { return id[:] }

func TestByter(t *testing.T) {
	id := fixedID{0x01, 0xab, 0xcd, 0xef}
	assert.Equal(t, "01abcdef", HexOf(id, HexLower))
	assert.Equal(t, "0x01ABCDEF", HexOf(id, HexUpper0x))

	var buf bytes.Buffer
	require.NoError(t, HexOfTo(&buf, id, HexLower0x))
	assert.Equal(t, "0x01abcdef", buf.String())
}

func TestBytesType(t *testing.T) {
	b := Bytes("hi")
	assert.Equal(t, []byte("hi"), b.Bytes())
	assert.Equal(t, "6869", b.Hex())
	assert.Equal(t, "6869", b.UpperHex())
	assert.Equal(t, "0x6869", b.HexWith0x())
	assert.Equal(t, "0x6869", b.UpperHexWith0x())
	assert.Equal(t, "0x6869", b.EncodeHex(HexLower0x))

	text, err := b.Text()
	require.NoError(t, err)
	assert.Equal(t, "hi", text)

	_, err = Bytes{0xff}.Text()
	assert.ErrorIs(t, err, ErrUTF8)

	assert.Equal(t, "ff", Bytes{0xff}.Hex())
	assert.Equal(t, "FF", Bytes{0xff}.UpperHex())
}

func TestHexModeParsing(t *testing.T) {
	tests := []struct {
		input   string
		want    HexMode
		wantErr bool
	}{
		{"lower", HexLower, false},
		{"UPPER", HexUpper, false},
		{"lower0x", HexLower0x, false},
		{" upper0x ", HexUpper0x, false},
		{"hex", HexLower, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHexMode(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			text, err := got.MarshalText()
			require.NoError(t, err)
			var back HexMode
			require.NoError(t, back.UnmarshalText(text))
			assert.Equal(t, got, back)
		})
	}

	assert.False(t, HexMode(9).IsValid())
	_, err := HexMode(9).MarshalText()
	assert.Error(t, err)

	assert.True(t, HexUpper0x.Has0x())
	assert.True(t, HexUpper0x.IsUpper())
	assert.False(t, HexUpper0x.IsLower())
	assert.False(t, HexLower.Has0x())
}

func TestHexMustForms(t *testing.T) {
	assert.Equal(t, []byte{0xca, 0xfe}, MustDecodeHex("cafe"))
	assert.Equal(t, []byte{0xca, 0xfe}, MustDecodeHexFrom(strings.NewReader("0xcafe")))
	assert.Equal(t, 1, MustCopyFromHex(make([]byte, 1), "ff"))

	assert.Panics(t, func() { MustDecodeHex("abc") })
	assert.Panics(t, func() { MustDecodeHexFrom(strings.NewReader("x")) })
	assert.Panics(t, func() { MustCopyFromHex(make([]byte, 1), "ffff") })
	assert.Panics(t, func() { MustEncodeHexTo(failingWriter{}, "a", HexLower) })
}
