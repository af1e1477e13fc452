package serialization

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	A       uint32
	B       string
	C       [4]byte
	D       []byte
	E       int16
	F       bool
	G       *uint16
	H       map[string]int32
	I       []string
	J       float64
	K       time.Time
	L       uuid.UUID
	Ignored string `bytex:"-"`
	hidden  int
}

func newRecord() record {
	g := uint16(0xBEEF)
	return record{
		A: 0x01020304,
		B: "hello",
		C: [4]byte{9, 8, 7, 6},
		D: []byte{1, 2, 3},
		E: -2,
		F: true,
		G: &g,
		H: map[string]int32{"b": 2, "a": 1, "c": -3},
		I: []string{"x", "", "zz"},
		J: 3.25,
		K: time.Date(2024, 5, 17, 10, 30, 0, 500, time.UTC),
		L: uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
	}
}

var orders = []struct {
	name  string
	order binary.ByteOrder
}{
	{"big", binary.BigEndian},
	{"little", binary.LittleEndian},
	{"native", binary.NativeEndian},
}

func TestSerializeRoundTrip(t *testing.T) {
	for _, tt := range orders {
		t.Run(tt.name, func(t *testing.T) {
			want := newRecord()

			data, err := Serialize(want, tt.order)
			require.NoError(t, err)

			var got record
			require.NoError(t, Deserialize(data, &got, tt.order))

			assert.True(t, want.K.Equal(got.K))
			got.K = want.K
			assert.Equal(t, want, got)
		})
	}
}

type span struct {
	Start uint16
	end   uint16
}

type labelled struct {
	span
	Label string
}

type nested struct {
	labelled
	*span
	Extra uint8
}

func TestSerializeFlattensUnexportedEmbeddedStruct(t *testing.T) {
	want := labelled{span: span{Start: 0x0102}, Label: "a"}

	data, err := Serialize(want, binary.LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x01, 1, 0, 0, 0, 0, 0, 0, 0, 'a'}, data)

	var got labelled
	require.NoError(t, Deserialize(data, &got, binary.LittleEndian))
	assert.Equal(t, want, got)

	other, err := Serialize(labelled{span: span{Start: 7}, Label: "a"}, binary.LittleEndian)
	require.NoError(t, err)
	assert.NotEqual(t, data, other)
}

func TestSerializeFlattensNestedEmbedding(t *testing.T) {
	want := nested{labelled: labelled{span: span{Start: 9}, Label: "b"}, Extra: 4}

	data, err := Serialize(want, binary.BigEndian)
	require.NoError(t, err)
	// Embedded pointers to unexported types stay skipped.
	assert.Equal(t, []byte{0, 9, 0, 0, 0, 0, 0, 0, 0, 1, 'b', 4}, data)

	var got nested
	require.NoError(t, DeserializeFrom(bytes.NewReader(data), &got, binary.BigEndian))
	assert.Equal(t, want, got)
}

func TestDeserializeEmptyElements(t *testing.T) {
	data, err := Serialize([]struct{}{{}, {}, {}}, binary.LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 0, 0, 0, 0, 0, 0, 0}, data)

	var got []struct{}
	require.NoError(t, Deserialize(data, &got, binary.LittleEndian))
	assert.Len(t, got, 3)

	var set map[struct{}]struct{}
	require.NoError(t, DeserializeFrom(bytes.NewReader(data), &set, binary.LittleEndian))
	assert.Len(t, set, 1)
}

func TestSerializePointerIsTransparentAtTopLevel(t *testing.T) {
	rec := newRecord()

	byValue, err := Serialize(rec, binary.LittleEndian)
	require.NoError(t, err)
	byPointer, err := Serialize(&rec, binary.LittleEndian)
	require.NoError(t, err)

	assert.Equal(t, byValue, byPointer)
}

func TestSerializeLayout(t *testing.T) {
	type pair struct {
		A uint32
		B uint16
	}
	opt := uint16(0x0102)

	tests := []struct {
		name  string
		value any
		order binary.ByteOrder
		want  []byte
	}{
		{"struct little", pair{1, 2}, binary.LittleEndian, []byte{1, 0, 0, 0, 2, 0}},
		{"struct big", pair{1, 2}, binary.BigEndian, []byte{0, 0, 0, 1, 0, 2}},
		{"string", "hi", binary.LittleEndian, []byte{2, 0, 0, 0, 0, 0, 0, 0, 'h', 'i'}},
		{"string big", "hi", binary.BigEndian, []byte{0, 0, 0, 0, 0, 0, 0, 2, 'h', 'i'}},
		{"int is eight bytes", int(-1), binary.LittleEndian, bytes.Repeat([]byte{0xff}, 8)},
		{"int8", int8(-1), binary.BigEndian, []byte{0xff}},
		{"bool", true, binary.BigEndian, []byte{1}},
		{"array has no prefix", [3]uint8{1, 2, 3}, binary.LittleEndian, []byte{1, 2, 3}},
		{"nil option", struct{ P *uint16 }{}, binary.BigEndian, []byte{0}},
		{"some option", struct{ P *uint16 }{&opt}, binary.BigEndian, []byte{1, 1, 2}},
		{"float32", float32(1), binary.BigEndian, []byte{0x3f, 0x80, 0, 0}},
		{"slice of u16", []uint16{1, 2}, binary.LittleEndian, []byte{2, 0, 0, 0, 0, 0, 0, 0, 1, 0, 2, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Serialize(tt.value, tt.order)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSerializeEndianDistinct(t *testing.T) {
	rec := newRecord()

	be, err := Serialize(rec, binary.BigEndian)
	require.NoError(t, err)
	le, err := Serialize(rec, binary.LittleEndian)
	require.NoError(t, err)

	assert.NotEqual(t, be, le)
}

func TestSerializeMapIsDeterministic(t *testing.T) {
	m := map[string]uint8{"zeta": 1, "alpha": 2, "mid": 3, "beta": 4}

	first, err := Serialize(m, binary.LittleEndian)
	require.NoError(t, err)
	for range 20 {
		again, err := Serialize(m, binary.LittleEndian)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}

	var got map[string]uint8
	require.NoError(t, Deserialize(first, &got, binary.LittleEndian))
	assert.Equal(t, m, got)
}

func TestSerializeIntoMatchesSerialize(t *testing.T) {
	rec := newRecord()
	for _, tt := range orders {
		t.Run(tt.name, func(t *testing.T) {
			buffered, err := Serialize(rec, tt.order)
			require.NoError(t, err)

			var sink bytes.Buffer
			require.NoError(t, SerializeInto(&sink, rec, tt.order))

			assert.Equal(t, buffered, sink.Bytes())
		})
	}
}

func TestDeserializeAllowsTrailingBytes(t *testing.T) {
	data, err := Serialize(uint32(7), binary.BigEndian)
	require.NoError(t, err)

	var got uint32
	require.NoError(t, Deserialize(append(data, 0xde, 0xad), &got, binary.BigEndian))
	assert.Equal(t, uint32(7), got)
}

func TestDeserializeFromReadsOnlyWhatItNeeds(t *testing.T) {
	var stream bytes.Buffer
	require.NoError(t, SerializeInto(&stream, "first", binary.LittleEndian))
	require.NoError(t, SerializeInto(&stream, uint64(42), binary.LittleEndian))

	var s string
	require.NoError(t, DeserializeFrom(&stream, &s, binary.LittleEndian))
	var n uint64
	require.NoError(t, DeserializeFrom(&stream, &n, binary.LittleEndian))

	assert.Equal(t, "first", s)
	assert.Equal(t, uint64(42), n)
	assert.Zero(t, stream.Len())
}

func TestDeserializeErrors(t *testing.T) {
	hugeLength := binary.LittleEndian.AppendUint64(nil, 1<<40)

	tests := []struct {
		name   string
		data   []byte
		target any
		want   error
	}{
		{"truncated int", []byte{1, 2, 3}, new(uint32), ErrTruncated},
		{"truncated string", []byte{5, 0, 0, 0, 0, 0, 0, 0, 'a'}, new(string), ErrTruncated},
		{"huge length", hugeLength, new([]byte), ErrTruncated},
		{"huge slice", hugeLength, new([]uint64), ErrTruncated},
		{"huge map", hugeLength, new(map[uint8]uint8), ErrTruncated},
		{"huge empty-element slice", hugeLength, new([]struct{}), ErrOverflow},
		{"huge zero-length-array slice", hugeLength, new([][0]int), ErrOverflow},
		{"huge empty-entry map", hugeLength, new(map[struct{}]struct{}), ErrOverflow},
		{"invalid bool", []byte{2}, new(bool), ErrInvalidBool},
		{"invalid option", []byte{7}, new(*uint8), ErrInvalidOptionTag},
		{"invalid utf-8", []byte{1, 0, 0, 0, 0, 0, 0, 0, 0xff}, new(string), ErrInvalidUTF8},
		{"unsupported", make([]byte, 16), new(complex128), ErrUnsupportedType},
		{"non-pointer target", []byte{1}, uint8(0), ErrInvalidTarget},
		{"nil target", []byte{1}, nil, ErrInvalidTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Deserialize(tt.data, tt.target, binary.LittleEndian)
			assert.ErrorIs(t, err, tt.want)

			err = DeserializeFrom(bytes.NewReader(tt.data), tt.target, binary.LittleEndian)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSerializeErrors(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		_, err := Serialize(nil, binary.LittleEndian)
		assert.ErrorIs(t, err, ErrNilValue)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var p *record
		_, err := Serialize(p, binary.LittleEndian)
		assert.ErrorIs(t, err, ErrNilValue)
	})

	t.Run("channel field", func(t *testing.T) {
		_, err := Serialize(struct{ C chan int }{}, binary.LittleEndian)
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("interface field", func(t *testing.T) {
		_, err := Serialize(struct{ V any }{V: 1}, binary.LittleEndian)
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})
}

type failingWriter struct{ after int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after <= 0 {
		return 0, errors.New("disk full")
	}
	w.after--
	return len(p), nil
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestStreamIOErrors(t *testing.T) {
	err := SerializeInto(&failingWriter{after: 2}, newRecord(), binary.LittleEndian)
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "write", ioErr.Op)

	var n uint32
	err = DeserializeFrom(failingReader{}, &n, binary.LittleEndian)
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "read", ioErr.Op)
	assert.NotErrorIs(t, err, ErrTruncated)
}
