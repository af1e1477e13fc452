package serialization

import (
	"encoding"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"reflect"
	"unicode/utf8"
)

const (
	// streamChunk bounds a single allocation while reading a length-prefixed
	// payload from a stream; a forged length cannot force a huge buffer.
	streamChunk = 64 * 1024

	// maxPrealloc caps the capacity reserved for decoded slices and maps up
	// front. Larger collections grow by append.
	maxPrealloc = 1024

	// maxEmptyElems bounds collections whose elements encode to nothing,
	// since their length prefix is the only input they consume.
	maxEmptyElems = math.MaxInt32
)

// source yields exactly n bytes or fails. The returned slice is only valid
// until the next call.
type source interface {
	next(n int) ([]byte, error)
	// payload reads a length-prefixed blob of n bytes into a fresh slice.
	payload(n uint64) ([]byte, error)
	// fits rejects n elements of at least one byte each when the input is
	// known to be shorter.
	fits(n uint64) error
}

// sliceSource reads from an in-memory buffer. Bytes left over after the
// value is complete are ignored.
type sliceSource struct {
	data []byte
	off  int
}

func (s *sliceSource) next(n int) ([]byte, error) {
	if n > len(s.data)-s.off {
		return nil, ErrTruncated
	}
	p := s.data[s.off : s.off+n]
	s.off += n
	return p, nil
}

func (s *sliceSource) payload(n uint64) ([]byte, error) {
	if n > uint64(len(s.data)-s.off) {
		return nil, ErrTruncated
	}
	p, err := s.next(int(n))
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(p))
	copy(out, p)
	return out, nil
}

func (s *sliceSource) fits(n uint64) error {
	if n > uint64(len(s.data)-s.off) {
		return ErrTruncated
	}
	return nil
}

// streamSource reads from an io.Reader, consuming only what the value needs.
type streamSource struct {
	r       io.Reader
	scratch [8]byte
}

func (s *streamSource) fill(p []byte) error {
	if _, err := io.ReadFull(s.r, p); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrTruncated
		}
		return &IOError{Op: "read", Err: err}
	}
	return nil
}

func (s *streamSource) next(n int) ([]byte, error) {
	var p []byte
	if n <= len(s.scratch) {
		p = s.scratch[:n]
	} else {
		p = make([]byte, n)
	}
	if err := s.fill(p); err != nil {
		return nil, err
	}
	return p, nil
}

// fits cannot tell how much a stream holds; each element read either
// consumes input or fails.
func (s *streamSource) fits(uint64) error { return nil }

func (s *streamSource) payload(n uint64) ([]byte, error) {
	out := make([]byte, 0, min(n, streamChunk))
	for remaining := n; remaining > 0; {
		step := min(remaining, streamChunk)
		start := len(out)
		out = append(out, make([]byte, step)...)
		if err := s.fill(out[start:]); err != nil {
			return nil, err
		}
		remaining -= step
	}
	return out, nil
}

// decoder reads the fixed-width layout produced by encoder.
type decoder struct {
	src   source
	order binary.ByteOrder
}

func newDecoder(src source, order binary.ByteOrder) *decoder {
	return &decoder{src: src, order: order}
}

func (d *decoder) readUint8() (uint8, error) {
	p, err := d.src.next(1)
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

func (d *decoder) readUint16() (uint16, error) {
	p, err := d.src.next(2)
	if err != nil {
		return 0, err
	}
	return d.order.Uint16(p), nil
}

func (d *decoder) readUint32() (uint32, error) {
	p, err := d.src.next(4)
	if err != nil {
		return 0, err
	}
	return d.order.Uint32(p), nil
}

func (d *decoder) readUint64() (uint64, error) {
	p, err := d.src.next(8)
	if err != nil {
		return 0, err
	}
	return d.order.Uint64(p), nil
}

func (d *decoder) readBytes() ([]byte, error) {
	n, err := d.readUint64()
	if err != nil {
		return nil, err
	}
	return d.src.payload(n)
}

// decode fills the value target points to.
func (d *decoder) decode(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return ErrInvalidTarget
	}
	return d.decodeValue(rv.Elem())
}

func (d *decoder) decodeValue(v reflect.Value) error {
	t := v.Type()

	if t.Kind() == reflect.Pointer {
		tag, err := d.readUint8()
		if err != nil {
			return err
		}
		switch tag {
		case optionNone:
			v.Set(reflect.Zero(t))
			return nil
		case optionSome:
			elem := reflect.New(t.Elem())
			if err := d.decodeValue(elem.Elem()); err != nil {
				return err
			}
			v.Set(elem)
			return nil
		default:
			return newInvalidOptionTagError(tag)
		}
	}

	if usesBinaryMarshaler(t) {
		data, err := d.readBytes()
		if err != nil {
			return err
		}
		return v.Addr().Interface().(encoding.BinaryUnmarshaler).UnmarshalBinary(data)
	}

	switch t.Kind() {
	case reflect.Bool:
		b, err := d.readUint8()
		if err != nil {
			return err
		}
		switch b {
		case 0:
			v.SetBool(false)
		case 1:
			v.SetBool(true)
		default:
			return newInvalidBoolError(b)
		}
		return nil
	case reflect.Int8:
		u, err := d.readUint8()
		if err != nil {
			return err
		}
		v.SetInt(int64(int8(u)))
		return nil
	case reflect.Int16:
		u, err := d.readUint16()
		if err != nil {
			return err
		}
		v.SetInt(int64(int16(u)))
		return nil
	case reflect.Int32:
		u, err := d.readUint32()
		if err != nil {
			return err
		}
		v.SetInt(int64(int32(u)))
		return nil
	case reflect.Int, reflect.Int64:
		u, err := d.readUint64()
		if err != nil {
			return err
		}
		if v.OverflowInt(int64(u)) {
			return newOverflowError(t, int64(u))
		}
		v.SetInt(int64(u))
		return nil
	case reflect.Uint8:
		u, err := d.readUint8()
		if err != nil {
			return err
		}
		v.SetUint(uint64(u))
		return nil
	case reflect.Uint16:
		u, err := d.readUint16()
		if err != nil {
			return err
		}
		v.SetUint(uint64(u))
		return nil
	case reflect.Uint32:
		u, err := d.readUint32()
		if err != nil {
			return err
		}
		v.SetUint(uint64(u))
		return nil
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		u, err := d.readUint64()
		if err != nil {
			return err
		}
		if v.OverflowUint(u) {
			return newOverflowError(t, u)
		}
		v.SetUint(u)
		return nil
	case reflect.Float32:
		u, err := d.readUint32()
		if err != nil {
			return err
		}
		v.SetFloat(float64(math.Float32frombits(u)))
		return nil
	case reflect.Float64:
		u, err := d.readUint64()
		if err != nil {
			return err
		}
		v.SetFloat(math.Float64frombits(u))
		return nil
	case reflect.String:
		data, err := d.readBytes()
		if err != nil {
			return err
		}
		if !utf8.Valid(data) {
			return ErrInvalidUTF8
		}
		v.SetString(string(data))
		return nil
	case reflect.Slice:
		return d.decodeSlice(v)
	case reflect.Array:
		for i := range v.Len() {
			if err := d.decodeValue(v.Index(i)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Map:
		return d.decodeMap(v)
	case reflect.Struct:
		return d.decodeStruct(v)
	default:
		return newUnsupportedTypeError(t)
	}
}

func (d *decoder) decodeStruct(v reflect.Value) error {
	t := v.Type()
	for i := range t.NumField() {
		field := t.Field(i)
		var err error
		switch {
		case flattenField(field):
			err = d.decodeStruct(v.Field(i))
		case skipField(field):
			continue
		default:
			err = d.decodeValue(v.Field(i))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (d *decoder) decodeSlice(v reflect.Value) error {
	t := v.Type()
	if t.Elem().Kind() == reflect.Uint8 && !usesBinaryMarshaler(t.Elem()) {
		data, err := d.readBytes()
		if err != nil {
			return err
		}
		s := reflect.MakeSlice(t, len(data), len(data))
		reflect.Copy(s, reflect.ValueOf(data))
		v.Set(s)
		return nil
	}

	n, err := d.readUint64()
	if err != nil {
		return err
	}
	if encodesEmpty(t.Elem()) {
		if n > maxEmptyElems {
			return newOverflowError(t, n)
		}
		v.Set(reflect.MakeSlice(t, int(n), int(n)))
		return nil
	}
	if err := d.src.fits(n); err != nil {
		return err
	}
	s := reflect.MakeSlice(t, 0, int(min(n, maxPrealloc)))
	for i := uint64(0); i < n; i++ {
		elem := reflect.New(t.Elem()).Elem()
		if err := d.decodeValue(elem); err != nil {
			return err
		}
		s = reflect.Append(s, elem)
	}
	v.Set(s)
	return nil
}

func (d *decoder) decodeMap(v reflect.Value) error {
	t := v.Type()
	n, err := d.readUint64()
	if err != nil {
		return err
	}
	if encodesEmpty(t.Key()) && encodesEmpty(t.Elem()) {
		// Every entry decodes to the same zero key.
		if n > maxEmptyElems {
			return newOverflowError(t, n)
		}
		m := reflect.MakeMapWithSize(t, int(min(n, 1)))
		if n > 0 {
			m.SetMapIndex(reflect.New(t.Key()).Elem(), reflect.New(t.Elem()).Elem())
		}
		v.Set(m)
		return nil
	}
	if err := d.src.fits(n); err != nil {
		return err
	}
	m := reflect.MakeMapWithSize(t, int(min(n, maxPrealloc)))
	for i := uint64(0); i < n; i++ {
		key := reflect.New(t.Key()).Elem()
		if err := d.decodeValue(key); err != nil {
			return err
		}
		value := reflect.New(t.Elem()).Elem()
		if err := d.decodeValue(value); err != nil {
			return err
		}
		m.SetMapIndex(key, value)
	}
	v.Set(m)
	return nil
}
