package bytex

import (
	"io"
	"reflect"
	"time"

	"github.com/hengadev/bytex/internal/monitoring"
)

// Codec converts values of one type to and from bytes with a byte order
// fixed at construction. A Codec holds no mutable state and is safe for
// concurrent use.
type Codec[T any] struct {
	endian   Endian
	hook     ObservabilityHook
	typeName string
}

// NewCodec builds a Codec for T. Without WithEndian the byte order is the
// one T declares through BytesConfigurer, or Little.
func NewCodec[T any](opts ...CodecOption) *Codec[T] {
	var o codecOptions
	for _, opt := range opts {
		opt(&o)
	}

	endian := o.endian
	if !o.hasEndian {
		endian = EndianOf(new(T))
	}
	hook := o.hook
	if hook == nil {
		hook = &monitoring.NoOpObservabilityHook{}
	}

	return &Codec[T]{
		endian:   endian,
		hook:     hook,
		typeName: reflect.TypeFor[T]().String(),
	}
}

// Endian returns the byte order the codec uses.
func (c *Codec[T]) Endian() Endian {
	return c.endian
}

// Encode serializes v.
func (c *Codec[T]) Encode(v T) ([]byte, error) {
	var data []byte
	err := c.observe("encode", func() (int, error) {
		var err error
		data, err = EncodeWith(v, c.endian)
		return len(data), err
	})
	return data, err
}

// EncodeTo streams v to w.
func (c *Codec[T]) EncodeTo(w io.Writer, v T) error {
	return c.observe("encode_to", func() (int, error) {
		cw := &countingWriter{w: w}
		err := EncodeToWith(cw, v, c.endian)
		return cw.n, err
	})
}

// Decode reads a T from the front of data; trailing bytes are ignored.
func (c *Codec[T]) Decode(data []byte) (T, error) {
	var v T
	err := c.observe("decode", func() (int, error) {
		return len(data), DecodeWith(data, &v, c.endian)
	})
	return v, err
}

// DecodeFrom reads one T from r.
func (c *Codec[T]) DecodeFrom(r io.Reader) (T, error) {
	var v T
	err := c.observe("decode_from", func() (int, error) {
		cr := &countingReader{r: r}
		err := DecodeFromWith(cr, &v, c.endian)
		return cr.n, err
	})
	return v, err
}

// MustEncode is like Encode but panics on error.
func (c *Codec[T]) MustEncode(v T) []byte {
	data, err := c.Encode(v)
	if err != nil {
		panic(err)
	}
	return data
}

// MustEncodeTo is like EncodeTo but panics on error.
func (c *Codec[T]) MustEncodeTo(w io.Writer, v T) {
	if err := c.EncodeTo(w, v); err != nil {
		panic(err)
	}
}

// MustDecode is like Decode but panics on error.
func (c *Codec[T]) MustDecode(data []byte) T {
	v, err := c.Decode(data)
	if err != nil {
		panic(err)
	}
	return v
}

// MustDecodeFrom is like DecodeFrom but panics on error.
func (c *Codec[T]) MustDecodeFrom(r io.Reader) T {
	v, err := c.DecodeFrom(r)
	if err != nil {
		panic(err)
	}
	return v
}

func (c *Codec[T]) observe(operation string, fn func() (int, error)) error {
	c.hook.OnOperationStart(operation, map[string]any{
		"type":   c.typeName,
		"endian": c.endian.String(),
	})
	start := time.Now()
	n, err := fn()
	c.hook.OnOperationComplete(operation, time.Since(start), err, map[string]any{
		"type":   c.typeName,
		"endian": c.endian.String(),
		"bytes":  n,
	})
	return err
}

type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}

type countingReader struct {
	r io.Reader
	n int
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += n
	return n, err
}
