package serialization

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"io"
	"math"
	"reflect"
	"sort"
)

const (
	optionNone byte = 0x00
	optionSome byte = 0x01

	// TagName is the struct tag consulted for field options. `bytex:"-"`
	// excludes a field from the encoding.
	TagName = "bytex"
)

var (
	binaryMarshalerType   = reflect.TypeFor[encoding.BinaryMarshaler]()
	binaryUnmarshalerType = reflect.TypeFor[encoding.BinaryUnmarshaler]()
)

// encoder writes the fixed-width layout of a value to w.
type encoder struct {
	w       io.Writer
	order   binary.ByteOrder
	scratch [8]byte
}

func newEncoder(w io.Writer, order binary.ByteOrder) *encoder {
	return &encoder{w: w, order: order}
}

func (e *encoder) write(p []byte) error {
	if _, err := e.w.Write(p); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

func (e *encoder) writeUint8(v uint8) error {
	e.scratch[0] = v
	return e.write(e.scratch[:1])
}

func (e *encoder) writeUint16(v uint16) error {
	e.order.PutUint16(e.scratch[:2], v)
	return e.write(e.scratch[:2])
}

func (e *encoder) writeUint32(v uint32) error {
	e.order.PutUint32(e.scratch[:4], v)
	return e.write(e.scratch[:4])
}

func (e *encoder) writeUint64(v uint64) error {
	e.order.PutUint64(e.scratch[:8], v)
	return e.write(e.scratch[:8])
}

func (e *encoder) writeLen(n int) error {
	return e.writeUint64(uint64(n))
}

func (e *encoder) writeBytes(p []byte) error {
	if err := e.writeLen(len(p)); err != nil {
		return err
	}
	if len(p) == 0 {
		return nil
	}
	return e.write(p)
}

// encode writes v. Top-level pointers are followed transparently so that
// a value and a pointer to it produce the same bytes.
func (e *encoder) encode(v reflect.Value) error {
	for v.IsValid() && v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return ErrNilValue
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return ErrNilValue
	}
	return e.encodeValue(v)
}

func (e *encoder) encodeValue(v reflect.Value) error {
	t := v.Type()

	if t.Kind() == reflect.Pointer {
		if v.IsNil() {
			return e.writeUint8(optionNone)
		}
		if err := e.writeUint8(optionSome); err != nil {
			return err
		}
		return e.encodeValue(v.Elem())
	}

	if usesBinaryMarshaler(t) {
		return e.encodeMarshaler(v)
	}

	switch t.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return e.writeUint8(1)
		}
		return e.writeUint8(0)
	case reflect.Int8:
		return e.writeUint8(uint8(v.Int()))
	case reflect.Int16:
		return e.writeUint16(uint16(v.Int()))
	case reflect.Int32:
		return e.writeUint32(uint32(v.Int()))
	case reflect.Int, reflect.Int64:
		return e.writeUint64(uint64(v.Int()))
	case reflect.Uint8:
		return e.writeUint8(uint8(v.Uint()))
	case reflect.Uint16:
		return e.writeUint16(uint16(v.Uint()))
	case reflect.Uint32:
		return e.writeUint32(uint32(v.Uint()))
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return e.writeUint64(v.Uint())
	case reflect.Float32:
		return e.writeUint32(math.Float32bits(float32(v.Float())))
	case reflect.Float64:
		return e.writeUint64(math.Float64bits(v.Float()))
	case reflect.String:
		return e.writeBytes([]byte(v.String()))
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 && !usesBinaryMarshaler(t.Elem()) {
			return e.writeBytes(v.Bytes())
		}
		if err := e.writeLen(v.Len()); err != nil {
			return err
		}
		return e.encodeElements(v)
	case reflect.Array:
		return e.encodeElements(v)
	case reflect.Map:
		return e.encodeMap(v)
	case reflect.Struct:
		return e.encodeStruct(v)
	default:
		return newUnsupportedTypeError(t)
	}
}

func (e *encoder) encodeElements(v reflect.Value) error {
	for i := range v.Len() {
		if err := e.encodeValue(v.Index(i)); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) encodeStruct(v reflect.Value) error {
	t := v.Type()
	for i := range t.NumField() {
		field := t.Field(i)
		var err error
		switch {
		case flattenField(field):
			err = e.encodeStruct(v.Field(i))
		case skipField(field):
			continue
		default:
			err = e.encodeValue(v.Field(i))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// encodeMap writes entries ordered by their encoded key so that the output
// does not depend on map iteration order.
func (e *encoder) encodeMap(v reflect.Value) error {
	type entry struct {
		key, value []byte
	}

	entries := make([]entry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		var key, value bytes.Buffer
		if err := newEncoder(&key, e.order).encodeValue(iter.Key()); err != nil {
			return err
		}
		if err := newEncoder(&value, e.order).encodeValue(iter.Value()); err != nil {
			return err
		}
		entries = append(entries, entry{key: key.Bytes(), value: value.Bytes()})
	}
	sort.Slice(entries, func(i, j int) bool {
		return bytes.Compare(entries[i].key, entries[j].key) < 0
	})

	if err := e.writeLen(len(entries)); err != nil {
		return err
	}
	for _, ent := range entries {
		if err := e.write(ent.key); err != nil {
			return err
		}
		if err := e.write(ent.value); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) encodeMarshaler(v reflect.Value) error {
	var m encoding.BinaryMarshaler
	if v.Type().Implements(binaryMarshalerType) {
		m = v.Interface().(encoding.BinaryMarshaler)
	} else {
		p := reflect.New(v.Type())
		p.Elem().Set(v)
		m = p.Interface().(encoding.BinaryMarshaler)
	}
	data, err := m.MarshalBinary()
	if err != nil {
		return err
	}
	return e.writeBytes(data)
}

// usesBinaryMarshaler reports whether t round-trips through its own
// MarshalBinary/UnmarshalBinary pair instead of the structural layout.
func usesBinaryMarshaler(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer || t.Kind() == reflect.Interface {
		return false
	}
	ptr := reflect.PointerTo(t)
	marshals := t.Implements(binaryMarshalerType) || ptr.Implements(binaryMarshalerType)
	return marshals && ptr.Implements(binaryUnmarshalerType)
}

// flattenField reports whether field is an embedded struct of unexported
// type. Its exported fields are promoted, so they are laid out in place,
// structurally, the way encoding/json treats them.
func flattenField(field reflect.StructField) bool {
	return field.Anonymous && !field.IsExported() &&
		field.Type.Kind() == reflect.Struct &&
		field.Tag.Get(TagName) != "-"
}

func skipField(field reflect.StructField) bool {
	if !field.IsExported() {
		return true
	}
	return field.Tag.Get(TagName) == "-"
}

// encodesEmpty reports whether every value of t encodes to zero bytes, as
// struct{} and [0]T do. Decoding such values consumes no input.
func encodesEmpty(t reflect.Type) bool {
	if usesBinaryMarshaler(t) {
		return false
	}
	switch t.Kind() {
	case reflect.Array:
		return t.Len() == 0 || encodesEmpty(t.Elem())
	case reflect.Struct:
		return structEncodesEmpty(t)
	default:
		return false
	}
}

func structEncodesEmpty(t reflect.Type) bool {
	for i := range t.NumField() {
		field := t.Field(i)
		switch {
		case flattenField(field):
			if !structEncodesEmpty(field.Type) {
				return false
			}
		case skipField(field):
		default:
			if !encodesEmpty(field.Type) {
				return false
			}
		}
	}
	return true
}
