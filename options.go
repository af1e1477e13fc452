package bytex

import "reflect"

// BytesOptions is the per-type binary configuration.
type BytesOptions struct {
	Endian Endian
}

// DefaultBytesOptions returns the options used by types that do not
// declare their own: little endian.
func DefaultBytesOptions() BytesOptions {
	return BytesOptions{Endian: Little}
}

// BytesConfigurer is implemented by types that fix their default byte order
// at the definition site. Implement it on the value receiver and return a
// constant:
//
//	type Header struct{ Magic uint32 }
//
//	func (Header) BytesOptions() bytex.BytesOptions {
//	    return bytex.BytesOptions{Endian: bytex.Big}
//	}
type BytesConfigurer interface {
	BytesOptions() BytesOptions
}

// EndianOf returns the default byte order declared by v's type, or Little.
// A nil pointer reports Little so that the conversion itself can return
// the nil-value error.
func EndianOf(v any) Endian {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return DefaultBytesOptions().Endian
	}
	if c, ok := v.(BytesConfigurer); ok {
		return c.BytesOptions().Endian
	}
	return DefaultBytesOptions().Endian
}

// CodecOption configures a Codec.
type CodecOption func(*codecOptions)

type codecOptions struct {
	endian    Endian
	hasEndian bool
	hook      ObservabilityHook
}

// WithEndian overrides the byte order the codec uses instead of the one
// declared by the codec's type.
func WithEndian(e Endian) CodecOption {
	return func(o *codecOptions) {
		o.endian = e
		o.hasEndian = true
	}
}

// WithHook reports every codec operation to hook.
func WithHook(hook ObservabilityHook) CodecOption {
	return func(o *codecOptions) {
		o.hook = hook
	}
}
