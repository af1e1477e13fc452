// Package bytex converts Go values to and from fixed-width binary bytes and
// hexadecimal text, and hashes values through their binary form.
//
// The binary layout is positional and deterministic: a value always encodes
// to the same bytes for a given byte order, and decoding with the same
// order restores it.
//
// # Binary Layout
//
//   - bool: one byte, 0 or 1
//   - int8, uint8: one byte
//   - int16, uint16: two bytes
//   - int32, uint32, float32: four bytes
//   - int, int64, uint, uint64, uintptr, float64: eight bytes
//   - string, []T, map[K]V: u64 length, then the elements
//   - [N]T: N elements, no length
//   - *T: one tag byte (0 absent, 1 present), then the value
//   - struct: exported fields in declaration order; `bytex:"-"` skips one.
//     An embedded struct of unexported type contributes its exported fields
//     in place.
//   - encoding.BinaryMarshaler (time.Time, uuid.UUID): length-prefixed blob
//
// Map entries are written in ascending order of their encoded keys.
//
// # Byte Order
//
// Every operation exists for little, big and native endian. The default
// forms (ToBytes, FromBytes) use the order a type declares by implementing
// BytesConfigurer, or little endian:
//
//	type Header struct {
//	    Magic   uint32
//	    Version uint16
//	}
//
//	func (Header) BytesOptions() bytex.BytesOptions {
//	    return bytex.BytesOptions{Endian: bytex.Big}
//	}
//
//	data, err := bytex.ToBytes(Header{Magic: 0xCAFEBABE, Version: 1})
//	// data = ca fe ba be 00 01
//
// A Codec binds a type, an order and an optional ObservabilityHook:
//
//	codec := bytex.NewCodec[Header](bytex.WithHook(bytex.NewLoggingHook(logger)))
//	h, err := codec.Decode(data)
//
// # Hex
//
//	bytex.ToHex("hello world")            // 68656c6c6f20776f726c64
//	bytex.ToUpperHexWith0x("hello world") // 0x68656C6C6F20776F726C64
//	b, err := bytex.DecodeHex("0x68656C6c6f")
//
// Decoding accepts either case and an optional lowercase "0x" prefix.
//
// # Hashing
//
//	sum, err := bytex.Hash(bytex.BLAKE3, header)
//	sum, err = bytex.HashWith(sha256.New, header)
//
// # Errors
//
// Every failure wraps one of the sentinel errors (ErrBytesConversion,
// ErrIO, ErrOddLength, ...) and can be tested with errors.Is or the
// Is...Error helpers.
package bytex
