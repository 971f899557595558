package codec

import (
	"math"
)

// span validates that n bytes are available at *offset and returns them.
// The cursor is advanced only on success.
func span(buf []byte, offset *int, n int, op Op, typ string) ([]byte, error) {
	off := *offset
	if off < 0 || off > len(buf) {
		return nil, &Error{Op: op, Kind: KindBadOffset, Type: typ, Offset: off, Need: n, Have: len(buf)}
	}

	if len(buf)-off < n {
		kind := KindTooShort
		if op == OpWrite {
			kind = KindTooSmall
		}
		return nil, &Error{Op: op, Kind: kind, Type: typ, Offset: off, Need: n, Have: len(buf) - off}
	}

	*offset = off + n
	return buf[off : off+n], nil
}

// GreadUint8 reads a uint8 at *offset and advances the cursor by 1.
func GreadUint8(src []byte, offset *int, _ Endian) (uint8, error) {
	b, err := span(src, offset, 1, OpRead, "uint8")
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// GreadInt8 reads an int8 at *offset and advances the cursor by 1.
func GreadInt8(src []byte, offset *int, _ Endian) (int8, error) {
	b, err := span(src, offset, 1, OpRead, "int8")
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

// GreadBool reads a bool at *offset and advances the cursor by 1.
// Bytes other than 0 and 1 are rejected and the cursor is left unchanged.
func GreadBool(src []byte, offset *int, _ Endian) (bool, error) {
	start := *offset
	b, err := span(src, offset, 1, OpRead, "bool")
	if err != nil {
		return false, err
	}

	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		*offset = start
		return false, &Error{Op: OpRead, Kind: KindInvalidBool, Type: "bool", Offset: start, Need: 1, Have: len(src) - start, Value: b[0]}
	}
}

// GreadUint16 reads a uint16 at *offset in ctx byte order and advances the cursor by 2.
func GreadUint16(src []byte, offset *int, ctx Endian) (uint16, error) {
	b, err := span(src, offset, 2, OpRead, "uint16")
	if err != nil {
		return 0, err
	}
	return ctx.Order().Uint16(b), nil
}

// GreadInt16 reads an int16 at *offset in ctx byte order and advances the cursor by 2.
func GreadInt16(src []byte, offset *int, ctx Endian) (int16, error) {
	v, err := GreadUint16(src, offset, ctx)
	return int16(v), relabel(err, "int16")
}

// GreadUint32 reads a uint32 at *offset in ctx byte order and advances the cursor by 4.
func GreadUint32(src []byte, offset *int, ctx Endian) (uint32, error) {
	b, err := span(src, offset, 4, OpRead, "uint32")
	if err != nil {
		return 0, err
	}
	return ctx.Order().Uint32(b), nil
}

// GreadInt32 reads an int32 at *offset in ctx byte order and advances the cursor by 4.
func GreadInt32(src []byte, offset *int, ctx Endian) (int32, error) {
	v, err := GreadUint32(src, offset, ctx)
	return int32(v), relabel(err, "int32")
}

// GreadFloat32 reads an IEEE 754 float32 at *offset and advances the cursor by 4.
func GreadFloat32(src []byte, offset *int, ctx Endian) (float32, error) {
	v, err := GreadUint32(src, offset, ctx)
	return math.Float32frombits(v), relabel(err, "float32")
}

// GreadUint64 reads a uint64 at *offset in ctx byte order and advances the cursor by 8.
func GreadUint64(src []byte, offset *int, ctx Endian) (uint64, error) {
	b, err := span(src, offset, 8, OpRead, "uint64")
	if err != nil {
		return 0, err
	}
	return ctx.Order().Uint64(b), nil
}

// GreadInt64 reads an int64 at *offset in ctx byte order and advances the cursor by 8.
func GreadInt64(src []byte, offset *int, ctx Endian) (int64, error) {
	v, err := GreadUint64(src, offset, ctx)
	return int64(v), relabel(err, "int64")
}

// GreadFloat64 reads an IEEE 754 float64 at *offset and advances the cursor by 8.
func GreadFloat64(src []byte, offset *int, ctx Endian) (float64, error) {
	v, err := GreadUint64(src, offset, ctx)
	return math.Float64frombits(v), relabel(err, "float64")
}

// GwriteUint8 writes v at *offset and advances the cursor by 1.
func GwriteUint8(dst []byte, offset *int, v uint8, _ Endian) error {
	b, err := span(dst, offset, 1, OpWrite, "uint8")
	if err != nil {
		return err
	}
	b[0] = v
	return nil
}

// GwriteInt8 writes v at *offset and advances the cursor by 1.
func GwriteInt8(dst []byte, offset *int, v int8, ctx Endian) error {
	return relabel(GwriteUint8(dst, offset, uint8(v), ctx), "int8")
}

// GwriteBool writes v as a single 0 or 1 byte at *offset and advances the cursor by 1.
func GwriteBool(dst []byte, offset *int, v bool, ctx Endian) error {
	var b uint8
	if v {
		b = 1
	}
	return relabel(GwriteUint8(dst, offset, b, ctx), "bool")
}

// GwriteUint16 writes v at *offset in ctx byte order and advances the cursor by 2.
func GwriteUint16(dst []byte, offset *int, v uint16, ctx Endian) error {
	b, err := span(dst, offset, 2, OpWrite, "uint16")
	if err != nil {
		return err
	}
	ctx.Order().PutUint16(b, v)
	return nil
}

// GwriteInt16 writes v at *offset in ctx byte order and advances the cursor by 2.
func GwriteInt16(dst []byte, offset *int, v int16, ctx Endian) error {
	return relabel(GwriteUint16(dst, offset, uint16(v), ctx), "int16")
}

// GwriteUint32 writes v at *offset in ctx byte order and advances the cursor by 4.
func GwriteUint32(dst []byte, offset *int, v uint32, ctx Endian) error {
	b, err := span(dst, offset, 4, OpWrite, "uint32")
	if err != nil {
		return err
	}
	ctx.Order().PutUint32(b, v)
	return nil
}

// GwriteInt32 writes v at *offset in ctx byte order and advances the cursor by 4.
func GwriteInt32(dst []byte, offset *int, v int32, ctx Endian) error {
	return relabel(GwriteUint32(dst, offset, uint32(v), ctx), "int32")
}

// GwriteFloat32 writes the IEEE 754 bits of v at *offset and advances the cursor by 4.
func GwriteFloat32(dst []byte, offset *int, v float32, ctx Endian) error {
	return relabel(GwriteUint32(dst, offset, math.Float32bits(v), ctx), "float32")
}

// GwriteUint64 writes v at *offset in ctx byte order and advances the cursor by 8.
func GwriteUint64(dst []byte, offset *int, v uint64, ctx Endian) error {
	b, err := span(dst, offset, 8, OpWrite, "uint64")
	if err != nil {
		return err
	}
	ctx.Order().PutUint64(b, v)
	return nil
}

// GwriteInt64 writes v at *offset in ctx byte order and advances the cursor by 8.
func GwriteInt64(dst []byte, offset *int, v int64, ctx Endian) error {
	return relabel(GwriteUint64(dst, offset, uint64(v), ctx), "int64")
}

// GwriteFloat64 writes the IEEE 754 bits of v at *offset and advances the cursor by 8.
func GwriteFloat64(dst []byte, offset *int, v float64, ctx Endian) error {
	return relabel(GwriteUint64(dst, offset, math.Float64bits(v), ctx), "float64")
}

// relabel rewrites the scalar type reported by err, which comes from the
// unsigned primitive a signed or floating point primitive delegates to.
func relabel(err error, typ string) error {
	if e, ok := err.(*Error); ok {
		e.Type = typ
	}
	return err
}
