package codec

import (
	"math"
)

// The unchecked primitives access buf at a caller-computed offset. They do
// not report errors and panic with an index out of range when buf is too
// short. Generated DecodeUnchecked and EncodeUnchecked methods track the
// offset themselves.

func ReadUint8(src []byte, offset int, _ Endian) uint8 {
	return src[offset]
}

func ReadInt8(src []byte, offset int, _ Endian) int8 {
	return int8(src[offset])
}

// ReadBool treats any non-zero byte as true.
func ReadBool(src []byte, offset int, _ Endian) bool {
	return src[offset] != 0
}

func ReadUint16(src []byte, offset int, ctx Endian) uint16 {
	return ctx.Order().Uint16(src[offset : offset+2])
}

func ReadInt16(src []byte, offset int, ctx Endian) int16 {
	return int16(ReadUint16(src, offset, ctx))
}

func ReadUint32(src []byte, offset int, ctx Endian) uint32 {
	return ctx.Order().Uint32(src[offset : offset+4])
}

func ReadInt32(src []byte, offset int, ctx Endian) int32 {
	return int32(ReadUint32(src, offset, ctx))
}

func ReadFloat32(src []byte, offset int, ctx Endian) float32 {
	return math.Float32frombits(ReadUint32(src, offset, ctx))
}

func ReadUint64(src []byte, offset int, ctx Endian) uint64 {
	return ctx.Order().Uint64(src[offset : offset+8])
}

func ReadInt64(src []byte, offset int, ctx Endian) int64 {
	return int64(ReadUint64(src, offset, ctx))
}

func ReadFloat64(src []byte, offset int, ctx Endian) float64 {
	return math.Float64frombits(ReadUint64(src, offset, ctx))
}

func WriteUint8(dst []byte, offset int, v uint8, _ Endian) {
	dst[offset] = v
}

func WriteInt8(dst []byte, offset int, v int8, _ Endian) {
	dst[offset] = uint8(v)
}

func WriteBool(dst []byte, offset int, v bool, _ Endian) {
	if v {
		dst[offset] = 1
	} else {
		dst[offset] = 0
	}
}

func WriteUint16(dst []byte, offset int, v uint16, ctx Endian) {
	ctx.Order().PutUint16(dst[offset:offset+2], v)
}

func WriteInt16(dst []byte, offset int, v int16, ctx Endian) {
	WriteUint16(dst, offset, uint16(v), ctx)
}

func WriteUint32(dst []byte, offset int, v uint32, ctx Endian) {
	ctx.Order().PutUint32(dst[offset:offset+4], v)
}

func WriteInt32(dst []byte, offset int, v int32, ctx Endian) {
	WriteUint32(dst, offset, uint32(v), ctx)
}

func WriteFloat32(dst []byte, offset int, v float32, ctx Endian) {
	WriteUint32(dst, offset, math.Float32bits(v), ctx)
}

func WriteUint64(dst []byte, offset int, v uint64, ctx Endian) {
	ctx.Order().PutUint64(dst[offset:offset+8], v)
}

func WriteInt64(dst []byte, offset int, v int64, ctx Endian) {
	WriteUint64(dst, offset, uint64(v), ctx)
}

func WriteFloat64(dst []byte, offset int, v float64, ctx Endian) {
	WriteUint64(dst, offset, math.Float64bits(v), ctx)
}
