package codec

import (
	"fmt"
	"io"
)

// TryFromCtx is implemented by generated TryDecode methods.
//
// TryDecode reconstructs the receiver from src starting at offset and returns
// the number of bytes consumed. On failure the receiver is left unchanged and
// the error of the failing field is returned as is.
type TryFromCtx interface {
	TryDecode(src []byte, offset int, ctx Endian) (int, error)
}

// TryIntoCtx is implemented by generated TryEncode methods.
//
// TryEncode writes the receiver into dst starting at offset and returns the
// number of bytes written. A failure does not roll back: fields written before
// the failing one remain in dst, which must be treated as partially written.
type TryIntoCtx interface {
	TryEncode(dst []byte, offset int, ctx Endian) (int, error)
}

// SizeWith is implemented by generated FixedSize methods. The size of a
// fixed-layout record does not depend on ctx.
type SizeWith interface {
	FixedSize(ctx Endian) int
}

// FromCtx is implemented by generated DecodeUnchecked methods. src must hold
// at least FixedSize bytes; shorter buffers panic.
type FromCtx interface {
	DecodeUnchecked(src []byte, ctx Endian)
}

// IntoCtx is implemented by generated EncodeUnchecked methods. dst must hold
// at least FixedSize bytes; shorter buffers panic.
type IntoCtx interface {
	EncodeUnchecked(dst []byte, ctx Endian)
}

// Codec is the full generated surface of a record.
type Codec interface {
	TryFromCtx
	TryIntoCtx
	SizeWith
	FromCtx
	IntoCtx
}

// Pread decodes a T from src at offset and returns it with the number of bytes consumed.
func Pread[T any, PT interface {
	*T
	TryFromCtx
}](src []byte, offset int, ctx Endian) (T, int, error) {
	var v T
	n, err := PT(&v).TryDecode(src, offset, ctx)
	if err != nil {
		var zero T
		return zero, 0, err
	}
	return v, n, nil
}

// Gread decodes a T from src at *offset and advances *offset past it.
// The offset is left unchanged on failure.
func Gread[T any, PT interface {
	*T
	TryFromCtx
}](src []byte, offset *int, ctx Endian) (T, error) {
	v, n, err := Pread[T, PT](src, *offset, ctx)
	if err != nil {
		return v, err
	}
	*offset += n
	return v, nil
}

// Pwrite encodes v into dst at offset and returns the number of bytes written.
func Pwrite(dst []byte, v TryIntoCtx, offset int, ctx Endian) (int, error) {
	return v.TryEncode(dst, offset, ctx)
}

// Gwrite encodes v into dst at *offset and advances *offset past it.
// The offset is left unchanged on failure.
func Gwrite(dst []byte, v TryIntoCtx, offset *int, ctx Endian) error {
	n, err := v.TryEncode(dst, *offset, ctx)
	if err != nil {
		return err
	}
	*offset += n
	return nil
}

// SizeOf returns the fixed encoded size of T.
func SizeOf[T any, PT interface {
	*T
	SizeWith
}](ctx Endian) int {
	var v T
	return PT(&v).FixedSize(ctx)
}

// FromBytes decodes a T from the start of src without per-field error checks.
// It panics when src is shorter than the size of T.
func FromBytes[T any, PT interface {
	*T
	FromCtx
}](src []byte, ctx Endian) T {
	var v T
	PT(&v).DecodeUnchecked(src, ctx)
	return v
}

// IntoBytes encodes v into a freshly allocated buffer of exactly its fixed size.
func IntoBytes[PT interface {
	IntoCtx
	SizeWith
}](v PT, ctx Endian) []byte {
	buf := make([]byte, v.FixedSize(ctx))
	v.EncodeUnchecked(buf, ctx)
	return buf
}

// IORead reads exactly one T from r into a pre-sized buffer and decodes it
// with the unchecked path.
func IORead[T any, PT interface {
	*T
	FromCtx
	SizeWith
}](r io.Reader, ctx Endian) (T, error) {
	var v T
	buf := make([]byte, PT(&v).FixedSize(ctx))
	if _, err := io.ReadFull(r, buf); err != nil {
		return v, fmt.Errorf("reading %d bytes: %w", len(buf), err)
	}
	PT(&v).DecodeUnchecked(buf, ctx)
	return v, nil
}

// IOWrite encodes v with the unchecked path and writes it to w.
func IOWrite[PT interface {
	IntoCtx
	SizeWith
}](w io.Writer, v PT, ctx Endian) error {
	if _, err := w.Write(IntoBytes(v, ctx)); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	return nil
}
