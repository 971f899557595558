// Package codec is the runtime imported by code that codec-generator emits.
//
// It provides the byte-order context (Endian), the scalar access primitives
// the generated methods are built on, and generic helpers that operate on any
// generated record type.
//
// Two regimes exist and are never mixed within one generated method:
//   - Checked: Gread*/Gwrite* take a cursor by pointer, validate bounds, advance
//     the cursor, and report failures as *Error values.
//   - Unchecked: Read*/Write* take an explicit offset, return no error, and
//     panic when the buffer is too small. Callers validate capacity first,
//     usually with SizeWith.FixedSize.
package codec
