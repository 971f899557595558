package codec

import (
	"strconv"
	"strings"
)

// Op is the direction of the access that failed.
type Op string

const (
	OpRead  Op = "read"
	OpWrite Op = "write"
)

// Kind categorizes a checked access failure.
type Kind string

const (
	KindTooShort    Kind = "too_short"    // source holds fewer bytes than the value needs
	KindTooSmall    Kind = "too_small"    // destination has less room than the value needs
	KindBadOffset   Kind = "bad_offset"   // offset is negative or past the end of the buffer
	KindInvalidBool Kind = "invalid_bool" // boolean byte is neither 0 nor 1
)

// Sentinels for errors.Is. Matching is by Kind only.
var (
	ErrTooShort    = &Error{Kind: KindTooShort}
	ErrTooSmall    = &Error{Kind: KindTooSmall}
	ErrBadOffset   = &Error{Kind: KindBadOffset}
	ErrInvalidBool = &Error{Kind: KindInvalidBool}
)

// Error is returned by the checked primitives and surfaced unchanged by
// generated TryDecode and TryEncode methods.
type Error struct {
	Op     Op
	Kind   Kind
	Type   string // scalar type being accessed, e.g. "uint32"
	Offset int    // cursor position at the time of the access
	Need   int    // bytes required by the access
	Have   int    // bytes available from Offset
	Value  byte   // offending byte for KindInvalidBool
}

func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString("codec: ")
	if e.Op != "" {
		b.WriteString(string(e.Op))
		b.WriteByte(' ')
	}
	if e.Type != "" {
		b.WriteString(e.Type)
		b.WriteByte(' ')
	}
	b.WriteString("at offset ")
	b.WriteString(strconv.Itoa(e.Offset))
	b.WriteString(": ")

	switch e.Kind {
	case KindTooShort:
		b.WriteString("buffer too short: need ")
		b.WriteString(strconv.Itoa(e.Need))
		b.WriteString(" bytes, have ")
		b.WriteString(strconv.Itoa(e.Have))
	case KindTooSmall:
		b.WriteString("buffer too small: need ")
		b.WriteString(strconv.Itoa(e.Need))
		b.WriteString(" bytes, have ")
		b.WriteString(strconv.Itoa(e.Have))
	case KindBadOffset:
		b.WriteString("offset out of range for buffer of ")
		b.WriteString(strconv.Itoa(e.Have))
		b.WriteString(" bytes")
	case KindInvalidBool:
		b.WriteString("invalid bool byte 0x")
		b.WriteString(strconv.FormatUint(uint64(e.Value), 16))
	default:
		b.WriteString(string(e.Kind))
	}

	return b.String()
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}
