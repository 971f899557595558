package codec

import (
	"encoding/binary"
)

// Endian selects how multi-byte scalars are laid out in a buffer. It is the
// context value threaded through every generated conversion.
type Endian uint8

const (
	Little Endian = iota
	Big
)

// Common aliases.
const (
	LE      = Little
	BE      = Big
	Network = Big
)

// Native is the byte order of the host.
var Native = func() Endian {
	if binary.NativeEndian.Uint16([]byte{1, 0}) == 1 {
		return Little
	}
	return Big
}()

// Order returns the encoding/binary byte order for e.
func (e Endian) Order() binary.ByteOrder {
	if e == Big {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// IsLittle reports whether e is little endian.
func (e Endian) IsLittle() bool {
	return e != Big
}

func (e Endian) String() string {
	switch e {
	case Little:
		return "little"
	case Big:
		return "big"
	default:
		return "unknown"
	}
}
