package primitive

import (
	"go/types"
	"strings"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum is a fixed-width scalar kind that has a wire representation.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindUint8
	KindInt8
	KindUint16
	KindInt16
	KindUint32
	KindInt32
	KindUint64
	KindInt64
	KindFloat32
	KindFloat64
	KindBool

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsValid reports whether k is one of the defined kinds.
func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindUint8, KindInt8, KindUint16, KindInt16,
		KindUint32, KindInt32, KindUint64, KindInt64:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

// Width returns the number of bytes a value of kind k occupies on the wire.
func (k KindEnum) Width() int {
	switch k {
	default:
		panic("width requested for invalid kind: " + k.String())
	case KindUint8, KindInt8, KindBool:
		return 1
	case KindUint16, KindInt16:
		return 2
	case KindUint32, KindInt32, KindFloat32:
		return 4
	case KindUint64, KindInt64, KindFloat64:
		return 8
	}
}

// GoName returns the predeclared Go type spelling of k, e.g. "uint32".
func (k KindEnum) GoName() string {
	switch k {
	case KindUint8:
		return "uint8"
	case KindInt8:
		return "int8"
	case KindUint16:
		return "uint16"
	case KindInt16:
		return "int16"
	case KindUint32:
		return "uint32"
	case KindInt32:
		return "int32"
	case KindUint64:
		return "uint64"
	case KindInt64:
		return "int64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindBool:
		return "bool"
	default:
		return ""
	}
}

// Suffix returns the name fragment used by the codec runtime functions,
// e.g. "Uint32" for codec.GreadUint32 and codec.ReadUint32.
func (k KindEnum) Suffix() string {
	name := k.GoName()
	if name == "" {
		return ""
	}

	return strings.ToUpper(name[:1]) + name[1:]
}

// FromBasic maps a go/types basic kind to a KindEnum.
// Platform-sized and non-numeric kinds map to the zero value.
func FromBasic(kind types.BasicKind) KindEnum {
	switch kind {
	case types.Uint8: // also types.Byte
		return KindUint8
	case types.Int8:
		return KindInt8
	case types.Uint16:
		return KindUint16
	case types.Int16:
		return KindInt16
	case types.Uint32:
		return KindUint32
	case types.Int32: // also types.Rune
		return KindInt32
	case types.Uint64:
		return KindUint64
	case types.Int64:
		return KindInt64
	case types.Float32:
		return KindFloat32
	case types.Float64:
		return KindFloat64
	case types.Bool:
		return KindBool
	default:
		return 0
	}
}

// IsPlatformSized reports whether a go/types basic kind has a width that
// depends on the target architecture.
func IsPlatformSized(kind types.BasicKind) bool {
	switch kind {
	case types.Int, types.Uint, types.Uintptr:
		return true
	default:
		return false
	}
}

// Spellings returns every type name FromName accepts.
func Spellings() []string {
	return []string{
		"uint8", "byte", "u8",
		"int8", "i8",
		"uint16", "u16",
		"int16", "i16",
		"uint32", "u32",
		"int32", "rune", "i32",
		"uint64", "u64",
		"int64", "i64",
		"float32", "f32",
		"float64", "f64",
		"bool",
	}
}

// FromName maps a type name as written in a schema file to a KindEnum.
// Both Go spellings ("uint32", "byte") and short forms ("u32", "f64") are accepted.
func FromName(name string) KindEnum {
	switch strings.TrimSpace(name) {
	case "uint8", "byte", "u8":
		return KindUint8
	case "int8", "i8":
		return KindInt8
	case "uint16", "u16":
		return KindUint16
	case "int16", "i16":
		return KindInt16
	case "uint32", "u32":
		return KindUint32
	case "int32", "rune", "i32":
		return KindInt32
	case "uint64", "u64":
		return KindUint64
	case "int64", "i64":
		return KindInt64
	case "float32", "f32":
		return KindFloat32
	case "float64", "f64":
		return KindFloat64
	case "bool":
		return KindBool
	default:
		return 0
	}
}
