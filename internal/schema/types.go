package schema

import (
	"fmt"
	"strings"

	"codec-generator/internal/common"
	"codec-generator/options"
	"codec-generator/primitive"
)

// Record describes one fixed-layout record type.
type Record struct {
	Name    string
	PkgPath string
	Pos     string // file:line of the declaration, when known
	Fields  []Field
	// Generic is set for records that declare type parameters.
	Generic bool
	Targets options.TargetEnum
	// Declared is set when the struct definition itself must be emitted
	// alongside the conversions, as for records read from a schema file.
	Declared bool
}

// Field is a single named member of a record.
type Field struct {
	Name string
	Type TypeRef
	// ArrayLen is set for fixed-length arrays; Type is then the element type.
	ArrayLen *ArrayLen
	Pos      string
}

// IsArray reports whether f is a fixed-length array field.
func (f Field) IsArray() bool {
	return f.ArrayLen != nil
}

// TypeString returns the Go spelling of the field type, e.g. "[32]uint8".
func (f Field) TypeString() string {
	if f.ArrayLen != nil {
		return "[" + f.ArrayLen.Expr + "]" + f.Type.Name
	}

	return f.Type.Name
}

// ArrayLen keeps the length of an array field in its source form.
type ArrayLen struct {
	Expr string
}

// FormEnum classifies the shape of a field type.
type FormEnum int

const (
	FormUnsupported FormEnum = iota
	FormScalar
	FormRecord
	FormArray
	FormTypeParam
	FormVariable
)

func (f FormEnum) String() string {
	switch f {
	case FormUnsupported:
		return "unsupported"
	case FormScalar:
		return "scalar"
	case FormRecord:
		return "record"
	case FormArray:
		return "array"
	case FormTypeParam:
		return "type parameter"
	case FormVariable:
		return "variable width"
	default:
		return common.UnknownStr
	}
}

// TypeRef is a reference to a field type.
type TypeRef struct {
	// Name is the spelling used in generated code: "uint32", "Status", "wire.Header".
	Name string
	// PkgPath is the import path of a named type declared outside the
	// record's package. Generated code must import it to spell Name.
	PkgPath string
	// Kind is set when Form is FormScalar.
	Kind primitive.KindEnum
	Form FormEnum
	// Detail is a short human description used in diagnostics.
	Detail string
	// Hint is appended to diagnostics about an unusable type, e.g. a
	// suggested spelling.
	Hint string
}

// Scalar returns a TypeRef for a predeclared fixed-width scalar.
func Scalar(kind primitive.KindEnum) TypeRef {
	return TypeRef{Name: kind.GoName(), Kind: kind, Form: FormScalar}
}

// Named returns a TypeRef for a named type whose underlying type is the scalar kind.
func Named(name string, kind primitive.KindEnum) TypeRef {
	return TypeRef{Name: name, Kind: kind, Form: FormScalar}
}

func (t TypeRef) String() string {
	if t.Detail != "" {
		return t.Detail
	}

	if t.Name != "" {
		return t.Name
	}

	return t.Form.String()
}

// ID returns "pkgpath.Name", or the bare name for records without a package.
func (r *Record) ID() string {
	if r.PkgPath == "" {
		return r.Name
	}

	return r.PkgPath + "." + r.Name
}

// Field returns the field with the given name.
func (r *Record) Field(name string) (Field, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

func (r *Record) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s {", r.ID())
	for i, f := range r.Fields {
		if i > 0 {
			b.WriteString(";")
		}
		fmt.Fprintf(&b, " %s %s", f.Name, f.TypeString())
	}
	b.WriteString(" }")

	return b.String()
}
