package plan

import (
	"fmt"

	"codec-generator/primitive"
)

// Strategy is how a field is moved between a record and a buffer. The set of
// strategies is closed: Scalar and FixedArray.
type Strategy interface {
	// ByteWidth returns the number of bytes the field occupies.
	ByteWidth() int
	fmt.Stringer

	strategy()
}

// Scalar moves a single fixed-width value with one primitive call.
type Scalar struct {
	Kind  primitive.KindEnum
	Width int
	// TypeName is the declared Go type of the value, e.g. "uint32" or "Status".
	TypeName string
	// NeedsCast is set when TypeName is a named type that has to be converted
	// to and from the primitive's Go type.
	NeedsCast bool
}

// FixedArray moves Len elements, first to last, with one primitive call each.
type FixedArray struct {
	Elem Scalar
	Len  int
}

var (
	_ Strategy = Scalar{}
	_ Strategy = FixedArray{}
)

func (s Scalar) ByteWidth() int { return s.Width }

func (a FixedArray) ByteWidth() int { return a.Len * a.Elem.Width }

func (s Scalar) String() string {
	return fmt.Sprintf("scalar %s (%d bytes)", s.TypeName, s.Width)
}

func (a FixedArray) String() string {
	return fmt.Sprintf("array [%d]%s (%d bytes)", a.Len, a.Elem.TypeName, a.ByteWidth())
}

func (Scalar) strategy()     {}
func (FixedArray) strategy() {}

// Args returns the primitive arguments for this scalar with the cast
// spelling filled in when needed.
func (s Scalar) Args(pkg, buf, cursor, dst, src string) primitive.Args {
	args := primitive.Args{Pkg: pkg, Buf: buf, Cursor: cursor, Dst: dst, Src: src}
	if s.NeedsCast {
		args.Type = s.TypeName
	}

	return args
}
