package primitive

import (
	"bytes"
	"fmt"
)

// Args names the expressions substituted into a primitive statement template.
type Args struct {
	Pkg    string // runtime package qualifier, e.g. "codec"
	Buf    string // buffer expression, e.g. "src"
	Cursor string // cursor variable, e.g. "cur"
	Dst    string // assignable destination for reads, e.g. "out.ID"
	Src    string // value expression for writes, e.g. "r.ID"
	Type   string // named field type when it differs from the kind's Go name
}

// NeedsCast reports whether a conversion between the runtime scalar type and
// the field's declared type has to be emitted.
func (a Args) NeedsCast(kind KindEnum) bool {
	switch {
	case a.Type == "" || a.Type == kind.GoName():
		return false
	case kind == KindUint8 && a.Type == "byte", kind == KindInt32 && a.Type == "rune":
		return false
	default:
		return true
	}
}

// Generate renders the statement lines for one primitive call of the given
// operation and kind. Lines are returned unindented.
func Generate(op OpEnum, kind KindEnum, args Args) ([]string, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("no primitive for kind %s", kind)
	}

	cast := args.NeedsCast(kind)

	lines, ok := templates[templateKey{Op: op, Cast: cast}]
	if !ok {
		return nil, fmt.Errorf("no template for operation %d", op)
	}

	values := map[string]any{
		"pkg":    args.Pkg,
		"buf":    args.Buf,
		"cursor": args.Cursor,
		"dst":    args.Dst,
		"src":    args.Src,
		"type":   args.Type,
		"goType": kind.GoName(),
		"fn":     kind.Suffix(),
	}

	res := make([]string, 0, len(lines))
	for _, tmpl := range lines {
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, values); err != nil {
			return nil, fmt.Errorf("executing template %q: %w", tmpl.Root.String(), err)
		}

		res = append(res, buf.String())
	}

	return res, nil
}
