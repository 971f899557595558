package gen

import (
	"fmt"

	"codec-generator/internal/plan"
	"codec-generator/primitive"
)

// generateEncode emits TryEncode. Writes happen in declaration order straight
// into dst, so a failure leaves the preceding fields written.
func (g *Generator) generateEncode(p *plan.RecordPlan) (string, error) {
	var w codeWriter

	name := p.Name()
	if g.config.GenerateComments {
		w.line("// TryEncode writes r into dst starting at offset using ctx byte order.")
		w.line("// It returns the number of bytes written. On failure the fields before")
		w.line("// the failing one have already been written to dst.")
	}

	w.line("func (r *%s) TryEncode(dst []byte, offset int, ctx %s.Endian) (int, error) {", name, g.rt)
	w.in()
	w.line("cur := offset")

	for _, f := range p.Fields {
		switch s := f.Strategy.(type) {
		case plan.Scalar:
			lines, err := primitive.Generate(primitive.OpTryWrite, s.Kind, s.Args(g.rt, "dst", "cur", "", "r."+f.Name))
			if err != nil {
				return "", fmt.Errorf("field %s: %w", f.Name, err)
			}

			w.lines(lines)

		case plan.FixedArray:
			lines, err := primitive.Generate(primitive.OpTryWrite, s.Elem.Kind,
				s.Elem.Args(g.rt, "dst", "cur", "", "r."+f.Name+"[i]"))
			if err != nil {
				return "", fmt.Errorf("field %s: %w", f.Name, err)
			}

			w.line("for i := range %d {", s.Len)
			w.in()
			w.lines(lines)
			w.out()
			w.line("}")

		default:
			return "", fmt.Errorf("field %s: unsupported strategy %T", f.Name, f.Strategy)
		}
	}

	w.blank()
	w.line("return cur - offset, nil")
	w.out()
	w.line("}")

	return w.String(), nil
}
