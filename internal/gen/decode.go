package gen

import (
	"fmt"

	"codec-generator/internal/plan"
	"codec-generator/primitive"
)

// generateDecode emits TryDecode. Fields are read in declaration order into a
// local copy that replaces the receiver only after every read succeeded.
func (g *Generator) generateDecode(p *plan.RecordPlan) (string, error) {
	var w codeWriter

	name := p.Name()
	if g.config.GenerateComments {
		w.line("// TryDecode reads %s from src starting at offset using ctx byte order.", name)
		w.line("// It returns the number of bytes consumed. r is left unchanged on failure.")
	}

	w.line("func (r *%s) TryDecode(src []byte, offset int, ctx %s.Endian) (int, error) {", name, g.rt)
	w.in()

	if p.HasDirect() {
		w.line("var (")
		w.in()
		w.line("out %s", name)
		w.line("err error")
		w.out()
		w.line(")")
	} else {
		w.line("var out %s", name)
	}

	w.blank()
	w.line("cur := offset")

	for _, f := range p.Fields {
		switch s := f.Strategy.(type) {
		case plan.Scalar:
			lines, err := primitive.Generate(primitive.OpTryRead, s.Kind, s.Args(g.rt, "src", "cur", "out."+f.Name, ""))
			if err != nil {
				return "", fmt.Errorf("field %s: %w", f.Name, err)
			}

			// The cast form declares v and err; keep them out of the method scope.
			if s.NeedsCast {
				w.line("{")
				w.in()
				w.lines(lines)
				w.out()
				w.line("}")
			} else {
				w.lines(lines)
			}

		case plan.FixedArray:
			lines, err := primitive.Generate(primitive.OpTryRead, s.Elem.Kind,
				s.Elem.Args(g.rt, "src", "cur", "out."+f.Name+"[i]", ""))
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
	w.line("*r = out")
	w.line("return cur - offset, nil")
	w.out()
	w.line("}")

	return w.String(), nil
}
