package gen

import (
	"fmt"

	"codec-generator/internal/plan"
	"codec-generator/primitive"
)

// generateUnchecked emits DecodeUnchecked followed by EncodeUnchecked.
func (g *Generator) generateUnchecked(p *plan.RecordPlan) (string, error) {
	dec, err := g.generateUncheckedMethod(p, primitive.OpRead)
	if err != nil {
		return "", err
	}

	enc, err := g.generateUncheckedMethod(p, primitive.OpWrite)
	if err != nil {
		return "", err
	}

	return dec + "\n" + enc, nil
}

// generateUncheckedMethod renders one unchecked method. Offsets are tracked in
// a local off advanced by the width of each primitive, known at generation
// time. A single bounds hint up front makes a short buffer panic before any
// byte is touched.
func (g *Generator) generateUncheckedMethod(p *plan.RecordPlan, op primitive.OpEnum) (string, error) {
	var w codeWriter

	name := p.Name()
	buf := "src"
	if op == primitive.OpWrite {
		buf = "dst"
	}

	if g.config.GenerateComments {
		if op == primitive.OpRead {
			w.line("// DecodeUnchecked reads %s from the start of src using ctx byte order.", name)
			w.line("// It panics if src is shorter than %d bytes.", p.Size)
		} else {
			w.line("// EncodeUnchecked writes r to the start of dst using ctx byte order.")
			w.line("// It panics if dst is shorter than %d bytes.", p.Size)
		}
	}

	if op == primitive.OpRead {
		w.line("func (r *%s) DecodeUnchecked(src []byte, ctx %s.Endian) {", name, g.rt)
	} else {
		w.line("func (r *%s) EncodeUnchecked(dst []byte, ctx %s.Endian) {", name, g.rt)
	}
	w.in()

	if p.Size > 0 {
		w.line("_ = %s[%d]", buf, p.Size-1)
	}
	w.line("off := 0")

	for i, f := range p.Fields {
		last := i == len(p.Fields)-1

		switch s := f.Strategy.(type) {
		case plan.Scalar:
			lines, err := primitive.Generate(op, s.Kind, g.uncheckedArgs(s, op, buf, "r."+f.Name))
			if err != nil {
				return "", fmt.Errorf("field %s: %w", f.Name, err)
			}

			w.lines(lines)
			if !last {
				w.line("off += %d", s.Width)
			}

		case plan.FixedArray:
			lines, err := primitive.Generate(op, s.Elem.Kind, g.uncheckedArgs(s.Elem, op, buf, "r."+f.Name+"[i]"))
			if err != nil {
				return "", fmt.Errorf("field %s: %w", f.Name, err)
			}

			w.line("for i := range %d {", s.Len)
			w.in()
			w.lines(lines)
			w.line("off += %d", s.Elem.Width)
			w.out()
			w.line("}")

		default:
			return "", fmt.Errorf("field %s: unsupported strategy %T", f.Name, f.Strategy)
		}
	}

	w.out()
	w.line("}")

	return w.String(), nil
}

func (g *Generator) uncheckedArgs(s plan.Scalar, op primitive.OpEnum, buf, field string) primitive.Args {
	if op == primitive.OpRead {
		return s.Args(g.rt, buf, "off", field, "")
	}

	return s.Args(g.rt, buf, "off", "", field)
}
