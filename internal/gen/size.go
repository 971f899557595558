package gen

import (
	"codec-generator/internal/plan"
)

// generateSize emits FixedSize returning the planned size. The field layout
// goes into the doc comment.
func (g *Generator) generateSize(p *plan.RecordPlan) (string, error) {
	var w codeWriter

	if g.config.GenerateComments {
		w.line("// FixedSize returns the encoded size of %s in bytes. It does not depend on ctx.", p.Name())
		w.line("//")
		for _, f := range p.Fields {
			w.line("//\t%s: %s at [%d, %d)", f.Name, f.Field.TypeString(), f.Offset, f.Offset+f.Strategy.ByteWidth())
		}
	}

	w.line("func (r *%s) FixedSize(%s.Endian) int {", p.Name(), g.rt)
	w.in()
	w.line("return %d", p.Size)
	w.out()
	w.line("}")

	return w.String(), nil
}
