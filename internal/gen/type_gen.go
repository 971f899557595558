package gen

import (
	"fmt"
	"strings"

	"codec-generator/internal/plan"
)

// GenerateStruct generates the Go struct definition for a record declared
// outside Go source, such as in a schema file. Fields keep their declared
// order, which is also the wire order.
func (g *Generator) GenerateStruct(p *plan.RecordPlan) string {
	var sb strings.Builder

	if g.config.GenerateComments {
		sb.WriteString(fmt.Sprintf("// %s is a fixed-layout record of %d bytes.\n", p.Name(), p.Size))
	}

	sb.WriteString(fmt.Sprintf("type %s struct {\n", p.Name()))

	for _, f := range p.Fields {
		sb.WriteString(fmt.Sprintf("\t%s %s\n", f.Name, f.Field.TypeString()))
	}

	sb.WriteString("}\n")

	return sb.String()
}
