package primitive

import (
	"text/template"
)

// OpEnum selects which runtime primitive an emitted statement calls.
type OpEnum int

const (
	_ OpEnum = iota

	OpTryRead  // checked read through an advancing cursor, codec.Gread*
	OpTryWrite // checked write through an advancing cursor, codec.Gwrite*
	OpRead     // unchecked read at an explicit offset, codec.Read*
	OpWrite    // unchecked write at an explicit offset, codec.Write*
)

// templateKey picks a statement shape for an operation. Named types need a
// conversion around the runtime call, which changes the shape of checked reads.
type templateKey struct {
	Op   OpEnum
	Cast bool
}

// templates holds the parsed statement lines per shape, built once in init.
var templates map[templateKey][]*template.Template

func init() {
	sources := map[templateKey][]string{
		{OpTryRead, false}: {
			"if {{.dst}}, err = {{.pkg}}.Gread{{.fn}}({{.buf}}, &{{.cursor}}, ctx); err != nil {",
			"	return 0, err",
			"}",
		},
		{OpTryRead, true}: {
			"v, err := {{.pkg}}.Gread{{.fn}}({{.buf}}, &{{.cursor}}, ctx)",
			"if err != nil {",
			"	return 0, err",
			"}",
			"{{.dst}} = {{.type}}(v)",
		},
		{OpTryWrite, false}: {
			"if err := {{.pkg}}.Gwrite{{.fn}}({{.buf}}, &{{.cursor}}, {{.src}}, ctx); err != nil {",
			"	return 0, err",
			"}",
		},
		{OpTryWrite, true}: {
			"if err := {{.pkg}}.Gwrite{{.fn}}({{.buf}}, &{{.cursor}}, {{.goType}}({{.src}}), ctx); err != nil {",
			"	return 0, err",
			"}",
		},
		{OpRead, false}: {
			"{{.dst}} = {{.pkg}}.Read{{.fn}}({{.buf}}, {{.cursor}}, ctx)",
		},
		{OpRead, true}: {
			"{{.dst}} = {{.type}}({{.pkg}}.Read{{.fn}}({{.buf}}, {{.cursor}}, ctx))",
		},
		{OpWrite, false}: {
			"{{.pkg}}.Write{{.fn}}({{.buf}}, {{.cursor}}, {{.src}}, ctx)",
		},
		{OpWrite, true}: {
			"{{.pkg}}.Write{{.fn}}({{.buf}}, {{.cursor}}, {{.goType}}({{.src}}), ctx)",
		},
	}

	templates = make(map[templateKey][]*template.Template, len(sources))
	for key, lines := range sources {
		parsed := make([]*template.Template, 0, len(lines))
		for _, line := range lines {
			parsed = append(parsed, template.Must(template.New("line").Option("missingkey=error").Parse(line)))
		}
		templates[key] = parsed
	}
}
