package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"sort"
	"strings"
	"text/template"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"codec-generator/internal/common"
	"codec-generator/internal/plan"
	"codec-generator/options"
)

// DefaultRuntimePackage is the import path of the runtime used by generated code.
const DefaultRuntimePackage = "codec-generator/codec"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package. Empty means the last
	// element of the records' package path.
	PackageName string `yaml:"package"`
	// OutputDir is the directory where generated files are written.
	OutputDir string `yaml:"output_dir"`
	// FileName overrides the generated file name. Empty means "<package>_codec.go".
	FileName string `yaml:"file_name"`
	// RuntimePackage is the import path of the codec runtime.
	RuntimePackage string `yaml:"runtime_package"`
	// GenerateComments enables doc comments on generated methods.
	GenerateComments bool `yaml:"comments"`
	// Targets, when set, replaces the targets chosen per record.
	Targets []string `yaml:"targets"`
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputDir:        ".",
		RuntimePackage:   DefaultRuntimePackage,
		GenerateComments: true,
	}
}

// LoadConfig reads a YAML generator configuration on top of the defaults.
func LoadConfig(path string) (GeneratorConfig, error) {
	cfg := DefaultGeneratorConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config YAML: %w", err)
	}

	if _, err := options.ParseTargets(cfg.Targets...); err != nil {
		return cfg, fmt.Errorf("config targets: %w", err)
	}

	return cfg, nil
}

// Generator generates Go code from record plans.
type Generator struct {
	config GeneratorConfig
	// rt is the qualifier of the runtime package in generated code.
	rt string
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.RuntimePackage == "" {
		config.RuntimePackage = DefaultRuntimePackage
	}

	return &Generator{
		config: config,
		rt:     common.PkgAlias(config.RuntimePackage),
	}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "wire_codec.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// recordData is the per-record part of the file template.
type recordData struct {
	Name       string
	Assertions []string
	StructDef  string
	Methods    []string
}

// templateData holds all data needed for the file template.
type templateData struct {
	Header      string
	PackageName string
	Filename    string
	Imports     []importSpec
	Records     []recordData
}

// Generate renders one file holding the codecs of every plan. All plans must
// belong to the same package.
func (g *Generator) Generate(plans []*plan.RecordPlan) ([]GeneratedFile, error) {
	if len(plans) == 0 {
		return nil, nil
	}

	pkgPath := plans[0].Record.PkgPath
	for _, p := range plans[1:] {
		if p.Record.PkgPath != pkgPath {
			return nil, fmt.Errorf("records from multiple packages: %s and %s", pkgPath, p.Record.PkgPath)
		}
	}

	override, err := options.ParseTargets(g.config.Targets...)
	if err != nil {
		return nil, fmt.Errorf("targets: %w", err)
	}
	if len(g.config.Targets) == 0 {
		override = options.TargetNone
	}

	data := &templateData{
		Header:      common.GeneratedHeader,
		PackageName: g.packageName(pkgPath),
	}
	data.Filename = g.filename(data.PackageName)

	imports := map[string]importSpec{
		g.config.RuntimePackage: {Path: g.config.RuntimePackage},
	}

	for _, p := range plans {
		targets := p.Targets()
		if override != options.TargetNone {
			targets = override
		}

		rd, err := g.generateRecord(p, targets)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", p.Record.ID(), err)
		}

		g.collectImports(p, imports)
		data.Records = append(data.Records, rd)

		Logger().Debug("generated record",
			zap.String("record", p.Record.ID()),
			zap.Stringer("targets", targets),
			zap.Int("size", p.Size))
	}

	for _, imp := range imports {
		data.Imports = append(data.Imports, imp)
	}

	sort.Slice(data.Imports, func(i, j int) bool {
		return data.Imports[i].Path < data.Imports[j].Path
	})

	file, err := g.render(data)
	if err != nil {
		return nil, err
	}

	return []GeneratedFile{*file}, nil
}

// generateRecord runs each selected generator over p.
func (g *Generator) generateRecord(p *plan.RecordPlan, targets options.TargetEnum) (recordData, error) {
	rd := recordData{Name: p.Name()}

	if p.Record.Declared {
		rd.StructDef = g.GenerateStruct(p)
	}

	if targets == options.TargetAll {
		rd.Assertions = append(rd.Assertions, g.rt+".Codec")
	}

	generators := []struct {
		target   options.TargetEnum
		iface    []string
		generate func(*plan.RecordPlan) (string, error)
	}{
		{options.TargetDecode, []string{"TryFromCtx"}, g.generateDecode},
		{options.TargetEncode, []string{"TryIntoCtx"}, g.generateEncode},
		{options.TargetSize, []string{"SizeWith"}, g.generateSize},
		{options.TargetUnchecked, []string{"FromCtx", "IntoCtx"}, g.generateUnchecked},
	}

	for _, step := range generators {
		if !targets.Has(step.target) {
			continue
		}

		if targets != options.TargetAll {
			for _, iface := range step.iface {
				rd.Assertions = append(rd.Assertions, g.rt+"."+iface)
			}
		}

		method, err := step.generate(p)
		if err != nil {
			return rd, err
		}

		rd.Methods = append(rd.Methods, method)
	}

	return rd, nil
}

// collectImports adds the packages of named field types declared elsewhere.
func (g *Generator) collectImports(p *plan.RecordPlan, imports map[string]importSpec) {
	for _, f := range p.Fields {
		ref := f.Field.Type
		if ref.PkgPath == "" {
			continue
		}

		spec := importSpec{Path: ref.PkgPath}
		if qual, _, ok := strings.Cut(ref.Name, "."); ok && qual != common.PkgAlias(ref.PkgPath) {
			spec.Alias = qual
		}

		imports[ref.PkgPath] = spec
	}
}

func (g *Generator) packageName(pkgPath string) string {
	if g.config.PackageName != "" {
		return g.config.PackageName
	}

	if name := common.PkgAlias(pkgPath); name != "" {
		return name
	}

	return "main"
}

func (g *Generator) filename(pkgName string) string {
	if g.config.FileName != "" {
		return g.config.FileName
	}

	return pkgName + "_codec.go"
}

// render executes the file template and formats the result.
func (g *Generator) render(data *templateData) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	// Format the generated code
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if g.config.OutputDir != "" {
			if werr := writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes()); werr != nil {
				Logger().Warn("writing unformatted sidecar", zap.Error(werr))
			}
		}

		return &GeneratedFile{
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

// Template for the codec file

var fileTemplate = template.Must(template.New("codec").Parse(`{{.Header}}

package {{.PackageName}}

import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{range .Records}}{{$name := .Name}}
{{if .StructDef}}{{.StructDef}}
{{end}}{{if .Assertions}}var (
{{range .Assertions}}	_ {{.}} = (*{{$name}})(nil)
{{end}})
{{end}}{{range .Methods}}
{{.}}{{end}}{{end}}`))
