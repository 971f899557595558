package gen

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codec-generator/internal/plan"
	"codec-generator/internal/schema"
	"codec-generator/options"
	"codec-generator/primitive"
)

func mustPlan(t *testing.T, r *schema.Record) *plan.RecordPlan {
	t.Helper()

	p, diags := plan.PlanRecord(r)
	require.NoError(t, diags.Error())

	return p
}

func dataRecord() *schema.Record {
	return &schema.Record{
		Name:    "Data",
		PkgPath: "example/wire",
		Fields: []schema.Field{
			{Name: "ID", Type: schema.Scalar(primitive.KindUint32)},
			{Name: "Timestamp", Type: schema.Scalar(primitive.KindFloat64)},
		},
	}
}

func telemetryRecord() *schema.Record {
	return &schema.Record{
		Name:    "Telemetry",
		PkgPath: "example/wire",
		Fields: []schema.Field{
			{Name: "Status", Type: schema.Named("Status", primitive.KindUint16)},
			{Name: "Samples", Type: schema.Scalar(primitive.KindInt16), ArrayLen: &schema.ArrayLen{Expr: "4"}},
			{Name: "Levels", Type: schema.Named("Level", primitive.KindInt8), ArrayLen: &schema.ArrayLen{Expr: "3"}},
			{Name: "Unit", Type: schema.TypeRef{
				Name: "units.Scale", PkgPath: "example/units", Kind: primitive.KindUint8, Form: schema.FormScalar,
			}},
		},
	}
}

func generateOne(t *testing.T, cfg GeneratorConfig, records ...*schema.Record) string {
	t.Helper()

	plans := make([]*plan.RecordPlan, 0, len(records))
	for _, r := range records {
		plans = append(plans, mustPlan(t, r))
	}

	files, err := NewGenerator(cfg).Generate(plans)
	require.NoError(t, err)
	require.Len(t, files, 1)

	_, err = parser.ParseFile(token.NewFileSet(), files[0].Filename, files[0].Content, parser.AllErrors)
	require.NoError(t, err, string(files[0].Content))

	return string(files[0].Content)
}

func TestGenerator_Generate_Data(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.OutputDir = ""

	plans := []*plan.RecordPlan{mustPlan(t, dataRecord())}
	files, err := NewGenerator(cfg).Generate(plans)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "wire_codec.go", files[0].Filename)

	code := string(files[0].Content)
	assert.True(t, strings.HasPrefix(code, "// Code generated by codec-generator. DO NOT EDIT.\n\npackage wire\n"))
	assert.Contains(t, code, `import (
	"codec-generator/codec"
)`)
	assert.Contains(t, code, "_ codec.Codec = (*Data)(nil)")

	// decode
	assert.Contains(t, code, "func (r *Data) TryDecode(src []byte, offset int, ctx codec.Endian) (int, error) {")
	assert.Contains(t, code, "if out.ID, err = codec.GreadUint32(src, &cur, ctx); err != nil {")
	assert.Contains(t, code, "if out.Timestamp, err = codec.GreadFloat64(src, &cur, ctx); err != nil {")
	assert.Contains(t, code, "*r = out\n\treturn cur - offset, nil")

	// encode
	assert.Contains(t, code, "func (r *Data) TryEncode(dst []byte, offset int, ctx codec.Endian) (int, error) {")
	assert.Contains(t, code, "if err := codec.GwriteUint32(dst, &cur, r.ID, ctx); err != nil {")

	// size
	assert.Contains(t, code, "func (r *Data) FixedSize(codec.Endian) int {\n\treturn 12\n}")
	assert.Contains(t, code, "//\tTimestamp: float64 at [4, 12)")

	// unchecked
	assert.Contains(t, code, "func (r *Data) DecodeUnchecked(src []byte, ctx codec.Endian) {\n\t_ = src[11]\n\toff := 0\n")
	assert.Contains(t, code, "r.ID = codec.ReadUint32(src, off, ctx)\n\toff += 4\n\tr.Timestamp = codec.ReadFloat64(src, off, ctx)\n}")
	assert.Contains(t, code, "codec.WriteFloat64(dst, off, r.Timestamp, ctx)\n}")

	// the ID field is decoded before the Timestamp field
	assert.Less(t, strings.Index(code, "out.ID"), strings.Index(code, "out.Timestamp"))
}

func TestGenerator_Generate_CastsAndArrays(t *testing.T) {
	code := generateOne(t, DefaultGeneratorConfig(), telemetryRecord())

	assert.Contains(t, code, `"example/units"`)
	assert.Contains(t, code, "v, err := codec.GreadUint16(src, &cur, ctx)")
	assert.Contains(t, code, "out.Status = Status(v)")
	assert.Contains(t, code, "for i := range 4 {\n\t\tif out.Samples[i], err = codec.GreadInt16(src, &cur, ctx); err != nil {")
	assert.Contains(t, code, "out.Levels[i] = Level(v)")
	assert.Contains(t, code, "out.Unit = units.Scale(v)")

	assert.Contains(t, code, "codec.GwriteUint16(dst, &cur, uint16(r.Status), ctx)")
	assert.Contains(t, code, "codec.GwriteInt8(dst, &cur, int8(r.Levels[i]), ctx)")

	assert.Contains(t, code, "_ = src[13]")
	assert.Contains(t, code, "r.Levels[i] = Level(codec.ReadInt8(src, off, ctx))\n\t\toff += 1")
	assert.Contains(t, code, "codec.WriteUint8(dst, off, uint8(r.Unit), ctx)")
	assert.Contains(t, code, "return 14")
}

func TestGenerator_Generate_OnlyCasts(t *testing.T) {
	r := &schema.Record{
		Name:    "Flags",
		PkgPath: "example/wire",
		Fields:  []schema.Field{{Name: "Mode", Type: schema.Named("Mode", primitive.KindUint8)}},
	}

	code := generateOne(t, DefaultGeneratorConfig(), r)

	assert.Contains(t, code, "var out Flags\n")
	assert.NotContains(t, code, "err error")
	assert.Contains(t, code, "\t{\n\t\tv, err := codec.GreadUint8(src, &cur, ctx)")
}

func TestGenerator_Generate_Targets(t *testing.T) {
	r := dataRecord()
	r.Targets = options.TargetDecode | options.TargetSize

	code := generateOne(t, DefaultGeneratorConfig(), r)

	assert.Contains(t, code, "_ codec.TryFromCtx = (*Data)(nil)")
	assert.Regexp(t, `_ codec\.SizeWith\s+= \(\*Data\)\(nil\)`, code)
	assert.NotContains(t, code, "codec.Codec")
	assert.Contains(t, code, ") TryDecode(")
	assert.Contains(t, code, ") FixedSize(")
	assert.NotContains(t, code, ") TryEncode(")
	assert.NotContains(t, code, "Unchecked(")

	// configured targets replace per-record targets
	cfg := DefaultGeneratorConfig()
	cfg.Targets = []string{"unchecked"}
	code = generateOne(t, cfg, r)

	assert.Contains(t, code, "_ codec.FromCtx = (*Data)(nil)")
	assert.Contains(t, code, "_ codec.IntoCtx = (*Data)(nil)")
	assert.Contains(t, code, ") DecodeUnchecked(")
	assert.Contains(t, code, ") EncodeUnchecked(")
	assert.NotContains(t, code, ") TryDecode(")
}

func TestGenerator_Generate_Config(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.PackageName = "proto"
	cfg.FileName = "records.gen.go"
	cfg.RuntimePackage = "example.com/rt/bin"
	cfg.GenerateComments = false

	plans := []*plan.RecordPlan{mustPlan(t, dataRecord())}
	files, err := NewGenerator(cfg).Generate(plans)
	require.NoError(t, err)

	code := string(files[0].Content)
	assert.Equal(t, "records.gen.go", files[0].Filename)
	assert.Contains(t, code, "package proto")
	assert.Contains(t, code, `"example.com/rt/bin"`)
	assert.Contains(t, code, "ctx bin.Endian")
	assert.Contains(t, code, "bin.GreadUint32")
	assert.NotContains(t, code, "// TryDecode")
}

func TestGenerator_Generate_Errors(t *testing.T) {
	other := dataRecord()
	other.PkgPath = "example/other"

	g := NewGenerator(DefaultGeneratorConfig())
	_, err := g.Generate([]*plan.RecordPlan{mustPlan(t, dataRecord()), mustPlan(t, other)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple packages")

	cfg := DefaultGeneratorConfig()
	cfg.Targets = []string{"everything"}
	_, err = NewGenerator(cfg).Generate([]*plan.RecordPlan{mustPlan(t, dataRecord())})
	require.Error(t, err)

	files, err := g.Generate(nil)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestGenerator_GenerateStruct(t *testing.T) {
	r := &schema.Record{
		Name:     "Packet",
		Declared: true,
		Fields: []schema.Field{
			{Name: "Kind", Type: schema.Scalar(primitive.KindUint8)},
			{Name: "Body", Type: schema.Scalar(primitive.KindUint8), ArrayLen: &schema.ArrayLen{Expr: "16"}},
		},
	}

	g := NewGenerator(DefaultGeneratorConfig())
	def := g.GenerateStruct(mustPlan(t, r))
	assert.Equal(t, "// Packet is a fixed-layout record of 17 bytes.\ntype Packet struct {\n\tKind uint8\n\tBody [16]uint8\n}\n", def)

	cfg := DefaultGeneratorConfig()
	cfg.PackageName = "proto"
	code := generateOne(t, cfg, r)
	assert.Contains(t, code, "type Packet struct {\n\tKind uint8\n\tBody [16]uint8\n}")
	assert.Less(t, strings.Index(code, "type Packet struct"), strings.Index(code, "TryDecode"))
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "codec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
package: proto
file_name: proto_gen.go
comments: false
targets: [decode, encode]
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "proto", cfg.PackageName)
	assert.Equal(t, "proto_gen.go", cfg.FileName)
	assert.False(t, cfg.GenerateComments)
	assert.Equal(t, DefaultRuntimePackage, cfg.RuntimePackage)
	assert.Equal(t, []string{"decode", "encode"}, cfg.Targets)

	require.NoError(t, os.WriteFile(path, []byte("targets: [sideways]\n"), 0o644))
	_, err = LoadConfig(path)
	require.Error(t, err)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	files := []GeneratedFile{{Filename: "a_codec.go", Content: []byte("package a\n")}}
	require.NoError(t, WriteFiles(files, dir))

	data, err := os.ReadFile(filepath.Join(dir, "a_codec.go"))
	require.NoError(t, err)
	assert.Equal(t, "package a\n", string(data))

	info, err := os.Stat(filepath.Join(dir, "a_codec.go"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(filePerm), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files are left behind")
}

func TestWriteFiles_RemovesStaleSidecar(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, writeDebugUnformatted(dir, "a_codec.go", []byte("package a\nfunc {")))
	require.FileExists(t, filepath.Join(dir, "a_codec.unformatted.go"))

	files := []GeneratedFile{{Filename: "a_codec.go", Content: []byte("package a\n")}}
	require.NoError(t, WriteFiles(files, dir))

	assert.NoFileExists(t, filepath.Join(dir, "a_codec.unformatted.go"))
	assert.FileExists(t, filepath.Join(dir, "a_codec.go"))
}

func TestWriteDebugUnformatted(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, writeDebugUnformatted(dir, "wire_codec.go", []byte("package wire\nfunc {")))

	data, err := os.ReadFile(filepath.Join(dir, "wire_codec.unformatted.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "func {")
}

func TestGenerator_Generate_ArrayLengthAsPlanned(t *testing.T) {
	r := &schema.Record{
		Name:     "Tag",
		Declared: true,
		Fields: []schema.Field{
			{Name: "Bytes", Type: schema.Scalar(primitive.KindUint8), ArrayLen: &schema.ArrayLen{Expr: "010"}},
		},
	}

	cfg := DefaultGeneratorConfig()
	cfg.PackageName = "proto"
	code := generateOne(t, cfg, r)

	assert.Contains(t, code, "\tBytes [10]uint8\n")
	assert.NotContains(t, code, "[010]")
	assert.Contains(t, code, "//\tBytes: [10]uint8 at [0, 10)")
	assert.Contains(t, code, "return 10\n")
	assert.Contains(t, code, "_ = src[9]")
	assert.Equal(t, 4, strings.Count(code, "for i := range 10 {"))

	// the declared schema is left as written
	assert.Equal(t, "010", r.Fields[0].ArrayLen.Expr)
}
