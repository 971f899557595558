package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// moduleRoot is the directory package patterns are resolved against.
const moduleRoot = "../../.."

func TestRunGen_Wire(t *testing.T) {
	out := t.TempDir()

	var stdout, stderr bytes.Buffer
	err := runGen(genOptions{
		pkgs: []string{"./examples/wire"},
		out:  out,
		dir:  moduleRoot,
	}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	path := filepath.Join(out, "wire_codec.go")
	assert.Equal(t, path+": 6 records\n", stdout.String())

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	code := string(content)
	assert.Contains(t, code, "// Code generated by codec-generator. DO NOT EDIT.")
	assert.Contains(t, code, "package wire")
	assert.Contains(t, code, "func (r *Telemetry) TryDecode(src []byte, offset int, ctx codec.Endian) (int, error)")
	assert.Contains(t, code, "out.Status = Status(v)")
	assert.Contains(t, code, "func (r *Ack) FixedSize(codec.Endian) int")
	assert.NotContains(t, code, "func (r *Ack) TryEncode")
	assert.NotContains(t, code, "Dynamic")
}

func TestRunGen_RegeneratesAfterFieldRename(t *testing.T) {
	dir, err := os.MkdirTemp(filepath.Join(moduleRoot, "examples"), "rename")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	types := filepath.Join(dir, "types.go")
	opts := genOptions{pkgs: []string{"./examples/" + filepath.Base(dir)}, dir: moduleRoot}

	require.NoError(t, os.WriteFile(types, []byte(
		"package rename\n\n//codec:generate\ntype Data struct {\n\tID        uint32\n\tTimestamp float64\n}\n"), 0o644))

	var stdout, stderr bytes.Buffer
	require.NoError(t, runGen(opts, &stdout, &stderr), stderr.String())

	codecFile := filepath.Join(dir, "rename_codec.go")
	content, err := os.ReadFile(codecFile)
	require.NoError(t, err)
	require.Contains(t, string(content), "out.Timestamp")

	// the codec written above no longer type checks against the new field
	require.NoError(t, os.WriteFile(types, []byte(
		"package rename\n\n//codec:generate\ntype Data struct {\n\tID    uint32\n\tStamp float64\n}\n"), 0o644))

	stdout.Reset()
	stderr.Reset()
	require.NoError(t, runGen(opts, &stdout, &stderr), stderr.String())

	content, err = os.ReadFile(codecFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "out.Stamp")
	assert.NotContains(t, string(content), "Timestamp")
}

func TestRunGen_TypesAndTargets(t *testing.T) {
	out := t.TempDir()

	var stdout, stderr bytes.Buffer
	err := runGen(genOptions{
		pkgs:    []string{"./examples/wire"},
		types:   []string{"Word"},
		targets: []string{"size"},
		file:    "word.go",
		out:     out,
		dir:     moduleRoot,
	}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	content, err := os.ReadFile(filepath.Join(out, "word.go"))
	require.NoError(t, err)

	code := string(content)
	assert.Contains(t, code, "_ codec.SizeWith = (*Word)(nil)")
	assert.Contains(t, code, "func (r *Word) FixedSize(codec.Endian) int")
	assert.NotContains(t, code, "TryDecode")
	assert.NotContains(t, code, "Data")
}

func TestRunGen_TypeNeedsOnePackage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runGen(genOptions{
		pkgs:  []string{"./examples/wire", "./examples/telemetry"},
		types: []string{"Word"},
		out:   t.TempDir(),
		dir:   moduleRoot,
	}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one package")
}

func TestRunGen_BadTargets(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runGen(genOptions{
		pkgs:    []string{"./examples/wire"},
		targets: []string{"decode", "compress"},
		out:     t.TempDir(),
		dir:     moduleRoot,
	}, &stdout, &stderr)
	require.Error(t, err)
	assert.Empty(t, stdout.String())
}

func TestRunCheck_Invalid(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runCheck(checkOptions{genOptions: genOptions{
		pkgs: []string{"./examples/invalid"},
		dir:  moduleRoot,
	}}, &stdout, &stderr)
	require.ErrorIs(t, err, errDiagnostics)

	report := stderr.String()
	assert.Contains(t, report, "Nested.Head")
	assert.Contains(t, report, "Dynamic")
	assert.Contains(t, report, "Generic")
}

func TestRunCheck_Layout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runCheck(checkOptions{
		genOptions: genOptions{
			pkgs:  []string{"./examples/wire"},
			types: []string{"Data"},
			dir:   moduleRoot,
		},
		dump: true,
	}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	report := stdout.String()
	assert.Contains(t, report, "12 bytes, targets decode,encode,size,unchecked")
	assert.Contains(t, report, "\tID uint32 [0, 4)\n")
	assert.Contains(t, report, "\tTimestamp float64 [4, 12)\n")
	assert.Contains(t, report, "RecordPlan")
}

const schemaYAML = `package: proto
records:
  - name: Header
    fields:
      - name: Magic
        type: u32
      - name: Tag
        type: "[4]byte"
  - name: Ping
    targets: [decode, size]
    fields:
      - name: Seq
        type: u16
`

func TestRunSchema(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "records.yaml")
	require.NoError(t, os.WriteFile(file, []byte(schemaYAML), 0o644))

	var stdout, stderr bytes.Buffer
	err := runSchema(schemaOptions{file: file}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	path := filepath.Join(dir, "proto_codec.go")
	assert.Equal(t, path+": 2 records\n", stdout.String())

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	code := string(content)
	assert.Contains(t, code, "package proto")
	assert.Contains(t, code, "type Header struct {")
	assert.Contains(t, code, "Tag   [4]uint8")
	assert.Contains(t, code, "// Ping is a fixed-layout record of 2 bytes.")
	assert.NotContains(t, code, "func (r *Ping) TryEncode")
}

func TestRunSchema_PackageOverride(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "records.yaml")
	require.NoError(t, os.WriteFile(file, []byte(schemaYAML), 0o644))

	out := filepath.Join(dir, "gen")

	var stdout, stderr bytes.Buffer
	err := runSchema(schemaOptions{file: file, out: out, pkgName: "wireproto", genFile: "records.go"}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	content, err := os.ReadFile(filepath.Join(out, "records.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "package wireproto")
}

func TestRunSchema_Normalize(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "records.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`package: proto
records:
  - name: Tag
    fields:
      - name: Bytes
        type: u8
        array: "010"
`), 0o644))

	var stdout, stderr bytes.Buffer
	err := runSchema(schemaOptions{file: file, normalize: true}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	rewritten, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(rewritten), "type: uint8")
	assert.NotContains(t, string(rewritten), "010")

	code, err := os.ReadFile(filepath.Join(dir, "proto_codec.go"))
	require.NoError(t, err)
	assert.Contains(t, string(code), "Bytes [10]uint8")
	assert.Contains(t, string(code), "return 10\n")
}

func TestRunSchema_Invalid(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "records.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`package: proto
records:
  - name: Bad
    fields:
      - name: Body
        type: "[]byte"
`), 0o644))

	var stdout, stderr bytes.Buffer
	err := runSchema(schemaOptions{file: file}, &stdout, &stderr)
	require.ErrorIs(t, err, errDiagnostics)
	assert.Contains(t, stderr.String(), "Bad.Body")

	_, statErr := os.Stat(filepath.Join(dir, "proto_codec.go"))
	assert.True(t, os.IsNotExist(statErr))
}
