package schemafile

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"codec-generator/internal/match"
	"codec-generator/internal/schema"
	"codec-generator/options"
	"codec-generator/primitive"
)

// Schema converts the declarations into record schemas. Targets that fail
// to parse select every conversion; Validate reports them.
func (f *File) Schema() []*schema.Record {
	declared := make(map[string]bool, len(f.Records))
	for _, rd := range f.Records {
		declared[rd.Name] = true
	}

	records := make([]*schema.Record, 0, len(f.Records))

	for _, rd := range f.Records {
		rec := &schema.Record{
			Name:     rd.Name,
			PkgPath:  f.Package,
			Pos:      f.pos(rd.Line),
			Declared: true,
			Fields:   make([]schema.Field, 0, len(rd.Fields)),
		}

		if t, err := options.ParseTargets(rd.Targets...); err == nil {
			rec.Targets = t
		}

		for _, fd := range rd.Fields {
			field := schema.Field{Name: fd.Name, Pos: f.pos(fd.Line)}
			field.Type, field.ArrayLen = resolveField(fd, declared)
			rec.Fields = append(rec.Fields, field)
		}

		records = append(records, rec)
	}

	return records
}

func (f *File) pos(line int) string {
	if line <= 0 {
		return ""
	}

	name := "schema"
	if f.Path != "" {
		name = filepath.Base(f.Path)
	}

	return name + ":" + strconv.Itoa(line)
}

// resolveField maps the declared type of a field. The explicit array key
// wins; otherwise an array spelling in the type gives the length.
func resolveField(fd FieldDecl, declared map[string]bool) (schema.TypeRef, *schema.ArrayLen) {
	typ := strings.TrimSpace(fd.Type)

	if fd.Array != "" {
		return resolveType(typ, declared), &schema.ArrayLen{Expr: string(fd.Array)}
	}

	if expr, elem, ok := splitArray(typ); ok {
		return resolveType(elem, declared), &schema.ArrayLen{Expr: expr}
	}

	return resolveType(typ, declared), nil
}

// splitArray splits "[N]T" into "N" and "T".
func splitArray(typ string) (string, string, bool) {
	if !strings.HasPrefix(typ, "[") {
		return "", "", false
	}

	end := strings.Index(typ, "]")
	if end <= 1 {
		// "[]T" is a slice, not an array.
		return "", "", false
	}

	return strings.TrimSpace(typ[1:end]), strings.TrimSpace(typ[end+1:]), true
}

// resolveType classifies a single (non-array-field) type spelling.
func resolveType(name string, declared map[string]bool) schema.TypeRef {
	if kind := primitive.FromName(name); kind.IsValid() {
		return schema.Scalar(kind)
	}

	ref := schema.TypeRef{Name: name, Detail: name}

	switch {
	case declared[name]:
		ref.Form = schema.FormRecord
	case strings.HasPrefix(name, "[]"), strings.HasPrefix(name, "*"), strings.HasPrefix(name, "map["):
		ref.Form = schema.FormVariable
	case strings.HasPrefix(name, "["):
		ref.Form = schema.FormArray
	case name == "string", name == "int", name == "uint", name == "uintptr":
		ref.Form = schema.FormVariable
	default:
		ref.Form = schema.FormUnsupported
		ref.Hint = match.Hint(name, knownTypes(declared))
	}

	return ref
}

// knownTypes lists every spelling a field type may take.
func knownTypes(declared map[string]bool) []string {
	records := make([]string, 0, len(declared))
	for name := range declared {
		records = append(records, name)
	}
	sort.Strings(records)

	return append(primitive.Spellings(), records...)
}

// Normalize rewrites the declarations in canonical spelling: Go names for
// scalar types, array lengths as decimal literals under the array key, and
// targets in generation order. Declarations that do not resolve to a scalar
// or a scalar array are left as written.
func (f *File) Normalize() {
	declared := make(map[string]bool, len(f.Records))
	for _, rd := range f.Records {
		declared[rd.Name] = true
	}

	for i := range f.Records {
		rd := &f.Records[i]

		if len(rd.Targets) > 0 {
			if t, err := options.ParseTargets(rd.Targets...); err == nil {
				rd.Targets = strings.Split(t.String(), ",")
			}
		}

		for j := range rd.Fields {
			fd := &rd.Fields[j]

			ref, arr := resolveField(*fd, declared)
			if ref.Form != schema.FormScalar {
				continue
			}

			if arr == nil {
				fd.Type = ref.Kind.GoName()
				continue
			}

			n, err := strconv.ParseUint(arr.Expr, 10, strconv.IntSize-1)
			if err != nil {
				continue
			}

			fd.Type = ref.Kind.GoName()
			fd.Array = RawScalar(strconv.FormatUint(n, 10))
		}
	}
}
