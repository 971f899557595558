package schemafile

import (
	"fmt"
	"go/token"

	"codec-generator/internal/diagnostic"
	"codec-generator/options"
)

// Validate checks the structure of a schema file: names are present and are
// Go identifiers, records are unique, and targets are known. Field types and
// array lengths are left to the planner.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError(0, "schema file is nil", "", "")
		return res
	}

	if f.Version != "1" {
		res.AddError(0, fmt.Sprintf("unsupported schema version %q", f.Version), "", "")
	}

	if f.Package != "" && !token.IsIdentifier(f.Package) {
		res.AddError(0, fmt.Sprintf("package name %q is not an identifier", f.Package), "", "")
	}

	if len(f.Records) == 0 {
		res.AddWarning("schema file declares no records", "", "")
	}

	seen := make(map[string]struct{}, len(f.Records))

	for i := range f.Records {
		rec := &f.Records[i]

		if rec.Name == "" {
			res.AddError(0, fmt.Sprintf("record %d has no name", i), "", "")
			continue
		}

		if !token.IsIdentifier(rec.Name) {
			res.AddError(0, fmt.Sprintf("record name %q is not an identifier", rec.Name), rec.Name, "")
		}

		if _, ok := seen[rec.Name]; ok {
			res.AddError(0, "record declared more than once", rec.Name, "")
			continue
		}
		seen[rec.Name] = struct{}{}

		if _, err := options.ParseTargets(rec.Targets...); err != nil {
			res.AddError(0, err.Error(), rec.Name, "")
		}

		for j := range rec.Fields {
			fd := &rec.Fields[j]

			if fd.Type == "" {
				res.AddError(0, "field has no type", rec.Name, fd.Name)
			}

			// Blank and missing names are reported by the planner.
			if fd.Name != "" && fd.Name != "_" && !token.IsIdentifier(fd.Name) {
				res.AddError(0, fmt.Sprintf("field name %q is not an identifier", fd.Name), rec.Name, fd.Name)
			}
		}
	}

	return res
}
