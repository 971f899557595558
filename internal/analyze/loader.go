package analyze

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"codec-generator/internal/common"
	"codec-generator/internal/diagnostic"
	"codec-generator/internal/match"
	"codec-generator/internal/schema"
	"codec-generator/options"
	"codec-generator/primitive"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and extracts record schemas from them.
type Analyzer struct {
	// Dir is the working directory for package patterns. Empty means the
	// current directory.
	Dir string

	packages map[string]*loadedPackage
	order    []string
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		packages: make(map[string]*loadedPackage),
	}
}

// LoadPackages loads the specified packages.
// Patterns are standard Go package patterns (e.g., "./examples/wire", "codec-generator/examples/wire").
func (a *Analyzer) LoadPackages(patterns ...string) ([]PackageInfo, error) {
	cfg := &packages.Config{
		Mode:      LoadMode,
		Dir:       a.Dir,
		ParseFile: parseSource,
	}

	Logger().Debug("loading packages", zap.Strings("patterns", patterns), zap.String("dir", a.Dir))

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	infos := make([]PackageInfo, 0, len(pkgs))
	for _, pkg := range pkgs {
		info := PackageInfo{Path: pkg.PkgPath, Name: pkg.Name}
		if len(pkg.GoFiles) > 0 {
			info.Dir = filepath.Dir(pkg.GoFiles[0])
		}

		if _, ok := a.packages[pkg.PkgPath]; !ok {
			a.order = append(a.order, pkg.PkgPath)
		}
		a.packages[pkg.PkgPath] = &loadedPackage{info: info, pkg: pkg}
		infos = append(infos, info)

		Logger().Debug("loaded package",
			zap.String("path", info.Path), zap.String("dir", info.Dir), zap.Int("files", len(pkg.Syntax)))
	}

	return infos, nil
}

// parseSource parses a package file for type checking. Codecs written by an
// earlier run keep only their package clause: they may refer to fields that
// have since been renamed, and records never depend on them.
func parseSource(fset *token.FileSet, filename string, src []byte) (*ast.File, error) {
	if common.IsGenerated(src) {
		Logger().Debug("ignoring generated file", zap.String("file", filename))
		return parser.ParseFile(fset, filename, src, parser.PackageClauseOnly)
	}

	return parser.ParseFile(fset, filename, src, parser.AllErrors|parser.ParseComments)
}

// Packages returns every loaded package in load order.
func (a *Analyzer) Packages() []PackageInfo {
	infos := make([]PackageInfo, 0, len(a.order))
	for _, path := range a.order {
		infos = append(infos, a.packages[path].info)
	}

	return infos
}

// Package returns the loaded package with the given import path.
func (a *Analyzer) Package(pkgPath string) (PackageInfo, bool) {
	lp, ok := a.packages[pkgPath]
	if !ok {
		return PackageInfo{}, false
	}

	return lp.info, true
}

// Records extracts record schemas from a loaded package.
//
// With names, exactly those types are extracted and each must be a struct.
// Without names, every type whose doc comment carries the codec:generate
// directive is extracted, in source order.
func (a *Analyzer) Records(pkgPath string, names ...string) ([]*schema.Record, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	lp, ok := a.packages[pkgPath]
	if !ok {
		return nil, diags, fmt.Errorf("package %s is not loaded", pkgPath)
	}

	directives := make(map[string][]string)
	var marked []string
	for _, decl := range typeDecls(lp.pkg.Syntax) {
		if args, ok := parseDirective(decl.doc); ok {
			directives[decl.spec.Name.Name] = args
			marked = append(marked, decl.spec.Name.Name)
		}
	}

	if len(names) == 0 {
		names = marked
		if len(names) == 0 {
			diags.AddWarning("no types carry the "+Directive+" directive", pkgPath, "")
		}
	}

	scope := lp.pkg.Types.Scope()
	records := make([]*schema.Record, 0, len(names))

	for _, name := range names {
		obj := scope.Lookup(name)
		if obj == nil {
			if hint := match.Hint(name, typeNames(scope)); hint != "" {
				return nil, diags, fmt.Errorf("type %s not found in package %s, %s", name, pkgPath, hint)
			}
			return nil, diags, fmt.Errorf("type %s not found in package %s", name, pkgPath)
		}

		typeName, ok := obj.(*types.TypeName)
		if !ok {
			return nil, diags, fmt.Errorf("%s in package %s is not a type", name, pkgPath)
		}

		targets := options.TargetNone
		if args := directives[name]; len(args) > 0 {
			t, err := options.ParseTargets(args...)
			if err != nil {
				diags.AddWarning("ignoring directive arguments: "+err.Error(), name, "")
			} else {
				targets = t
			}
		}

		rec, ok := a.record(lp, typeName)
		if !ok {
			diags.Add(diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticError,
				Reason:   diagnostic.ReasonNotStruct,
				Message:  fmt.Sprintf("%s has underlying type %s", name, typeName.Type().Underlying()),
				Record:   name,
				Pos:      a.position(lp, typeName.Pos()),
			})

			continue
		}

		rec.Targets = targets
		records = append(records, rec)

		Logger().Debug("extracted record",
			zap.String("record", rec.ID()), zap.Int("fields", len(rec.Fields)), zap.Stringer("targets", targets))
	}

	return records, diags, nil
}

// record builds the schema of a named struct type. It returns false when the
// underlying type is not a struct.
func (a *Analyzer) record(lp *loadedPackage, tn *types.TypeName) (*schema.Record, bool) {
	named, ok := types.Unalias(tn.Type()).(*types.Named)
	if !ok {
		return nil, false
	}

	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil, false
	}

	rec := &schema.Record{
		Name:    tn.Name(),
		PkgPath: lp.info.Path,
		Pos:     a.position(lp, tn.Pos()),
		Generic: named.TypeParams().Len() > 0,
		Fields:  make([]schema.Field, 0, st.NumFields()),
	}

	local := lp.pkg.Types
	for i := 0; i < st.NumFields(); i++ {
		v := st.Field(i)

		f := schema.Field{
			Name: v.Name(),
			Pos:  a.position(lp, v.Pos()),
		}
		if v.Embedded() {
			f.Name = ""
		}

		f.Type, f.ArrayLen = fieldType(v.Type(), local)
		rec.Fields = append(rec.Fields, f)
	}

	return rec, true
}

func (a *Analyzer) position(lp *loadedPackage, pos token.Pos) string {
	if !pos.IsValid() || lp.pkg.Fset == nil {
		return ""
	}

	p := lp.pkg.Fset.Position(pos)

	return filepath.Base(p.Filename) + ":" + strconv.Itoa(p.Line)
}

// fieldType maps the declared type of a field. Arrays yield their element
// type and the resolved length.
func fieldType(t types.Type, local *types.Package) (schema.TypeRef, *schema.ArrayLen) {
	if arr, ok := types.Unalias(t).Underlying().(*types.Array); ok {
		return mapType(arr.Elem(), local), &schema.ArrayLen{Expr: strconv.FormatInt(arr.Len(), 10)}
	}

	return mapType(t, local), nil
}

// mapType classifies a single (non-array-field) type.
func mapType(t types.Type, local *types.Package) schema.TypeRef {
	qual := func(p *types.Package) string {
		if p == local {
			return ""
		}
		return p.Name()
	}

	ref := schema.TypeRef{Name: types.TypeString(t, qual)}
	ref.Detail = ref.Name

	if named, ok := types.Unalias(t).(*types.Named); ok {
		if pkg := named.Obj().Pkg(); pkg != nil && pkg != local {
			ref.PkgPath = pkg.Path()
		}
	}

	if _, ok := types.Unalias(t).(*types.TypeParam); ok {
		ref.Form = schema.FormTypeParam
		return ref
	}

	switch u := types.Unalias(t).Underlying().(type) {
	case *types.Basic:
		if kind := primitive.FromBasic(u.Kind()); kind.IsValid() {
			ref.Kind = kind
			ref.Form = schema.FormScalar
			ref.Detail = ""

			return ref
		}

		if primitive.IsPlatformSized(u.Kind()) || u.Kind() == types.String {
			ref.Form = schema.FormVariable
		}
	case *types.Struct:
		ref.Form = schema.FormRecord
	case *types.Array:
		ref.Form = schema.FormArray
	case *types.Slice, *types.Map, *types.Pointer:
		ref.Form = schema.FormVariable
	}

	return ref
}

// typeNames lists the package-level type names of scope in sorted order.
func typeNames(scope *types.Scope) []string {
	var names []string
	for _, name := range scope.Names() {
		if _, ok := scope.Lookup(name).(*types.TypeName); ok {
			names = append(names, name)
		}
	}

	return names
}
