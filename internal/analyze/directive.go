package analyze

import (
	"go/ast"
	"strings"
)

// Directive marks a type declaration for code generation.
const Directive = "//codec:generate"

// parseDirective returns the directive arguments found in doc, and whether
// the directive was present at all.
func parseDirective(doc *ast.CommentGroup) ([]string, bool) {
	if doc == nil {
		return nil, false
	}

	for _, c := range doc.List {
		rest, ok := strings.CutPrefix(c.Text, Directive)
		if !ok {
			continue
		}

		if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
			continue
		}

		return strings.Fields(rest), true
	}

	return nil, false
}

// typeDecls lists the type declarations of the given files in source order.
func typeDecls(files []*ast.File) []typeDecl {
	var decls []typeDecl

	for _, file := range files {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}

			for _, spec := range gen.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				doc := ts.Doc
				if doc == nil && len(gen.Specs) == 1 {
					doc = gen.Doc
				}

				decls = append(decls, typeDecl{spec: ts, doc: doc})
			}
		}
	}

	return decls
}
