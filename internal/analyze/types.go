package analyze

import (
	"go/ast"

	"golang.org/x/tools/go/packages"
)

// PackageInfo describes a loaded package.
type PackageInfo struct {
	Path string // e.g., "codec-generator/examples/wire"
	Name string // e.g., "wire"
	Dir  string // directory holding the package sources
}

type loadedPackage struct {
	info PackageInfo
	pkg  *packages.Package
}

// typeDecl is a type declaration found in the package syntax, in source order.
type typeDecl struct {
	spec *ast.TypeSpec
	doc  *ast.CommentGroup
}
