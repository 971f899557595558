// Package analyze extracts record schemas from Go packages.
//
// Packages are loaded with golang.org/x/tools/go/packages and inspected with
// go/types. Records are selected either by name or by a directive in the
// type's doc comment:
//
//	//codec:generate
//	type Header struct { ... }
//
//	//codec:generate decode size
//	type Reply struct { ... }
//
// Directive arguments restrict the generated conversions, see options.ParseTargets.
package analyze
