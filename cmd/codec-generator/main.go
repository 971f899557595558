// Package main provides the CLI entrypoint for codec-generator.
//
// codec-generator reads fixed-layout record declarations, from Go packages or
// from YAML schema files, and writes byte-order aware conversions between the
// records and flat byte buffers.
package main

import (
	"codec-generator/cmd/codec-generator/cmd"
)

func main() {
	cmd.Execute()
}
