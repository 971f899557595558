// Package match suggests the closest known name for a misspelled one.
//
// It backs the "did you mean" hints of the extractor, the schema file
// loader and target parsing.
package match
