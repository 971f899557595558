package schemafile

// File is the top-level structure of a schema file.
type File struct {
	// Version is the schema format version.
	Version string `yaml:"version"`
	// Package is the Go package name of the generated file.
	Package string `yaml:"package"`
	// Endian documents the byte order the records are usually exchanged in.
	Endian string `yaml:"endian,omitempty"`
	// Records lists the record declarations in output order.
	Records []RecordDecl `yaml:"records"`
	// Path is the file the schema was loaded from, if any.
	Path string `yaml:"-"`
}

// RecordDecl declares one record.
type RecordDecl struct {
	Name string `yaml:"name"`
	// Targets restricts the generated conversions; empty means all.
	Targets StringOrArray `yaml:"targets,omitempty"`
	Fields  []FieldDecl   `yaml:"fields"`
	// Line is the source line of the declaration, filled in while parsing.
	Line int `yaml:"-"`
}

// FieldDecl declares one field. Type may itself be an array spelling such as
// "[16]u8"; Array is an alternative way to give the length.
type FieldDecl struct {
	Name  string    `yaml:"name"`
	Type  string    `yaml:"type"`
	Array RawScalar `yaml:"array,omitempty"`
	// Line is the source line of the declaration, filled in while parsing.
	Line int `yaml:"-"`
}

// StringOrArray is a YAML value that is either a single string or a list.
type StringOrArray []string

// RawScalar keeps a YAML scalar exactly as written, whatever its tag.
type RawScalar string
