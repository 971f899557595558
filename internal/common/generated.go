package common

import "bytes"

// GeneratedHeader is the first line of every file the generator writes.
const GeneratedHeader = "// Code generated by codec-generator. DO NOT EDIT."

// IsGenerated reports whether src is a file written by the generator.
func IsGenerated(src []byte) bool {
	return bytes.HasPrefix(src, []byte(GeneratedHeader+"\n"))
}
