package diagnostic

//go:generate go tool stringer -type=Reason -linecomment -output=reason_string.go

// Reason classifies a generation-time failure.
type Reason int

const (
	_ Reason = iota // zero value is reserved for diagnostics without a reason

	ReasonBadArraySize    // bad array size
	ReasonNestedRecord    // nested record
	ReasonNestedArray     // nested array
	ReasonGenericField    // generic field
	ReasonVariableWidth   // variable width
	ReasonUnsupportedType // unsupported type
	ReasonGenericRecord   // generic record
	ReasonEmptyRecord     // empty record
	ReasonUnnamedField    // unnamed field
	ReasonDuplicateField  // duplicate field
	ReasonNotStruct       // not struct
)
