package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostic_String(t *testing.T) {
	d := Errorf(ReasonBadArraySize, "array length %q is not an integer literal", "N")
	d.Record = "Packet"
	d.Field = "Payload"
	d.Pos = "packet.go:12"

	assert.Equal(t, `packet.go:12: Packet.Payload: bad array size: array length "N" is not an integer literal`, d.String())

	w := Diagnostic{Severity: DiagnosticWarning, Message: "no records found", Record: "wire"}
	assert.Equal(t, "wire: no records found", w.String())
}

func TestDiagnostics_Collect(t *testing.T) {
	var diags Diagnostics
	require.NoError(t, diags.Error())

	diags.AddError(ReasonEmptyRecord, "record has no fields", "Empty", "")
	diags.AddWarning("unknown directive argument", "Empty", "")
	diags.Add(*Errorf(ReasonNotStruct, "Status is not a struct type"))

	assert.True(t, diags.HasErrors())
	assert.True(t, diags.HasReason(ReasonEmptyRecord))
	assert.True(t, diags.HasReason(ReasonNotStruct))
	assert.False(t, diags.HasReason(ReasonNestedRecord))
	assert.Len(t, diags.All(), 3)

	err := diags.Error()
	require.Error(t, err)
	assert.Equal(t, "Empty: empty record: record has no fields; not struct: Status is not a struct type", err.Error())

	var other Diagnostics
	other.AddInfo("planned 2 fields", "Data", "")
	diags.Merge(other)
	assert.Len(t, diags.Infos, 1)
}

func TestReason_String(t *testing.T) {
	assert.Equal(t, "nested record", ReasonNestedRecord.String())
	assert.Equal(t, "not struct", ReasonNotStruct.String())
	assert.Equal(t, "Reason(0)", Reason(0).String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(7).String())
}
