package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"codec-generator/internal/common"
)

// Diagnostics holds every diagnostic collected for one generation run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	Severity DiagnosticSeverity
	Reason   Reason
	// Message is the human-readable description.
	Message string
	// Record is the record the diagnostic relates to (if any).
	Record string
	// Field is the field the diagnostic relates to (if any).
	Field string
	// Pos is the file:line of the offending declaration (if known).
	Pos string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Errorf builds an error diagnostic with a formatted message. Record, Field
// and Pos are filled in by the caller that knows them.
func Errorf(reason Reason, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Severity: DiagnosticError,
		Reason:   reason,
		Message:  fmt.Sprintf(format, args...),
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(reason Reason, message, record, field string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: DiagnosticError,
		Reason:   reason,
		Message:  message,
		Record:   record,
		Field:    field,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(message, record, field string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Message:  message,
		Record:   record,
		Field:    field,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(message, record, field string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: DiagnosticInfo,
		Message:  message,
		Record:   record,
		Field:    field,
	})
}

// Add appends diag to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// HasReason reports whether any error carries reason.
func (d *Diagnostics) HasReason(reason Reason) bool {
	for _, e := range d.Errors {
		if e.Reason == reason {
			return true
		}
	}

	return false
}

// All returns errors, warnings and infos in that order.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String formats the diagnostic as "pos: Record.Field: reason: message".
func (d Diagnostic) String() string {
	var prefix []string
	if d.Pos != "" {
		prefix = append(prefix, d.Pos)
	}

	switch {
	case d.Record != "" && d.Field != "":
		prefix = append(prefix, d.Record+"."+d.Field)
	case d.Record != "":
		prefix = append(prefix, d.Record)
	case d.Field != "":
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Reason != 0 {
		msg = d.Reason.String() + ": " + msg
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, ": ") + ": " + msg
	}

	return msg
}
