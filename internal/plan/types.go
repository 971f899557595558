package plan

import (
	"codec-generator/internal/schema"
	"codec-generator/options"
)

// RecordPlan is everything the generators need for one record.
type RecordPlan struct {
	Record *schema.Record
	Fields []FieldPlan
	// Size is the packed sum of all field widths.
	Size int
}

// FieldPlan is the planned access for one field.
type FieldPlan struct {
	Name     string
	Offset   int
	Strategy Strategy
	Field    schema.Field
}

// Name returns the record type name.
func (p *RecordPlan) Name() string {
	return p.Record.Name
}

// Targets returns the conversions selected for the record; none means all.
func (p *RecordPlan) Targets() options.TargetEnum {
	if p.Record.Targets == options.TargetNone {
		return options.TargetAll
	}

	return p.Record.Targets
}

// HasCast reports whether any scalar read needs a conversion to a named type.
func (p *RecordPlan) HasCast() bool {
	for _, f := range p.Fields {
		if s, ok := scalarOf(f.Strategy); ok && s.NeedsCast {
			return true
		}
	}

	return false
}

// HasDirect reports whether any scalar read assigns the primitive result directly.
func (p *RecordPlan) HasDirect() bool {
	for _, f := range p.Fields {
		if s, ok := scalarOf(f.Strategy); ok && !s.NeedsCast {
			return true
		}
	}

	return false
}

func scalarOf(s Strategy) (Scalar, bool) {
	switch st := s.(type) {
	case Scalar:
		return st, true
	case FixedArray:
		return st.Elem, true
	default:
		return Scalar{}, false
	}
}
