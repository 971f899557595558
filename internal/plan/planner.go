package plan

import (
	"math"
	"strconv"
	"strings"

	"codec-generator/internal/diagnostic"
	"codec-generator/internal/schema"
	"codec-generator/primitive"
)

// PlanField selects the access strategy for one field.
// The returned diagnostic has no Record, Field or Pos set.
func PlanField(f schema.Field) (Strategy, *diagnostic.Diagnostic) {
	if f.ArrayLen == nil {
		return planScalar(f.Type)
	}

	n, ok := parseArrayLen(f.ArrayLen.Expr)
	if !ok {
		return nil, diagnostic.Errorf(diagnostic.ReasonBadArraySize,
			"array length %q is not a non-negative integer literal", f.ArrayLen.Expr)
	}

	if f.Type.Form == schema.FormArray {
		return nil, diagnostic.Errorf(diagnostic.ReasonNestedArray,
			"array of arrays is not supported (element %s)", f.Type)
	}

	elem, d := planScalar(f.Type)
	if d != nil {
		d.Message = "array element: " + d.Message
		return nil, d
	}

	s := elem.(Scalar)
	if n > math.MaxInt/s.Width {
		return nil, diagnostic.Errorf(diagnostic.ReasonBadArraySize,
			"array of %d %s elements does not fit in memory", n, s.TypeName)
	}

	return FixedArray{Elem: s, Len: n}, nil
}

func planScalar(t schema.TypeRef) (Strategy, *diagnostic.Diagnostic) {
	switch t.Form {
	case schema.FormScalar:
		if !t.Kind.IsValid() {
			return nil, diagnostic.Errorf(diagnostic.ReasonUnsupportedType,
				"type %s has no fixed-width scalar kind", t)
		}

		name := t.Name
		if name == "" {
			name = t.Kind.GoName()
		}

		return Scalar{
			Kind:      t.Kind,
			Width:     t.Kind.Width(),
			TypeName:  name,
			NeedsCast: primitive.Args{Type: name}.NeedsCast(t.Kind),
		}, nil
	case schema.FormRecord:
		return nil, diagnostic.Errorf(diagnostic.ReasonNestedRecord,
			"nested record %s is not supported", t)
	case schema.FormArray:
		return nil, diagnostic.Errorf(diagnostic.ReasonNestedArray,
			"nested array %s is not supported", t)
	case schema.FormTypeParam:
		return nil, diagnostic.Errorf(diagnostic.ReasonGenericField,
			"field of type parameter %s has no fixed width", t)
	case schema.FormVariable:
		return nil, diagnostic.Errorf(diagnostic.ReasonVariableWidth,
			"type %s has no fixed width", t)
	default:
		d := diagnostic.Errorf(diagnostic.ReasonUnsupportedType, "type %s is not supported", t)
		if t.Hint != "" {
			d.Message += ", " + t.Hint
		}
		return nil, d
	}
}

func parseArrayLen(expr string) (int, bool) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return 0, false
	}

	for _, c := range expr {
		if c < '0' || c > '9' {
			return 0, false
		}
	}

	n, err := strconv.Atoi(expr)
	if err != nil {
		return 0, false
	}

	return n, true
}

// PlanRecord plans every field of r in declaration order and assigns offsets.
// All problems are collected; the plan is nil when any error was found.
func PlanRecord(r *schema.Record) (*RecordPlan, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	fail := func(reason diagnostic.Reason, msg, field, pos string) {
		d := diagnostic.Diagnostic{
			Severity: diagnostic.DiagnosticError,
			Reason:   reason,
			Message:  msg,
			Record:   r.Name,
			Field:    field,
			Pos:      pos,
		}
		diags.Add(d)
	}

	if r.Generic {
		fail(diagnostic.ReasonGenericRecord, "records with type parameters are not supported", "", r.Pos)
	}

	if len(r.Fields) == 0 {
		fail(diagnostic.ReasonEmptyRecord, "record has no fields", "", r.Pos)
	}

	p := &RecordPlan{Record: r, Fields: make([]FieldPlan, 0, len(r.Fields))}
	seen := make(map[string]bool, len(r.Fields))

	for i, f := range r.Fields {
		if f.Name == "" || f.Name == "_" {
			fail(diagnostic.ReasonUnnamedField, "field "+strconv.Itoa(i)+" has no usable name", f.Name, f.Pos)
			continue
		}

		if seen[f.Name] {
			fail(diagnostic.ReasonDuplicateField, "field declared more than once", f.Name, f.Pos)
			continue
		}
		seen[f.Name] = true

		s, d := PlanField(f)
		if d != nil {
			d.Record = r.Name
			d.Field = f.Name
			d.Pos = f.Pos
			diags.Add(*d)

			continue
		}

		if p.Size > math.MaxInt-s.ByteWidth() {
			fail(diagnostic.ReasonBadArraySize, "record size overflows int", f.Name, f.Pos)
			continue
		}

		// Generated code spells the length as planned, never as written:
		// "010" is 10 here but octal 8 to the Go compiler.
		if arr, ok := s.(FixedArray); ok {
			f.ArrayLen = &schema.ArrayLen{Expr: strconv.Itoa(arr.Len)}
		}

		p.Fields = append(p.Fields, FieldPlan{
			Name:     f.Name,
			Offset:   p.Size,
			Strategy: s,
			Field:    f,
		})
		p.Size += s.ByteWidth()
	}

	if diags.HasErrors() {
		return nil, diags
	}

	diags.AddInfo("planned "+strconv.Itoa(len(p.Fields))+" fields, "+strconv.Itoa(p.Size)+" bytes", r.Name, "")

	return p, diags
}

// PlanRecords plans each record and merges the diagnostics. Plans are
// returned only for records without errors, in input order.
func PlanRecords(records []*schema.Record) ([]*RecordPlan, diagnostic.Diagnostics) {
	var (
		plans []*RecordPlan
		diags diagnostic.Diagnostics
	)

	for _, r := range records {
		p, d := PlanRecord(r)
		diags.Merge(d)

		if p != nil {
			plans = append(plans, p)
		}
	}

	return plans, diags
}
