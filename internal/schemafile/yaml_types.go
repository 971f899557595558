package schemafile

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		if err := node.Decode(&str); err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or array, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrArray.
// Outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// UnmarshalYAML accepts any scalar (int, string, float) and keeps its text.
func (r *RawScalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: array length must be a scalar", node.Line)
	}

	*r = RawScalar(node.Value)

	return nil
}

// UnmarshalYAML decodes a field declaration and records its line.
func (f *FieldDecl) UnmarshalYAML(node *yaml.Node) error {
	type plain FieldDecl

	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}

	*f = FieldDecl(p)
	f.Line = node.Line

	return nil
}

// UnmarshalYAML decodes a record declaration and records its line.
func (r *RecordDecl) UnmarshalYAML(node *yaml.Node) error {
	type plain RecordDecl

	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}

	*r = RecordDecl(p)
	r.Line = node.Line

	return nil
}
