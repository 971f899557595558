package options

import (
	"fmt"
	"strings"

	"codec-generator/internal/match"
)

// TargetEnum selects which conversions are generated for a record.
type TargetEnum int

const (
	TargetDecode    TargetEnum = 1 << iota // TryDecode: checked conversion from bytes
	TargetEncode                           // TryEncode: checked conversion to bytes
	TargetSize                             // FixedSize: static size query
	TargetUnchecked                        // DecodeUnchecked and EncodeUnchecked

	TargetAll  TargetEnum = (1 << iota) - 1 // all targets combined
	TargetNone TargetEnum = 0               // no targets selected
)

var targetNames = []struct {
	target TargetEnum
	name   string
}{
	{TargetDecode, "decode"},
	{TargetEncode, "encode"},
	{TargetSize, "size"},
	{TargetUnchecked, "unchecked"},
}

// Has reports whether every target in other is selected in t.
func (t TargetEnum) Has(other TargetEnum) bool {
	return t&other == other
}

func (t TargetEnum) String() string {
	if t == TargetNone {
		return "none"
	}

	var parts []string
	for _, n := range targetNames {
		if t.Has(n.target) {
			parts = append(parts, n.name)
		}
	}

	if rest := t &^ TargetAll; rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", int(rest)))
	}

	return strings.Join(parts, ",")
}

// ParseTarget parses a single target name. "all" selects every target.
func ParseTarget(name string) (TargetEnum, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "all" {
		return TargetAll, nil
	}

	for _, n := range targetNames {
		if n.name == name {
			return n.target, nil
		}
	}

	known := make([]string, 0, len(targetNames)+1)
	for _, n := range targetNames {
		known = append(known, n.name)
	}
	known = append(known, "all")

	if hint := match.Hint(name, known); hint != "" {
		return TargetNone, fmt.Errorf("unknown target %q, %s", name, hint)
	}

	return TargetNone, fmt.Errorf("unknown target %q", name)
}

// ParseTargets combines target names given as separate values, comma
// separated lists, or both. An empty input selects every target.
func ParseTargets(names ...string) (TargetEnum, error) {
	result := TargetNone

	for _, arg := range names {
		for _, name := range strings.Split(arg, ",") {
			if strings.TrimSpace(name) == "" {
				continue
			}

			t, err := ParseTarget(name)
			if err != nil {
				return TargetNone, err
			}

			result |= t
		}
	}

	if result == TargetNone {
		return TargetAll, nil
	}

	return result, nil
}
