package theme

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ValueKind discriminates the shapes a semantic mapping value takes in
// mappings.yaml.
type ValueKind int

const (
	// KindReference is a plain "Class.B10" ramp reference.
	KindReference ValueKind = iota
	// KindNumber is a raw number that passes through resolution
	// untouched, e.g. a tooltip opacity.
	KindNumber
	// KindFormatted is a [reference, bold, italic] triple for editor
	// tokens that carry font styling.
	KindFormatted
)

// MappingValue is one semantic token value from mappings.yaml.
type MappingValue struct {
	Kind   ValueKind
	Ref    string
	Number int
	Bold   bool
	Italic bool
}

// Reference builds a plain reference value.
func Reference(ref string) MappingValue {
	return MappingValue{Kind: KindReference, Ref: ref}
}

// Number builds a pass-through numeric value.
func Number(n int) MappingValue {
	return MappingValue{Kind: KindNumber, Number: n}
}

// Formatted builds a reference with font styling flags.
func Formatted(ref string, bold, italic bool) MappingValue {
	return MappingValue{Kind: KindFormatted, Ref: ref, Bold: bold, Italic: italic}
}

func (v MappingValue) String() string {
	switch v.Kind {
	case KindNumber:
		return fmt.Sprintf("%d", v.Number)
	case KindFormatted:
		s := v.Ref
		if v.Bold {
			s += " bold"
		}
		if v.Italic {
			s += " italic"
		}
		return s
	default:
		return v.Ref
	}
}

// UnmarshalYAML decodes the three value shapes: string scalar, integer
// scalar, and three-element [reference, bold, italic] sequence.
func (v *MappingValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!int":
			var n int
			if err := node.Decode(&n); err != nil {
				return err
			}
			*v = Number(n)
			return nil
		case "!!str":
			var s string
			if err := node.Decode(&s); err != nil {
				return err
			}
			*v = Reference(s)
			return nil
		}
	case yaml.SequenceNode:
		if len(node.Content) != 3 {
			return fmt.Errorf("line %d: formatted mapping value needs [reference, bold, italic], got %d elements",
				node.Line, len(node.Content))
		}
		var ref string
		var bold, italic bool
		if err := node.Content[0].Decode(&ref); err != nil {
			return err
		}
		if err := node.Content[1].Decode(&bold); err != nil {
			return err
		}
		if err := node.Content[2].Decode(&italic); err != nil {
			return err
		}
		*v = Formatted(ref, bold, italic)
		return nil
	}
	return fmt.Errorf("line %d: unsupported mapping value (%s)", node.Line, node.Tag)
}

// MarshalYAML emits the same shapes UnmarshalYAML accepts.
func (v MappingValue) MarshalYAML() (interface{}, error) {
	switch v.Kind {
	case KindNumber:
		return v.Number, nil
	case KindFormatted:
		return []interface{}{v.Ref, v.Bold, v.Italic}, nil
	default:
		return v.Ref, nil
	}
}
