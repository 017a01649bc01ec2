package theme

import (
	"errors"
	"fmt"
	"strings"
)

// ErrReference matches any resolution failure via errors.Is.
var ErrReference = errors.New("unresolvable color reference")

// ReferenceError pinpoints the link that broke while resolving a
// semantic mapping value.
type ReferenceError struct {
	Ref    string
	Reason string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("cannot resolve %q: %s", e.Ref, e.Reason)
}

func (e *ReferenceError) Is(target error) bool {
	return target == ErrReference
}

// ResolveReference walks a "Class.B10" reference through the color
// class indirection into the color system and returns the hex value.
func (t *Theme) ResolveReference(ref string) (string, error) {
	class, step, ok := strings.Cut(ref, ".")
	if !ok || class == "" || step == "" {
		return "", &ReferenceError{Ref: ref, Reason: "want Class.Step"}
	}
	palette, ok := t.Mappings.ColorClasses[class]
	if !ok {
		return "", &ReferenceError{Ref: ref, Reason: fmt.Sprintf("unknown color class %q", class)}
	}
	ramp, ok := t.Colors[palette]
	if !ok {
		return "", &ReferenceError{Ref: ref, Reason: fmt.Sprintf("class %q points at missing palette %q", class, palette)}
	}
	hex, ok := ramp[step]
	if !ok {
		return "", &ReferenceError{Ref: ref, Reason: fmt.Sprintf("palette %q has no step %q", palette, step)}
	}
	return hex, nil
}

// ResolvedValue is a semantic token after its references went through
// the color system.
type ResolvedValue struct {
	Kind   ValueKind
	Color  string
	Number int
	Bold   bool
	Italic bool
}

// Resolve flattens one variant's semantic mapping table into concrete
// values.
func (t *Theme) Resolve(variant string) (map[string]ResolvedValue, error) {
	table := t.Mappings.Variant(variant)
	if table == nil {
		return nil, fmt.Errorf("theme %q has no %s semantic mappings", t.Name, variant)
	}
	out := make(map[string]ResolvedValue, len(table))
	for token, v := range table {
		rv, err := t.resolveValue(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", token, err)
		}
		out[token] = rv
	}
	return out, nil
}

func (t *Theme) resolveValue(v MappingValue) (ResolvedValue, error) {
	switch v.Kind {
	case KindNumber:
		return ResolvedValue{Kind: KindNumber, Number: v.Number}, nil
	case KindFormatted:
		hex, err := t.ResolveReference(v.Ref)
		if err != nil {
			return ResolvedValue{}, err
		}
		return ResolvedValue{Kind: KindFormatted, Color: hex, Bold: v.Bold, Italic: v.Italic}, nil
	default:
		hex, err := t.ResolveReference(v.Ref)
		if err != nil {
			return ResolvedValue{}, err
		}
		return ResolvedValue{Kind: KindReference, Color: hex}, nil
	}
}
