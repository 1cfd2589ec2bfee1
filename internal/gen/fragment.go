package gen

import (
	"fmt"
	"strings"

	"companion-generator/internal/analyze"
	"companion-generator/internal/plan"
)

// Synthesize builds the member fragment for a plan entry.
func Synthesize(e *plan.Entry) ([]Decl, error) {
	switch e.Kind {
	case plan.MarkerOptionalConstructor:
		ctor, err := synthesizeConstructor(e.Decl, e.Members)
		if err != nil {
			return nil, err
		}

		return []Decl{ctor}, nil

	case plan.MarkerPickFrom:
		return synthesizeFields(e.Members)

	default:
		return nil, fmt.Errorf("unsupported marker kind %s", e.Kind)
	}
}

func synthesizeConstructor(decl *analyze.TypeDecl, members []analyze.Member) (*Constructor, error) {
	ctor := &Constructor{Name: decl.Name, Params: make([]Parameter, 0, len(members))}

	for _, m := range members {
		typ, err := displayType(m)
		if err != nil {
			return nil, err
		}

		ctor.Params = append(ctor.Params, Parameter{Name: m.Name, Type: typ})
		ctor.Unsafe = ctor.Unsafe || m.Type.HasPointer()
	}

	return ctor, nil
}

func synthesizeFields(members []analyze.Member) ([]Decl, error) {
	out := make([]Decl, 0, len(members))

	for _, m := range members {
		typ, err := displayType(m)
		if err != nil {
			return nil, err
		}

		out = append(out, &Field{Modifiers: Modifiers(m), Type: typ, Name: m.Name})
	}

	return out, nil
}

func displayType(m analyze.Member) (string, error) {
	if m.Type == nil {
		return "", fmt.Errorf("member %s has no type", m.Name)
	}

	return m.Type.String(), nil
}

// Modifiers returns the field modifiers of m: accessibility, then static,
// then readonly, then unsafe for pointer types.
func Modifiers(m analyze.Member) []string {
	var mods []string

	if kw := m.Accessibility.Keyword(); kw != "" {
		mods = append(mods, strings.Fields(kw)...)
	}

	if m.IsStatic {
		mods = append(mods, "static")
	}

	if m.IsReadOnly {
		mods = append(mods, "readonly")
	}

	if m.Type.HasPointer() {
		mods = append(mods, "unsafe")
	}

	return mods
}
