package plan

import (
	"companion-generator/internal/analyze"
)

// Select returns the instance fields of the source type in declaration
// order. Accessibility, static and readonly are carried over unchanged.
func (p PickFrom) Select(_ *analyze.TypeDecl) []analyze.Member {
	if p.Source == nil {
		return nil
	}

	var out []analyze.Member

	for _, m := range p.Source.Members {
		if m.Kind != analyze.MemberKindField || m.IsStatic || m.IsSynthesized {
			continue
		}

		out = append(out, m)
	}

	return out
}

// Select returns the members of decl that are set once at construction:
// readonly fields and readonly auto properties. Static and synthesized
// members never qualify.
func (OptionalConstructor) Select(decl *analyze.TypeDecl) []analyze.Member {
	var out []analyze.Member

	for _, m := range decl.Members {
		if m.IsStatic || m.IsSynthesized || !m.IsReadOnly {
			continue
		}

		switch m.Kind {
		case analyze.MemberKindField:
			out = append(out, m)
		case analyze.MemberKindProperty:
			if m.IsAuto {
				out = append(out, m)
			}
		case analyze.MemberKindUnknown:
		}
	}

	return out
}
