package gen

import (
	"companion-generator/internal/analyze"
)

// Wrap places members inside a partial declaration of decl, then inside a
// partial declaration of each enclosing type, innermost first. A declaration
// outside the global namespace ends up in a namespace node.
func Wrap(decl *analyze.TypeDecl, members []Decl) Decl {
	var node Decl = &PartialType{Kind: decl.Kind, Name: decl.Name, Members: members}

	outer := decl
	for outer.Containing != nil {
		outer = outer.Containing
		node = &PartialType{Kind: outer.Kind, Name: outer.Name, Members: []Decl{node}}
	}

	if ns := outer.Namespace(); ns != "" {
		node = &Namespace{Name: ns, Members: []Decl{node}}
	}

	return node
}
