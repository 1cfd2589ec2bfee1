package gen

import (
	"companion-generator/internal/analyze"
)

// Unit is a compilation unit: header comment lines, using directives and a
// single top-level declaration.
type Unit struct {
	Header []string
	Usings []string
	Root   Decl
}

// Decl is a node of the emitted declaration tree.
type Decl interface {
	isDecl()
}

// Namespace is a block-scoped namespace declaration.
type Namespace struct {
	Name    string
	Members []Decl
}

// PartialType is a partial declaration of a class, struct, record or interface.
type PartialType struct {
	Kind    analyze.TypeKind
	Name    string
	Members []Decl
}

// Constructor is a public constructor whose parameters are all optional.
// The body assigns each parameter to the member of the same name.
type Constructor struct {
	Name   string
	Params []Parameter
	// Unsafe is set when a parameter has a pointer type.
	Unsafe bool
}

// Parameter is a constructor parameter defaulted to default(Type).
type Parameter struct {
	Name string
	Type string
}

// Field is a field declaration with its modifiers in emission order.
type Field struct {
	Modifiers []string
	Type      string
	Name      string
}

func (*Namespace) isDecl()   {}
func (*PartialType) isDecl() {}
func (*Constructor) isDecl() {}
func (*Field) isDecl()       {}
