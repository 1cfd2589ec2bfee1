package analyze

import (
	"strings"

	"companion-generator/internal/common"
)

//go:generate go tool stringer -type=TypeKind,Accessibility,MemberKind -linecomment -output=kind_string.go

// TypeID uniquely identifies a declared type by namespace and nesting path.
type TypeID struct {
	Namespace string // e.g., "App.Net"; empty for the global namespace
	Path      string // containing types and name, e.g., "Outer.Inner"
}

// String returns the fully qualified name.
func (t TypeID) String() string {
	return common.QualifiedName(t.Namespace, t.Path)
}

// Name returns the simple name of the type.
func (t TypeID) Name() string {
	return common.LastSegment(t.Path)
}

// TypeKind represents the kind of a declaration.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota // unknown
	TypeKindClass                     // class
	TypeKindStruct                    // struct
	TypeKindRecord                    // record
	TypeKindInterface                 // interface
	TypeKindEnum                      // enum
)

// Accessibility is the declared accessibility of a type or member.
type Accessibility int

const (
	AccessibilityNotApplicable       Accessibility = iota // default
	AccessibilityPrivate                                  // private
	AccessibilityProtectedAndInternal                     // private protected
	AccessibilityProtected                                // protected
	AccessibilityInternal                                 // internal
	AccessibilityProtectedOrInternal                      // protected internal
	AccessibilityPublic                                   // public
)

// MemberKind distinguishes fields from properties.
type MemberKind int

const (
	MemberKindUnknown  MemberKind = iota // unknown
	MemberKindField                      // field
	MemberKindProperty                   // property
)

// ParseTypeKind maps a snapshot kind name to a TypeKind.
func ParseTypeKind(s string) (TypeKind, bool) {
	for k := TypeKindClass; k <= TypeKindEnum; k++ {
		if k.String() == s {
			return k, true
		}
	}

	return TypeKindUnknown, false
}

// ParseMemberKind maps a snapshot member kind name to a MemberKind.
func ParseMemberKind(s string) (MemberKind, bool) {
	switch s {
	case MemberKindField.String():
		return MemberKindField, true
	case MemberKindProperty.String():
		return MemberKindProperty, true
	default:
		return MemberKindUnknown, false
	}
}

// ParseAccessibility maps written modifiers to an Accessibility.
// An empty string yields AccessibilityNotApplicable so callers can apply
// the context-dependent default.
func ParseAccessibility(s string) (Accessibility, bool) {
	switch s {
	case "":
		return AccessibilityNotApplicable, true
	case "public":
		return AccessibilityPublic, true
	case "private":
		return AccessibilityPrivate, true
	case "protected":
		return AccessibilityProtected, true
	case "internal":
		return AccessibilityInternal, true
	case "protected internal", "internal protected":
		return AccessibilityProtectedOrInternal, true
	case "private protected", "protected private":
		return AccessibilityProtectedAndInternal, true
	default:
		return AccessibilityNotApplicable, false
	}
}

// Keyword returns the modifier text, or "" when no modifier is written.
func (a Accessibility) Keyword() string {
	if a == AccessibilityNotApplicable {
		return ""
	}

	return a.String()
}

// TypeDecl is a bound declaration. Partial parts are merged into one TypeDecl.
type TypeDecl struct {
	ID            TypeID
	Name          string
	Kind          TypeKind
	Accessibility Accessibility
	// Containing is the enclosing declaration, nil for top-level types.
	Containing *TypeDecl
	// Markers in source order across all parts.
	Markers []Marker
	// Members in declaration order across all parts.
	Members []Member
	// Nested declarations in source order.
	Nested []*TypeDecl
	// Files lists the snapshot files declaring a part of this type.
	Files []string
}

// Namespace returns the owning namespace; empty for the global namespace.
func (d *TypeDecl) Namespace() string {
	return d.ID.Namespace
}

// Outermost returns the top-level declaration enclosing d (d itself if top-level).
func (d *TypeDecl) Outermost() *TypeDecl {
	for d.Containing != nil {
		d = d.Containing
	}

	return d
}

// NestedByName returns the directly nested declaration with the given name.
func (d *TypeDecl) NestedByName(name string) *TypeDecl {
	for _, n := range d.Nested {
		if n.Name == name {
			return n
		}
	}

	return nil
}

// Member is a bound field or property.
type Member struct {
	Name          string
	Kind          MemberKind
	Type          *TypeExpr
	Accessibility Accessibility
	IsStatic      bool
	IsReadOnly    bool
	// IsAuto is true for properties without explicit accessor bodies.
	IsAuto bool
	// IsSynthesized is true for host-generated implementation details.
	IsSynthesized bool
	// Usings are the namespaces imported by the file declaring the member.
	Usings []string
}

// Marker is an annotation as written on a declaration part, with the lookup
// scope of the file it came from.
type Marker struct {
	Name   string
	Args   []string
	Usings []string
}

// SimpleName returns the marker type's simple name without an "Attribute" suffix.
func (m Marker) SimpleName() string {
	name := common.LastSegment(m.Name)
	if trimmed, ok := strings.CutSuffix(name, "Attribute"); ok && trimmed != "" {
		return trimmed
	}

	return name
}

// Scope is the lookup context for resolving a type name.
type Scope struct {
	// Decl is the innermost declaration the name appears in (may be nil).
	Decl *TypeDecl
	// Namespace is the namespace the name appears in.
	Namespace string
	// Usings are the imported namespaces.
	Usings []string
}

// ScopeOf returns the lookup scope for names written inside decl.
func ScopeOf(decl *TypeDecl, usings []string) Scope {
	return Scope{Decl: decl, Namespace: decl.Namespace(), Usings: usings}
}
