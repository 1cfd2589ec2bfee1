package analyze

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"companion-generator/internal/diagnostic"
	"companion-generator/internal/snapshot"
)

// Binder builds a TypeGraph from a program snapshot.
type Binder struct {
	graph *TypeGraph
	diags diagnostic.Diagnostics
	// pending are member type expressions waiting for name resolution,
	// which can only happen once every declaration is known.
	pending []pendingExpr
}

type pendingExpr struct {
	expr  *TypeExpr
	scope Scope
}

// NewBinder creates a new Binder.
func NewBinder() *Binder {
	return &Binder{graph: NewTypeGraph()}
}

// Bind binds every file of the program. Declaration parts that cannot be
// bound are skipped and reported; the rest of the graph is still returned.
func (b *Binder) Bind(prog *snapshot.Program) (*TypeGraph, diagnostic.Diagnostics) {
	if prog != nil {
		for _, f := range prog.Files {
			for i := range f.Types {
				td := &f.Types[i]
				b.bindPart(f, td, nil, td.Namespace)
			}
		}
	}

	for _, p := range b.pending {
		p.expr.Walk(func(n *TypeExpr) {
			n.Decl, n.Keyword = b.graph.resolve(n.Name, p.scope)
		})
	}

	b.pending = nil

	return b.graph, b.diags
}

// Bind is a shortcut for NewBinder().Bind(prog).
func Bind(prog *snapshot.Program) (*TypeGraph, diagnostic.Diagnostics) {
	return NewBinder().Bind(prog)
}

// bindPart binds one declaration part and its nested parts.
func (b *Binder) bindPart(f *snapshot.File, td *snapshot.TypeDecl, container *TypeDecl, namespace string) {
	id := TypeID{Namespace: namespace, Path: td.Name}
	if container != nil {
		id = TypeID{Namespace: container.ID.Namespace, Path: container.ID.Path + "." + td.Name}
	}

	if err := checkPart(td); err != nil {
		b.skip(f, id, err)
		return
	}

	kind, _ := ParseTypeKind(td.Kind)
	access, _ := ParseAccessibility(td.Accessibility)

	decl := b.graph.Types[id]
	if decl == nil {
		if access == AccessibilityNotApplicable {
			access = defaultTypeAccessibility(container)
		}

		decl = &TypeDecl{
			ID:            id,
			Name:          td.Name,
			Kind:          kind,
			Accessibility: access,
			Containing:    container,
		}
		b.graph.add(decl)

		if container != nil {
			container.Nested = append(container.Nested, decl)
		}
	} else if decl.Kind != kind {
		b.skip(f, id, fmt.Errorf("partial declaration is a %s, earlier parts declare a %s", kind, decl.Kind))
		return
	}

	decl.Files = appendUnique(decl.Files, f.Path)

	members := make([]Member, 0, len(td.Members))

	for _, sm := range td.Members {
		m, err := bindMember(sm)
		if err != nil {
			b.skipMember(f, id, sm.Name, err)
			continue
		}

		m.Usings = f.Usings
		members = append(members, m)
	}

	for _, m := range td.Markers {
		decl.Markers = append(decl.Markers, Marker{
			Name:   m.Name,
			Args:   append([]string(nil), m.Args...),
			Usings: f.Usings,
		})
	}

	scope := ScopeOf(decl, f.Usings)
	for _, m := range members {
		b.pending = append(b.pending, pendingExpr{expr: m.Type, scope: scope})
	}

	decl.Members = append(decl.Members, members...)

	for i := range td.Types {
		b.bindPart(f, &td.Types[i], decl, namespace)
	}
}

// checkPart validates the declaration-level fields of a part.
func checkPart(td *snapshot.TypeDecl) error {
	if strings.TrimSpace(td.Name) == "" || strings.ContainsAny(td.Name, ". <>") {
		return fmt.Errorf("invalid declaration name %q", td.Name)
	}

	if _, ok := ParseTypeKind(td.Kind); !ok {
		return fmt.Errorf("unknown declaration kind %q", td.Kind)
	}

	if _, ok := ParseAccessibility(td.Accessibility); !ok {
		return fmt.Errorf("unknown accessibility %q", td.Accessibility)
	}

	return nil
}

func bindMember(sm snapshot.Member) (Member, error) {
	if sm.Name == "" {
		return Member{}, errors.New("missing name")
	}

	kind, ok := ParseMemberKind(sm.Kind)
	if !ok {
		return Member{}, fmt.Errorf("unknown member kind %q", sm.Kind)
	}

	access, ok := ParseAccessibility(sm.Accessibility)
	if !ok {
		return Member{}, fmt.Errorf("unknown accessibility %q", sm.Accessibility)
	}

	// Members without a modifier are private.
	if access == AccessibilityNotApplicable {
		access = AccessibilityPrivate
	}

	typ, err := ParseTypeExpr(sm.Type)
	if err != nil {
		return Member{}, err
	}

	return Member{
		Name:          sm.Name,
		Kind:          kind,
		Type:          typ,
		Accessibility: access,
		IsStatic:      sm.Static,
		IsReadOnly:    sm.ReadOnly,
		IsAuto:        kind == MemberKindProperty && sm.Auto,
		IsSynthesized: sm.Synthesized || strings.Contains(sm.Name, "<"),
	}, nil
}

func (b *Binder) skip(f *snapshot.File, id TypeID, err error) {
	msg := err.Error()
	if f.Path != "" {
		msg = f.Path + ": " + msg
	}

	b.diags.AddWarning(diagnostic.CodeUnbindableDeclaration,
		"declaration skipped: "+msg, id.String(), "")
}

// skipMember reports a member that cannot be bound. The rest of the part,
// nested declarations included, is still bound.
func (b *Binder) skipMember(f *snapshot.File, id TypeID, name string, err error) {
	msg := fmt.Sprintf("member %q skipped: %v", name, err)
	if f.Path != "" {
		msg = f.Path + ": " + msg
	}

	b.diags.AddWarning(diagnostic.CodeUnbindableMember, msg, id.String(), name)
}

// defaultTypeAccessibility is internal for top-level types and private for nested ones.
func defaultTypeAccessibility(container *TypeDecl) Accessibility {
	if container != nil {
		return AccessibilityPrivate
	}

	return AccessibilityInternal
}

func appendUnique(list []string, s string) []string {
	if slices.Contains(list, s) {
		return list
	}

	return append(list, s)
}
