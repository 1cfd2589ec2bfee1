package analyze

import (
	"iter"
	"strings"

	"companion-generator/internal/common"
	"companion-generator/internal/match"
)

// TypeGraph holds every bound declaration of a program snapshot.
type TypeGraph struct {
	// Types maps TypeID to the merged declaration.
	Types map[TypeID]*TypeDecl
	// Namespaces maps a namespace to its top-level declarations in source order.
	Namespaces map[string][]TypeID

	order  []*TypeDecl
	byName map[string]*TypeDecl
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:      make(map[TypeID]*TypeDecl),
		Namespaces: make(map[string][]TypeID),
		byName:     make(map[string]*TypeDecl),
	}
}

func (g *TypeGraph) add(d *TypeDecl) {
	g.Types[d.ID] = d
	g.order = append(g.order, d)

	if _, ok := g.byName[d.ID.String()]; !ok {
		g.byName[d.ID.String()] = d
	}

	if d.Containing == nil {
		g.Namespaces[d.ID.Namespace] = append(g.Namespaces[d.ID.Namespace], d.ID)
	}
}

// GetType returns the declaration for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeDecl {
	return g.Types[id]
}

// Declarations yields every bound declaration in source order, containers
// before the types nested in them.
func (g *TypeGraph) Declarations() iter.Seq[*TypeDecl] {
	return func(yield func(*TypeDecl) bool) {
		for _, d := range g.order {
			if !yield(d) {
				return
			}
		}
	}
}

// Len returns the number of bound declarations.
func (g *TypeGraph) Len() int {
	return len(g.order)
}

// Lookup resolves a dotted type name written in scope to a declaration.
// Returns nil for keywords, external types and unknown names.
func (g *TypeGraph) Lookup(name string, scope Scope) *TypeDecl {
	decl, _ := g.resolve(name, scope)
	return decl
}

// resolve binds a name to a declaration or to a special-type keyword.
//
// Order: nested types of the enclosing declarations (innermost first), the
// namespace chain (innermost first, ending with global), then usings.
func (g *TypeGraph) resolve(name string, scope Scope) (*TypeDecl, string) {
	name = strings.TrimPrefix(name, "global::")

	if keywords[name] {
		return nil, name
	}

	first, rest, _ := strings.Cut(name, ".")

	for d := scope.Decl; d != nil; d = d.Containing {
		if n := d.NestedByName(first); n != nil {
			if found := descend(n, rest); found != nil {
				return found, ""
			}
		}
	}

	candidates := make([]string, 0, 4)
	for _, ns := range common.ParentNamespaces(scope.Namespace) {
		candidates = append(candidates, common.QualifiedName(ns, name))
	}

	for _, u := range scope.Usings {
		candidates = append(candidates, common.QualifiedName(u, name))
	}

	for _, c := range candidates {
		if d := g.byName[c]; d != nil {
			return d, ""
		}

		if kw, ok := specialTypes[c]; ok {
			return nil, kw
		}
	}

	return nil, ""
}

// descend follows a dotted path of nested type names starting at d.
func descend(d *TypeDecl, path string) *TypeDecl {
	for path != "" && d != nil {
		var head string

		head, path, _ = strings.Cut(path, ".")
		d = d.NestedByName(head)
	}

	return d
}

// Suggest returns up to limit fully qualified names of declarations whose
// simple name resembles the last segment of name.
func (g *TypeGraph) Suggest(name string, limit int) []string {
	names := make([]string, 0, len(g.order))
	for _, d := range g.order {
		names = append(names, d.ID.String())
	}

	return match.Suggest(name, names, limit)
}
