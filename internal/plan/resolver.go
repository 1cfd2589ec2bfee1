package plan

import (
	"errors"
	"fmt"
	"strings"

	"companion-generator/internal/analyze"
	"companion-generator/internal/common"
	"companion-generator/internal/diagnostic"
)

// ResolutionConfig holds configuration for marker resolution.
type ResolutionConfig struct {
	// PickFromNames are the marker simple names recognized as PickFrom.
	PickFromNames []string
	// OptionalConstructorNames are the marker simple names recognized as OptionalConstructor.
	OptionalConstructorNames []string
	// MaxSuggestions limits "did you mean" hints on unresolved references.
	// Zero disables them.
	MaxSuggestions int
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() ResolutionConfig {
	return ResolutionConfig{
		PickFromNames:            []string{"PickFields", "PickFrom"},
		OptionalConstructorNames: []string{"ParametersOptional", "OptionalConstructor"},
		MaxSuggestions:           3,
	}
}

// Resolver turns a symbol graph into a Plan.
type Resolver struct {
	graph  *analyze.TypeGraph
	config ResolutionConfig
	known  map[string]MarkerKind
}

// NewResolver creates a new Resolver.
func NewResolver(graph *analyze.TypeGraph, config ResolutionConfig) *Resolver {
	known := make(map[string]MarkerKind)

	for _, n := range config.OptionalConstructorNames {
		known[trimAttributeSuffix(n)] = MarkerOptionalConstructor
	}

	for _, n := range config.PickFromNames {
		known[trimAttributeSuffix(n)] = MarkerPickFrom
	}

	return &Resolver{graph: graph, config: config, known: known}
}

// Resolve runs marker resolution and member selection over every declaration.
func (r *Resolver) Resolve() (*Plan, error) {
	if r.graph == nil {
		return nil, errors.New("symbol graph is required")
	}

	p := &Plan{Graph: r.graph}
	keys := make(map[string]*analyze.TypeDecl)

	for decl := range r.graph.Declarations() {
		markers := r.ResolveMarkers(decl, &p.Diagnostics)
		if len(markers) == 0 {
			continue
		}

		if decl.Kind != analyze.TypeKindClass && decl.Kind != analyze.TypeKindStruct {
			p.Diagnostics.AddError(diagnostic.CodeUnsupportedKind,
				fmt.Sprintf("%s markers are only supported on class and struct declarations, found %s",
					markers[0].Kind(), decl.Kind),
				decl.ID.String(), "")

			continue
		}

		for _, e := range groupEntries(decl, markers) {
			if owner, taken := keys[e.Key]; taken {
				p.Diagnostics.AddError(diagnostic.CodeDuplicateOutputKey,
					fmt.Sprintf("output %s is already produced for %s", e.Key, owner.ID),
					decl.ID.String(), e.Kind.String())

				continue
			}

			keys[e.Key] = decl

			r.checkEntry(&e, &p.Diagnostics)
			p.Entries = append(p.Entries, e)
		}
	}

	return p, nil
}

// ResolveMarkers returns the recognized markers of decl in source order.
// PickFrom markers whose argument does not bind are dropped with a warning;
// a repeated OptionalConstructor is collapsed into the first one.
func (r *Resolver) ResolveMarkers(decl *analyze.TypeDecl, diags *diagnostic.Diagnostics) []Marker {
	var (
		out     []Marker
		hasCtor bool
	)

	for _, raw := range decl.Markers {
		kind, ok := r.known[raw.SimpleName()]
		if !ok {
			continue
		}

		switch kind {
		case MarkerOptionalConstructor:
			if hasCtor {
				diags.AddWarning(diagnostic.CodeRepeatedMarker,
					"marker may only appear once; extra instance ignored", decl.ID.String(), raw.Name)

				continue
			}

			hasCtor = true

			out = append(out, OptionalConstructor{})

		case MarkerPickFrom:
			source, ok := r.bindPickFrom(decl, raw, diags)
			if !ok {
				continue
			}

			out = append(out, PickFrom{Source: source})
		}
	}

	return out
}

// bindPickFrom binds the single type argument of a PickFrom marker.
func (r *Resolver) bindPickFrom(
	decl *analyze.TypeDecl,
	raw analyze.Marker,
	diags *diagnostic.Diagnostics,
) (*analyze.TypeDecl, bool) {
	if !common.IsSingle(raw.Args) {
		diags.AddWarning(diagnostic.CodeMarkerArity,
			fmt.Sprintf("expected exactly one type argument, got %d; marker dropped", len(raw.Args)),
			decl.ID.String(), raw.Name)

		return nil, false
	}

	arg := typeofOperand(raw.Args[0])

	expr, err := analyze.ParseTypeExpr(arg)
	if err != nil || expr.Kind != analyze.ExprNamed || len(expr.Args) > 0 {
		diags.AddWarning(diagnostic.CodeUnresolvedReference,
			fmt.Sprintf("%q is not a plain type name; marker dropped", raw.Args[0]),
			decl.ID.String(), raw.Name)

		return nil, false
	}

	source := r.graph.Lookup(expr.Name, analyze.ScopeOf(decl, raw.Usings))
	if source == nil {
		var suggestions []string
		if r.config.MaxSuggestions > 0 {
			suggestions = r.graph.Suggest(expr.Name, r.config.MaxSuggestions)
		}

		diags.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.DiagnosticWarning,
			Code:        diagnostic.CodeUnresolvedReference,
			Message:     fmt.Sprintf("type %q not found; marker dropped", expr.Name),
			Declaration: decl.ID.String(),
			Member:      raw.Name,
			Suggestions: suggestions,
		})

		return nil, false
	}

	switch source.Kind {
	case analyze.TypeKindClass, analyze.TypeKindStruct, analyze.TypeKindRecord:
		return source, true
	default:
		diags.AddWarning(diagnostic.CodeUnresolvedReference,
			fmt.Sprintf("%s is a %s, not a concrete type; marker dropped", source.ID, source.Kind),
			decl.ID.String(), raw.Name)

		return nil, false
	}
}

// checkEntry reports selections that are legal but likely surprising.
func (r *Resolver) checkEntry(e *Entry, diags *diagnostic.Diagnostics) {
	if common.IsEmpty(e.Members) {
		diags.AddInfo(diagnostic.CodeEmptySelection,
			fmt.Sprintf("no eligible members; %s output will be empty", e.Kind),
			e.Decl.ID.String(), "")

		return
	}

	if e.Kind != MarkerPickFrom {
		return
	}

	seen := make(map[string]bool, len(e.Members))
	for _, m := range e.Members {
		if seen[m.Name] {
			diags.AddWarning(diagnostic.CodeDuplicateMember,
				fmt.Sprintf("field %q is picked from more than one source", m.Name),
				e.Decl.ID.String(), m.Name)
		}

		seen[m.Name] = true
	}
}

// groupEntries folds markers into one entry per kind, ordered by the first
// appearance of each kind.
func groupEntries(decl *analyze.TypeDecl, markers []Marker) []Entry {
	var entries []Entry

	index := make(map[MarkerKind]int)

	for _, m := range markers {
		i, ok := index[m.Kind()]
		if !ok {
			i = len(entries)
			index[m.Kind()] = i

			entries = append(entries, Entry{
				Decl: decl,
				Kind: m.Kind(),
				Key:  OutputKey(decl, m.Kind()),
			})
		}

		entries[i].Markers = append(entries[i].Markers, m)
		entries[i].Members = append(entries[i].Members, m.Select(decl)...)
	}

	return entries
}

// OutputKey derives the output name from the simple type name and marker kind.
func OutputKey(decl *analyze.TypeDecl, kind MarkerKind) string {
	return decl.Name + kind.KeySuffix() + ".cs"
}

// typeofOperand unwraps "typeof(X)" to "X".
func typeofOperand(arg string) string {
	arg = strings.TrimSpace(arg)
	if inner, ok := strings.CutPrefix(arg, "typeof("); ok {
		if inner, ok = strings.CutSuffix(inner, ")"); ok {
			return strings.TrimSpace(inner)
		}
	}

	return arg
}

func trimAttributeSuffix(name string) string {
	if trimmed, ok := strings.CutSuffix(name, "Attribute"); ok && trimmed != "" {
		return trimmed
	}

	return name
}
