package plan

import (
	"companion-generator/internal/analyze"
	"companion-generator/internal/diagnostic"
)

//go:generate go tool stringer -type=MarkerKind -linecomment -output=marker_kind_string.go

// MarkerKind identifies a recognized marker.
type MarkerKind int

const (
	MarkerPickFrom            MarkerKind = iota // PickFrom
	MarkerOptionalConstructor                   // OptionalConstructor
)

// KeySuffix returns the suffix appended to the type name to form output keys.
func (k MarkerKind) KeySuffix() string {
	switch k {
	case MarkerPickFrom:
		return "_PickFields"
	case MarkerOptionalConstructor:
		return "_Partial"
	default:
		return "_" + k.String()
	}
}

// Marker is a resolved marker instance. The set of implementations is closed:
// PickFrom and OptionalConstructor. Each variant carries its own selection rule.
type Marker interface {
	Kind() MarkerKind
	// Select returns the members taking part in synthesis for decl, in order.
	Select(decl *analyze.TypeDecl) []analyze.Member

	isMarker()
}

// PickFrom replicates the instance fields of Source on the marked type.
type PickFrom struct {
	// Source is the bound declaration named by the marker argument.
	Source *analyze.TypeDecl
}

// Kind implements Marker.
func (PickFrom) Kind() MarkerKind { return MarkerPickFrom }

func (PickFrom) isMarker() {}

// OptionalConstructor synthesizes a constructor with one defaulted parameter
// per immutable member.
type OptionalConstructor struct{}

// Kind implements Marker.
func (OptionalConstructor) Kind() MarkerKind { return MarkerOptionalConstructor }

func (OptionalConstructor) isMarker() {}

// Entry is one unit of synthesis: a declaration, a marker kind and the
// members selected by every marker of that kind on the declaration.
type Entry struct {
	Decl *analyze.TypeDecl
	Kind MarkerKind
	// Markers are the resolved instances of Kind, in source order.
	Markers []Marker
	// Members are the selected members, concatenated in marker order.
	Members []analyze.Member
	// Key is the output name, unique within a plan.
	Key string
}

// Plan is the output of marker resolution.
type Plan struct {
	Entries     []Entry
	Graph       *analyze.TypeGraph
	Diagnostics diagnostic.Diagnostics
}
