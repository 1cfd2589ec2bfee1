package snapshot

// CurrentVersion is the snapshot schema version written by Encode.
const CurrentVersion = "v1.0.0"

// Program is an ordered set of snapshot files analyzed together.
type Program struct {
	Files []*File
}

// File is one snapshot source file.
type File struct {
	// Path is the file the snapshot was loaded from (empty for in-memory files).
	Path string `yaml:"-" msgpack:"-"`

	// Version of the snapshot schema (semver, "v" prefix optional).
	Version string `yaml:"version,omitempty" msgpack:"version,omitempty"`

	// Usings lists namespaces imported for type name lookup in this file.
	Usings []string `yaml:"usings,omitempty" msgpack:"usings,omitempty"`

	// Types lists top-level declarations in source order.
	Types []TypeDecl `yaml:"types" msgpack:"types"`
}

// TypeDecl is one declaration of a class, struct, record, interface or enum.
// Several TypeDecl entries may describe parts of the same partial type.
type TypeDecl struct {
	Name string `yaml:"name" msgpack:"name"`

	// Kind is one of: class, struct, record, interface, enum.
	Kind string `yaml:"kind" msgpack:"kind"`

	// Namespace is the dotted owning namespace; empty means global.
	// Ignored on nested declarations.
	Namespace string `yaml:"namespace,omitempty" msgpack:"namespace,omitempty"`

	// Accessibility as written (e.g. "public", "private protected").
	Accessibility string `yaml:"accessibility,omitempty" msgpack:"accessibility,omitempty"`

	Markers []Marker   `yaml:"markers,omitempty" msgpack:"markers,omitempty"`
	Members []Member   `yaml:"members,omitempty" msgpack:"members,omitempty"`
	Types   []TypeDecl `yaml:"types,omitempty" msgpack:"types,omitempty"`
}

// Member is a field or property of a declaration.
type Member struct {
	Name string `yaml:"name" msgpack:"name"`

	// Kind is "field" or "property".
	Kind string `yaml:"kind" msgpack:"kind"`

	// Type is the member's type expression as written, e.g. "List<Order>?".
	Type string `yaml:"type" msgpack:"type"`

	Accessibility string `yaml:"accessibility,omitempty" msgpack:"accessibility,omitempty"`
	Static        bool   `yaml:"static,omitempty" msgpack:"static,omitempty"`
	ReadOnly      bool   `yaml:"readonly,omitempty" msgpack:"readonly,omitempty"`

	// Auto marks a property without explicit accessor bodies.
	Auto bool `yaml:"auto,omitempty" msgpack:"auto,omitempty"`

	// Synthesized marks implementation-detail storage generated by the host compiler.
	Synthesized bool `yaml:"synthesized,omitempty" msgpack:"synthesized,omitempty"`
}

// Marker is an annotation attached to a declaration.
type Marker struct {
	// Name is the annotation type as written ("PickFields", "ybwork.PickFieldsAttribute").
	Name string `yaml:"name" msgpack:"name"`

	// Args are the textual arguments, e.g. a referenced type name.
	Args StringOrArray `yaml:"args,omitempty" msgpack:"args,omitempty"`
}

// StringOrArray is a list of strings that may be written as a single scalar in YAML.
type StringOrArray []string
