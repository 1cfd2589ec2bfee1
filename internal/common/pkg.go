package common

import "strings"

// UnknownStr is the String form of unrecognized enum values.
const UnknownStr = "unknown"

// QualifiedName joins non-empty dotted name parts (e.g., "App.Net", "Outer", "Inner").
func QualifiedName(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}

	return strings.Join(nonEmpty, ".")
}

// LastSegment returns the last element of a dotted name.
// Returns the input unchanged if it has no dot.
func LastSegment(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}

	return name
}

// ParentNamespaces returns ns followed by each of its enclosing namespaces,
// ending with the global namespace ("").
// Example: "A.B" -> ["A.B", "A", ""].
func ParentNamespaces(ns string) []string {
	var out []string

	for ns != "" {
		out = append(out, ns)

		i := strings.LastIndex(ns, ".")
		if i < 0 {
			break
		}

		ns = ns[:i]
	}

	return append(out, "")
}
