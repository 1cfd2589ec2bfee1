// Package snapshot defines the on-disk form of a program snapshot and loads it.
//
// A snapshot is the host's view of a program: one or more source files, each
// listing declared types with their members and markers. Files are written in
// YAML (or JSON) or MessagePack and are selected with doublestar glob patterns.
//
// Example (YAML):
//
//	version: v1
//	usings: [System]
//	types:
//	  - name: Point
//	    kind: struct
//	    namespace: Geometry
//	    markers:
//	      - name: ParametersOptional
//	    members:
//	      - {name: x, kind: field, type: int, readonly: true}
//	      - {name: y, kind: field, type: int, readonly: true}
//
// Nested declarations go under a declaration's own "types" key and inherit the
// namespace of their outermost declaration.
package snapshot
