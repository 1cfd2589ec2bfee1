// Package analyze binds a program snapshot into a symbol graph.
//
// The binder merges partial declarations, parses member type expressions and
// resolves type names through the same scope rules the host language uses:
// enclosing types first, then the namespace chain, then imported namespaces.
// Later stages only see bound data and never look names up textually again.
//
// Key types:
//   - TypeID: namespace + containing-type path of a declaration
//   - TypeDecl: a bound class, struct, record, interface or enum
//   - Member: a bound field or property with its resolved TypeExpr
//   - TypeGraph: every bound declaration plus lookup and suggestions
package analyze
