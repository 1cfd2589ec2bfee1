// Package match ranks declared type names by similarity to a name that failed
// to bind, so unresolved marker references can carry "did you mean" hints.
//
// Key functions:
//   - NormalizeIdent: folds identifiers for fuzzy comparison
//   - Levenshtein, Similarity: edit distance and its [0, 1] score
//   - Suggest: ranks candidate names against a query
package match
