// Package gen turns a resolved plan into partial declaration source text.
//
// Each plan entry goes through three steps:
//   - synthesis of the member fragment (a constructor or replicated fields)
//   - wrapping the fragment in partial declarations of every enclosing type
//     and the declaring namespace
//   - printing the compilation unit with a fixed, deterministic layout
//
// Entries are independent, so the Generator processes them in parallel and
// returns files in plan order.
package gen
