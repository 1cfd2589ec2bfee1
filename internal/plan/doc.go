// Package plan resolves markers and selects the members that take part in
// synthesis, producing a Plan consumed by code generation.
//
// Resolution pipeline:
//  1. Bind the snapshot → symbol graph (package analyze)
//  2. For each declaration, in source order:
//     - Recognize markers by simple name; ignore everything else
//     - Bind PickFrom arguments to declared types; drop the ones that don't bind
//     - Reject markers on kinds other than class and struct
//     - Select members per marker kind and concatenate per declaration
//  3. Derive one output key per (declaration, marker kind); reject collisions
//  4. Emit diagnostics (dropped markers, duplicates, defects)
package plan
