// Package diagnostic provides structured warnings and errors produced while
// binding a snapshot, resolving markers and synthesizing companions.
//
// Key capabilities:
//   - Unbindable declaration warnings (the declaration is skipped)
//   - Unresolvable marker reference warnings with "did you mean" suggestions
//   - Defect reports for markers used outside their contract
//   - Output key collisions
package diagnostic
