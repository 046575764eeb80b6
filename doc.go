// Package vachta is an immutable, constraint-gated graph library: every
// structural change to a graph is screened by a user-supplied constraint
// before it becomes visible, and every accepted change produces a fresh
// graph value — the original is never touched.
//
// 🚀 What is vachta?
//
//	A small, zero-dependency library built from three packages:
//		• core/       — the immutable storage value: Node, Edge, Graph,
//		  pure construction and structural queries
//		• constraint/ — the pluggable capability: pre/post check verdicts,
//		  violations, refusal hooks, chain composition
//		• gated/      — the mutation gate: single, bulk and mode-selected
//		  add/remove operations routed through the constraint
//
// ✨ Why choose vachta?
//
//   - Deterministic refusals – a rejected mutation returns the unchanged
//     graph plus a violation value, never a half-applied structure
//   - Batch atomicity – a heterogeneous batch of nodes and edges is checked
//     and applied as one unit, or not at all
//   - Pluggable invariants – "no cycles", "degree ≤ k", "stay connected"
//     live in user code behind a fixed Constraint interface
//   - Pure Go – no cgo, no hidden deps
//
// Quick ASCII example:
//
//	    1───2───3      + edge 1─3 under "max degree 1"
//	                   → rejected at post-check, graph unchanged
//
// Dive into the package docs of core, constraint and gated for contracts,
// complexity notes and examples.
//
//	go get github.com/katalvlaran/vachta
package vachta
