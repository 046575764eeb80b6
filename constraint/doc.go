// Package constraint defines the pluggable capability a gated graph
// delegates every mutation decision to: the three-way pre-check verdict,
// the violation value produced on rejection, the Constraint interface
// itself, and chain composition.
//
// What:
//
//   - FollowUp: the verdict steering the gate — Complete (pre-check is
//     authoritative, proceed), PostCheck (rebuild first, then ask again on
//     the candidate), Abort (reject without rebuilding).
//   - Result: a FollowUp plus the violation payload required when aborting
//     and an optional Payload a constraint may thread from its pre-check to
//     its post-check.
//   - Violation: immutable record of a rejection — the offending node and
//     edge sets and an optional human-readable reason. Implements error, so
//     the explicit-result API surfaces it through a plain (graph, error)
//     pair and errors.As recovers the structured form.
//   - Constraint: the fixed capability set — PreAdd, PostAdd, PreSubtract,
//     PostSubtract, and the refusal notification hooks. Single-element
//     operations are presented as singleton sets; batching lets non-local
//     invariants ("total degree after all insertions ≤ N") see the whole
//     delta at once.
//   - Factory: the 1:1 attachment of a constraint to a graph value. Every
//     derived graph binds a fresh constraint holding the back-reference.
//
// Why:
//   - The gate is polymorphic over the capability set, never over concrete
//     invariant logic: cycle detection, connectivity and friends are user
//     plugins built on this interface.
//
// Composition:
//
//   - And(factories...) chains constraints: Abort dominates, then
//     PostCheck, else Complete; each chained member post-checks with its
//     own pre-check result.
//   - Unconstrained admits every mutation; Base supplies no-op defaults
//     for the optional callbacks so plugins implement only the pre-checks.
//
// Contract:
//
//   - A Result with FollowUp == Abort must carry a non-nil Violation;
//     aborting without explanation is a contract violation of the
//     Constraint interface surfaced by the gate as an error.
//   - Refusal hooks are pure observers: no return value, and they must not
//     mutate state observable by later checks.
package constraint
