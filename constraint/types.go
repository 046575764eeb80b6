// Package constraint: verdict and violation value types.
package constraint

import (
	"fmt"

	"github.com/katalvlaran/vachta/core"
)

// FollowUp is the three-way verdict of a pre-check, steering the gate's
// next action.
type FollowUp uint8

const (
	// Complete marks the pre-check as authoritative: rebuild and accept,
	// no post-check.
	Complete FollowUp = iota

	// PostCheck marks the pre-check as advisory: rebuild, then let the
	// post-check on the candidate graph decide accept or reject.
	PostCheck

	// Abort rejects the mutation without rebuilding. A Result carrying
	// Abort must also carry a Violation.
	Abort
)

// String returns the verdict name for diagnostics.
func (f FollowUp) String() string {
	switch f {
	case Complete:
		return "Complete"
	case PostCheck:
		return "PostCheck"
	case Abort:
		return "Abort"
	default:
		return fmt.Sprintf("FollowUp(%d)", uint8(f))
	}
}

// Result is the outcome of a pre-check.
//
// Payload lets a constraint thread state computed during the pre-check to
// its own post-check (the gate passes the Result through untouched).
type Result struct {
	// FollowUp steers the gate: Complete, PostCheck, or Abort.
	FollowUp FollowUp

	// Violation explains an Abort. Required when FollowUp == Abort.
	Violation *Violation

	// Payload is constraint-private state carried from pre- to post-check.
	Payload any
}

// Completed returns a Result marking the pre-check authoritative.
func Completed() Result { return Result{FollowUp: Complete} }

// PostChecked returns a Result requesting an authoritative post-check.
func PostChecked() Result { return Result{FollowUp: PostCheck} }

// PostCheckedWith returns a PostCheck Result carrying constraint-private
// payload for the matching post-check.
func PostCheckedWith(payload any) Result {
	return Result{FollowUp: PostCheck, Payload: payload}
}

// Aborted returns a Result rejecting the mutation with the given violation.
func Aborted(v *Violation) Result { return Result{FollowUp: Abort, Violation: v} }

// Violation describes why a mutation was rejected: the refused node and
// edge sets and an optional reason. Produced only on rejection; immutable
// by convention.
type Violation struct {
	// Nodes are the refused node values (may be empty).
	Nodes []core.Node

	// Edges are the refused edge values (may be empty).
	Edges []core.Edge

	// Reason is an optional human-readable explanation.
	Reason string
}

// NewViolation builds a Violation from a reason and the refused sets.
func NewViolation(reason string, nodes []core.Node, edges []core.Edge) *Violation {
	return &Violation{Nodes: nodes, Edges: edges, Reason: reason}
}

// Error implements the error interface so violations travel through
// ordinary (graph, error) returns and errors.As.
func (v *Violation) Error() string {
	reason := v.Reason
	if reason == "" {
		reason = "mutation rejected"
	}

	return fmt.Sprintf("constraint: %s (nodes: %v, edges: %v)", reason, v.Nodes, v.Edges)
}
