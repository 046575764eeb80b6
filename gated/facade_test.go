// Package gated_test: single-element addition protocol.
package gated_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vachta/constraint"
	"github.com/katalvlaran/vachta/core"
	"github.com/katalvlaran/vachta/gated"
)

// TestNew_NilBase verifies façade construction demands a base graph.
func TestNew_NilBase(t *testing.T) {
	_, err := gated.New(nil, nil)
	assert.ErrorIs(t, err, gated.ErrNilGraph)
}

// TestNew_NilFactoryMeansUnconstrained verifies the default constraint
// admits everything.
func TestNew_NilFactoryMeansUnconstrained(t *testing.T) {
	g, err := gated.New(lineCore(t), nil)
	require.NoError(t, err)

	ng, err := g.TryAdd(gated.N("4"))
	require.NoError(t, err)
	assert.True(t, ng.ContainsNode("4"))
}

// TestTryAdd_CompleteAccepts verifies the Complete verdict: rebuild and
// accept with no post-check, original untouched.
func TestTryAdd_CompleteAccepts(t *testing.T) {
	log := &callLog{}
	g := lineGraph(t, recording(log, constraint.Completed(), nil))

	ng, err := g.TryAdd(gated.N("4"))
	require.NoError(t, err)
	assert.True(t, ng.ContainsNode("4"))
	assert.False(t, g.ContainsNode("4")) // original value unchanged
	assert.Equal(t, 1, log.preAdd)
	assert.Equal(t, 0, log.postAdd)
}

// TestTryAdd_ExistingElementIsNoOp verifies idempotence: adding a present
// element returns the receiver with zero constraint evaluations.
func TestTryAdd_ExistingElementIsNoOp(t *testing.T) {
	log := &callLog{}
	g := lineGraph(t, recording(log, constraint.Completed(), nil))

	ng, err := g.TryAdd(gated.N("1"))
	require.NoError(t, err)
	assert.Same(t, g, ng)

	ng, err = g.TryAdd(gated.E(edge("2", "1"))) // same identity, flipped
	require.NoError(t, err)
	assert.Same(t, g, ng)

	assert.Equal(t, 0, log.total())
}

// TestTryAdd_AbortRejects verifies the Abort verdict: no rebuild, refusal
// hook fired with the unchanged graph.
func TestTryAdd_AbortRejects(t *testing.T) {
	log := &callLog{}
	v := constraint.NewViolation("frozen", nil, nil)
	g := lineGraph(t, recording(log, constraint.Aborted(v), nil))

	ng, err := g.TryAdd(gated.N("4"))
	assert.Same(t, g, ng)

	var got *constraint.Violation
	require.ErrorAs(t, err, &got)
	assert.Same(t, v, got)

	assert.Equal(t, 1, log.refusals)
	assert.Same(t, g.Core(), log.lastRefusedGraph) // hook saw the unchanged graph
	assert.Equal(t, []core.Node{"4"}, log.lastRefusedNodes)
}

// TestTryAdd_AbortWithoutViolation verifies the contract: aborting without
// an explanation is a constraint fault, not a domain rejection.
func TestTryAdd_AbortWithoutViolation(t *testing.T) {
	log := &callLog{}
	g := lineGraph(t, recording(log, constraint.Result{FollowUp: constraint.Abort}, nil))

	ng, err := g.TryAdd(gated.N("4"))
	assert.Same(t, g, ng)
	assert.ErrorIs(t, err, gated.ErrMissingViolation)

	var v *constraint.Violation
	assert.False(t, errors.As(err, &v)) // distinguishable from a violation
	assert.Equal(t, 0, log.refusals)    // a fault is not a refusal
}

// TestTryAdd_EdgeAutoInsertsEndpoints verifies missing endpoints join the
// delta atomically: the constraint sees nodes and edge together, and the
// candidate carries both.
func TestTryAdd_EdgeAutoInsertsEndpoints(t *testing.T) {
	log := &callLog{}
	g := lineGraph(t, recording(log, constraint.Completed(), nil))

	ng, err := g.TryAdd(gated.E(edge("4", "5")))
	require.NoError(t, err)
	assert.True(t, ng.ContainsNode("4"))
	assert.True(t, ng.ContainsNode("5"))
	assert.True(t, ng.ContainsEdge(edge("4", "5")))

	assert.Equal(t, 1, log.preAdd) // one combined operation
	assert.ElementsMatch(t, []core.Node{"4", "5"}, log.lastPreNodes)
	assert.Equal(t, []core.Edge{edge("4", "5")}, log.lastPreEdges)
}

// TestTryAdd_PostCheckAccepts verifies the PostCheck verdict on the happy
// path: rebuild, authoritative post-check, accept.
func TestTryAdd_PostCheckAccepts(t *testing.T) {
	log := &callLog{}
	g := lineGraph(t, recording(log, constraint.PostChecked(), nil))

	ng, err := g.TryAdd(gated.N("4"))
	require.NoError(t, err)
	assert.True(t, ng.ContainsNode("4"))
	assert.Equal(t, 1, log.preAdd)
	assert.Equal(t, 1, log.postAdd)
}

// TestTryAdd_PostCheckRejectionRevertsToOriginal verifies a post-check
// veto returns the pre-mutation graph, never the candidate.
func TestTryAdd_PostCheckRejectionRevertsToOriginal(t *testing.T) {
	log := &callLog{}
	veto := constraint.NewViolation("vetoed", nil, nil)
	g := lineGraph(t, recording(log, constraint.PostChecked(), veto))

	ng, err := g.TryAdd(gated.N("4"))
	assert.Same(t, g, ng)
	assert.False(t, ng.ContainsNode("4"))

	var got *constraint.Violation
	require.ErrorAs(t, err, &got)
	assert.Same(t, veto, got)
}

// TestTryAdd_PostCheckHookSeesCandidate verifies the refusal hook receives
// the failed candidate so it can explain the rejection.
func TestTryAdd_PostCheckHookSeesCandidate(t *testing.T) {
	log := &callLog{}
	veto := constraint.NewViolation("vetoed", nil, nil)
	g := lineGraph(t, recording(log, constraint.PostChecked(), veto))

	_, err := g.TryAdd(gated.E(edge("1", "3")))
	require.Error(t, err)

	require.NotNil(t, log.lastRefusedGraph)
	assert.True(t, log.lastRefusedGraph.ContainsEdge(edge("1", "3"))) // the candidate
	assert.False(t, g.ContainsEdge(edge("1", "3")))                   // not the result
}

// TestTryAdd_MaxDegreeExample locks in the reference scenario: graph
// {1,2,3}/{1-2,2-3} under "max degree 1" rejects edge 1-3 at post-check
// because node 1 would reach degree 2.
func TestTryAdd_MaxDegreeExample(t *testing.T) {
	g := lineGraph(t, maxDegree(1))

	ng, err := g.TryAdd(gated.E(edge("1", "3")))
	assert.Same(t, g, ng)
	assert.Equal(t, []core.Node{"1", "2", "3"}, ng.Nodes())
	assert.Equal(t, []core.Edge{edge("1", "2"), edge("2", "3")}, ng.Edges())

	var v *constraint.Violation
	require.ErrorAs(t, err, &v)
	assert.Equal(t, []core.Edge{edge("1", "3")}, v.Edges)
}

// TestAdd_NonFailingAbsorbsRejection verifies the non-failing API returns
// the unchanged graph instead of an error.
func TestAdd_NonFailingAbsorbsRejection(t *testing.T) {
	v := constraint.NewViolation("frozen", nil, nil)
	g := lineGraph(t, recording(&callLog{}, constraint.Aborted(v), nil))

	assert.Same(t, g, g.Add(gated.N("4")))

	ok := lineGraph(t, nil)
	assert.True(t, ok.Add(gated.N("4")).ContainsNode("4"))
}

// TestFacade_Accessors covers the read-only delegation surface.
func TestFacade_Accessors(t *testing.T) {
	g := lineGraph(t, nil)

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.ContainsNode("2"))
	assert.True(t, g.ContainsEdge(edge("3", "2")))
	assert.NotNil(t, g.Core())
	assert.NotNil(t, g.Constraint())
	assert.True(t, g.Equal(lineGraph(t, nil)))
	assert.False(t, g.Equal(nil))
}
