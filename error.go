// Package xgxtrail defines the provenance-trail error model used across
// xgx projects. It focuses on cheap, precise call-site context, while
// remaining perfectly interoperable with the Go standard library.
//
// Design tenets:
//   - Interop-first: play nicely with errors.Is/As via Unwrap chains.
//   - Minimal surface: no logging/HTTP/JSON in core.
//   - Immutable chains: wrapping produces a new head; nodes never change.
//   - Single-frame capture: a trail records call sites, never full stacks.
//
// Implementations SHOULD:
//   - Keep values immutable after construction (safe to share across
//     goroutines without synchronization).
//   - Implement Unwrap() error so stdlib traversal (errors.Is/As) observes
//     the full causal chain.
package xgxtrail

// Error is the polymorphic capability every trail error implements.
//
// A trail is a strictly linear, singly-linked, immutable chain of nodes:
// each node carries its own message, the call site it was created at, and
// exclusive ownership of its cause. Chains grow only by prepending a new
// head via the Wrap* combinators; existing nodes are never mutated or
// reordered, which makes any Error value safe to hand to another goroutine
// for rendering or further wrapping.
//
// Custom error kinds may implement this interface and be attached as a
// cause through the same combinators, as long as they expose a message and
// a location for the renderer to print.
type Error interface {
	// error provides this node's OWN message only, never the chain.
	// The full report belongs to Render.
	error

	// Message returns this node's own message, identical to Error().
	Message() string

	// Location returns the call site captured when this node was created.
	Location() Location

	// Cause returns a read-only view of the previous node, or nil at the
	// root of the chain.
	Cause() Error

	// Unwrap exposes the causal parent to stdlib traversal. For the
	// built-in node it returns the cause, or the adapted foreign error at
	// an adapter leaf, or nil at a true root.
	Unwrap() error

	// Render produces the deterministic multi-line report for the whole
	// chain: one node per line, outermost context first down to the root
	// cause. Rendering is pure and idempotent.
	Render() string

	// Print writes the report to the diagnostic stream. Non-fatal.
	Print()

	// Fatal writes the report to the diagnostic stream, then aborts via
	// panic. It never returns.
	Fatal()

	// FatalDebug is Fatal with the debug render mode: nodes constructed
	// from a typed payload re-render it in Go syntax (%#v). Behaviorally
	// identical to Fatal when no node carries a payload.
	FatalDebug()
}
