// doc.go — package documentation for xgx-trail
//
// Package xgxtrail provides a tiny, policy-free provenance-trail error
// core: an immutable linked chain of (call site, message) nodes that grows
// as a failure propagates upward, plus the print/terminate endpoints that
// render and optionally abort on that chain. It is designed to be:
//   - Ergonomic at call sites (wrap in one call, call site captured for you)
//   - Interoperable with the stdlib (errors.Is/As via Unwrap)
//   - Cheap (one frame per node; heavyweight stack capture is a non-goal)
//
// # The Chain Model
//
// A fallible operation returns a chain of length 1 — just the originating
// node. Each enclosing caller that wants to add provenance wraps once,
// producing a chain of length N+1 that owns the previous chain:
//
//	func load() error { return xgxtrail.New("The final error message!") }
//
//	func open() error { return xgxtrail.Wrap(load()) }            // "..."
//	func boot() error { return xgxtrail.WrapMsg(open(), "boot") }
//
// At the top, the caller either recovers, renders-and-continues, or
// renders-and-terminates:
//
//	if err := boot(); err != nil {
//	    xgxtrail.Log(err)        // render once, keep going
//	}
//	cfg := xgxtrail.Must(parse(path))  // or: fail fast with full provenance
//
// Chains are strictly linear and immutable after construction: wrapping
// prepends a new head and never inspects, alters, or reorders the tail.
// That makes any Error value safe to move across goroutines; there is no
// interior shared-mutable state and nothing to lock.
//
// # Messages And Typed Payloads
//
// A node's message is either caller-supplied text (New/Wrapf/...), the
// default placeholder "..." when none is given, or the debug rendering of
// an arbitrary typed value (NewVal/WrapVal). Payload-carrying nodes retain
// the original value, which only matters on the FatalDebug exit path: the
// report re-renders payloads in Go syntax (%#v) there. Ordering and the
// one-node-per-line rule are identical in both render modes.
//
// # Rendering
//
// Render produces one line per node, outermost context first down to the
// root cause, each line self-contained:
//
//	main.go:14:1: CustomErr(-1)
//	main.go:13:1: ERR_UNKNOWN
//	main.go:12:1: A custom message!
//	main.go:11:1: ...
//	store.go:42:1: The final error message!
//
// Rendering is pure, total, deterministic and idempotent. The Print / Log
// endpoints write exactly this report to the diagnostic stream (stderr);
// %+v formats a node the same way.
//
// # Termination
//
// Fatal and FatalDebug write the report and then abort via panic — the one
// fatal path in the library, always opt-in. Must/MustDebug/MustOK are the
// unwrap-or-die conveniences over it.
//
// # Non-Goals
//
// No machine stack traces, no structured error codes, no i18n, no
// multi-error joins, and no logging/HTTP/JSON adapters in core.
//
// The collaborator subpackages collx (container literals) and timex
// (sleep / timestamp / datetime helpers) are thin wrappers over standard
// facilities and carry no error paths of their own.
package xgxtrail
