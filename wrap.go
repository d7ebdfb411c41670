// wrap.go — the context combinator: the only chain-growth operation.
//
// Purpose
//   - Attach one (location, message) node to a failing result as it
//     propagates upward, without losing or inspecting the original cause.
//   - Preserve perfect interop with the Go standard library: the new head
//     unwraps to the previous one.
//
// Semantics (normative):
//   - nil in → nil out: success passes through untouched and no node is
//     constructed, so wrapping is free on the happy path.
//   - Failure in → a fresh node owning the previous error as its cause is
//     returned as the new head. The previous chain is never read, altered,
//     or reordered; earlier provenance cannot be lost.
//   - The combinator itself cannot fail.
//
// Ownership: callers must treat the wrapped error as consumed — the new
// head owns the whole tail. Extending the same tail twice would alias it;
// nothing here (or anywhere) ever mutates a node, so the worst misuse is a
// shared immutable tail, never a data race.
package xgxtrail

import "fmt"

// Wrap attaches a context node with the default placeholder message.
// nil passes through unchanged.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	return wrapAt(err, "", nil, here(1))
}

// WrapMsg attaches a context node with the given message.
// nil passes through unchanged.
func WrapMsg(err error, msg string) error {
	if err == nil {
		return nil
	}
	return wrapAt(err, msg, nil, here(1))
}

// Wrapf attaches a context node with a formatted message.
// nil passes through unchanged.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return wrapAt(err, fmt.Sprintf(format, args...), nil, here(1))
}

// WrapVal attaches a context node whose message is the debug rendering of
// an arbitrary typed payload. The payload is retained for FatalDebug.
// nil passes through unchanged.
func WrapVal(err error, payload any) error {
	if err == nil {
		return nil
	}
	return wrapAt(err, "", payload, here(1))
}

// wrapAt installs err as the cause of a fresh node at loc. err is non-nil
// by the time we get here; foreign errors are adapted in place so the
// renderer always has a message and location per line.
func wrapAt(err error, msg string, payload any, loc Location) Error {
	return newNode(msg, payload, loc, fromAt(err, loc))
}
