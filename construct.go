// construct.go — the concrete trail node & originating constructors.
//
// Scope (tiny core):
//   - Provide the single built-in chain node as a concrete type.
//   - Implement the xgxtrail.Error capability with immutable semantics.
//   - Offer the originating constructors (New / Newf / NewVal) and the
//     foreign-error adapter (From).
//   - Keep policy out (no logging/HTTP/JSON here).
//
// Interop:
//   - errors.Is/As work via Unwrap chains; an adapter leaf unwraps to the
//     foreign error it adopted so stdlib sentinels stay reachable.
//
// Notes:
//   - Nodes are immutable after construction: chains grow only by
//     prepending a new head in wrap.go, never by editing a node.
//   - Location capture uses here() from location.go (one frame, no stacks).
package xgxtrail

import "fmt"

// placeholderMsg is the default message for nodes created without one.
const placeholderMsg = "..."

// node is one link in a trail: a rendered message, the call site it was
// created at, and exclusive ownership of its cause.
//
// Exactly one of cause/origin may be set. cause links to the previous trail
// node; origin holds a foreign (non-Error) value adopted by From, so the
// adapter leaf still unwraps to it. A true root has neither.
type node struct {
	msg     string
	payload any // original typed value, nil unless built by NewVal/WrapVal
	loc     Location
	cause   Error
	origin  error
}

// compile-time guarantee that *node implements the capability
var _ Error = (*node)(nil)

// newNode builds a node, applying the message rules shared by every
// constructor: a payload is debug-rendered into the message, and an empty
// message becomes the placeholder.
func newNode(msg string, payload any, loc Location, cause Error) *node {
	if payload != nil {
		msg = fmt.Sprintf("%+v", payload)
	}
	if msg == "" {
		msg = placeholderMsg
	}
	return &node{msg: msg, payload: payload, loc: loc, cause: cause}
}

// ------ capability accessors

func (n *node) Error() string      { return n.msg }
func (n *node) Message() string    { return n.msg }
func (n *node) Location() Location { return n.loc }
func (n *node) Cause() Error       { return n.cause }

// Unwrap returns the causal parent: the previous trail node, or the foreign
// error this leaf adapted, or nil at a true root.
func (n *node) Unwrap() error {
	if n.cause != nil {
		return n.cause
	}
	if n.origin != nil {
		return n.origin
	}
	return nil
}

// ------ originating constructors (chains of length 1)

// New creates an originating error with the given message and the caller's
// call site. An empty message becomes the default placeholder.
func New(msg string) Error {
	return newNode(msg, nil, here(1), nil)
}

// Newf creates an originating error with a formatted message.
func Newf(format string, args ...any) Error {
	return newNode(fmt.Sprintf(format, args...), nil, here(1), nil)
}

// NewVal creates an originating error from an arbitrary typed payload. The
// message is the payload's debug rendering; the payload itself is retained
// so FatalDebug can re-render it in Go syntax.
func NewVal(payload any) Error {
	return newNode("", payload, here(1), nil)
}

// ------ foreign-error adapter

// From converts any error into a trail Error without adding context.
//   - nil → nil
//   - Error → returned as-is
//   - other error → an adapter leaf carrying its message; the leaf unwraps
//     to the original so errors.Is/As still reach it
func From(err error) Error {
	if err == nil {
		return nil
	}
	if te, ok := err.(Error); ok {
		return te
	}
	return &node{msg: err.Error(), loc: here(1), origin: err}
}

// fromAt is From with an explicit location, used by the combinators so an
// adapter leaf reports the wrap site rather than an internal frame.
func fromAt(err error, loc Location) Error {
	if te, ok := err.(Error); ok {
		return te
	}
	return &node{msg: err.Error(), loc: loc, origin: err}
}
