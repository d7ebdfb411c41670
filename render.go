// render.go — deterministic chain reports for xgx-trail.
//
// Behavior:
//
//	one node per line, outermost (most recently attached) context first,
//	down to the original root cause. Each line is self-contained:
//
//	    file.go:42:1: query failed
//	    file.go:17:1: ...
//	    store.go:9:1: The final error message!
//
// Rationale:
//   - Rendering is pure and total: it never mutates the chain and always
//     succeeds, even for a single-node chain, so repeated renders are
//     byte-identical.
//   - The debug mode exists only for the FatalDebug exit path; it changes
//     how payload-carrying nodes print their value (%#v), never the order
//     or the line rule.
package xgxtrail

import (
	"fmt"
	"strings"
)

// maxRenderDepth bounds the walk against a misbehaving custom Cause
// implementation. Built-in chains are linear by construction and never get
// near it.
const maxRenderDepth = 1 << 10

// Render produces the full multi-line report for the chain headed by n.
func (n *node) Render() string {
	return renderChain(n, false)
}

// renderChain walks head → root, one line per node, joined by '\n' with no
// trailing newline. N wraps over an origin yield exactly N+1 lines.
func renderChain(head Error, debug bool) string {
	var b strings.Builder
	depth := 0
	for e := head; e != nil && depth < maxRenderDepth; e = e.Cause() {
		if depth > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Location().String())
		b.WriteString(": ")
		b.WriteString(nodeText(e, debug))
		depth++
	}
	return b.String()
}

// nodeText returns the message to print for one node. In debug mode a
// built-in node that retained a typed payload re-renders it in Go syntax;
// everything else prints its ordinary message.
func nodeText(e Error, debug bool) string {
	if debug {
		if n, ok := e.(*node); ok && n.payload != nil {
			return fmt.Sprintf("%#v", n.payload)
		}
	}
	return e.Message()
}
