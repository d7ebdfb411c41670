// format.go — fmt.Formatter implementation for the built-in node.
//
// Behavior:
//
//	%s, %v   → concise: this node's own message (Error()).
//	%+v      → verbose: the full chain report (Render()).
//	%q       → quoted own message.
//
// Rationale:
//   - Keep core free of logging policy; only fmt formatting.
//   - %+v mirrors the diagnostic-stream report byte for byte, so log lines
//     and terminal output agree.
package xgxtrail

import (
	"fmt"
	"io"
)

func (n *node) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, n.Render())
			return
		}
		_, _ = io.WriteString(s, n.msg)
	case 's':
		_, _ = io.WriteString(s, n.msg)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", n.msg)
	default:
		_, _ = io.WriteString(s, n.msg)
	}
}
