// emit.go — the diagnostic stream and the termination bridge.
//
// All emission in the core funnels through one writer, defaulting to the
// process's standard error channel. A report is framed by a leading blank
// line and a trailing newline; the body between them is exactly what
// Render returns.
//
// The termination bridge (Fatal / FatalDebug) is the single fatal path in
// the library: write the report, then abort via panic — the host's
// unconditional-abort convention. It is opt-in and never invoked by the
// chain or render machinery itself.
package xgxtrail

import (
	"fmt"
	"io"
	"os"
)

// diag is the diagnostic stream. Package tests swap it to capture output;
// production code always writes to stderr.
var diag io.Writer = os.Stderr

// emit writes one framed report to the diagnostic stream. Write errors are
// ignored: diagnostics must never become a second failure.
func emit(report string) {
	_, _ = fmt.Fprintf(diag, "\n%s\n", report)
}

// Print writes the chain report to the diagnostic stream. Non-fatal.
func (n *node) Print() { emit(n.Render()) }

// Fatal writes the chain report, then aborts. It never returns.
func (n *node) Fatal() { fatal(n, false) }

// FatalDebug is Fatal with the debug render mode for typed payloads.
func (n *node) FatalDebug() { fatal(n, true) }

// fatal renders head in the requested mode, emits it, and aborts the
// process by panicking with the chain head. The panic value carries the
// full chain so a deliberate recover still has complete provenance.
func fatal(head Error, debug bool) {
	emit(renderChain(head, debug))
	panic(head)
}
