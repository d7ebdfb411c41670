// helpers.go — top-of-chain conveniences: log-and-discard, silent discard,
// and the render-then-abort unwrappers.
//
// These are the designed endpoints of a trail. A caller that reaches the
// top of a fallible path either recovers, logs and continues, or fails
// fast; each choice is one explicit call here, never implicit behavior.
package xgxtrail

// Log renders err — wrapped once at the Log call site, so the decision
// point appears in the report — and writes exactly one full chain report
// to the diagnostic stream. nil is a no-op. It never panics and allocates
// nothing beyond the one node and the render.
func Log(err error) {
	if err == nil {
		return
	}
	emit(renderChain(wrapAt(err, "", nil, here(1)), false))
}

// Discard drops a result without rendering anything. It exists so that
// intentionally swallowing an error reads as a decision at the call site
// rather than an ignored return value. It never writes and never panics.
func Discard(err error) {
	_ = err
}

// Must returns v on success. On failure it wraps err at the Must call
// site, writes the full report to the diagnostic stream, and aborts.
//
//	cfg := xgxtrail.Must(loadConfig(path))
func Must[T any](v T, err error) T {
	if err != nil {
		fatal(wrapAt(err, "", nil, here(1)), false)
	}
	return v
}

// MustDebug is Must with the debug render mode on the abort path. The two
// differ only in how payload-carrying nodes print; with no typed payload
// in the chain they are interchangeable.
func MustDebug[T any](v T, err error) T {
	if err != nil {
		fatal(wrapAt(err, "", nil, here(1)), true)
	}
	return v
}

// MustOK is Must for value-less results.
func MustOK(err error) {
	if err != nil {
		fatal(wrapAt(err, "", nil, here(1)), false)
	}
}
