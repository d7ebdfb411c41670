// location.go — single-frame call-site capture for xgx-trail.
//
// Design goals:
//   - Accuracy: use runtime.Caller at the construction/wrap site, so a
//     location always names the frame that created the node, never a later
//     caller.
//   - Minimal cost: one frame, no stack walking, no PC buffers.
//   - Immutability: Location is a plain value; copies are independent.
//
// Notes:
//   - The Go runtime reports file and line only; captured locations carry
//     Column == 1. At exists for callers that know an exact column
//     (custom error kinds, code generators, tests).
package xgxtrail

import (
	"fmt"
	"runtime"
)

// Location is an immutable snapshot of a call site, taken at the moment a
// trail node is created.
type Location struct {
	File   string // file path as provided by runtime; printed as-is
	Line   int
	Column int
}

// At constructs an explicit Location. It is the escape hatch for sites the
// runtime cannot capture (custom implementations of Error, generated code).
func At(file string, line, column int) Location {
	return Location{File: file, Line: line, Column: column}
}

// String renders the location as "file:line:column".
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// here captures the caller's call site, skipping 'skip' additional frames.
//
// Skip model: here(0) records the caller of here itself; constructors pass
// 1 so the recorded frame is THEIR caller (the user-visible site).
func here(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		// Capture is best-effort; the runtime gives up only in stripped or
		// exotic builds. Keep the invariant that fields stay positive.
		return Location{File: "unknown", Line: 1, Column: 1}
	}
	return Location{File: file, Line: line, Column: 1}
}
