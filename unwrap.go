// unwrap.go — stdlib-interop helpers over trail chains.
//
// Scope (tiny core):
//   - Reach the innermost cause of a chain.
//   - Nil-safe sentinel matching.
//
// Design notes:
//   - Trails are strictly linear, so traversal is a plain Unwrap walk with
//     a depth cap against misbehaving foreign wrappers. No multi-error
//     (Unwrap() []error) support: joins are out of scope for trails.
package xgxtrail

import "errors"

// maxUnwrapDepth caps traversal of foreign Unwrap implementations.
const maxUnwrapDepth = 1 << 12

// RootCause follows Unwrap to the innermost error of the chain. For a
// trail this is the originating node (or the foreign error an adapter leaf
// adopted). nil in → nil out.
func RootCause(err error) error {
	depth := 0
	for err != nil && depth < maxUnwrapDepth {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
		depth++
	}
	return err
}

// Has reports whether target appears anywhere in err's unwrap chain.
// It wraps errors.Is with nil-safety.
func Has(err, target error) bool {
	if err == nil || target == nil {
		return false
	}
	return errors.Is(err, target)
}
