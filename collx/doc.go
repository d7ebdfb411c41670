// Package collx provides literal-style constructors for maps and slices:
// build a keyed container from a list of entries, get its entries back in
// key order, or build and repeat slices. All operations are nil-safe,
// non-mutating, and have no error paths.
package collx
