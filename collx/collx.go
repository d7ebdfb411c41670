// collx.go — container literal constructors.
//
// The small family of helpers that builds keyed or ordered containers from
// a literal list of entries. No error paths: nil and empty inputs yield
// empty containers, inputs are never mutated, results never alias inputs.
package collx

import (
	"cmp"
	"slices"
)

// Entry is a single key/value pair in a literal list.
type Entry[K comparable, V any] struct {
	Key K
	Val V
}

// E builds an Entry literal; it keeps MapOf call sites compact.
func E[K comparable, V any](k K, v V) Entry[K, V] {
	return Entry[K, V]{Key: k, Val: v}
}

// MapOf builds a map from a literal list of entries. Later duplicates win.
func MapOf[K comparable, V any](entries ...Entry[K, V]) map[K]V {
	m := make(map[K]V, len(entries))
	for _, e := range entries {
		m[e.Key] = e.Val
	}
	return m
}

// SortedEntries returns the entries of m ordered by key — the ordered
// counterpart to MapOf for callers that need deterministic iteration.
func SortedEntries[K cmp.Ordered, V any](m map[K]V) []Entry[K, V] {
	out := make([]Entry[K, V], 0, len(m))
	for k, v := range m {
		out = append(out, Entry[K, V]{Key: k, Val: v})
	}
	slices.SortFunc(out, func(a, b Entry[K, V]) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return out
}

// SliceOf builds a slice from a literal list of values. The result is a
// fresh slice; an empty call yields an empty (non-nil) slice.
func SliceOf[T any](vs ...T) []T {
	out := make([]T, len(vs))
	copy(out, vs)
	return out
}

// Repeat returns a slice of n copies of v. n <= 0 yields an empty slice.
func Repeat[T any](v T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	out := make([]T, n)
	for i := range out {
		out[i] = v
	}
	return out
}
