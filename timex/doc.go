// Package timex provides never-failing clock helpers: a millisecond sleep
// primitive, a seconds-since-epoch reader that returns 0 on a broken host
// clock, and a best-effort local-datetime formatter that yields a fixed
// sentinel for unrepresentable input.
package timex
