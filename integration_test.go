// integration_test.go — cross-cutting scenarios: the canonical provenance
// trail, goroutine transfer, and custom error kinds in a chain.
package xgxtrail

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestIntegration_ProvenanceTrail(t *testing.T) {
	t.Parallel()

	l1 := func() error { return New("The final error message!") }
	l2 := func() error { return Wrap(l1()) }
	l3 := func() error { return Wrap(l2()) }
	l4 := func() error { return WrapMsg(l3(), "A custom message!") }
	l5 := func() error { return WrapMsg(l4(), "ERR_UNKNOWN") }
	l6 := func() error { return WrapVal(l5(), customErr{code: -1}) }

	err := l6()
	require.Error(t, err)

	lines := strings.Split(err.(Error).Render(), "\n")
	require.Len(t, lines, 6)
	require.True(t, strings.HasSuffix(lines[0], ": CustomErr(-1)"),
		"head line must carry the debug-rendered payload")
	require.True(t, strings.HasSuffix(lines[1], ": ERR_UNKNOWN"))
	require.True(t, strings.HasSuffix(lines[2], ": A custom message!"))
	require.True(t, strings.HasSuffix(lines[3], ": "+placeholderMsg))
	require.True(t, strings.HasSuffix(lines[4], ": "+placeholderMsg))
	require.True(t, strings.HasSuffix(lines[5], ": The final error message!"),
		"root line must carry the originating message")
}

func TestIntegration_ChainCrossesGoroutines(t *testing.T) {
	t.Parallel()

	err := WrapMsg(Wrap(New("root")), "handoff").(Error)
	want := err.Render()

	ch := make(chan string)
	for i := 0; i < 4; i++ {
		go func() { ch <- err.Render() }()
	}
	for i := 0; i < 4; i++ {
		require.Empty(t, cmp.Diff(want, <-ch),
			"a chain handed to another goroutine must render identically")
	}
}

func TestIntegration_WrapInAnotherGoroutine(t *testing.T) {
	t.Parallel()

	base := New("root")
	ch := make(chan error)
	go func() { ch <- WrapMsg(base, "worker") }()

	wrapped := (<-ch).(Error)
	require.Same(t, base.(*node), wrapped.Cause().(*node))
	require.True(t, strings.HasSuffix(base.Render(), ": root"),
		"the original chain is untouched by cross-goroutine wrapping")
	require.Nil(t, base.Cause())
}

// statusErr is a custom error kind implementing the full capability, the
// way a caller-defined error type would.
type statusErr struct {
	status int
	loc    Location
}

func (s statusErr) Error() string      { return fmt.Sprintf("status %d", s.status) }
func (s statusErr) Message() string    { return s.Error() }
func (s statusErr) Location() Location { return s.loc }
func (s statusErr) Cause() Error       { return nil }
func (s statusErr) Unwrap() error      { return nil }
func (s statusErr) Render() string     { return renderChain(s, false) }
func (s statusErr) Print()             { emit(s.Render()) }
func (s statusErr) Fatal()             { fatal(s, false) }
func (s statusErr) FatalDebug()        { fatal(s, true) }

func TestIntegration_CustomErrorKindAsCause(t *testing.T) {
	t.Parallel()

	root := statusErr{status: 502, loc: At("gateway.go", 88, 5)}
	err := WrapMsg(root, "upstream call failed").(Error)

	require.Equal(t, statusErr{status: 502, loc: At("gateway.go", 88, 5)}, err.Cause(),
		"a custom Error kind is attached as-is, never re-adapted")

	lines := strings.Split(err.Render(), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasSuffix(lines[0], ": upstream call failed"))
	require.Equal(t, "gateway.go:88:5: status 502", lines[1],
		"the custom kind's own location and message form its line")
}
