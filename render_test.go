// render_test.go — report shape: line count, ordering, determinism, and
// the fixed per-line layout.
package xgxtrail

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// lineRE is the fixed report line layout: file:line:column: message.
var lineRE = regexp.MustCompile(`^(.+):(\d+):(\d+): (.+)$`)

func TestRender_NPlusOneLines(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 5; n++ {
		n := n
		t.Run(fmt.Sprintf("wraps=%d", n), func(t *testing.T) {
			t.Parallel()
			err := error(New("root"))
			for i := 0; i < n; i++ {
				err = Wrapf(err, "ctx %d", i)
			}
			lines := strings.Split(err.(Error).Render(), "\n")
			require.Len(t, lines, n+1)
		})
	}
}

func TestRender_OuterToRootOrder(t *testing.T) {
	t.Parallel()

	err := WrapMsg(WrapMsg(New("root"), "middle"), "outer").(Error)
	lines := strings.Split(err.Render(), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasSuffix(lines[0], ": outer"))
	require.True(t, strings.HasSuffix(lines[1], ": middle"))
	require.True(t, strings.HasSuffix(lines[2], ": root"))
}

func TestRender_EveryLineIsSelfContained(t *testing.T) {
	t.Parallel()

	err := WrapVal(WrapMsg(New(""), "middle"), customErr{code: 3}).(Error)
	for _, line := range strings.Split(err.Render(), "\n") {
		m := lineRE.FindStringSubmatch(line)
		require.NotNil(t, m, "line %q must carry location and message", line)
		require.NotEmpty(t, m[1], "file part")
		require.NotEqual(t, "0", m[2], "line part must be positive")
	}
}

func TestRender_DeterministicAndIdempotent(t *testing.T) {
	t.Parallel()

	err := WrapMsg(Wrap(New("root")), "ctx").(Error)
	first := err.Render()
	second := err.Render()
	require.Empty(t, cmp.Diff(first, second), "repeated renders must be byte-identical")

	// Rendering must not mutate the chain: wrapping afterwards and
	// rendering the original must still match.
	_ = WrapMsg(err, "later")
	require.Equal(t, first, err.Render())
}

func TestRender_SingleNodeChain(t *testing.T) {
	t.Parallel()

	r := New("only").Render()
	require.NotContains(t, r, "\n")
	require.True(t, strings.HasSuffix(r, ": only"))
}

func TestRenderChain_DebugModeOnlyChangesPayloadNodes(t *testing.T) {
	t.Parallel()

	head := WrapVal(WrapMsg(New("root"), "ctx"), customErr{code: -1}).(Error)

	plain := strings.Split(renderChain(head, false), "\n")
	debug := strings.Split(renderChain(head, true), "\n")
	require.Len(t, debug, len(plain), "debug mode must not change line count or order")

	require.True(t, strings.HasSuffix(plain[0], ": CustomErr(-1)"))
	require.True(t, strings.HasSuffix(debug[0], ": xgxtrail.customErr{code:-1}"))
	require.Equal(t, plain[1:], debug[1:], "non-payload lines are identical in both modes")
}

func TestRenderChain_DebugModeWithoutPayloadIsEquivalent(t *testing.T) {
	t.Parallel()

	head := WrapMsg(New("root"), "ctx").(Error)
	require.Equal(t, renderChain(head, false), renderChain(head, true))
}
