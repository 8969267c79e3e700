package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mutalyzer/hgvsparse/internal/tree"
)

func TestPrintSequenceCopiesSourceBytes(t *testing.T) {
	t.Parallel()

	src := "ACGT"
	node := tree.New(tree.TagSequence, 0)
	node.Len = len(src)

	var buf bytes.Buffer
	n := Print(&buf, FormatPlain, src, node)

	assert.Equal(t, "ACGT", buf.String())
	assert.Equal(t, len(src), n)
}

func TestPrintSubstitution(t *testing.T) {
	t.Parallel()

	src := "C>T"
	left := tree.New(tree.TagSequence, 0)
	left.Len = 1
	right := tree.New(tree.TagSequence, 2)
	right.Len = 1

	sub := tree.New(tree.TagSubstitution, 0)
	sub.Left = left
	sub.Right = right

	var buf bytes.Buffer
	Print(&buf, FormatPlain, src, sub)
	assert.Equal(t, "C>T", buf.String())
}

func TestPrintErrorChainRendersInnerFirst(t *testing.T) {
	t.Parallel()

	inner := tree.Error(nil, nil, 3, "inner cause")
	outer := tree.Error(nil, inner, 0, "outer context")

	var buf bytes.Buffer
	Print(&buf, FormatPlain, "abc", outer)

	out := buf.String()
	assert.Less(t, indexOf(out, "inner cause"), indexOf(out, "outer context"))
}

func TestPrintErrorIndentsCaretToSourcePosition(t *testing.T) {
	t.Parallel()

	node := tree.Error(nil, nil, 5, "expected: ')'")

	var buf bytes.Buffer
	Print(&buf, FormatPlain, "NM_00(", node)

	lines := strings.Split(buf.String(), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "     ^ error: expected: ')'", lines[0])
}

func TestPrintErrorAtColumnZero(t *testing.T) {
	t.Parallel()

	node := tree.Error(nil, nil, 0, "expected a reference")

	var buf bytes.Buffer
	Print(&buf, FormatPlain, "", node)

	assert.Equal(t, "^ error: expected a reference\n", buf.String())
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func TestPrintAllocationError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	Print(&buf, FormatPlain, "", tree.AllocationError())
	assert.Contains(t, buf.String(), "recursion depth limit exceeded")
}

func TestDetectFormatFallsBackToPlainWhenColorUnwanted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.Equal(t, FormatPlain, DetectFormat(&buf, false))
}

func TestDetectFormatPlainForNonTTYWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.Equal(t, FormatPlain, DetectFormat(&buf, true))
}

func TestVerdict(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	Verdict(&buf, FormatPlain, false)
	assert.Contains(t, buf.String(), "accepted.")

	buf.Reset()
	Verdict(&buf, FormatPlain, true)
	assert.Contains(t, buf.String(), "failed.")
}
