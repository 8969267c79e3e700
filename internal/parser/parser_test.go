package parser

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mutalyzer/hgvsparse/internal/printer"
	"github.com/mutalyzer/hgvsparse/internal/text"
	"github.com/mutalyzer/hgvsparse/internal/tree"
)

func renderPlain(t *testing.T, src string, node *tree.Node) string {
	t.Helper()
	var buf bytes.Buffer
	printer.Print(&buf, printer.FormatPlain, src, node)
	return buf.String()
}

// Concrete end-to-end scenarios, spec §8.
func TestParseAcceptedScenarios(t *testing.T) {
	t.Parallel()

	accepted := []string{
		"NM_004006.2:c.4375C>T",
		"NC_000023.10:g.33038255delC",
		"NC_000023.10:g.[33038255C>T;33038256delA]",
		"LRG_199t1:c.79_80insTT",
		"NM_004006.2:c.(4375_4376)insN",
	}

	for _, src := range accepted {
		src := src
		t.Run(src, func(t *testing.T) {
			t.Parallel()

			node := Parse(src)
			require.False(t, tree.IsError(node), "expected %q to be accepted", src)
			assert.Equal(t, src, renderPlain(t, src, node), "render(parse(s)) must equal s")
		})
	}
}

func TestParseCompoundVariantCount(t *testing.T) {
	t.Parallel()

	node := Parse("NC_000023.10:g.[33038255C>T;33038256delA]")
	require.False(t, tree.IsError(node))

	allele := node.Right
	require.Equal(t, tree.TagCompoundVariant, allele.Tag)
	assert.Equal(t, uint64(2), allele.Data)
}

func TestParseRejectedScenarios(t *testing.T) {
	t.Parallel()

	rejected := []string{
		"NM_004006.2:c.",
		"NM_004006.2:c.1X>A",
		"NM_004006.2:c.4375C>T garbage",
	}

	for _, src := range rejected {
		src := src
		t.Run(src, func(t *testing.T) {
			t.Parallel()

			node := Parse(src)
			require.True(t, tree.IsError(node), "expected %q to be rejected", src)

			span, err := text.NewSpan(0, len(src))
			require.NoError(t, err)
			assert.True(t, tree.ErrorPositionsWithinBounds(node, span))
		})
	}
}

func TestParseTrailingInputBecomesError(t *testing.T) {
	t.Parallel()

	node := Parse("NM_004006.2:c.4375C>T garbage")
	require.True(t, tree.IsError(node))
}

func TestParseIsDeterministic(t *testing.T) {
	t.Parallel()

	src := "NM_004006.2:c.4375C>T"
	a := Parse(src)
	b := Parse(src)

	assert.Equal(t, renderPlain(t, src, a), renderPlain(t, src, b))
}

func TestCursorRollbackOnUnmatched(t *testing.T) {
	t.Parallel()

	p := New("123abc")
	save := p.cur
	node := p.unknown()
	assert.Nil(t, node)
	assert.Equal(t, save, p.cur, "unmatched production must not move the cursor")
}

func TestNumberProduction(t *testing.T) {
	t.Parallel()

	p := New("4375rest")
	node := p.number()
	require.NotNil(t, node)
	assert.Equal(t, tree.TagNumber, node.Tag)
	assert.Equal(t, uint64(4375), node.Data)
	assert.Equal(t, 4, p.cur.Pos)
}

func TestReferenceHandlesNestedParens(t *testing.T) {
	t.Parallel()

	p := New("NC_000001.10(NC_000001.11):c.1A>T")
	node := p.reference()
	require.False(t, tree.IsError(node))
	require.NotNil(t, node.Right)
	assert.Equal(t, tree.TagReference, node.Right.Tag)
}

func TestDepthGuardReturnsAllocationErrorOnDeeplyNestedReference(t *testing.T) {
	t.Parallel()

	var src string
	for i := 0; i < MaxDepth+50; i++ {
		src += "N("
	}
	src += "N"

	p := New(src)
	node := p.reference()
	assert.True(t, tree.IsAllocationError(node))
}
