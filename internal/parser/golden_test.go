package parser

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mutalyzer/hgvsparse/internal/printer"
	"github.com/mutalyzer/hgvsparse/internal/tree"
)

// TestGoldenCorpusRoundTrips walks testdata/golden and asserts
// render(parse(fixture)) == fixture for every fixture, exercising the
// round-trip property (spec §8 testable property 1) against a standing
// corpus rather than only the inline scenarios in parser_test.go.
func TestGoldenCorpusRoundTrips(t *testing.T) {
	t.Parallel()

	entries, err := os.ReadDir("testdata/golden")
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".hgvs" {
			names = append(names, e.Name())
		}
	}
	require.NotEmpty(t, names, "expected golden fixtures under testdata/golden")
	sort.Strings(names)

	for _, name := range names {
		name := name
		t.Run(strings.TrimSuffix(name, ".hgvs"), func(t *testing.T) {
			t.Parallel()

			raw, err := os.ReadFile(filepath.Join("testdata", "golden", name))
			require.NoError(t, err)
			src := strings.TrimRight(string(raw), "\n")

			node := Parse(src)
			require.False(t, tree.IsError(node), "fixture %s: expected %q to be accepted", name, src)

			var buf strings.Builder
			printer.Print(&buf, printer.FormatPlain, src, node)
			require.Equal(t, src, buf.String(), "fixture %s: render(parse(s)) must equal s", name)
		})
	}
}
