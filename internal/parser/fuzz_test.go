package parser

import (
	"testing"

	"github.com/mutalyzer/hgvsparse/internal/tree"
)

// FuzzParse asserts crash-safety and a deterministic accept/reject verdict
// (a weak form of testable property 5) over arbitrary byte input, the Go analogue of original_source's
// sandbox.c harness.
func FuzzParse(f *testing.F) {
	seeds := []string{
		"NM_004006.2:c.4375C>T",
		"NC_000023.10:g.33038255delC",
		"NC_000023.10:g.[33038255C>T;33038256delA]",
		"LRG_199t1:c.79_80insTT",
		"NM_004006.2:c.(4375_4376)insN",
		"NM_004006.2:c.",
		"NM_004006.2:c.1X>A",
		"",
		"(((((((((((",
		"[[[[[[[[[[[[",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, src string) {
		var node *tree.Node
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("Parse(%q) panicked: %v", src, r)
				}
			}()
			node = Parse(src)
		}()

		again := Parse(src)
		if tree.IsError(node) != tree.IsError(again) {
			t.Fatalf("Parse(%q) is not deterministic in its error/accept verdict", src)
		}
	})
}
