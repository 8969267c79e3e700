package tree

import "github.com/mutalyzer/hgvsparse/internal/text"

// ErrorPositionsWithinBounds reports whether every Error node's source
// position in the chain rooted at n falls within span (spec invariant 3,
// testable property 2). The AllocationError sentinel is exempt: its
// position is meaningless (it carries no source pointer in the original).
func ErrorPositionsWithinBounds(n *Node, span text.Span) bool {
	for cur := n; cur != nil && cur.Tag == TagError; cur = cur.Right {
		if !span.Contains(text.ByteOffset(cur.Pos)) && cur.Pos != int(span.End) {
			return false
		}
	}
	return true
}
