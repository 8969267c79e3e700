package parser

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/mutalyzer/hgvsparse/internal/tree"
)

// ParseError is the Go-error-shaped view of a failed parse: it still
// carries the full diagnostic chain so a caller that wants the original
// rendering (via internal/printer) can get at it, while satisfying the
// plain error interface for callers that just want a message.
type ParseError struct {
	Input string
	Chain *tree.Node
}

func (e *ParseError) Error() string {
	if tree.IsAllocationError(e.Chain) {
		return fmt.Sprintf("hgvsparse: %s: recursion depth limit exceeded", e.Input)
	}
	return fmt.Sprintf("hgvsparse: %s: does not match the grammar", e.Input)
}

// ParseWithError wraps Parse for library callers that want an idiomatic Go
// error rather than inspecting the returned tree's tag directly. The tree
// is still returned in both cases so the printer can render the accepted
// parse or the diagnostic chain.
func ParseWithError(src string) (*tree.Node, error) {
	node := Parse(src)
	if !tree.IsError(node) {
		return node, nil
	}
	return node, errors.WithStack(&ParseError{Input: src, Chain: node})
}
