// Package parser implements the HGVS recursive-descent grammar: one method
// per non-terminal, each returning a *tree.Node for a match, nil for
// unmatched, or an Error-tagged chain (possibly the allocation-error
// sentinel) for a failed match. This is a direct translation of
// original_source/src/hgvs_parser.c's Node_Type productions onto
// internal/tree and internal/lex.
package parser

import (
	"github.com/mutalyzer/hgvsparse/internal/lex"
	"github.com/mutalyzer/hgvsparse/internal/tree"
)

// MaxDepth bounds recursive-descent call depth. The original C parser's
// catastrophic failure mode is malloc returning NULL; Go has no equivalent
// caller-visible allocation failure, so the allocation-error sentinel is
// repurposed here to guard against stack exhaustion from pathological input
// (deeply nested parenthesized references, deeply nested inserts). The
// constant is grounded on hucsmn-peg's DefaultCallstackLimit.
const MaxDepth = 500

// Parser holds the single cursor threaded through every production, plus
// the recursion-depth counter backing the allocation-error substitute.
type Parser struct {
	cur   lex.Cursor
	depth int
}

// New returns a Parser positioned at the start of src.
func New(src string) *Parser {
	return &Parser{cur: lex.NewCursor(src)}
}

// enter records one more level of recursive-descent call depth, reporting
// whether it is still within MaxDepth. Pair with a deferred call to leave.
func (p *Parser) enter() bool {
	p.depth++
	return p.depth <= MaxDepth
}

func (p *Parser) leave() {
	p.depth--
}

// Parse drives description over the whole input, then checks for trailing
// input the way HGVS_parse does: a match that doesn't consume the entire
// string is rewritten into a parse error at the first unconsumed byte.
func Parse(src string) *tree.Node {
	p := New(src)
	node := p.description()
	if !p.cur.AtEnd() && !tree.IsError(node) {
		node = tree.Error(node, tree.Error(nil, nil, p.cur.Pos, "unmatched input"), 0, "while matching a description")
	}
	return node
}
