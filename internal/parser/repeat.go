package parser

import (
	"github.com/mutalyzer/hgvsparse/internal/lex"
	"github.com/mutalyzer/hgvsparse/internal/tree"
)

// repeated matches a bracketed repeat count: `[` number-or-unknown-or-
// exact-range `]`.
func (p *Parser) repeated() *tree.Node {
	errPos := p.cur.Pos
	if !lex.MatchChar(&p.cur, '[') {
		return tree.Unmatched(nil)
	}

	node := p.unknownOrNumberOrExactRange()
	if node == nil {
		return tree.Error(nil, nil, p.cur.Pos, "a repeat number")
	}
	if tree.IsError(node) {
		return tree.Error(nil, node, errPos, "while matching a repeat number")
	}

	if !lex.MatchChar(&p.cur, ']') {
		return tree.Error(node, nil, p.cur.Pos, "expected: ']'")
	}

	return node
}

// repeat matches a single repeat element: a sequence or location, followed
// by its repeat count.
func (p *Parser) repeat() *tree.Node {
	if !p.enter() {
		return tree.AllocationError()
	}
	defer p.leave()

	node := tree.New(tree.TagRepeat, p.cur.Pos)

	probe := p.sequenceOrLocation()
	if probe == nil {
		return tree.Unmatched(node)
	}
	if tree.IsError(probe) {
		return tree.Error(nil, probe, node.Pos, "while matching a repeat")
	}
	node.Left = probe

	probe = p.repeated()
	if probe == nil {
		return tree.Error(node, nil, p.cur.Pos, "expected repeat number")
	}
	if tree.IsError(probe) {
		return tree.Error(node, probe, node.Pos, "while matching a repeat")
	}
	node.Right = probe

	return node
}

// compoundRepeat matches a right-linked chain of one or more repeat
// elements; the head node carries the element count in Data.
func (p *Parser) compoundRepeat() *tree.Node {
	if !p.enter() {
		return tree.AllocationError()
	}
	defer p.leave()

	node := tree.New(tree.TagCompoundRepeat, p.cur.Pos)

	probe := p.repeat()
	if probe == nil {
		return tree.Unmatched(node)
	}
	if tree.IsError(probe) {
		return probe
	}
	node.Left = probe
	node.Data = 1

	probe = p.repeat()
	if tree.IsError(probe) {
		return probe
	}

	tail := node
	for probe != nil {
		node.Data++
		tail.Right = tree.New(tree.TagCompoundRepeat, p.cur.Pos)
		tail = tail.Right
		tail.Left = probe

		probe = p.repeat()
		if tree.IsError(probe) {
			return probe
		}
	}
	return node
}

// substitutionOrRepeat disambiguates, after a leading sequence, between a
// substitution (`SEQ > SEQ`) and a repeat (`SEQ [N]`, possibly chained into
// a compound repeat).
func (p *Parser) substitutionOrRepeat() *tree.Node {
	if !p.enter() {
		return tree.AllocationError()
	}
	defer p.leave()

	node := tree.New(tree.TagSubstitution, p.cur.Pos)

	probe := p.sequence()
	if probe == nil {
		return tree.Unmatched(probe)
	}
	node.Left = probe

	if lex.MatchChar(&p.cur, '>') {
		probe = p.sequence()
		if probe == nil {
			return tree.Error(node, tree.Error(nil, nil, p.cur.Pos, "expected a sequence"), node.Pos, "while matching a substitution")
		}
		node.Right = probe
		return node
	}

	probe = p.repeated()
	if probe == nil {
		return tree.Error(node, nil, p.cur.Pos, "expected a substitution or repeat number")
	}
	if tree.IsError(probe) {
		return tree.Error(node, probe, node.Pos, "while matching a repeat")
	}
	node.Right = probe
	node.Tag = tree.TagRepeat

	probe = p.compoundRepeat()
	if tree.IsError(probe) {
		return tree.Error(node, probe, node.Pos, "while matching a repeat")
	}

	if probe != nil {
		head := tree.New(tree.TagCompoundRepeat, p.cur.Pos)
		head.Left = node
		head.Right = probe
		return head
	}

	return node
}
