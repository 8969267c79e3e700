package parser

import (
	"github.com/mutalyzer/hgvsparse/internal/lex"
	"github.com/mutalyzer/hgvsparse/internal/tree"
)

// insert matches one element of an inserted sequence: a sequence,
// description, location, or explicit length, with an optional repeat count
// and an optional `inv` marker that may appear either before or after the
// repeat count (but is recorded as a single inversion flag regardless of
// which position it was written in).
func (p *Parser) insert() *tree.Node {
	if !p.enter() {
		return tree.AllocationError()
	}
	defer p.leave()

	node := tree.New(tree.TagInsert, p.cur.Pos)

	probe := p.sequenceOrDescription()
	if tree.IsError(probe) {
		return tree.Error(node, probe, node.Pos, "while matching an inserted part")
	}

	if probe == nil {
		probe = p.locationOrLength()
		if probe == nil {
			return tree.Unmatched(node)
		}
		if tree.IsError(probe) {
			return tree.Error(node, probe, node.Pos, "while matching an inserted part")
		}
	}
	node.Left = probe

	if lex.MatchString(&p.cur, "inv") {
		node.Data = tree.InsertInverted
	}

	probe = p.repeated()
	if tree.IsError(probe) {
		return tree.Error(node, probe, node.Pos, "while matching an inserted part")
	}
	node.Right = probe

	if lex.MatchString(&p.cur, "inv") {
		node.Data = tree.InsertInverted
	}

	return node
}

// inserted matches a compound (bracketed, semicolon-joined) or singleton
// insert.
func (p *Parser) inserted() *tree.Node {
	if lex.MatchChar(&p.cur, '[') {
		if !p.enter() {
			return tree.AllocationError()
		}
		defer p.leave()

		start := p.cur.Pos - 1
		node := tree.New(tree.TagCompoundInsert, start)

		probe := p.insert()
		if probe == nil {
			return tree.Error(node, tree.Error(nil, nil, p.cur.Pos, "expected an inserted part"), node.Pos, "while matching a compound insertion")
		}
		if tree.IsError(probe) {
			return tree.Error(node, probe, node.Pos, "while matching a compound insertion")
		}
		node.Left = probe
		node.Data = 1

		tail := node
		for lex.MatchChar(&p.cur, ';') {
			node.Data++
			tail.Right = tree.New(tree.TagCompoundInsert, p.cur.Pos)
			tail = tail.Right

			probe = p.insert()
			if probe == nil {
				return tree.Error(node, tree.Error(nil, nil, p.cur.Pos, "expected an inserted part"), node.Pos, "while matching a compound insertion")
			}
			if tree.IsError(probe) {
				return tree.Error(node, probe, node.Pos, "while matching a compound insertion")
			}
			tail.Left = probe
		}

		if !lex.MatchChar(&p.cur, ']') {
			return tree.Error(node, tree.Error(nil, nil, p.cur.Pos, "expected: ']'"), node.Pos, "while matching a compound insertion")
		}

		return node
	}

	return p.insert()
}

// substitution matches the `>` `inserted` suffix used by equal/duplication
// style bodies that begin with an already-consumed location (not the
// sequence-to-sequence substitution; see substitutionOrRepeat for that).
func (p *Parser) substitution() *tree.Node {
	if !p.enter() {
		return tree.AllocationError()
	}
	defer p.leave()

	node := tree.New(tree.TagSubstitution, p.cur.Pos)

	if lex.MatchChar(&p.cur, '>') {
		probe := p.inserted()
		if probe == nil {
			return tree.Error(node, nil, p.cur.Pos, "expected an inserted part")
		}
		if tree.IsError(probe) {
			return tree.Error(node, probe, node.Pos, "while matching a substitution")
		}
		node.Right = probe
		return node
	}

	return tree.Unmatched(node)
}

func (p *Parser) insertion() *tree.Node {
	if !p.enter() {
		return tree.AllocationError()
	}
	defer p.leave()

	node := tree.New(tree.TagInsertion, p.cur.Pos)

	if lex.MatchString(&p.cur, "ins") {
		probe := p.inserted()
		if probe == nil {
			return tree.Error(node, nil, p.cur.Pos, "expected an inserted part")
		}
		if tree.IsError(probe) {
			return tree.Error(node, probe, node.Pos, "while matching an insertion")
		}
		node.Left = probe
		return node
	}

	p.cur.Pos = node.Pos
	return tree.Unmatched(node)
}

func (p *Parser) deletionOrDeletionInsertion() *tree.Node {
	if !p.enter() {
		return tree.AllocationError()
	}
	defer p.leave()

	node := tree.New(tree.TagDeletion, p.cur.Pos)

	if lex.MatchString(&p.cur, "del") {
		var probe *tree.Node
		if p.cur.Byte() == '[' {
			probe = p.inserted()
		} else {
			probe = p.sequenceOrLength()
		}
		if tree.IsError(probe) {
			return tree.Error(node, probe, node.Pos, "while matching a deletion")
		}
		node.Left = probe

		if lex.MatchString(&p.cur, "ins") {
			node.Tag = tree.TagDeletionInsertion

			probe = p.inserted()
			if probe == nil {
				return tree.Error(node, nil, p.cur.Pos, "expected an inserted part")
			}
			if tree.IsError(probe) {
				return tree.Error(node, probe, node.Pos, "while matching a deletion/insertion")
			}
			node.Right = probe
		}

		return node
	}

	p.cur.Pos = node.Pos
	return tree.Unmatched(node)
}

func (p *Parser) duplication() *tree.Node {
	if !p.enter() {
		return tree.AllocationError()
	}
	defer p.leave()

	node := tree.New(tree.TagDuplication, p.cur.Pos)

	if lex.MatchString(&p.cur, "dup") {
		probe := p.inserted()
		if tree.IsError(probe) {
			return tree.Error(node, probe, node.Pos, "while matching an duplication")
		}
		node.Left = probe
		return node
	}

	p.cur.Pos = node.Pos
	return tree.Unmatched(node)
}

func (p *Parser) conversion() *tree.Node {
	if !p.enter() {
		return tree.AllocationError()
	}
	defer p.leave()

	node := tree.New(tree.TagConversion, p.cur.Pos)

	if lex.MatchString(&p.cur, "con") {
		probe := p.inserted()
		if probe == nil {
			return tree.Error(node, nil, p.cur.Pos, "expected an inserted part")
		}
		if tree.IsError(probe) {
			return tree.Error(node, probe, node.Pos, "while matching an conversion")
		}
		node.Left = probe
		return node
	}

	p.cur.Pos = node.Pos
	return tree.Unmatched(node)
}

func (p *Parser) inversion() *tree.Node {
	if !p.enter() {
		return tree.AllocationError()
	}
	defer p.leave()

	node := tree.New(tree.TagInversion, p.cur.Pos)

	if lex.MatchString(&p.cur, "inv") {
		probe := p.inserted()
		if tree.IsError(probe) {
			return tree.Error(node, probe, node.Pos, "while matching an inversion")
		}
		node.Left = probe
		return node
	}

	p.cur.Pos = node.Pos
	return tree.Unmatched(node)
}

func (p *Parser) equal() *tree.Node {
	if !p.enter() {
		return tree.AllocationError()
	}
	defer p.leave()

	node := tree.New(tree.TagEqual, p.cur.Pos)

	if lex.MatchChar(&p.cur, '=') {
		probe := p.inserted()
		if tree.IsError(probe) {
			return tree.Error(node, probe, node.Pos, "while matching an equal")
		}
		node.Left = probe
		return node
	}

	p.cur.Pos = node.Pos
	return tree.Unmatched(node)
}
