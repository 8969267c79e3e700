package parser

import (
	"github.com/mutalyzer/hgvsparse/internal/lex"
	"github.com/mutalyzer/hgvsparse/internal/tree"
)

// description matches `reference` `:` (letter `.`)? `allele`, the root
// production of the whole grammar.
func (p *Parser) description() *tree.Node {
	if !p.enter() {
		return tree.AllocationError()
	}
	defer p.leave()

	node := tree.New(tree.TagDescription, p.cur.Pos)

	probe := p.reference()
	if probe == nil {
		return tree.Error(node, nil, p.cur.Pos, "expected a reference")
	}
	if tree.IsError(probe) {
		return tree.Error(node, probe, node.Pos, "while matching a description")
	}
	node.Left = probe

	if !lex.MatchChar(&p.cur, ':') {
		return tree.Error(node, tree.Error(nil, nil, p.cur.Pos, "expected: ':'"), node.Pos, "while matching a description")
	}

	if ch, ok := lex.MatchAlpha(&p.cur); ok {
		node.Data = uint64(ch)
		if !lex.MatchChar(&p.cur, '.') {
			return tree.Error(node, nil, p.cur.Pos, "expected a coordinate system")
		}
	}

	probe = p.allele()
	if probe == nil {
		return tree.Error(node, nil, p.cur.Pos, "expected an allele")
	}
	if tree.IsError(probe) {
		return tree.Error(node, probe, node.Pos, "while matching a description")
	}
	node.Right = probe

	return node
}

// variant matches a location, optionally followed by a structural
// operation. The alternatives are tried in the written order (spec §4.E
// tie-break 1); a location with no recognized body becomes an empty Slice.
func (p *Parser) variant() *tree.Node {
	if !p.enter() {
		return tree.AllocationError()
	}
	defer p.leave()

	node := tree.New(tree.TagVariant, p.cur.Pos)

	probe := p.location()
	if probe == nil {
		return tree.Error(node, tree.Error(nil, nil, p.cur.Pos, "expected a location"), node.Pos, "while matching a variant")
	}
	if tree.IsError(probe) {
		return tree.Error(node, probe, node.Pos, "while matching a variant")
	}
	node.Left = probe

	if probe = p.substitutionOrRepeat(); tree.IsError(probe) {
		return tree.Error(node, probe, node.Pos, "while matching a variant")
	} else if probe != nil {
		node.Right = probe
		return node
	}

	if probe = p.substitution(); tree.IsError(probe) {
		return tree.Error(node, probe, node.Pos, "while matching a variant")
	} else if probe != nil {
		node.Right = probe
		return node
	}

	if probe = p.deletionOrDeletionInsertion(); tree.IsError(probe) {
		return tree.Error(node, probe, node.Pos, "while matching a variant")
	} else if probe != nil {
		node.Right = probe
		return node
	}

	if probe = p.insertion(); tree.IsError(probe) {
		return tree.Error(node, probe, node.Pos, "while matching a variant")
	} else if probe != nil {
		node.Right = probe
		return node
	}

	if probe = p.duplication(); tree.IsError(probe) {
		return tree.Error(node, probe, node.Pos, "while matching a variant")
	} else if probe != nil {
		node.Right = probe
		return node
	}

	if probe = p.inversion(); tree.IsError(probe) {
		return tree.Error(node, probe, node.Pos, "while matching a variant")
	} else if probe != nil {
		node.Right = probe
		return node
	}

	if probe = p.conversion(); tree.IsError(probe) {
		return tree.Error(node, probe, node.Pos, "while matching a variant")
	} else if probe != nil {
		node.Right = probe
		return node
	}

	if probe = p.equal(); tree.IsError(probe) {
		return tree.Error(node, probe, node.Pos, "while matching a variant")
	} else if probe != nil {
		node.Right = probe
		return node
	}

	if probe = p.repeated(); tree.IsError(probe) {
		return tree.Error(node, probe, node.Pos, "while matching a variant")
	} else if probe != nil {
		node.Tag = tree.TagRepeat
		node.Right = probe

		probe = p.compoundRepeat()
		if tree.IsError(probe) {
			return tree.Error(node, probe, node.Pos, "while matching a variant")
		}
		if probe != nil {
			head := tree.New(tree.TagCompoundRepeat, p.cur.Pos)
			node.Pos = p.cur.Pos
			head.Left = node
			head.Right = probe
			return head
		}
		return node
	}

	node.Right = tree.New(tree.TagSlice, node.Pos)

	return node
}

// allele matches a compound (bracketed, semicolon-joined) or singleton
// variant.
func (p *Parser) allele() *tree.Node {
	if lex.MatchChar(&p.cur, '[') {
		if !p.enter() {
			return tree.AllocationError()
		}
		defer p.leave()

		start := p.cur.Pos - 1
		node := tree.New(tree.TagCompoundVariant, start)

		probe := p.variant()
		if tree.IsError(probe) {
			return tree.Error(node, probe, node.Pos, "while matching an allele")
		}
		node.Left = probe
		node.Data = 1

		tail := node
		for lex.MatchChar(&p.cur, ';') {
			node.Data++
			tail.Right = tree.New(tree.TagCompoundVariant, p.cur.Pos)
			tail = tail.Right

			probe = p.variant()
			if tree.IsError(probe) {
				return tree.Error(node, probe, node.Pos, "while matching an allele")
			}
			tail.Left = probe
		}

		if !lex.MatchChar(&p.cur, ']') {
			return tree.Error(node, tree.Error(nil, nil, p.cur.Pos, "expected: ']'"), node.Pos, "while matching an allele")
		}

		return node
	}

	return p.variant()
}
