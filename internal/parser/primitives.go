package parser

import (
	"github.com/mutalyzer/hgvsparse/internal/lex"
	"github.com/mutalyzer/hgvsparse/internal/tree"
)

func (p *Parser) unknown() *tree.Node {
	if !p.enter() {
		return tree.AllocationError()
	}
	defer p.leave()

	node := tree.New(tree.TagUnknown, p.cur.Pos)
	if !lex.MatchChar(&p.cur, '?') {
		return tree.Unmatched(node)
	}
	return node
}

func (p *Parser) number() *tree.Node {
	if !p.enter() {
		return tree.AllocationError()
	}
	defer p.leave()

	node := tree.New(tree.TagNumber, p.cur.Pos)
	val, ok := lex.MatchNumber(&p.cur)
	if !ok {
		return tree.Unmatched(node)
	}
	node.Data = val
	return node
}

// unknownOrNumber tries unknown first, then number.
func (p *Parser) unknownOrNumber() *tree.Node {
	node := p.unknown()
	if node == nil {
		node = p.number()
		if node == nil {
			return tree.Unmatched(nil)
		}
	}
	return node
}

func (p *Parser) sequence() *tree.Node {
	if !p.enter() {
		return tree.AllocationError()
	}
	defer p.leave()

	node := tree.New(tree.TagSequence, p.cur.Pos)
	length, ok := lex.MatchSequence(&p.cur)
	if !ok {
		return tree.Unmatched(node)
	}
	node.Len = length
	return node
}

func (p *Parser) identifier() *tree.Node {
	if !p.enter() {
		return tree.AllocationError()
	}
	defer p.leave()

	node := tree.New(tree.TagIdentifier, p.cur.Pos)
	length, ok := lex.MatchIdentifier(&p.cur)
	if !ok {
		return tree.Unmatched(node)
	}
	node.Len = length
	return node
}

// reference matches an identifier, optionally followed by a parenthesized
// nested reference (versioned or aliased reference sequences).
func (p *Parser) reference() *tree.Node {
	if !p.enter() {
		return tree.AllocationError()
	}
	defer p.leave()

	node := tree.New(tree.TagReference, p.cur.Pos)

	probe := p.identifier()
	if probe == nil {
		return tree.Error(node, nil, p.cur.Pos, "expected an identifier")
	}
	if tree.IsError(probe) {
		return tree.Error(node, probe, node.Pos, "while matching an identifier")
	}
	node.Left = probe

	if lex.MatchChar(&p.cur, '(') {
		probe = p.reference()
		if probe == nil {
			return tree.Error(node, nil, p.cur.Pos, "expected a reference")
		}
		if tree.IsError(probe) {
			return tree.Error(node, probe, node.Pos, "while matching a reference")
		}
		node.Right = probe

		if !lex.MatchChar(&p.cur, ')') {
			return tree.Error(node, nil, p.cur.Pos, "expected: ')'")
		}
	}
	return node
}

func (p *Parser) offset() *tree.Node {
	if !p.enter() {
		return tree.AllocationError()
	}
	defer p.leave()

	node := tree.New(tree.TagOffset, p.cur.Pos)

	matched := false
	if lex.MatchChar(&p.cur, '+') {
		matched = true
		node.Data = tree.OffsetPositive
	} else if lex.MatchChar(&p.cur, '-') {
		matched = true
		node.Data = tree.OffsetNegative
	}

	if matched {
		probe := p.unknownOrNumber()
		if probe == nil {
			return tree.Error(node, nil, p.cur.Pos, "expected an offset")
		}
		if tree.IsError(probe) {
			return tree.Error(node, probe, node.Pos, "while matching an offset")
		}
		node.Left = probe
		return node
	}
	return tree.Unmatched(node)
}

func (p *Parser) point() *tree.Node {
	if !p.enter() {
		return tree.AllocationError()
	}
	defer p.leave()

	node := tree.New(tree.TagPoint, p.cur.Pos)

	if lex.MatchChar(&p.cur, '*') {
		node.Data = tree.PointDownstream
	} else if lex.MatchChar(&p.cur, '-') {
		node.Data = tree.PointUpstream
	}

	probe := p.unknownOrNumber()
	if probe == nil {
		return tree.Unmatched(node)
	}
	if tree.IsError(probe) {
		return tree.Error(node, probe, node.Pos, "while matching an exact point")
	}
	node.Left = probe

	probe = p.offset()
	if tree.IsError(probe) {
		return tree.Error(node, probe, node.Pos, "while matching an exact point")
	}
	node.Right = probe

	return node
}

func (p *Parser) uncertainPoint() *tree.Node {
	if !p.enter() {
		return tree.AllocationError()
	}
	defer p.leave()

	node := tree.New(tree.TagUncertainPoint, p.cur.Pos)

	if lex.MatchChar(&p.cur, '(') {
		probe := p.point()
		if probe == nil {
			return tree.Error(node, tree.Error(nil, nil, p.cur.Pos, "expected an exact point (start)"), node.Pos, "while matching an uncertain point")
		}
		if tree.IsError(probe) {
			return tree.Error(node, probe, node.Pos, "while matching an uncertain point")
		}
		node.Left = probe

		if !lex.MatchChar(&p.cur, '_') {
			return tree.Error(node, tree.Error(nil, nil, p.cur.Pos, "expected: '_'"), node.Pos, "while matching an uncertain point")
		}

		probe = p.point()
		if probe == nil {
			return tree.Error(node, tree.Error(nil, nil, p.cur.Pos, "expected an exact point (end)"), node.Pos, "while matching an uncertain point")
		}
		if tree.IsError(probe) {
			return tree.Error(node, probe, node.Pos, "while matching an uncertain point")
		}
		node.Right = probe

		if !lex.MatchChar(&p.cur, ')') {
			return tree.Error(node, tree.Error(nil, nil, p.cur.Pos, "expected: ')'"), node.Pos, "while matching an uncertain point")
		}

		return node
	}
	return tree.Unmatched(node)
}

func (p *Parser) uncertainPointOrPoint() *tree.Node {
	errPos := p.cur.Pos
	node := p.uncertainPoint()
	if tree.IsError(node) {
		return node
	}

	if node == nil {
		node = p.point()
		if node == nil {
			return tree.Unmatched(nil)
		}
		if tree.IsError(node) {
			return tree.Error(nil, node, errPos, "while matching an exact point")
		}
	}
	return node
}

func (p *Parser) location() *tree.Node {
	errPos := p.cur.Pos
	probe := p.uncertainPointOrPoint()
	if probe == nil {
		return tree.Unmatched(nil)
	}
	if tree.IsError(probe) {
		return tree.Error(nil, probe, errPos, "while matching a location")
	}

	if lex.MatchChar(&p.cur, '_') {
		if !p.enter() {
			return tree.AllocationError()
		}
		defer p.leave()

		node := tree.New(tree.TagRange, errPos)
		node.Left = probe

		probe = p.uncertainPointOrPoint()
		if probe == nil {
			return tree.Error(node, tree.Error(nil, nil, p.cur.Pos, "expected a point (exact or uncertain)"), errPos, "while matching a location (range)")
		}
		if tree.IsError(probe) {
			return tree.Error(node, probe, errPos, "while matching a location (range)")
		}
		node.Right = probe

		return node
	}
	return probe
}

func (p *Parser) sequenceOrLocation() *tree.Node {
	errPos := p.cur.Pos
	node := p.sequence()
	if node == nil {
		node = p.location()
		if node == nil {
			return tree.Unmatched(nil)
		}
		if tree.IsError(node) {
			return tree.Error(nil, node, errPos, "while matching a location")
		}
	}
	return node
}

func (p *Parser) unknownOrNumberOrExactRange() *tree.Node {
	errPos := p.cur.Pos
	probe := p.unknownOrNumber()
	if probe == nil {
		return tree.Unmatched(nil)
	}
	if tree.IsError(probe) {
		return tree.Error(nil, probe, errPos, "while matching an unknown, number or exact range")
	}

	if lex.MatchChar(&p.cur, '_') {
		if !p.enter() {
			return tree.AsAllocationError(probe)
		}
		defer p.leave()

		node := tree.New(tree.TagRange, errPos)
		node.Left = probe

		probe = p.unknownOrNumber()
		if probe == nil {
			return tree.Error(node, nil, p.cur.Pos, "expected an unknown or number")
		}
		if tree.IsError(probe) {
			return tree.Error(node, probe, errPos, "while matching an exact range")
		}
		node.Right = probe

		return node
	}
	return probe
}

func (p *Parser) length() *tree.Node {
	if !p.enter() {
		return tree.AllocationError()
	}
	defer p.leave()

	node := tree.New(tree.TagLength, p.cur.Pos)

	if lex.MatchChar(&p.cur, '(') {
		probe := p.unknownOrNumberOrExactRange()
		if probe == nil {
			return tree.Error(node, nil, p.cur.Pos, "expected a length")
		}
		if tree.IsError(probe) {
			return tree.Error(node, probe, node.Pos, "while matching a length")
		}
		node.Left = probe

		if !lex.MatchChar(&p.cur, ')') {
			return tree.Error(node, tree.Error(nil, nil, p.cur.Pos, "expected: ')'"), node.Pos, "while matching a length")
		}
		return node
	}
	return tree.Unmatched(node)
}

func (p *Parser) lengthOrUnknownOrNumber() *tree.Node {
	node := p.length()
	if tree.IsError(node) {
		return node
	}
	if node == nil {
		return p.unknownOrNumber()
	}
	return node
}

func (p *Parser) sequenceOrLength() *tree.Node {
	node := p.sequence()
	if node == nil {
		node = p.lengthOrUnknownOrNumber()
		if node == nil {
			return tree.Unmatched(nil)
		}
	}
	return node
}

func (p *Parser) locationOrLength() *tree.Node {
	errPos := p.cur.Pos
	probe := p.length()
	if tree.IsError(probe) {
		return probe
	}

	if probe == nil {
		probe = p.location()
		if tree.IsError(probe) {
			return tree.Error(nil, probe, errPos, "while matching a location")
		}
	}
	return probe
}

// sequenceOrDescription disambiguates a leading run of IUPAC-DNA codes that
// could be either a bare Sequence or the start of an identifier continuing
// into a full Description (spec §4.E tie-break 3): it hand-walks the
// alphanumeric/'.'/'_' run itself exactly like the original, rather than
// calling identifier(), because the sequence prefix already consumed some
// of the identifier's bytes via match_sequence.
func (p *Parser) sequenceOrDescription() *tree.Node {
	if !p.enter() {
		return tree.AllocationError()
	}
	defer p.leave()

	node := tree.New(tree.TagSequence, p.cur.Pos)

	if !lex.IsAlpha(p.cur.Byte()) {
		return tree.Unmatched(nil)
	}

	seqLen, _ := lex.MatchSequence(&p.cur)
	node.Len = seqLen

	extra := 0
	for lex.IsAlphanumeric(p.cur.Byte()) || p.cur.Byte() == '.' || p.cur.Byte() == '_' {
		p.cur.Pos++
		extra++
	}
	if extra > 0 {
		node.Tag = tree.TagDescription

		node.Left = tree.New(tree.TagReference, node.Pos)
		node.Left.Left = tree.New(tree.TagIdentifier, node.Pos)
		node.Left.Left.Len = seqLen + extra

		if lex.MatchChar(&p.cur, '(') {
			probe := p.reference()
			if probe == nil {
				return tree.Error(node, nil, p.cur.Pos, "expected a reference")
			}
			if tree.IsError(probe) {
				return tree.Error(node, probe, node.Pos, "while matching a description")
			}
			node.Left.Right = probe

			if !lex.MatchChar(&p.cur, ')') {
				return tree.Error(node, nil, p.cur.Pos, "expected: ')'")
			}
		}

		if !lex.MatchChar(&p.cur, ':') {
			return tree.Error(node, nil, p.cur.Pos, "expected: ':'")
		}

		node.Data = 0
		if ch, ok := lex.MatchAlpha(&p.cur); ok {
			node.Data = uint64(ch)
			if !lex.MatchChar(&p.cur, '.') {
				return tree.Error(node, nil, p.cur.Pos, "expected a coordinate system")
			}
		}

		probe := p.allele()
		if probe == nil {
			return tree.Error(node, nil, p.cur.Pos, "expected an allele")
		}
		if tree.IsError(probe) {
			return tree.Error(node, probe, node.Pos, "while matching a description")
		}
		node.Right = probe

		return node
	}

	if seqLen == 0 {
		return tree.Error(node, nil, node.Pos, "expected a sequence or description")
	}

	return node
}
