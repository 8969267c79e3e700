package lex

import "math"

// MaxSafeNumber is the largest value match_number is willing to accumulate
// into before giving up and reporting InvalidNumber instead, mirroring the
// original's MAX_NUMBER = SIZE_MAX/10 - 10 (include/lexer.h). The cursor
// still advances across every digit; only the decoded value is poisoned.
const MaxSafeNumber = math.MaxUint64/10 - 10

// InvalidNumber is the sentinel decoded value for an out-of-range integer
// literal, mirroring the original's INVALID_NUMBER = (size_t)-1. It is not a
// parse error (spec §4.E tie-break 4; §7 "Integer out-of-range"): the digits
// were present and well-formed, just too big to represent.
const InvalidNumber = math.MaxUint64

// Cursor is a position within a single input buffer. It never owns the
// buffer; Src is shared by every Cursor derived from the same parse.
type Cursor struct {
	Src string
	Pos int
}

// NewCursor returns a Cursor positioned at the start of src.
func NewCursor(src string) Cursor {
	return Cursor{Src: src, Pos: 0}
}

// AtEnd reports whether the cursor has reached the end of its input.
func (c Cursor) AtEnd() bool {
	return c.Pos >= len(c.Src)
}

// Byte returns the byte at the cursor, or 0 at end of input (the input's
// implicit null terminator, per spec §6).
func (c Cursor) Byte() byte {
	if c.AtEnd() {
		return 0
	}
	return c.Src[c.Pos]
}

// Rest returns the unconsumed remainder of the input.
func (c Cursor) Rest() string {
	return c.Src[c.Pos:]
}

// MatchChar advances c past ch on an exact match; otherwise c is untouched.
func MatchChar(c *Cursor, ch byte) bool {
	if c.Byte() == ch {
		c.Pos++
		return true
	}
	return false
}

// MatchString advances c past literal atomically: either the whole literal
// matches or nothing is consumed.
func MatchString(c *Cursor, literal string) bool {
	if len(c.Rest()) < len(literal) {
		return false
	}
	if c.Src[c.Pos:c.Pos+len(literal)] != literal {
		return false
	}
	c.Pos += len(literal)
	return true
}

// MatchNumber consumes the maximal run of decimal digits and decodes it.
// Returns ok=false, leaving c untouched, if no digit was present. On
// overflow past MaxSafeNumber, out is set to InvalidNumber but the cursor
// still advances across every digit (the caller sees the number was
// present, just out of range).
func MatchNumber(c *Cursor) (out uint64, ok bool) {
	start := c.Pos
	for IsDecimalDigit(c.Byte()) {
		if out <= MaxSafeNumber {
			out = out*10 + uint64(c.Byte()-'0')
		} else {
			out = InvalidNumber
		}
		c.Pos++
	}
	return out, c.Pos > start
}

// MatchSequence consumes the maximal run of IUPAC-DNA codes. Returns
// ok=false, leaving c untouched, if no code was present.
func MatchSequence(c *Cursor) (length int, ok bool) {
	start := c.Pos
	for IsIUPACDNA(c.Byte()) {
		c.Pos++
	}
	return c.Pos - start, c.Pos > start
}

// MatchIdentifier consumes a letter followed by letters, digits, '.', or
// '_'. Returns ok=false, leaving c untouched, if the first byte is not a
// letter.
func MatchIdentifier(c *Cursor) (length int, ok bool) {
	if !IsAlpha(c.Byte()) {
		return 0, false
	}
	start := c.Pos
	c.Pos++
	for IsAlphanumeric(c.Byte()) || c.Byte() == '.' || c.Byte() == '_' {
		c.Pos++
	}
	return c.Pos - start, true
}

// MatchAlpha consumes exactly one ASCII letter, returning it. Grounded on
// the original's match_alpha (include/lexer.h), used by description's
// optional single-letter coordinate system.
func MatchAlpha(c *Cursor) (ch byte, ok bool) {
	if !IsAlpha(c.Byte()) {
		return 0, false
	}
	ch = c.Byte()
	c.Pos++
	return ch, true
}
