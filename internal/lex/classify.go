// Package lex provides the lexical alphabet and non-backtracking cursor
// matchers the HGVS grammar is built from (spec §4.A, §4.B). Every matcher
// here takes a *Cursor, advances it past whatever it consumed on success,
// and leaves it untouched on failure; none of them backtrack internally —
// callers either commit by passing their live cursor through, or peek by
// handing a copy.
//
// Grounded on original_source/include/lexer.h, translated from the C
// char-predicate style into byte predicates (the grammar is ASCII-only, per
// spec §6).
package lex

// IsDecimalDigit reports whether ch is one of '0'..'9'.
func IsDecimalDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// IsIUPACDNA reports whether ch is one of the 15 IUPAC nucleotide codes:
// A C G T R Y S W K M B D H V N.
func IsIUPACDNA(ch byte) bool {
	switch ch {
	case 'A', 'C', 'G', 'T', 'R', 'Y', 'S', 'W', 'K', 'M', 'B', 'D', 'H', 'V', 'N':
		return true
	default:
		return false
	}
}

// IsAlpha reports whether ch is an ASCII letter, either case.
func IsAlpha(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}

// IsAlphanumeric reports whether ch is an ASCII letter or decimal digit.
func IsAlphanumeric(ch byte) bool {
	return IsAlpha(ch) || IsDecimalDigit(ch)
}
