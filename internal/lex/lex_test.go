package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifiers(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDecimalDigit('5'))
	assert.False(t, IsDecimalDigit('a'))

	for _, ch := range []byte("ACGTRYSWKMBDHVN") {
		assert.Truef(t, IsIUPACDNA(ch), "expected %q to be IUPAC", ch)
	}
	assert.False(t, IsIUPACDNA('X'))
	assert.False(t, IsIUPACDNA('Z'))

	assert.True(t, IsAlpha('q'))
	assert.True(t, IsAlpha('Q'))
	assert.False(t, IsAlpha('5'))

	assert.True(t, IsAlphanumeric('5'))
	assert.True(t, IsAlphanumeric('q'))
	assert.False(t, IsAlphanumeric('_'))
}

func TestMatchCharAdvancesOnlyOnMatch(t *testing.T) {
	t.Parallel()

	c := NewCursor("abc")
	require.True(t, MatchChar(&c, 'a'))
	assert.Equal(t, 1, c.Pos)

	require.False(t, MatchChar(&c, 'z'))
	assert.Equal(t, 1, c.Pos, "cursor must not move on failed match")
}

func TestMatchStringIsAtomic(t *testing.T) {
	t.Parallel()

	c := NewCursor("delins")
	require.True(t, MatchString(&c, "del"))
	assert.Equal(t, 3, c.Pos)

	c2 := NewCursor("delta")
	require.False(t, MatchString(&c2, "delins"))
	assert.Equal(t, 0, c2.Pos, "a partial literal match must not consume any input")
}

func TestMatchNumber(t *testing.T) {
	t.Parallel()

	c := NewCursor("4375C>T")
	val, ok := MatchNumber(&c)
	require.True(t, ok)
	assert.Equal(t, uint64(4375), val)
	assert.Equal(t, 4, c.Pos)

	c2 := NewCursor("no digits")
	_, ok = MatchNumber(&c2)
	assert.False(t, ok)
	assert.Equal(t, 0, c2.Pos)
}

func TestMatchNumberOverflowIsSentinelButStillAdvances(t *testing.T) {
	t.Parallel()

	huge := "999999999999999999999999999999"
	c := NewCursor(huge)
	val, ok := MatchNumber(&c)
	require.True(t, ok)
	assert.Equal(t, InvalidNumber, val)
	assert.Equal(t, len(huge), c.Pos)
}

func TestMatchSequence(t *testing.T) {
	t.Parallel()

	c := NewCursor("ACGTN123")
	length, ok := MatchSequence(&c)
	require.True(t, ok)
	assert.Equal(t, 5, length)
	assert.Equal(t, 5, c.Pos)
}

func TestMatchIdentifierRequiresLeadingLetter(t *testing.T) {
	t.Parallel()

	c := NewCursor("NM_004006.2:c.1A>G")
	length, ok := MatchIdentifier(&c)
	require.True(t, ok)
	assert.Equal(t, len("NM_004006.2"), length)

	c2 := NewCursor("123abc")
	_, ok = MatchIdentifier(&c2)
	assert.False(t, ok)
	assert.Equal(t, 0, c2.Pos)
}

func TestMatchAlpha(t *testing.T) {
	t.Parallel()

	c := NewCursor("c.1A>G")
	ch, ok := MatchAlpha(&c)
	require.True(t, ok)
	assert.Equal(t, byte('c'), ch)
	assert.Equal(t, 1, c.Pos)

	c2 := NewCursor("1A")
	_, ok = MatchAlpha(&c2)
	assert.False(t, ok)
	assert.Equal(t, 0, c2.Pos)
}
