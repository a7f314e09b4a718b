package prefilter

import (
	"regexp/syntax"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leading(t *testing.T, sources ...string) *ByteSet {
	t.Helper()

	patterns := make([]*syntax.Regexp, len(sources))
	for i, source := range sources {
		re, err := syntax.Parse(source, syntax.Perl)
		require.NoError(t, err)
		patterns[i] = re
	}

	return Leading(patterns)
}

func TestLeading_Literal(t *testing.T) {
	set := leading(t, `container[0-9_]+`)

	require.NotNil(t, set)
	assert.True(t, set.Contains('c'))
	assert.False(t, set.Contains('o'))
	assert.False(t, set.Contains('0'))
	assert.True(t, set.IsUseful())
}

func TestLeading_CharClass(t *testing.T) {
	set := leading(t, `[0-9]+`)

	require.NotNil(t, set)
	for b := byte('0'); b <= '9'; b++ {
		assert.True(t, set.Contains(b))
	}
	assert.False(t, set.Contains('a'))
	assert.Equal(t, 10, set.Count())
}

func TestLeading_Alternation(t *testing.T) {
	set := leading(t, `abc|d[a-z]f`)

	require.NotNil(t, set)
	assert.True(t, set.Contains('a'))
	assert.True(t, set.Contains('d'))
	assert.False(t, set.Contains('b'))
}

func TestLeading_UnionAcrossPatterns(t *testing.T) {
	set := leading(t, `[0-9]+`, `@[a-z]+`)

	require.NotNil(t, set)
	assert.True(t, set.Contains('5'))
	assert.True(t, set.Contains('@'))
	assert.False(t, set.Contains('z'))
}

func TestLeading_StarHeadIncludesFollower(t *testing.T) {
	// x* can match empty, so y can be the first consumed byte.
	set := leading(t, `x*y`)

	require.NotNil(t, set)
	assert.True(t, set.Contains('x'))
	assert.True(t, set.Contains('y'))
	assert.Equal(t, 2, set.Count())
}

func TestLeading_AnchorContributesNothing(t *testing.T) {
	set := leading(t, `^abc`)

	require.NotNil(t, set)
	assert.True(t, set.Contains('a'))
	assert.Equal(t, 1, set.Count())
}

func TestLeading_AnyCharRejectsOnlyNewline(t *testing.T) {
	set := leading(t, `.+`)

	require.NotNil(t, set)
	assert.True(t, set.Contains('x'))
	assert.False(t, set.Contains('\n'))
	assert.Equal(t, 255, set.Count())
}

func TestLeading_AnyCharWithDotAllNotUseful(t *testing.T) {
	set := leading(t, `(?s).+`)

	require.NotNil(t, set)
	assert.False(t, set.IsUseful())
}

func TestLeading_FoldCase(t *testing.T) {
	set := leading(t, `(?i)info`)

	require.NotNil(t, set)
	assert.True(t, set.Contains('i'))
	assert.True(t, set.Contains('I'))
}

func TestLeading_NonASCIIClassMarksLeadBytes(t *testing.T) {
	set := leading(t, `[a\p{Greek}]`)

	require.NotNil(t, set)
	assert.True(t, set.Contains('a'))
	// Greek letters encode with 0xCD-0xCF lead bytes.
	assert.True(t, set.Contains(0xCE))
}

func TestLeading_CountedRepeatZeroMin(t *testing.T) {
	set := leading(t, `a{0,3}b`)

	require.NotNil(t, set)
	assert.True(t, set.Contains('a'))
	assert.True(t, set.Contains('b'))
}
