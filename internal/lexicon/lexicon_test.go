package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/onamer/internal/synth"
)

func newChecker(t *testing.T) *Checker {
	t.Helper()
	c, err := New()
	require.NoError(t, err)
	return c
}

func TestKnown(t *testing.T) {
	c := newChecker(t)

	assert.True(t, c.Known("する"))
	assert.True(t, c.Known(" する "), "surrounding space is ignored")
	assert.False(t, c.Known(""))
	assert.False(t, c.Known("ぬぽぺぷ"))
	assert.True(t, c.Known("するする"), "listed as a single adverb")

	const phrase = "すもももももも"
	require.Greater(t, len(c.t.Tokenize(phrase)), 1)
	assert.False(t, c.Known(phrase), "several tokens are not one entry")
}

func TestReading(t *testing.T) {
	c := newChecker(t)
	assert.Equal(t, "スル", c.Reading("する"))
	assert.Empty(t, c.Reading("ぬぽぺぷ"))
}

func TestValidator(t *testing.T) {
	v := newChecker(t).Validator()

	assert.False(t, v(synth.Word{Syllables: []string{"su", "ru"}}))
	assert.True(t, v(synth.Word{Syllables: []string{"nu", "po", "pe", "pu"}}))
	assert.True(t, v(synth.Word{Syllables: []string{"qa"}}), "words without kana pass")
}
