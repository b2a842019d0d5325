package kana

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/onamer/internal/phoneme"
)

func TestHiragana(t *testing.T) {
	tests := []struct {
		units []string
		want  string
	}{
		{[]string{"sa", "ku", "ra"}, "さくら"},
		{[]string{"ki", "tte"}, "きって"},
		{[]string{"shi", "n", "kyo"}, "しんきょ"},
		{[]string{"a", "sshi"}, "あっし"},
		{[]string{"ma", "tti"}, "まっち"},
		{[]string{"ppu"}, "っぷ"},
		{nil, ""},
	}
	for _, tt := range tests {
		got, err := Hiragana(tt.units)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestKatakana(t *testing.T) {
	got, err := Katakana([]string{"ki", "tte", "kyo"})
	require.NoError(t, err)
	assert.Equal(t, "キッテキョ", got)
	assert.Equal(t, "abc", ToKatakana("abc"))
}

func TestUnknownUnit(t *testing.T) {
	for _, u := range []string{"xa", "l", "qqa", ""} {
		_, err := Hiragana([]string{"ka", u})
		assert.Error(t, err, u)
	}
}

func TestEveryJapaneseUnitRenders(t *testing.T) {
	units, restricted := phoneme.JapaneseUnits()
	for _, u := range append(units, restricted...) {
		k, err := Hiragana([]string{u})
		require.NoError(t, err, u)
		assert.NotEmpty(t, k)
	}
}

func TestFromWord(t *testing.T) {
	inv := phoneme.Japanese()

	got, err := FromWord("kitte", inv)
	require.NoError(t, err)
	assert.Equal(t, "きって", got)

	_, err = FromWord("kix", inv)
	assert.Error(t, err)
}
