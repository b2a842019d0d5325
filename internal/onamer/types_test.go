package onamer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeValidate(t *testing.T) {
	tests := []struct {
		name    string
		r       Range
		wantErr bool
	}{
		{"single", Range{Min: 1, Max: 1}, false},
		{"default", Range{Min: 2, Max: 3}, false},
		{"inverted", Range{Min: 5, Max: 2}, true},
		{"zero min", Range{Min: 0, Max: 3}, true},
		{"negative", Range{Min: -1, Max: 3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfig))
		})
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{Min: 2, Max: 4}
	assert.False(t, r.Contains(1))
	assert.True(t, r.Contains(2))
	assert.True(t, r.Contains(4))
	assert.False(t, r.Contains(5))
	assert.Equal(t, "from 2 to 4", r.String())
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want Language
	}{
		{"english", LanguageEnglish},
		{"English", LanguageEnglish},
		{" JAPANESE ", LanguageJapanese},
		{"Generic", LanguageGeneric},
		{"klingon", Language("klingon")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLanguage(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLanguage("   ")
	assert.ErrorIs(t, err, ErrConfig)
}

func TestFlagsAny(t *testing.T) {
	assert.False(t, Flags{}.Any())
	assert.True(t, Flags{HandBalance: true}.Any())
	assert.True(t, Flags{Smoothness: true}.Any())
}
