package synth

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/onamer/internal/onamer"
)

func TestGenerateCount(t *testing.T) {
	words, err := Generate(context.Background(), english(), Request{
		Range: onamer.Range{Min: 2, Max: 3},
		Count: 25,
		Seed:  1,
	})
	require.NoError(t, err)
	assert.Len(t, words, 25)
	for _, w := range words {
		assert.True(t, w.Len() >= 2 && w.Len() <= 3)
	}
}

func TestGenerateZeroCount(t *testing.T) {
	words, err := Generate(context.Background(), japanese(), Request{
		Range: onamer.Range{Min: 1, Max: 1},
	})
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestGenerateRejectsBadRequest(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{"inverted range", Request{Range: onamer.Range{Min: 5, Max: 2}, Count: 3}},
		{"zero min", Request{Range: onamer.Range{Min: 0, Max: 2}, Count: 3}},
		{"negative count", Request{Range: onamer.Range{Min: 1, Max: 2}, Count: -1}},
		{"negative attempts", Request{Range: onamer.Range{Min: 1, Max: 2}, Count: 1, MaxAttempts: -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, err := Generate(context.Background(), english(), tt.req)
			assert.ErrorIs(t, err, onamer.ErrConfig)
			assert.Nil(t, words, "no partial output on configuration errors")
		})
	}
}

func TestGenerateWorkersMatchSequential(t *testing.T) {
	for _, m := range []Model{english(), generic(), japanese()} {
		req := Request{Range: onamer.Range{Min: 1, Max: 4}, Count: 200, Seed: 77}

		seq, err := Generate(context.Background(), m, req)
		require.NoError(t, err)

		req.Workers = 8
		par, err := Generate(context.Background(), m, req)
		require.NoError(t, err)

		assert.Equal(t, Strings(seq), Strings(par), "%s: worker count must not change output", m.Name())
	}
}

func TestGenerateSeedChangesOutput(t *testing.T) {
	a, err := Generate(context.Background(), english(), Request{Range: onamer.Range{Min: 3, Max: 3}, Count: 10, Seed: 1})
	require.NoError(t, err)
	b, err := Generate(context.Background(), english(), Request{Range: onamer.Range{Min: 3, Max: 3}, Count: 10, Seed: 2})
	require.NoError(t, err)
	assert.NotEqual(t, Strings(a), Strings(b))
}

func TestGenerateValidator(t *testing.T) {
	noQ := func(w Word) bool { return !strings.ContainsRune(w.String(), 'q') }
	words, err := Generate(context.Background(), english(), Request{
		Range:     onamer.Range{Min: 1, Max: 2},
		Count:     100,
		Seed:      3,
		Workers:   4,
		Validator: noQ,
	})
	require.NoError(t, err)
	for _, w := range words {
		assert.NotContains(t, w.String(), "q")
	}
}

func TestGenerateExhausted(t *testing.T) {
	_, err := Generate(context.Background(), english(), Request{
		Range:       onamer.Range{Min: 1, Max: 1},
		Count:       3,
		Validator:   func(Word) bool { return false },
		MaxAttempts: 4,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, onamer.ErrExhausted)
	assert.Contains(t, err.Error(), "after 4 attempts")
}

func TestGenerateExhaustedParallel(t *testing.T) {
	_, err := Generate(context.Background(), japanese(), Request{
		Range:     onamer.Range{Min: 1, Max: 1},
		Count:     50,
		Workers:   4,
		Validator: func(Word) bool { return false },
	})
	assert.ErrorIs(t, err, onamer.ErrExhausted)
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		_, err := Generate(ctx, english(), Request{
			Range:   onamer.Range{Min: 1, Max: 2},
			Count:   10,
			Workers: workers,
		})
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestGenerateNeededIsPassThrough(t *testing.T) {
	base := Request{Range: onamer.Range{Min: 2, Max: 2}, Count: 20, Seed: 8}
	a, err := Generate(context.Background(), japanese(), base)
	require.NoError(t, err)

	base.Needed = "xyz"
	b, err := Generate(context.Background(), japanese(), base)
	require.NoError(t, err)

	assert.Equal(t, Strings(a), Strings(b))
}
