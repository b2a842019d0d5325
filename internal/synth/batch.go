package synth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/f3rmion/onamer/internal/onamer"
	"github.com/f3rmion/onamer/internal/rng"
)

// DefaultMaxAttempts bounds how often a rejected word is redrawn.
const DefaultMaxAttempts = 32

// Validator rejects candidate words. It must be safe for concurrent use
// when a request runs more than one worker.
type Validator func(Word) bool

// Request describes one batch of words.
type Request struct {
	Range onamer.Range
	Count int
	// Seed fixes the batch. Word i, attempt k always uses rng.Derive(Seed, i, k).
	Seed    uint64
	Workers int
	// Needed is the "needed characters" hint. It is accepted and logged but
	// does not influence generation.
	Needed string
	// Validator, when set, redraws rejected words up to MaxAttempts times.
	Validator   Validator
	MaxAttempts int
	Logger      *slog.Logger
}

// Validate checks the request before any word is drawn.
func (r Request) Validate() error {
	if err := r.Range.Validate(); err != nil {
		return err
	}
	if r.Count < 0 {
		return onamer.ConfigErrorf("word count must not be negative, got %d", r.Count)
	}
	if r.MaxAttempts < 0 {
		return onamer.ConfigErrorf("max attempts must not be negative, got %d", r.MaxAttempts)
	}
	return nil
}

// Generate produces req.Count words from m in index order. Output depends only
// on the model and the request, not on the number of workers.
func Generate(ctx context.Context, m Model, req Request) ([]Word, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	log := req.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if req.Needed != "" {
		log.Debug("needed characters hint is accepted but not enforced", "needed", req.Needed)
	}
	if req.MaxAttempts == 0 {
		req.MaxAttempts = DefaultMaxAttempts
	}

	words := make([]Word, req.Count)
	if req.Count == 0 {
		return words, nil
	}

	log.Debug("generating words",
		"model", m.Name(),
		"count", req.Count,
		"range", req.Range.String(),
		"workers", req.Workers,
		"seed", req.Seed,
	)

	if req.Workers <= 1 {
		for i := range words {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			w, err := generateOne(m, req, i)
			if err != nil {
				return nil, err
			}
			words[i] = w
		}
		return words, nil
	}

	p := newPool(req.Workers)
	pctx := p.start(ctx)
	for i := range words {
		i := i
		ok := p.submit(pctx, func(context.Context) error {
			w, err := generateOne(m, req, i)
			if err != nil {
				return err
			}
			words[i] = w
			return nil
		})
		if !ok {
			break
		}
	}
	if err := p.wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func generateOne(m Model, req Request, i int) (Word, error) {
	for k := 0; k < req.MaxAttempts; k++ {
		w, err := m.Word(rng.Derive(req.Seed, i, k), req.Range)
		if err != nil {
			return Word{}, err
		}
		if req.Validator == nil || req.Validator(w) {
			return w, nil
		}
	}
	return Word{}, fmt.Errorf("word %d: %w after %d attempts", i, onamer.ErrExhausted, req.MaxAttempts)
}

// Strings flattens words into their concatenated form.
func Strings(words []Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.String()
	}
	return out
}
