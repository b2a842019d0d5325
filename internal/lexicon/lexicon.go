// Package lexicon checks generated kana against the IPA dictionary so that
// existing Japanese words can be filtered out of a batch.
package lexicon

import (
	"strings"
	"sync"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/f3rmion/onamer/internal/kana"
	"github.com/f3rmion/onamer/internal/synth"
)

// Checker wraps a kagome tokenizer.
type Checker struct {
	mu sync.Mutex
	t  *tokenizer.Tokenizer
}

// New loads the IPA dictionary. Loading takes a noticeable moment, so
// callers create one Checker and share it.
func New() (*Checker, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Checker{t: t}, nil
}

// Known reports whether text is a single dictionary entry: it tokenizes to
// exactly one KNOWN token covering the whole input.
func (c *Checker) Known(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	c.mu.Lock()
	tokens := c.t.Tokenize(text)
	c.mu.Unlock()

	if len(tokens) != 1 {
		return false
	}
	tok := tokens[0]
	return tok.Class == tokenizer.KNOWN && tok.Surface == text
}

// Reading returns the katakana reading the dictionary gives for a known
// text, or "" when there is none.
func (c *Checker) Reading(text string) string {
	if !c.Known(text) {
		return ""
	}
	c.mu.Lock()
	tokens := c.t.Tokenize(strings.TrimSpace(text))
	c.mu.Unlock()

	features := tokens[0].Features()
	if len(features) > 7 && features[7] != "*" {
		return features[7]
	}
	return ""
}

// Validator rejects words whose hiragana rendering is a dictionary entry.
// Words that have no kana rendering pass.
func (c *Checker) Validator() synth.Validator {
	return func(w synth.Word) bool {
		h, err := kana.Hiragana(w.Syllables)
		if err != nil {
			return true
		}
		return !c.Known(h)
	}
}
