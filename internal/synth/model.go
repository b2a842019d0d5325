// Package synth assembles syllables and words from phoneme inventories.
//
// Two models implement the same contract: LetterModel fills consonant and
// vowel slots of a CV, VC or CVC pattern, UnitModel draws whole mora units.
// Every draw goes through an explicit rng.Source, so a seeded source replays
// the same words.
package synth

import (
	"strings"

	"github.com/f3rmion/onamer/internal/onamer"
	"github.com/f3rmion/onamer/internal/phoneme"
	"github.com/f3rmion/onamer/internal/rng"
)

// Model synthesizes syllables and words for one language.
type Model interface {
	// Name is the selector the model is registered under.
	Name() onamer.Language
	// Syllable returns one syllable. start marks the first syllable of a word.
	Syllable(src rng.Source, start bool) string
	// Word draws a syllable count from r and concatenates that many syllables.
	Word(src rng.Source, r onamer.Range) (Word, error)
}

// Word is a generated word kept as its syllables.
type Word struct {
	Syllables []string `json:"syllables" yaml:"syllables"`
}

// String concatenates the syllables with no separator.
func (w Word) String() string {
	return strings.Join(w.Syllables, "")
}

// Len is the number of syllables.
func (w Word) Len() int {
	return len(w.Syllables)
}

// LetterModel builds syllables from consonant and vowel slots.
type LetterModel struct {
	name       onamer.Language
	vowels     []rune
	consonants []rune
	clusters   []string
}

// NewLetterModel wraps a letter inventory.
func NewLetterModel(name onamer.Language, inv *phoneme.Letters) *LetterModel {
	return &LetterModel{
		name:       name,
		vowels:     inv.Vowels(),
		consonants: inv.Consonants(),
		clusters:   inv.Clusters(),
	}
}

func (m *LetterModel) Name() onamer.Language { return m.name }

// Syllable picks CV, VC or CVC uniformly. In a cluster-aware model the
// leading consonant of a start syllable is a cluster token; trailing
// consonants are always single letters.
func (m *LetterModel) Syllable(src rng.Source, start bool) string {
	var b strings.Builder
	switch rng.Choose(src, phoneme.Patterns) {
	case phoneme.CV:
		m.lead(&b, src, start)
		b.WriteRune(rng.Choose(src, m.vowels))
	case phoneme.VC:
		b.WriteRune(rng.Choose(src, m.vowels))
		b.WriteRune(rng.Choose(src, m.consonants))
	case phoneme.CVC:
		m.lead(&b, src, start)
		b.WriteRune(rng.Choose(src, m.vowels))
		b.WriteRune(rng.Choose(src, m.consonants))
	}
	return b.String()
}

func (m *LetterModel) lead(b *strings.Builder, src rng.Source, start bool) {
	if start && len(m.clusters) > 0 {
		b.WriteString(rng.Choose(src, m.clusters))
		return
	}
	b.WriteRune(rng.Choose(src, m.consonants))
}

// Word draws the syllable count, then one coin per word deciding whether the
// first syllable may open with a cluster. Models without clusters skip the
// coin.
func (m *LetterModel) Word(src rng.Source, r onamer.Range) (Word, error) {
	if err := r.Validate(); err != nil {
		return Word{}, err
	}
	n := src.Between(r.Min, r.Max)

	start := true
	if len(m.clusters) > 0 {
		start = src.Intn(2) == 0
	}

	syllables := make([]string, n)
	syllables[0] = m.Syllable(src, start)
	for i := 1; i < n; i++ {
		syllables[i] = m.Syllable(src, false)
	}
	return Word{Syllables: syllables}, nil
}

// UnitModel draws whole syllable units from a mora catalog.
type UnitModel struct {
	name   onamer.Language
	inv    *phoneme.Units
	all    []string
	starts []string
}

// NewUnitModel wraps a unit inventory.
func NewUnitModel(name onamer.Language, inv *phoneme.Units) *UnitModel {
	return &UnitModel{
		name:   name,
		inv:    inv,
		all:    inv.All(),
		starts: inv.Starts(),
	}
}

func (m *UnitModel) Name() onamer.Language { return m.name }

// Inventory exposes the catalog for segmentation and kana rendering.
func (m *UnitModel) Inventory() *phoneme.Units { return m.inv }

// Syllable draws from the eligible start units when start is set and from
// the full catalog otherwise.
func (m *UnitModel) Syllable(src rng.Source, start bool) string {
	if start {
		return rng.Choose(src, m.starts)
	}
	return rng.Choose(src, m.all)
}

func (m *UnitModel) Word(src rng.Source, r onamer.Range) (Word, error) {
	if err := r.Validate(); err != nil {
		return Word{}, err
	}
	n := src.Between(r.Min, r.Max)

	syllables := make([]string, n)
	for i := range syllables {
		syllables[i] = m.Syllable(src, i == 0)
	}
	return Word{Syllables: syllables}, nil
}
