// Package phoneme holds the immutable letter and unit inventories the word
// models draw from.
package phoneme

import (
	"unicode/utf8"

	"github.com/f3rmion/onamer/internal/onamer"
)

// Pattern is an arrangement of consonant and vowel slots in one syllable.
type Pattern int

const (
	CV  Pattern = iota // consonant + vowel
	VC                 // vowel + consonant
	CVC                // consonant + vowel + consonant
)

// Patterns lists every letter pattern in draw order.
var Patterns = []Pattern{CV, VC, CVC}

func (p Pattern) String() string {
	switch p {
	case CV:
		return "CV"
	case VC:
		return "VC"
	case CVC:
		return "CVC"
	default:
		return "unknown"
	}
}

// Letters is a letter based inventory: vowels, consonants and optional
// cluster-start tokens for the leading consonant of a word.
type Letters struct {
	vowels     []rune
	consonants []rune
	clusters   []string
}

// NewLetters validates and builds a letter inventory.
func NewLetters(vowels, consonants string, clusters []string) (*Letters, error) {
	v, err := letterSet("vowel", vowels)
	if err != nil {
		return nil, err
	}
	c, err := letterSet("consonant", consonants)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(clusters))
	for _, cl := range clusters {
		if utf8.RuneCountInString(cl) < 2 {
			return nil, onamer.ConfigErrorf("cluster %q must have at least two letters", cl)
		}
		if seen[cl] {
			return nil, onamer.ConfigErrorf("duplicate cluster %q", cl)
		}
		seen[cl] = true
	}

	return &Letters{
		vowels:     v,
		consonants: c,
		clusters:   append([]string(nil), clusters...),
	}, nil
}

func letterSet(kind, s string) ([]rune, error) {
	if s == "" {
		return nil, onamer.ConfigErrorf("%s set must not be empty", kind)
	}
	seen := make(map[rune]bool)
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if seen[r] {
			return nil, onamer.ConfigErrorf("duplicate %s %q", kind, r)
		}
		seen[r] = true
		out = append(out, r)
	}
	return out, nil
}

// Vowels returns a copy of the vowel set.
func (l *Letters) Vowels() []rune { return append([]rune(nil), l.vowels...) }

// Consonants returns a copy of the consonant set.
func (l *Letters) Consonants() []rune { return append([]rune(nil), l.consonants...) }

// Clusters returns a copy of the cluster-start tokens.
func (l *Letters) Clusters() []string { return append([]string(nil), l.clusters...) }

// HasClusters reports whether the inventory is cluster aware.
func (l *Letters) HasClusters() bool { return len(l.clusters) > 0 }

// Units is a unit based (mora) inventory. Restricted units never start a word.
type Units struct {
	all        []string
	known      map[string]bool
	restricted map[string]bool
	starts     []string
	maxLen     int
}

// NewUnits validates and builds a unit inventory. The eligible start units are
// computed once here, so no draw ever has to be retried.
func NewUnits(units, restricted []string) (*Units, error) {
	if len(units) == 0 {
		return nil, onamer.ConfigErrorf("unit set must not be empty")
	}

	u := &Units{
		all:        make([]string, 0, len(units)),
		known:      make(map[string]bool, len(units)),
		restricted: make(map[string]bool, len(restricted)),
	}
	known := u.known
	for _, unit := range units {
		if unit == "" {
			return nil, onamer.ConfigErrorf("unit set contains an empty unit")
		}
		if known[unit] {
			return nil, onamer.ConfigErrorf("duplicate unit %q", unit)
		}
		known[unit] = true
		u.all = append(u.all, unit)
		if n := utf8.RuneCountInString(unit); n > u.maxLen {
			u.maxLen = n
		}
	}

	for _, r := range restricted {
		if !known[r] {
			return nil, onamer.ConfigErrorf("start-restricted unit %q is not in the unit set", r)
		}
		u.restricted[r] = true
	}

	for _, unit := range u.all {
		if !u.restricted[unit] {
			u.starts = append(u.starts, unit)
		}
	}
	if len(u.starts) == 0 {
		return nil, onamer.ConfigErrorf("every unit is start-restricted, no word could begin")
	}

	return u, nil
}

// All returns a copy of every unit in declaration order.
func (u *Units) All() []string { return append([]string(nil), u.all...) }

// Starts returns a copy of the units allowed at the start of a word.
func (u *Units) Starts() []string { return append([]string(nil), u.starts...) }

// Restricted returns the start-restricted units in declaration order.
func (u *Units) Restricted() []string {
	var out []string
	for _, unit := range u.all {
		if u.restricted[unit] {
			out = append(out, unit)
		}
	}
	return out
}

// IsRestricted reports whether unit may not start a word.
func (u *Units) IsRestricted(unit string) bool { return u.restricted[unit] }

// Contains reports whether unit belongs to the inventory.
func (u *Units) Contains(unit string) bool { return u.known[unit] }
