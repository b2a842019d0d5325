// Package onamer provides the core types shared by the name generator packages.
package onamer

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

var (
	// ErrConfig marks invalid parameters or inventories. It is returned before
	// any word is generated.
	ErrConfig = errors.New("invalid configuration")

	// ErrExhausted is returned when a validator rejects every attempt for a word.
	ErrExhausted = errors.New("no acceptable word")
)

// ConfigErrorf formats an error that wraps ErrConfig.
func ConfigErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, args...))
}

// Language names a word model. Builtin models use the constants below; models
// declared in a models file use their own names.
type Language string

const (
	LanguageEnglish  Language = "english"  // Letter model, CV/VC/CVC
	LanguageJapanese Language = "japanese" // Mora unit model
	LanguageGeneric  Language = "generic"  // Letter model with cluster starts
)

var folder = cases.Fold()

// ParseLanguage normalizes a user supplied selector ("English", " JAPANESE ").
func ParseLanguage(s string) (Language, error) {
	name := strings.TrimSpace(folder.String(s))
	if name == "" {
		return "", ConfigErrorf("language must not be empty")
	}
	return Language(name), nil
}

// Range is the closed interval of syllables per word.
type Range struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Validate reports ErrConfig for an empty or inverted range.
func (r Range) Validate() error {
	if r.Min <= 0 {
		return ConfigErrorf("minimum syllable count must be positive, got %d", r.Min)
	}
	if r.Min > r.Max {
		return ConfigErrorf("minimum syllable count %d exceeds maximum %d", r.Min, r.Max)
	}
	return nil
}

// Contains reports whether n lies within the range.
func (r Range) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("from %d to %d", r.Min, r.Max)
}

// Flags selects the analyzer predicates.
type Flags struct {
	HandBalance bool `yaml:"hand" json:"hand"`
	Smoothness  bool `yaml:"smooth" json:"smooth"`
}

// Any reports whether at least one predicate is selected.
func (f Flags) Any() bool {
	return f.HandBalance || f.Smoothness
}
