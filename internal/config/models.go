package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/f3rmion/onamer/internal/onamer"
	"github.com/f3rmion/onamer/internal/phoneme"
	"github.com/f3rmion/onamer/internal/synth"
)

// Kind selects the inventory variant of a model.
type Kind string

const (
	KindLetters Kind = "letters"
	KindUnits   Kind = "units"
)

// ModelSpec declares a word model in a models file.
type ModelSpec struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Kind        Kind   `yaml:"kind"`

	// letters
	Vowels     string   `yaml:"vowels,omitempty"`
	Consonants string   `yaml:"consonants,omitempty"`
	Clusters   []string `yaml:"clusters,omitempty"`

	// units
	Units           []string `yaml:"units,omitempty"`
	StartRestricted []string `yaml:"start_restricted,omitempty"`
}

// Build validates the spec and constructs its model.
func (s ModelSpec) Build() (synth.Model, error) {
	name, err := onamer.ParseLanguage(s.Name)
	if err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}

	switch s.Kind {
	case KindLetters:
		if len(s.Units) > 0 || len(s.StartRestricted) > 0 {
			return nil, onamer.ConfigErrorf("model %s: letters models take no units", name)
		}
		inv, err := phoneme.NewLetters(s.Vowels, s.Consonants, s.Clusters)
		if err != nil {
			return nil, fmt.Errorf("model %s: %w", name, err)
		}
		return synth.NewLetterModel(name, inv), nil
	case KindUnits:
		if s.Vowels != "" || s.Consonants != "" || len(s.Clusters) > 0 {
			return nil, onamer.ConfigErrorf("model %s: units models take no letters", name)
		}
		inv, err := phoneme.NewUnits(s.Units, s.StartRestricted)
		if err != nil {
			return nil, fmt.Errorf("model %s: %w", name, err)
		}
		return synth.NewUnitModel(name, inv), nil
	default:
		return nil, onamer.ConfigErrorf("model %s: unknown kind %q (want %q or %q)", name, s.Kind, KindLetters, KindUnits)
	}
}

// BuiltinSpecs describes the builtin models in models-file form.
func BuiltinSpecs() []ModelSpec {
	english := phoneme.English()
	generic := phoneme.Generic()
	units, restricted := phoneme.JapaneseUnits()

	return []ModelSpec{
		{
			Name:        string(onamer.LanguageEnglish),
			Description: "English-like letters, CV/VC/CVC syllables",
			Kind:        KindLetters,
			Vowels:      string(english.Vowels()),
			Consonants:  string(english.Consonants()),
		},
		{
			Name:            string(onamer.LanguageJapanese),
			Description:     "Japanese mora units, no geminate at the start",
			Kind:            KindUnits,
			Units:           units,
			StartRestricted: restricted,
		},
		{
			Name:        string(onamer.LanguageGeneric),
			Description: "Letters with consonant clusters at the word start",
			Kind:        KindLetters,
			Vowels:      string(generic.Vowels()),
			Consonants:  string(generic.Consonants()),
			Clusters:    generic.Clusters(),
		},
	}
}

type modelsFile struct {
	Models []ModelSpec `yaml:"models"`
}

// LoadModels reads model specs from a YAML file.
func LoadModels(path string) ([]ModelSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading models file: %w", err)
	}

	var f modelsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing models file: %w: %w", onamer.ErrConfig, err)
	}
	return f.Models, nil
}

// SaveModels writes model specs to a YAML file.
func SaveModels(path string, specs []ModelSpec) error {
	out, err := yaml.Marshal(&modelsFile{Models: specs})
	if err != nil {
		return fmt.Errorf("marshaling models: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing models file: %w", err)
	}
	return nil
}

// ModelsTemplate is written by `onamer init`.
const ModelsTemplate = `# Custom word models for onamer.
# Builtin models (english, japanese, generic) cannot be redefined.
#
# kind: letters  syllables are CV, VC or CVC over the vowel and consonant
#                sets; clusters may replace the first consonant of a word.
# kind: units    syllables are whole units; start_restricted units never
#                open a word.
models:
  - name: soft
    description: Liquid consonants only
    kind: letters
    vowels: aeiou
    consonants: lmnrwy

  - name: tiny-mora
    kind: units
    units: [ka, ki, ku, na, ni, nu, n]
    start_restricted: [n]
`
