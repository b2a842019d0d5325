package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/f3rmion/onamer/internal/onamer"
	"github.com/f3rmion/onamer/internal/phoneme"
	"github.com/f3rmion/onamer/internal/synth"
)

// Registry resolves model names to models: the builtins plus any models
// loaded from a models file.
type Registry struct {
	models  map[onamer.Language]synth.Model
	specs   map[onamer.Language]ModelSpec
	builtin map[onamer.Language]bool
}

// NewRegistry returns a registry holding the builtin models.
func NewRegistry() *Registry {
	r := &Registry{
		models:  make(map[onamer.Language]synth.Model),
		specs:   make(map[onamer.Language]ModelSpec),
		builtin: make(map[onamer.Language]bool),
	}
	builtins := map[onamer.Language]synth.Model{
		onamer.LanguageEnglish:  synth.NewLetterModel(onamer.LanguageEnglish, phoneme.English()),
		onamer.LanguageJapanese: synth.NewUnitModel(onamer.LanguageJapanese, phoneme.Japanese()),
		onamer.LanguageGeneric:  synth.NewLetterModel(onamer.LanguageGeneric, phoneme.Generic()),
	}
	for _, spec := range BuiltinSpecs() {
		name := onamer.Language(spec.Name)
		r.models[name] = builtins[name]
		r.specs[name] = spec
		r.builtin[name] = true
	}
	return r
}

// LoadRegistry returns the builtins plus the models in path. A missing file
// is not an error; an empty path loads builtins only.
func LoadRegistry(path string) (*Registry, error) {
	r := NewRegistry()
	if path == "" {
		return r, nil
	}
	specs, err := LoadModels(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return r, nil
		}
		return nil, err
	}
	for _, spec := range specs {
		if err := r.Add(spec); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return r, nil
}

// Add builds spec and registers it. Builtin and already registered names
// are rejected.
func (r *Registry) Add(spec ModelSpec) error {
	m, err := spec.Build()
	if err != nil {
		return err
	}
	name := m.Name()
	if r.builtin[name] {
		return onamer.ConfigErrorf("model %s is builtin and cannot be redefined", name)
	}
	if _, dup := r.models[name]; dup {
		return onamer.ConfigErrorf("model %s is defined twice", name)
	}
	r.models[name] = m
	r.specs[name] = spec
	return nil
}

// Resolve returns the model for a user supplied selector.
func (r *Registry) Resolve(selector string) (synth.Model, error) {
	name, err := onamer.ParseLanguage(selector)
	if err != nil {
		return nil, err
	}
	m, ok := r.models[name]
	if !ok {
		return nil, onamer.ConfigErrorf("unsupported language %q (available: %s)", selector, strings.Join(r.nameStrings(), ", "))
	}
	return m, nil
}

// Names lists builtin models first, then user models, each group sorted.
func (r *Registry) Names() []onamer.Language {
	var builtin, user []onamer.Language
	for name := range r.models {
		if r.builtin[name] {
			builtin = append(builtin, name)
		} else {
			user = append(user, name)
		}
	}
	sort.Slice(builtin, func(i, j int) bool { return builtin[i] < builtin[j] })
	sort.Slice(user, func(i, j int) bool { return user[i] < user[j] })
	return append(builtin, user...)
}

// Spec returns the declaration of a registered model.
func (r *Registry) Spec(name onamer.Language) (ModelSpec, bool) {
	s, ok := r.specs[name]
	return s, ok
}

// IsBuiltin reports whether name is a builtin model.
func (r *Registry) IsBuiltin(name onamer.Language) bool { return r.builtin[name] }

func (r *Registry) nameStrings() []string {
	names := r.Names()
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	return out
}
