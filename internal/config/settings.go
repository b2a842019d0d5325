package config

import (
	"strings"

	"github.com/f3rmion/onamer/internal/onamer"
	"github.com/f3rmion/onamer/internal/output"
)

// KanaMode selects the kana column of generated Japanese words.
type KanaMode string

const (
	KanaOff      KanaMode = ""
	KanaHiragana KanaMode = "hiragana"
	KanaKatakana KanaMode = "katakana"
)

// ParseKanaMode accepts "", off, hiragana and katakana.
func ParseKanaMode(s string) (KanaMode, error) {
	switch m := KanaMode(strings.ToLower(strings.TrimSpace(s))); m {
	case KanaOff, "off", "none":
		return KanaOff, nil
	case KanaHiragana, KanaKatakana:
		return m, nil
	default:
		return "", onamer.ConfigErrorf("unknown kana mode %q", s)
	}
}

// Settings is the merged CLI configuration. Viper fills it from flags,
// ONAMER_* variables and config.yaml.
type Settings struct {
	Language     string `mapstructure:"language"`
	Min          int    `mapstructure:"min"`
	Max          int    `mapstructure:"max"`
	Count        int    `mapstructure:"count"`
	Seed         uint64 `mapstructure:"seed"`
	Workers      int    `mapstructure:"workers"`
	Hand         bool   `mapstructure:"hand"`
	Smooth       bool   `mapstructure:"smooth"`
	OnlyAccepted bool   `mapstructure:"only_accepted"`
	AvoidReal    bool   `mapstructure:"avoid_real"`
	Need         string `mapstructure:"need"`
	Kana         string `mapstructure:"kana"`
	Format       string `mapstructure:"format"`
	Template     string `mapstructure:"template"`
	Models       string `mapstructure:"models"`
	LogLevel     string `mapstructure:"log_level"`
	LogFormat    string `mapstructure:"log_format"`
	Verbose      bool   `mapstructure:"verbose"`
	Quiet        bool   `mapstructure:"quiet"`
}

// Defaults mirrors the flag defaults.
func Defaults() Settings {
	return Settings{
		Language:  string(onamer.LanguageEnglish),
		Min:       2,
		Max:       3,
		Count:     10,
		Workers:   1,
		Format:    string(output.FormatText),
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Range returns the syllable range.
func (s Settings) Range() onamer.Range {
	return onamer.Range{Min: s.Min, Max: s.Max}
}

// Flags returns the analyzer flags.
func (s Settings) Flags() onamer.Flags {
	return onamer.Flags{HandBalance: s.Hand, Smoothness: s.Smooth}
}

// Validate reports ErrConfig for values no command can run with.
func (s Settings) Validate() error {
	if err := s.Range().Validate(); err != nil {
		return err
	}
	if s.Count < 0 {
		return onamer.ConfigErrorf("word count must not be negative, got %d", s.Count)
	}
	if s.Workers < 0 {
		return onamer.ConfigErrorf("workers must not be negative, got %d", s.Workers)
	}
	if s.Verbose && s.Quiet {
		return onamer.ConfigErrorf("verbose and quiet are mutually exclusive")
	}
	format, err := output.ParseFormat(s.Format)
	if err != nil {
		return err
	}
	if _, err := ParseKanaMode(s.Kana); err != nil {
		return err
	}
	if s.Template != "" && format != output.FormatTemplate {
		return onamer.ConfigErrorf("a template needs --format %s", output.FormatTemplate)
	}
	return nil
}

// SettingsTemplate is written by `onamer init`. Every key can also be set
// with a flag or an ONAMER_<KEY> variable.
const SettingsTemplate = `# onamer settings
language: english
min: 2
max: 3
count: 10
workers: 1
hand: false
smooth: false
only_accepted: false
format: text
log_level: warn
log_format: text
`
