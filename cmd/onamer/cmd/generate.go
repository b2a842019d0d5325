package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/f3rmion/onamer/internal/analyzer"
	"github.com/f3rmion/onamer/internal/config"
	"github.com/f3rmion/onamer/internal/kana"
	"github.com/f3rmion/onamer/internal/lexicon"
	"github.com/f3rmion/onamer/internal/onamer"
	"github.com/f3rmion/onamer/internal/output"
	"github.com/f3rmion/onamer/internal/rng"
	"github.com/f3rmion/onamer/internal/synth"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen", "g"},
	Short:   "Generate a batch of pseudo-words",
	Long: `Generate pronounceable pseudo-words from a word model.

Each word has between --min and --max syllables. With --hand or --smooth the
analyzer marks every word accepted or rejected; --only-accepted redraws
rejected words instead. --avoid-real redraws Japanese words that are found in
the IPA dictionary.

Examples:
  onamer generate
  onamer generate -L japanese --kana hiragana -c 5
  onamer generate --min 1 --max 2 --hand --only-accepted
  onamer generate --seed 42 --format json`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addGenerateFlags(generateCmd.Flags())
}

func addGenerateFlags(fs *pflag.FlagSet) {
	d := config.Defaults()
	fs.Int("min", d.Min, "minimum syllables per word")
	fs.Int("max", d.Max, "maximum syllables per word")
	fs.IntP("count", "c", d.Count, "number of words")
	fs.StringP("language", "L", d.Language, "word model (see 'onamer models')")
	fs.Uint64("seed", 0, "random seed (default: random, printed with --verbose)")
	fs.Int("workers", d.Workers, "parallel workers; output does not depend on this")
	fs.Bool("hand", false, "analyze hand balance: adjacent letters typed by alternating hands")
	fs.Bool("smooth", false, "analyze phonetic smoothness (not implemented, rejects every pair)")
	fs.Bool("only-accepted", false, "redraw words the analyzer rejects")
	fs.Bool("avoid-real", false, "redraw Japanese words found in the dictionary")
	fs.String("need", "", "characters the words should contain (accepted but not enforced yet)")
	fs.String("kana", "", "show kana for unit models: hiragana or katakana")
	fs.String("format", d.Format, "output format: text, json, yaml, template")
	fs.String("template", "", "Go template per word for --format template")
	fs.BoolP("verbose", "v", false, "print request info before the words")
	fs.BoolP("quiet", "q", false, "print bare words only")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	reg, err := loadRegistry(s)
	if err != nil {
		return err
	}
	m, err := reg.Resolve(s.Language)
	if err != nil {
		return err
	}

	seed := s.Seed
	if !v.IsSet("seed") {
		seed = rng.RandomSeed()
	}

	flags := s.Flags()
	if flags.Smoothness && !analyzer.SmoothnessSupported {
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning: smoothness analysis is not implemented yet and rejects every letter pair")
	}
	if s.Need != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning: --need is accepted but not enforced yet")
	}

	validators := []synth.Validator{}
	if s.OnlyAccepted && flags.Any() {
		validators = append(validators, func(w synth.Word) bool {
			return analyzer.Accepts(w.String(), flags)
		})
	}
	if s.AvoidReal {
		if _, ok := m.(*synth.UnitModel); !ok {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: --avoid-real only applies to unit models, not %s\n", m.Name())
		} else {
			checker, err := lexicon.New()
			if err != nil {
				return fmt.Errorf("loading dictionary: %w", err)
			}
			validators = append(validators, checker.Validator())
		}
	}

	req := synth.Request{
		Range:     s.Range(),
		Count:     s.Count,
		Seed:      seed,
		Workers:   s.Workers,
		Needed:    s.Need,
		Validator: allOf(validators),
		Logger:    logger,
	}
	logger.Info("generating", "model", m.Name(), "count", s.Count, "seed", seed)

	words, err := synth.Generate(cmd.Context(), m, req)
	if err != nil {
		return fmt.Errorf("generating words: %w", err)
	}

	out := cmd.OutOrStdout()
	if s.Verbose {
		if err := output.PrintInfo(out, output.Info{
			Language: string(m.Name()),
			Count:    s.Count,
			Range:    s.Range(),
			Seed:     seed,
		}); err != nil {
			return err
		}
	}

	entries := buildEntries(words, m, s, flags)
	if s.Quiet {
		return printBare(out, entries)
	}
	return printEntries(out, entries, s)
}

// allOf combines validators; nil when there are none.
func allOf(vs []synth.Validator) synth.Validator {
	switch len(vs) {
	case 0:
		return nil
	case 1:
		return vs[0]
	}
	return func(w synth.Word) bool {
		for _, fn := range vs {
			if !fn(w) {
				return false
			}
		}
		return true
	}
}

func buildEntries(words []synth.Word, m synth.Model, s config.Settings, flags onamer.Flags) []output.Entry {
	mode, _ := config.ParseKanaMode(s.Kana)
	_, isUnits := m.(*synth.UnitModel)

	entries := make([]output.Entry, len(words))
	for i, w := range words {
		e := output.Entry{Word: w.String(), Syllables: w.Syllables}
		if isUnits && mode != config.KanaOff {
			var k string
			var err error
			if mode == config.KanaKatakana {
				k, err = kana.Katakana(w.Syllables)
			} else {
				k, err = kana.Hiragana(w.Syllables)
			}
			if err != nil {
				logger.Debug("no kana rendering", "word", e.Word, "err", err)
			} else {
				e.Kana = k
			}
		}
		if flags.Any() {
			e.Accepted = output.Bool(analyzer.Accepts(e.Word, flags))
		}
		entries[i] = e
	}
	return entries
}

func printEntries(w io.Writer, entries []output.Entry, s config.Settings) error {
	format, _ := output.ParseFormat(s.Format)
	p := output.NewPrinter(w, format)
	p.SetColor(isTerminal(w))
	if s.Template != "" {
		if err := p.SetTemplate(s.Template); err != nil {
			return err
		}
	}
	return p.Print(entries)
}

func printBare(w io.Writer, entries []output.Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, e.Word); err != nil {
			return err
		}
	}
	return nil
}
