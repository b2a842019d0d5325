package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/f3rmion/onamer/internal/analyzer"
	"github.com/f3rmion/onamer/internal/config"
	"github.com/f3rmion/onamer/internal/kana"
	"github.com/f3rmion/onamer/internal/output"
	"github.com/f3rmion/onamer/internal/synth"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [words...]",
	Short: "Mark words accepted or rejected by the analyzer",
	Long: `Analyze words with the hand balance and smoothness predicates.

A word is accepted when every pair of adjacent letters passes the selected
predicates; with both selected a pair passes if either does. Words with
fewer than two letters are always accepted.

Words are read from the arguments, or from stdin (whitespace separated)
when there are none. With --kana and a unit model (-L japanese) words that
split into known units are shown in kana.

Examples:
  onamer analyze --hand fu pat sito
  onamer analyze -L japanese --kana sakura kitto
  onamer -q -c 50 | onamer analyze --hand`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().Bool("hand", false, "analyze hand balance")
	analyzeCmd.Flags().Bool("smooth", false, "analyze phonetic smoothness (not implemented, rejects every pair)")
	analyzeCmd.Flags().StringP("language", "L", config.Defaults().Language, "word model used for kana rendering")
	analyzeCmd.Flags().String("kana", "", "show kana for words of a unit model: hiragana or katakana")
	analyzeCmd.Flags().Lookup("kana").NoOptDefVal = string(config.KanaHiragana)
	analyzeCmd.Flags().String("format", string(output.FormatText), "output format: text, json, yaml, template")
	analyzeCmd.Flags().String("template", "", "Go template per word for --format template")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	words := args
	if len(words) == 0 {
		words, err = readWords(cmd.InOrStdin())
		if err != nil {
			return err
		}
	}

	flags := s.Flags()
	if !flags.Any() {
		fmt.Fprintln(cmd.ErrOrStderr(), "Note: no analyzer selected (--hand, --smooth); every word is accepted")
	}
	if flags.Smoothness && !analyzer.SmoothnessSupported {
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning: smoothness analysis is not implemented yet and rejects every letter pair")
	}

	verdicts := analyzer.Analyze(words, flags)
	entries := make([]output.Entry, 0, len(verdicts))
	seen := make(map[string]bool, len(verdicts))
	for _, w := range words {
		if seen[w] {
			continue
		}
		seen[w] = true
		entries = append(entries, output.Entry{
			Word:     w,
			Accepted: output.Bool(verdicts[w]),
		})
	}

	if mode, _ := config.ParseKanaMode(s.Kana); mode != config.KanaOff {
		reg, err := loadRegistry(s)
		if err != nil {
			return err
		}
		m, err := reg.Resolve(s.Language)
		if err != nil {
			return err
		}
		addKana(entries, m, mode)
	}

	format, _ := output.ParseFormat(s.Format)
	out := cmd.OutOrStdout()
	p := output.NewPrinter(out, format)
	p.SetHeader("ANALYZE:")
	p.SetColor(isTerminal(out))
	if s.Template != "" {
		if err := p.SetTemplate(s.Template); err != nil {
			return err
		}
	}
	if err := p.Print(entries); err != nil {
		return err
	}

	if format == output.FormatText {
		accepted, rejected := analyzer.Summary(verdicts)
		fmt.Fprintf(out, "\n%d accepted, %d rejected\n", accepted, rejected)
	}
	return nil
}

func readWords(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		// skip the header and list markers of the text format
		if line == "GENERATE:" || line == "ANALYZE:" {
			continue
		}
		for _, f := range strings.Fields(line) {
			if f == "*" {
				continue
			}
			words = append(words, f)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading words: %w", err)
	}
	return words, nil
}

// addKana renders the words of a unit model that segment fully; other words
// keep an empty kana column.
func addKana(entries []output.Entry, m synth.Model, mode config.KanaMode) {
	u, ok := m.(*synth.UnitModel)
	if !ok {
		logger.Warn("kana needs a unit model", "model", m.Name())
		return
	}
	for i := range entries {
		k, err := kana.FromWord(entries[i].Word, u.Inventory())
		if err != nil {
			logger.Debug("no kana rendering", "word", entries[i].Word, "err", err)
			continue
		}
		if mode == config.KanaKatakana {
			k = kana.ToKatakana(k)
		}
		entries[i].Kana = k
	}
}
