package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/f3rmion/onamer/internal/onamer"
	"github.com/f3rmion/onamer/internal/rng"
	"github.com/f3rmion/onamer/internal/tui"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Launch the interactive name browser",
	Long: `Launch an interactive terminal UI for browsing generated names.

Controls:
  r       regenerate with a new seed
  S       set the seed
  L       next language
  h / s   toggle hand balance / smoothness marks
  + / -   more / fewer syllables
  j / k   move the selection
  b       show the selection as a banner
  y       copy the selection
  ?       full help
  q       quit`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
	addGenerateFlags(interactiveCmd.Flags())
}

func runInteractive(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	reg, err := loadRegistry(s)
	if err != nil {
		return err
	}
	lang, err := onamer.ParseLanguage(s.Language)
	if err != nil {
		return err
	}

	seed := s.Seed
	if !v.IsSet("seed") {
		seed = rng.RandomSeed()
	}

	m, err := tui.New(tui.Options{
		Context:  cmd.Context(),
		Registry: reg,
		Language: lang,
		Range:    s.Range(),
		Count:    s.Count,
		Seed:     seed,
		Flags:    s.Flags(),
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
