package cmd

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/f3rmion/onamer/internal/config"
	"github.com/f3rmion/onamer/internal/synth"
)

var modelsCmd = &cobra.Command{
	Use:     "models",
	Aliases: []string{"languages"},
	Short:   "List the available word models",
	Long: `List the builtin word models and the models declared in the models file.

With --yaml the full declarations are printed; the output can be used as a
starting point for a models file.`,
	Args: cobra.NoArgs,
	RunE: runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
	modelsCmd.Flags().Bool("yaml", false, "print model declarations as YAML")
}

func runModels(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	reg, err := loadRegistry(s)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	asYAML, _ := cmd.Flags().GetBool("yaml")
	if asYAML {
		var specs []config.ModelSpec
		for _, name := range reg.Names() {
			spec, _ := reg.Spec(name)
			specs = append(specs, spec)
		}
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(map[string]any{"models": specs}); err != nil {
			return fmt.Errorf("encoding models: %w", err)
		}
		return enc.Close()
	}

	width := 0
	for _, name := range reg.Names() {
		width = max(width, runewidth.StringWidth(string(name)))
	}
	for _, name := range reg.Names() {
		spec, _ := reg.Spec(name)
		origin := "user"
		if reg.IsBuiltin(name) {
			origin = "builtin"
		}
		m, err := reg.Resolve(string(name))
		if err != nil {
			return err
		}
		pad := strings.Repeat(" ", width-runewidth.StringWidth(string(name)))
		fmt.Fprintf(out, "%s%s  %-7s  %-7s  %s\n", name, pad, spec.Kind, origin, describe(m, spec))
	}
	return nil
}

func describe(m synth.Model, spec config.ModelSpec) string {
	if spec.Description != "" {
		return spec.Description
	}
	if u, ok := m.(*synth.UnitModel); ok {
		inv := u.Inventory()
		return fmt.Sprintf("%d units, %d start-restricted", len(inv.All()), len(inv.Restricted()))
	}
	return fmt.Sprintf("vowels %q, consonants %q", spec.Vowels, spec.Consonants)
}
