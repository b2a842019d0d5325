package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/f3rmion/onamer/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize onamer configuration",
	Long: `Initialize onamer configuration files in your config directory.

This creates:
  - config.yaml   default settings (language, syllable range, count, ...)
  - models.yaml   example custom word models

Existing files are kept unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
	initCmd.Flags().String("dir", "", "config directory (default is $HOME/.config/onamer)")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	dir, _ := cmd.Flags().GetString("dir")

	configDir, err := config.EnsureConfigDir(dir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initializing onamer configuration in %s\n\n", configDir)

	files := []struct {
		name string
		data string
	}{
		{config.SettingsFile, config.SettingsTemplate},
		{config.ModelsFile, config.ModelsTemplate},
	}
	for _, f := range files {
		path := filepath.Join(configDir, f.name)
		if force {
			if err := os.WriteFile(path, []byte(f.data), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", f.name, err)
			}
			fmt.Fprintf(out, "  Wrote %s\n", f.name)
			continue
		}
		wrote, err := config.WriteIfMissing(path, []byte(f.data))
		if err != nil {
			return err
		}
		if wrote {
			fmt.Fprintf(out, "  Created %s\n", f.name)
		} else {
			fmt.Fprintf(out, "  Kept existing %s\n", f.name)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit models.yaml to declare your own word models")
	fmt.Fprintln(out, "  2. Run 'onamer models' to check they load")
	return nil
}
