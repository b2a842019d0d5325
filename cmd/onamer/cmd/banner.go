package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/f3rmion/onamer/internal/banner"
)

var bannerCmd = &cobra.Command{
	Use:   "banner <word>",
	Short: "Print a word as large block letters",
	Args:  cobra.ExactArgs(1),
	RunE:  runBanner,
}

func init() {
	rootCmd.AddCommand(bannerCmd)
	bannerCmd.Flags().Int("rows", 8, "height in terminal lines")
}

func runBanner(cmd *cobra.Command, args []string) error {
	rows, _ := cmd.Flags().GetInt("rows")
	if rows < 1 {
		return fmt.Errorf("rows must be positive, got %d", rows)
	}
	art, err := banner.Render(args[0], rows)
	if err != nil {
		return fmt.Errorf("rendering banner: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), art)
	return nil
}
