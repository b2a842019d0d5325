// Package cmd contains all CLI commands for onamer.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/f3rmion/onamer/internal/config"
	"github.com/f3rmion/onamer/internal/logging"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	cfgFile string
	v       *viper.Viper
	logger  = slog.New(slog.DiscardHandler)
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "onamer",
	Short: "Generate pronounceable pseudo-words for names",
	Long: `onamer generates pronounceable pseudo-words from syllable models and
filters them with simple typing and sound heuristics.

Builtin models:
  english   letters in CV, VC and CVC syllables
  japanese  mora units; geminates never open a word
  generic   letters with consonant clusters at the word start

More models can be declared in ~/.config/onamer/models.yaml (see 'onamer init').

Running 'onamer' without a subcommand is the same as 'onamer generate'.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runGenerate,
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/onamer/config.yaml)")
	rootCmd.PersistentFlags().String("models", "", "models file (default is $HOME/.config/onamer/models.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "text", "log format: text, json")

	addGenerateFlags(rootCmd.Flags())
}

// setup loads .env, the config file and ONAMER_* variables, binds the flags of
// the running command and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	v = viper.New()
	if err := readConfig(v); err != nil {
		return err
	}
	v.SetEnvPrefix(strings.ToUpper(config.AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := bindFlags(v, cmd.Flags()); err != nil {
		return err
	}

	level, err := logging.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(v.GetString("log_format"))
	if err != nil {
		return err
	}
	logger = logging.New(
		logging.WithLevel(level),
		logging.WithFormat(format),
		logging.WithOutput(cmd.ErrOrStderr()),
	)
	if used := v.ConfigFileUsed(); used != "" {
		logger.Debug("using config file", "path", used)
	}
	return nil
}

func readConfig(v *viper.Viper) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			return nil
		}
		v.SetConfigName(strings.TrimSuffix(config.SettingsFile, filepath.Ext(config.SettingsFile)))
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && cfgFile == "" {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	return nil
}

// bindFlags binds every flag under its snake_case key, so --only-accepted,
// ONAMER_ONLY_ACCEPTED and only_accepted in config.yaml are one setting.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		err = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
	return err
}

// loadSettings decodes and validates the merged settings.
func loadSettings() (config.Settings, error) {
	s := config.Defaults()
	if err := v.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("decoding settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// loadRegistry returns the builtin models plus the user's models file.
func loadRegistry(s config.Settings) (*config.Registry, error) {
	path := s.Models
	if path == "" {
		dir, err := config.GetConfigDir()
		if err != nil {
			return config.NewRegistry(), nil
		}
		path = filepath.Join(dir, config.ModelsFile)
	}
	reg, err := config.LoadRegistry(path)
	if err != nil {
		return nil, err
	}
	return reg, nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
