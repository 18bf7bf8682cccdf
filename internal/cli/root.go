// Package cli wires the serenade commands together.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/tessro/serenade/internal/config"
	serrors "github.com/tessro/serenade/internal/errors"
	"github.com/tessro/serenade/internal/logging"
)

var (
	cfgFile string
	jsonOut bool
	verbose bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "serenade",
	Short: "Play a playlist in the terminal, with hearts",
	Long: `Serenade plays a playlist of audio tracks with cover art, a live
progress bar and a floating hearts background.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.serenaderc)")
	rootCmd.PersistentFlags().BoolVarP(&jsonOut, "json", "j", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func initConfig() error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return serrors.WithSuggestion(
			fmt.Errorf("%w: %w", serrors.ErrInvalidConfig, err),
			"check the file with 'serenade config show' or recreate it with 'serenade config init'",
		)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", serrors.ErrInvalidConfig, err)
	}

	return nil
}

// newLogger builds the logger for a command. console receives
// human-readable output in addition to the configured log file.
func newLogger(console io.Writer) (zerolog.Logger, io.Closer, error) {
	return logging.New(cfg.Log, logging.Options{Verbose: verbose, Console: console})
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, serrors.Format(err))
		os.Exit(1)
	}
}

// Config returns the loaded configuration.
func Config() *config.Config {
	return cfg
}

// JSONOutput returns true if JSON output is requested.
func JSONOutput() bool {
	return jsonOut
}

// Verbose returns true if verbose output is requested.
func Verbose() bool {
	return verbose
}
