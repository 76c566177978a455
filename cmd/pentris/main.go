// pentris is a falling-block game with pentominoes, playable in the terminal
// or over SSH.
//
// Usage:
//
//	pentris play              - Play locally (mode menu unless --mode is set)
//	pentris serve             - Start SSH server for remote play
//	pentris pieces            - Print the piece catalog
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for reproducible piece sequences
//	--config <path>    - Use a custom game config YAML
//	--debug            - Log at debug level
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pentris/internal/config"
)

var (
	// Global flags
	flagSeed    int64
	flagConfig  string
	flagDebug   bool
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pentris",
	Short: "Pentris - falling pentominoes in your terminal",
	Long: `Pentris is a falling-block game played with the eighteen pentominoes,
the seven tetrominoes, or both.

Available commands:
  play     - Play a game locally
  serve    - Start SSH server for remote play
  pieces   - Print the piece catalog

Examples:
  pentris play
  pentris play --mode pentris --difficulty hard
  pentris serve --ssh :2222
  pentris pieces --mode tetris`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(piecesCmd)
}

// newLogger builds the CLI logger. Logs go to --log-file when set, otherwise
// to fallback. The returned closer must be called on exit.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// loadConfig loads the game configuration and applies the difficulty preset.
func loadConfig(difficulty string) (config.PentrisConfig, error) {
	cfg, err := config.LoadPentris(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParseDifficultyPreset(difficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPentrisPreset(&cfg, preset)
	return cfg, cfg.Validate()
}
