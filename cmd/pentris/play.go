package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pentris/internal/core"
	"github.com/vovakirdan/tui-pentris/internal/pentris"
	"github.com/vovakirdan/tui-pentris/internal/platform/tui"
)

var (
	flagMode       string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a local game. Without --mode a menu asks which pieces to play with.

Controls:
  Left/Right, h/l   - Move
  Down, j           - Step down (locks when blocked)
  Up, k, x          - Rotate clockwise
  z                 - Rotate counter-clockwise
  Space             - Drop
  P                 - Pause
  R                 - Restart
  Esc/B             - Back to menu (paused or lost)
  Q/Ctrl+C          - Quit

Modes:
  tetris    - The seven tetrominoes
  pentris   - The eighteen pentominoes
  both      - All twenty-five pieces

Difficulty options:
  easy   - 700ms starting interval
  normal - 500ms starting interval
  hard   - 250ms starting interval

Examples:
  pentris play
  pentris play --mode pentris
  pentris play --mode both --difficulty hard --seed 42
  pentris play --config ./my-pentris.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Piece set: tetris, pentris, both (default: show menu)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadConfig(flagDifficulty)
	if err != nil {
		return err
	}

	var set pentris.PieceSet
	if flagMode != "" {
		if set, err = pentris.ParsePieceSet(flagMode); err != nil {
			return err
		}
	}

	// The alternate screen owns the terminal, so logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard, "pentris")
	if err != nil {
		return err
	}
	defer closeLog()

	runtime := core.DefaultConfig()
	runtime.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	opts := tui.SessionOptions{
		Game:    gameCfg,
		Runtime: runtime,
		Set:     set,
		Logger:  logger,
	}

	logger.Info("starting local game", "mode", flagMode, "seed", flagSeed)
	if err := tui.Run(context.Background(), opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
