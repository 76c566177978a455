package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pentris/internal/config"
	"github.com/vovakirdan/tui-pentris/internal/core"
	"github.com/vovakirdan/tui-pentris/internal/pentris"
	"github.com/vovakirdan/tui-pentris/internal/platform/tui"
)

var flagPiecesMode string

var piecesCmd = &cobra.Command{
	Use:   "pieces",
	Short: "Print the piece catalog",
	Long: `Print every piece of a set with its cells and bounding box.

Examples:
  pentris pieces
  pentris pieces --mode tetris`,
	Args: cobra.NoArgs,
	RunE: runPieces,
}

func init() {
	piecesCmd.Flags().StringVar(&flagPiecesMode, "mode", "", "Piece set: tetris, pentris, both (default: config mode)")
}

func runPieces(_ *cobra.Command, _ []string) error {
	mode := flagPiecesMode
	if mode == "" {
		cfg, err := config.LoadPentris(flagConfig)
		if err != nil {
			return err
		}
		mode = cfg.Mode
	}

	set, err := pentris.ParsePieceSet(mode)
	if err != nil {
		return err
	}
	printCatalog(os.Stdout, set)
	return nil
}

// printCatalog writes one block per piece: a header line followed by the
// shape drawn in its color.
func printCatalog(w io.Writer, set pentris.PieceSet) {
	fmt.Fprintf(w, "%s: %d pieces\n\n", set.Title(), len(set.Members()))

	for _, t := range set.Members() {
		shape := pentris.Lookup(t)
		cells := make([]string, len(shape.Offsets))
		for i, o := range shape.Offsets {
			cells[i] = fmt.Sprintf("(%d,%d)", o.X, o.Y)
		}
		fmt.Fprintf(w, "%-3s cells %s  bounds (%d,%d)..(%d,%d)\n",
			shape.Name, strings.Join(cells, " "),
			shape.Bounds.Min.X, shape.Bounds.Min.Y,
			shape.Bounds.Max.X, shape.Bounds.Max.Y,
		)

		pw, ph := tui.PieceSize(t)
		screen := core.NewScreen(pw, ph)
		tui.DrawPiece(screen, t, 0, 0)
		fmt.Fprintln(w, tui.RenderScreen(screen))
		fmt.Fprintln(w)
	}
}
