package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/cub3r/internal/logger"
	"github.com/Faultbox/cub3r/internal/puzzle"
	"github.com/Faultbox/cub3r/internal/storage"
)

var (
	applyCheck  bool
	applyRecord bool
)

var errNotSolved = errors.New("cube is not solved")

var applyCmd = &cobra.Command{
	Use:   "apply <moves>",
	Short: "Apply a move sequence and print the resulting cube",
	Long: `Run a move sequence through the engine without a window, ticking every
turn to completion, then print the cube as an unfolded net.

Moves use standard notation: F B L R U D, with ' for anticlockwise and
2 for a half turn. Example: cub3rctl apply "R U R' U'"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().BoolVar(&applyCheck, "check", false, "Exit non-zero if the result is not solved")
	applyCmd.Flags().BoolVar(&applyRecord, "record", false, "Record the moves as a session")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	moves, err := puzzle.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}

	cube := puzzle.New(puzzle.WithStep(cfg.Puzzle.Step))

	player := puzzle.NewPlayer(cube)
	player.Enqueue(moves...)
	ticks := player.Run()

	if applyRecord {
		if err := recordSequence(moves); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, RenderNet(cube.Facelets(), stickerFunc()))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s  %d moves, %d ticks\n", moveStyle.Render(puzzle.FormatMoves(moves)), len(moves), ticks)

	solved := cube.IsSolved()
	if solved {
		fmt.Fprintln(out, solvedStyle.Render("solved"))
	} else {
		fmt.Fprintln(out, statusStyle.Render("not solved"))
	}

	if applyCheck && !solved {
		return errNotSolved
	}
	return nil
}

// recordSequence stores moves as one finished session.
func recordSequence(moves []puzzle.Move) error {
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	rec, err := storage.NewRecorder(db, "apply")
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer func() {
		if err := rec.Close(); err != nil {
			logger.Warn("failed to end session", zap.Error(err))
		}
	}()

	if err := rec.RecordBatch(moves); err != nil {
		return fmt.Errorf("failed to record moves: %w", err)
	}
	return nil
}
