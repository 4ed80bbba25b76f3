package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Faultbox/cub3r/internal/puzzle"
	"github.com/Faultbox/cub3r/internal/storage"
)

var (
	historyLimit int
	historyNet   bool
)

var historyCmd = &cobra.Command{
	Use:   "history [session-id]",
	Short: "List recorded sessions or show one session's moves",
	Long: `Without arguments, list the most recent sessions recorded by the 3D
client and the terminal frontends. With a session ID, print its moves
and optionally replay them to show the final cube.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of sessions to list")
	historyCmd.Flags().BoolVar(&historyNet, "net", false, "Replay the session and print the final cube")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if len(args) == 0 {
		return listSessions(cmd, db)
	}
	return showSession(cmd, db, args[0])
}

func listSessions(cmd *cobra.Command, db *storage.DB) error {
	sessions, err := storage.NewSessionRepository(db).List(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SESSION\tSTARTED\tFRONTEND\tMOVES\tDURATION")
	for _, s := range sessions {
		duration := "active"
		if s.EndedAt != nil {
			duration = s.EndedAt.Sub(s.StartedAt).Round(time.Second).String()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			s.SessionID,
			s.StartedAt.Local().Format("2006-01-02 15:04"),
			s.Frontend,
			s.MoveCount,
			duration)
	}
	return w.Flush()
}

func showSession(cmd *cobra.Command, db *storage.DB, sessionID string) error {
	session, err := storage.NewSessionRepository(db).Get(sessionID)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return fmt.Errorf("session %s not found", sessionID)
	}

	records, err := storage.NewMoveRepository(db).ListBySession(sessionID)
	if err != nil {
		return fmt.Errorf("failed to load moves: %w", err)
	}

	moves := make([]puzzle.Move, 0, len(records))
	for _, r := range records {
		m, err := r.Move()
		if err != nil {
			return fmt.Errorf("move %d: %w", r.Seq, err)
		}
		moves = append(moves, m)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render("Session "+session.SessionID))
	fmt.Fprintf(out, "Frontend: %s\n", session.Frontend)
	fmt.Fprintf(out, "Started:  %s\n", session.StartedAt.Local().Format(time.RFC3339))
	fmt.Fprintf(out, "Moves:    %d\n", len(moves))
	if len(moves) > 0 {
		fmt.Fprintln(out, moveStyle.Render(puzzle.FormatMoves(moves)))
	}

	if historyNet {
		cube := puzzle.New()
		player := puzzle.NewPlayer(cube)
		player.Enqueue(moves...)
		player.Run()

		fmt.Fprintln(out)
		fmt.Fprint(out, RenderNet(cube.Facelets(), stickerFunc()))
		if cube.IsSolved() {
			fmt.Fprintln(out, solvedStyle.Render("solved"))
		}
	}
	return nil
}
