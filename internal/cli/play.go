package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/cub3r/internal/controls"
	"github.com/Faultbox/cub3r/internal/logger"
	"github.com/Faultbox/cub3r/internal/puzzle"
	"github.com/Faultbox/cub3r/internal/storage"
)

var playNoRecord bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively in the terminal",
	Long: `Turn the cube from the keyboard. Turns animate at the configured step
and frame rate, exactly as in the 3D client.

Keys: f b l r u d turn a face clockwise, shift turns it anticlockwise,
backspace or z undoes, ctrl+r resets, q or esc quits.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&playNoRecord, "no-record", false, "Do not record the session")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cube := puzzle.New(puzzle.WithStep(cfg.Puzzle.Step))

	if cfg.Storage.Enabled && !playNoRecord {
		db, err := openDB()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		rec, err := storage.NewRecorder(db, "terminal")
		if err != nil {
			return fmt.Errorf("failed to start session: %w", err)
		}
		rec.Attach(cube)
		defer func() {
			if err := rec.Close(); err != nil {
				logger.Warn("failed to end session", zap.Error(err))
			}
		}()
	}

	model := newPlayModel(cube, cfg.Graphics.FPSLimit, stickerFunc())
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// frameMsg drives one engine tick.
type frameMsg time.Time

type playModel struct {
	cube     *puzzle.Cube
	keys     controls.KeyMap
	interval time.Duration
	sticker  func(puzzle.Color) string
	status   string
	quitting bool
}

func newPlayModel(cube *puzzle.Cube, fps int, sticker func(puzzle.Color) string) playModel {
	if fps <= 0 {
		fps = 60
	}
	return playModel{
		cube:     cube,
		keys:     controls.Terminal,
		interval: time.Second / time.Duration(fps),
		sticker:  sticker,
	}
}

func (m playModel) frame() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m playModel) Init() tea.Cmd {
	return m.frame()
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case frameMsg:
		m.cube.Tick()
		return m, m.frame()
	}
	return m, nil
}

func (m playModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, ok := m.keys.Lookup(msg.String(), false)
	if !ok {
		return m, nil
	}

	m.status = ""
	switch action.Kind {
	case controls.Turn:
		if err := m.cube.Apply(action.Move); err != nil {
			m.status = fmt.Sprintf("%s ignored: turn in progress", action.Move)
		}
	case controls.Undo:
		if !m.cube.Undo() {
			m.status = "nothing to undo"
		}
	case controls.Reset:
		if err := m.cube.Reset(); err != nil {
			m.status = "cannot reset while turning"
		}
	case controls.Quit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m playModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("cub3r"))
	b.WriteString("\n\n")
	b.WriteString(RenderNet(m.cube.Facelets(), m.sticker))
	b.WriteString("\n")

	if m.cube.IsSolved() {
		b.WriteString(solvedStyle.Render("solved"))
	} else {
		b.WriteString(statusStyle.Render(m.cube.State().String()))
	}
	b.WriteString("  ")
	b.WriteString(moveStyle.Render(lastMoves(m.cube.History(), 12)))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(errorStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.keys.Help() + "  z: undo  ctrl+r: reset  q: quit"))
	b.WriteString("\n")
	return b.String()
}

// lastMoves formats at most n of the most recent moves.
func lastMoves(history []puzzle.Move, n int) string {
	if len(history) > n {
		return "… " + puzzle.FormatMoves(history[len(history)-n:])
	}
	return puzzle.FormatMoves(history)
}
