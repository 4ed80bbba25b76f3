package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Faultbox/cub3r/internal/puzzle"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

var stickerStyles = map[puzzle.Color]lipgloss.Style{
	puzzle.Green:  stickerStyle("#009B48"),
	puzzle.Blue:   stickerStyle("#0046AD"),
	puzzle.Orange: stickerStyle("#FF5800"),
	puzzle.Red:    stickerStyle("#B71234"),
	puzzle.White:  stickerStyle("#FFFFFF"),
	puzzle.Yellow: stickerStyle("#FFD500"),
}

func stickerStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex))
}

// colorSticker renders a sticker as a coloured block.
func colorSticker(c puzzle.Color) string {
	return stickerStyles[c].Render("  ")
}

// plainSticker renders a sticker as its colour letter.
func plainSticker(c puzzle.Color) string {
	return c.String() + " "
}

// stickerFunc picks the sticker renderer for the --plain flag.
func stickerFunc() func(puzzle.Color) string {
	if plainOutput {
		return plainSticker
	}
	return colorSticker
}
