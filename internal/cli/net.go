package cli

import (
	"strings"

	"github.com/Faultbox/cub3r/internal/puzzle"
)

// RenderNet draws the cube unfolded as a cross:
//
//	    U
//	L   F   R   B
//	    D
//
// Every face is read as seen from outside, so neighbouring rows and
// columns touch along the real cube edges.
func RenderNet(fl puzzle.Facelets, sticker func(puzzle.Color) string) string {
	blank := strings.Repeat(" ", len(stripWidth(sticker(puzzle.White)))*3)

	row := func(f puzzle.Face, r int) string {
		var b strings.Builder
		for c := 0; c < 3; c++ {
			b.WriteString(sticker(fl[f][r*3+c]))
		}
		return b.String()
	}

	var b strings.Builder
	for r := 0; r < 3; r++ {
		b.WriteString(blank + row(puzzle.Top, r) + "\n")
	}
	for r := 0; r < 3; r++ {
		for _, f := range []puzzle.Face{puzzle.Left, puzzle.Front, puzzle.Right, puzzle.Back} {
			b.WriteString(row(f, r))
		}
		b.WriteString("\n")
	}
	for r := 0; r < 3; r++ {
		b.WriteString(blank + row(puzzle.Bottom, r) + "\n")
	}
	return b.String()
}

// stripWidth returns a string of the printable width of s, ignoring ANSI
// escape sequences.
func stripWidth(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
