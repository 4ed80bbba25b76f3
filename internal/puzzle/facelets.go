package puzzle

import (
	"strings"

	"github.com/Faultbox/cub3r/pkg/math"
)

// Color is a sticker colour. Each face has the colour of its centre.
type Color int

const (
	Green Color = iota
	Blue
	Orange
	Red
	White
	Yellow
)

var colorLetters = [...]string{"G", "B", "O", "R", "W", "Y"}
var colorNames = [...]string{"green", "blue", "orange", "red", "white", "yellow"}

func (c Color) String() string {
	if c < Green || c > Yellow {
		return "?"
	}
	return colorLetters[c]
}

// Name returns the lower-case colour name.
func (c Color) Name() string {
	if c < Green || c > Yellow {
		return "unknown"
	}
	return colorNames[c]
}

// HomeColor returns the colour of face f on a solved cube.
// Colours are laid out in Face order.
func HomeColor(f Face) Color {
	return Color(f)
}

// Sticker is one coloured side of a piece, named by the face it shows on
// when the piece is home.
type Sticker struct {
	Face  Face
	Color Color
}

// Stickers returns the coloured sides of the piece whose home is slot id.
// Corners have three, edges two, centres one.
func Stickers(id int) []Sticker {
	pos := SlotPosition(id)
	var out []Sticker
	for _, f := range Faces {
		if pos.Dot(faceTable[f].Axis) == 1 {
			out = append(out, Sticker{Face: f, Color: HomeColor(f)})
		}
	}
	return out
}

// Facelets holds the nine sticker colours of every face. Each face is
// read row by row as seen from outside, with the top face viewed with
// the front below it and the bottom face with the front above it.
type Facelets [6][9]Color

// faceFrame is the (right, up) pair a face is read in.
var faceFrame = [6][2]math.Vec3{
	Front:  {{X: 1}, {Y: 1}},
	Back:   {{X: -1}, {Y: 1}},
	Left:   {{Z: 1}, {Y: 1}},
	Right:  {{Z: -1}, {Y: 1}},
	Top:    {{X: 1}, {Z: -1}},
	Bottom: {{X: 1}, {Z: 1}},
}

// FaceletSlot returns the slot under sticker i (0-8, row major) of face f.
func FaceletSlot(f Face, i int) int {
	right, up := faceFrame[f][0], faceFrame[f][1]
	row, col := i/3, i%3
	pos := faceTable[f].Axis.
		Add(right.Scale(float32(col - 1))).
		Add(up.Scale(float32(1 - row)))
	slot, ok := SlotAt(pos)
	if !ok {
		panic("puzzle: facelet outside the cube")
	}
	return slot
}

// Facelets derives the sticker colours from the slot permutation and the
// committed piece orientations. While a turn is animating this shows the
// state before the turn.
func (c *Cube) Facelets() Facelets {
	var out Facelets
	for _, f := range Faces {
		axis := faceTable[f].Axis
		for i := 0; i < 9; i++ {
			p := c.Piece(FaceletSlot(f, i))
			out[f][i] = p.stickerFacing(axis)
		}
	}
	return out
}

// stickerFacing returns the colour the piece shows in world direction dir.
func (p *Piece) stickerFacing(dir math.Vec3) Color {
	home := p.baseline.Conjugate().Rotate(dir).Round()
	for _, f := range Faces {
		if faceTable[f].Axis == home {
			return HomeColor(f)
		}
	}
	return HomeColor(Front)
}

// IsSolved reports whether every face shows a single colour.
func (c *Cube) IsSolved() bool {
	return c.Facelets().Solved()
}

// Solved reports whether every face is a single colour.
func (fl Facelets) Solved() bool {
	for _, face := range fl {
		for _, col := range face[1:] {
			if col != face[0] {
				return false
			}
		}
	}
	return true
}

// String renders each face as a line such as "front: GGGGGGGGG".
func (fl Facelets) String() string {
	var b strings.Builder
	for _, f := range Faces {
		b.WriteString(f.String())
		b.WriteString(": ")
		for _, col := range fl[f] {
			b.WriteString(col.String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
