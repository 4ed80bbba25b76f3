package model

import "github.com/Faultbox/cub3r/internal/puzzle"

// BodyColor is the plastic colour of the piece body.
var BodyColor = [3]float32{0.05, 0.05, 0.05}

var stickerColors = map[puzzle.Color][3]float32{
	puzzle.Green:  {0.00, 0.61, 0.28},
	puzzle.Blue:   {0.00, 0.27, 0.68},
	puzzle.Orange: {1.00, 0.35, 0.00},
	puzzle.Red:    {0.72, 0.07, 0.20},
	puzzle.White:  {1.00, 1.00, 1.00},
	puzzle.Yellow: {1.00, 0.84, 0.00},
}

// StickerColor returns the RGB of a sticker colour.
func StickerColor(c puzzle.Color) [3]float32 {
	if rgb, ok := stickerColors[c]; ok {
		return rgb
	}
	return [3]float32{1, 0, 1}
}
