// Package controls maps key names to cube actions for both frontends.
package controls

import (
	"strings"

	"github.com/Faultbox/cub3r/internal/puzzle"
)

// Kind is the kind of action a key triggers.
type Kind int

const (
	None Kind = iota
	Turn
	Undo
	Reset
	Quit
	Orbit
	Screenshot
)

// Action is what a key press asks for.
type Action struct {
	Kind Kind
	Move puzzle.Move // Turn only

	// Orbit only, in steps
	Yaw, Pitch float32
}

// KeyMap binds key names to actions. Turn bindings are clockwise; shift
// makes them anticlockwise.
type KeyMap map[string]Action

func turn(f puzzle.Face) Action {
	return Action{Kind: Turn, Move: puzzle.Move{Face: f, Turn: puzzle.Clockwise}}
}

// Client is the key map of the OpenGL client.
var Client = KeyMap{
	"k":         turn(puzzle.Front),
	"o":         turn(puzzle.Back),
	"j":         turn(puzzle.Left),
	"l":         turn(puzzle.Right),
	"i":         turn(puzzle.Top),
	"m":         turn(puzzle.Bottom),
	"backspace": {Kind: Undo},
	"r":         {Kind: Reset},
	"escape":    {Kind: Quit},
	"f12":       {Kind: Screenshot},
	"left":      {Kind: Orbit, Yaw: -1},
	"right":     {Kind: Orbit, Yaw: 1},
	"up":        {Kind: Orbit, Pitch: 1},
	"down":      {Kind: Orbit, Pitch: -1},
}

// Terminal is the key map of the terminal frontend, using notation letters.
var Terminal = KeyMap{
	"f":         turn(puzzle.Front),
	"b":         turn(puzzle.Back),
	"l":         turn(puzzle.Left),
	"r":         turn(puzzle.Right),
	"u":         turn(puzzle.Top),
	"d":         turn(puzzle.Bottom),
	"backspace": {Kind: Undo},
	"z":         {Kind: Undo},
	"ctrl+r":    {Kind: Reset},
	"esc":       {Kind: Quit},
	"q":         {Kind: Quit},
	"ctrl+c":    {Kind: Quit},
}

// Lookup returns the action bound to key. A single upper-case letter is
// read as its lower-case key with shift held.
func (km KeyMap) Lookup(key string, shift bool) (Action, bool) {
	if len(key) == 1 && key[0] >= 'A' && key[0] <= 'Z' {
		key = strings.ToLower(key)
		shift = true
	}

	a, ok := km[key]
	if !ok {
		return Action{}, false
	}
	if a.Kind == Turn && shift {
		a.Move.Turn = puzzle.Anticlockwise
	}
	return a, true
}

// Help returns a one-line summary of the turn keys, e.g. "k=F o=B ...".
func (km KeyMap) Help() string {
	var parts []string
	for _, f := range puzzle.Faces {
		for key, a := range km {
			if a.Kind == Turn && a.Move.Face == f {
				parts = append(parts, key+"="+string(f.Letter()))
				break
			}
		}
	}
	return strings.Join(parts, " ") + " (shift: anticlockwise)"
}
