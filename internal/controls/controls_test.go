package controls

import (
	"strings"
	"testing"

	"github.com/Faultbox/cub3r/internal/puzzle"
)

func TestClientBindings(t *testing.T) {
	tests := []struct {
		key   string
		shift bool
		want  puzzle.Move
	}{
		{"k", false, puzzle.Move{Face: puzzle.Front, Turn: puzzle.Clockwise}},
		{"o", true, puzzle.Move{Face: puzzle.Back, Turn: puzzle.Anticlockwise}},
		{"j", false, puzzle.Move{Face: puzzle.Left, Turn: puzzle.Clockwise}},
		{"l", false, puzzle.Move{Face: puzzle.Right, Turn: puzzle.Clockwise}},
		{"i", true, puzzle.Move{Face: puzzle.Top, Turn: puzzle.Anticlockwise}},
		{"m", false, puzzle.Move{Face: puzzle.Bottom, Turn: puzzle.Clockwise}},
	}

	for _, tt := range tests {
		a, ok := Client.Lookup(tt.key, tt.shift)
		if !ok || a.Kind != Turn {
			t.Errorf("%q: no turn bound", tt.key)
			continue
		}
		if a.Move != tt.want {
			t.Errorf("%q shift=%v = %v, want %v", tt.key, tt.shift, a.Move, tt.want)
		}
	}
}

func TestLookupDoesNotMutateMap(t *testing.T) {
	Client.Lookup("k", true)
	a, _ := Client.Lookup("k", false)
	if a.Move.Turn != puzzle.Clockwise {
		t.Error("shifted lookup changed the stored binding")
	}
}

func TestTerminalUpperCaseIsShift(t *testing.T) {
	a, ok := Terminal.Lookup("R", false)
	if !ok {
		t.Fatal("R should be bound")
	}
	if a.Move != (puzzle.Move{Face: puzzle.Right, Turn: puzzle.Anticlockwise}) {
		t.Errorf("R = %v, want R'", a.Move)
	}
}

func TestOtherActions(t *testing.T) {
	tests := []struct {
		km   KeyMap
		key  string
		want Kind
	}{
		{Client, "backspace", Undo},
		{Client, "r", Reset},
		{Client, "escape", Quit},
		{Client, "left", Orbit},
		{Client, "f12", Screenshot},
		{Terminal, "ctrl+r", Reset},
		{Terminal, "q", Quit},
		{Terminal, "z", Undo},
	}
	for _, tt := range tests {
		a, ok := tt.km.Lookup(tt.key, false)
		if !ok || a.Kind != tt.want {
			t.Errorf("%q = %v, want kind %v", tt.key, a, tt.want)
		}
	}

	if _, ok := Client.Lookup("x", false); ok {
		t.Error("x should not be bound")
	}
}

func TestHelp(t *testing.T) {
	h := Client.Help()
	if !strings.HasPrefix(h, "k=F o=B j=L l=R i=U m=D") {
		t.Errorf("Help() = %q", h)
	}
}
