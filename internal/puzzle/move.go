package puzzle

import (
	"fmt"
	"strings"
)

// Move is a single face turn.
type Move struct {
	Face Face
	Turn Turn
}

// Valid reports whether both face and turn are known.
func (m Move) Valid() bool {
	return m.Face.Valid() && m.Turn.Valid()
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	return Move{Face: m.Face, Turn: m.Turn.Inverse()}
}

// String returns the move in standard notation: F, F' or F2.
func (m Move) String() string {
	if !m.Valid() {
		return "?"
	}
	s := string(m.Face.Letter())
	switch m.Turn {
	case Anticlockwise:
		s += "'"
	case Half:
		s += "2"
	}
	return s
}

// ParseMove parses a single move token. Letters are case-insensitive and
// both ' and 2 suffixes are accepted.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Move{}, fmt.Errorf("%w: empty", ErrInvalidMove)
	}

	var m Move
	switch strings.ToUpper(s[:1]) {
	case "F":
		m.Face = Front
	case "B":
		m.Face = Back
	case "L":
		m.Face = Left
	case "R":
		m.Face = Right
	case "U":
		m.Face = Top
	case "D":
		m.Face = Bottom
	default:
		return Move{}, fmt.Errorf("%w: unknown face in %q", ErrInvalidMove, s)
	}

	switch s[1:] {
	case "":
		m.Turn = Clockwise
	case "'", "’":
		m.Turn = Anticlockwise
	case "2", "2'":
		m.Turn = Half
	default:
		return Move{}, fmt.Errorf("%w: unknown modifier in %q", ErrInvalidMove, s)
	}
	return m, nil
}

// ParseMoves parses a whitespace or comma separated sequence such as
// "R U R' U'".
func ParseMoves(s string) ([]Move, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r'
	})
	moves := make([]Move, 0, len(fields))
	for i, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatMoves joins moves with single spaces.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// InvertMoves returns the sequence that undoes moves.
func InvertMoves(moves []Move) []Move {
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}
