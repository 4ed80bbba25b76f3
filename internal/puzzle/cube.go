// Package puzzle implements the 3x3x3 cube: 26 pieces held in slots,
// face turns that animate the pieces with spherical interpolation, and
// the slot permutation that keeps the logical state in step with what
// is drawn.
//
// The cube is driven from a single loop. Rotate starts a turn, Tick
// advances it once per frame, and the slot permutation is applied on
// the tick that finishes the animation. The cube is not safe for
// concurrent use.
package puzzle

import (
	"errors"

	"go.uber.org/zap"

	"github.com/Faultbox/cub3r/internal/logger"
)

// DefaultStep is the per-tick progress increment; a turn takes 20 ticks.
const DefaultStep = 0.05

var (
	// ErrBusy is returned when a turn is requested while one is animating.
	ErrBusy = errors.New("puzzle: rotation in progress")
	// ErrInvalidMove is returned for an unknown face or turn.
	ErrInvalidMove = errors.New("puzzle: invalid move")
)

// State is the rotation engine state.
type State int

const (
	Idle State = iota
	Animating
)

func (s State) String() string {
	if s == Animating {
		return "animating"
	}
	return "idle"
}

// Cube is the puzzle aggregate.
type Cube struct {
	// pieces is the arena, indexed by piece ID.
	pieces [PieceCount]*Piece
	// slots maps slot -> arena index.
	slots [PieceCount]int

	state   State
	step    float32
	pending Move
	undoing bool

	history   []Move
	listeners []func(Move)
}

// Option configures a Cube.
type Option func(*Cube)

// WithStep sets the per-tick progress increment. Values outside
// [MinStep, 1] are ignored.
func WithStep(step float32) Option {
	return func(c *Cube) {
		if step >= MinStep && step <= 1 {
			c.step = step
		}
	}
}

// New creates a solved, idle cube.
func New(opts ...Option) *Cube {
	c := &Cube{step: DefaultStep}
	for _, opt := range opts {
		opt(c)
	}
	for i := range c.pieces {
		c.pieces[i] = NewPiece(i)
		c.slots[i] = i
	}
	return c
}

// Step returns the per-tick progress increment.
func (c *Cube) Step() float32 {
	return c.step
}

// State returns the engine state.
func (c *Cube) State() State {
	return c.state
}

// IsAnimating reports whether a turn is in flight.
func (c *Cube) IsAnimating() bool {
	return c.state == Animating
}

// Piece returns the piece currently in slot.
func (c *Cube) Piece(slot int) *Piece {
	return c.pieces[c.slots[slot]]
}

// Pieces returns every piece in arena (ID) order.
func (c *Cube) Pieces() []*Piece {
	out := make([]*Piece, PieceCount)
	copy(out, c.pieces[:])
	return out
}

// Slots returns a copy of the slot -> piece ID mapping.
func (c *Cube) Slots() [PieceCount]int {
	return c.slots
}

// OnMoveComplete registers fn to be called each time a turn finishes.
func (c *Cube) OnMoveComplete(fn func(Move)) {
	c.listeners = append(c.listeners, fn)
}

// History returns the completed turns, oldest first. Undone turns are
// removed.
func (c *Cube) History() []Move {
	out := make([]Move, len(c.history))
	copy(out, c.history)
	return out
}

// Rotate starts turning face. It returns false and changes nothing if a
// turn is already animating or the request is invalid.
func (c *Cube) Rotate(face Face, turn Turn) bool {
	return c.Apply(Move{Face: face, Turn: turn}) == nil
}

// RotateFront turns the front face.
func (c *Cube) RotateFront(turn Turn) bool { return c.Rotate(Front, turn) }

// RotateBack turns the back face.
func (c *Cube) RotateBack(turn Turn) bool { return c.Rotate(Back, turn) }

// RotateLeft turns the left face.
func (c *Cube) RotateLeft(turn Turn) bool { return c.Rotate(Left, turn) }

// RotateRight turns the right face.
func (c *Cube) RotateRight(turn Turn) bool { return c.Rotate(Right, turn) }

// RotateTop turns the top face.
func (c *Cube) RotateTop(turn Turn) bool { return c.Rotate(Top, turn) }

// RotateBottom turns the bottom face.
func (c *Cube) RotateBottom(turn Turn) bool { return c.Rotate(Bottom, turn) }

// Apply starts a turn and reports why it could not.
func (c *Cube) Apply(m Move) error {
	if !m.Valid() {
		return ErrInvalidMove
	}
	if c.state == Animating {
		logger.Debug("rotation rejected",
			zap.Stringer("move", m),
			zap.Stringer("pending", c.pending))
		return ErrBusy
	}
	c.begin(m, false)
	return nil
}

// Undo starts the inverse of the last completed turn. When it finishes
// the turn is dropped from the history instead of the inverse being
// appended.
func (c *Cube) Undo() bool {
	if c.state == Animating || len(c.history) == 0 {
		return false
	}
	c.begin(c.history[len(c.history)-1].Inverse(), true)
	return true
}

func (c *Cube) begin(m Move, undo bool) {
	fi := faceTable[m.Face]
	angle := m.Turn.Angle()
	for _, slot := range fi.Slots {
		c.pieces[c.slots[slot]].LocalRotate(angle, fi.Axis, c.step)
	}
	c.pending = m
	c.undoing = undo
	c.state = Animating

	logger.Debug("rotation started", zap.Stringer("move", m), zap.Bool("undo", undo))
}

// Tick advances the turn in flight by one step. On the step that
// finishes the animation the slots are permuted, the move is recorded
// and listeners are notified.
func (c *Cube) Tick() {
	if c.state != Animating {
		return
	}

	busy := false
	for _, p := range c.pieces {
		p.Tick()
		if p.IsAnimating() {
			busy = true
		}
	}
	if busy {
		return
	}

	m := c.pending
	c.permute(m)
	c.state = Idle
	c.pending = Move{}

	if c.undoing {
		c.history = c.history[:len(c.history)-1]
		c.undoing = false
	} else {
		c.history = append(c.history, m)
	}

	logger.Debug("rotation finished", zap.Stringer("move", m))
	for _, fn := range c.listeners {
		fn(m)
	}
}

// Settle ticks until the cube is idle and returns the number of ticks.
func (c *Cube) Settle() int {
	n := 0
	for c.state == Animating {
		c.Tick()
		n++
	}
	return n
}

// Reset returns every piece to its home slot with no rotation and
// clears the history.
func (c *Cube) Reset() error {
	if c.state == Animating {
		return ErrBusy
	}
	for i, p := range c.pieces {
		p.resetOrientation()
		c.slots[i] = i
	}
	c.history = c.history[:0]
	return nil
}

// permute moves pieces along the face rings. Clockwise, the piece at
// ring position p ends at p-1; anticlockwise at p+1. The centre stays.
func (c *Cube) permute(m Move) {
	fi := faceTable[m.Face]
	switch m.Turn {
	case Clockwise:
		c.cycle(fi, 3)
	case Anticlockwise:
		c.cycle(fi, 1)
	case Half:
		c.cycle(fi, 2)
	}
}

func (c *Cube) cycle(fi FaceIndex, shift int) {
	for _, ring := range [][4]int{fi.Corners(), fi.Edges()} {
		var old [4]int
		for p, slot := range ring {
			old[p] = c.slots[slot]
		}
		for p := range ring {
			c.slots[ring[(p+shift)%4]] = old[p]
		}
	}
}
