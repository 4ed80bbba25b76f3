package puzzle

import (
	"fmt"

	"github.com/Faultbox/cub3r/pkg/math"
)

// PieceCount is the number of visible pieces of a 3x3x3 cube (the core
// is never drawn and never moves).
const PieceCount = 26

// Slot ranges. Slots 0-7 are corners, 8-19 edges, 20-25 face centres.
const (
	firstEdge   = 8
	firstCentre = 20
)

// Face identifies one of the six outer layers.
type Face int

const (
	Front Face = iota
	Back
	Left
	Right
	Top
	Bottom
)

// Faces lists every face in table order.
var Faces = [...]Face{Front, Back, Left, Right, Top, Bottom}

var faceNames = [...]string{"front", "back", "left", "right", "top", "bottom"}

// faceLetters are the standard notation letters (U/D for top/bottom).
var faceLetters = [...]byte{'F', 'B', 'L', 'R', 'U', 'D'}

func (f Face) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Face(%d)", int(f))
	}
	return faceNames[f]
}

// Letter returns the notation letter of the face.
func (f Face) Letter() byte {
	if !f.Valid() {
		return '?'
	}
	return faceLetters[f]
}

// Valid reports whether f names one of the six faces.
func (f Face) Valid() bool {
	return f >= Front && f <= Bottom
}

// Axis returns the outward unit axis of the face.
func (f Face) Axis() math.Vec3 {
	return faceTable[f].Axis
}

// Turn is the direction of a face rotation, as seen from outside the cube
// looking at that face.
type Turn int

const (
	Clockwise Turn = iota
	Anticlockwise
	Half
)

func (t Turn) String() string {
	switch t {
	case Clockwise:
		return "clockwise"
	case Anticlockwise:
		return "anticlockwise"
	case Half:
		return "half"
	default:
		return fmt.Sprintf("Turn(%d)", int(t))
	}
}

// Valid reports whether t is a known turn.
func (t Turn) Valid() bool {
	return t >= Clockwise && t <= Half
}

// Angle returns the rotation about the face's outward axis in degrees.
// A clockwise turn seen from outside is negative about the outward axis.
func (t Turn) Angle() float32 {
	switch t {
	case Clockwise:
		return -90
	case Anticlockwise:
		return 90
	case Half:
		return -180
	}
	return 0
}

// Inverse returns the turn that undoes t.
func (t Turn) Inverse() Turn {
	switch t {
	case Clockwise:
		return Anticlockwise
	case Anticlockwise:
		return Clockwise
	}
	return t
}

// FaceIndex lists the nine slots of a face. Slots[0:4] are the corners
// and Slots[4:8] the edges, each in anticlockwise order seen from
// outside; Slots[8] is the centre.
type FaceIndex struct {
	Slots [9]int
	Axis  math.Vec3
}

// Corners returns the corner ring.
func (fi FaceIndex) Corners() [4]int {
	return [4]int{fi.Slots[0], fi.Slots[1], fi.Slots[2], fi.Slots[3]}
}

// Edges returns the edge ring.
func (fi FaceIndex) Edges() [4]int {
	return [4]int{fi.Slots[4], fi.Slots[5], fi.Slots[6], fi.Slots[7]}
}

// Centre returns the centre slot.
func (fi FaceIndex) Centre() int {
	return fi.Slots[8]
}

var faceTable = [6]FaceIndex{
	Front:  {Slots: [9]int{6, 2, 3, 7, 10, 9, 11, 12, 22}, Axis: math.Vec3{X: 0, Y: 0, Z: 1}},
	Back:   {Slots: [9]int{4, 5, 1, 0, 13, 17, 15, 8, 20}, Axis: math.Vec3{X: 0, Y: 0, Z: -1}},
	Left:   {Slots: [9]int{6, 4, 0, 2, 18, 13, 14, 10, 23}, Axis: math.Vec3{X: -1, Y: 0, Z: 0}},
	Right:  {Slots: [9]int{7, 3, 1, 5, 19, 11, 16, 15, 24}, Axis: math.Vec3{X: 1, Y: 0, Z: 0}},
	Top:    {Slots: [9]int{6, 7, 5, 4, 12, 19, 17, 18, 25}, Axis: math.Vec3{X: 0, Y: 1, Z: 0}},
	Bottom: {Slots: [9]int{2, 0, 1, 3, 9, 14, 8, 16, 21}, Axis: math.Vec3{X: 0, Y: -1, Z: 0}},
}

// slotPositions gives the grid coordinate of every slot, +x right, +y up,
// +z towards the viewer. Corner slot bits are x=1, z=2, y=4.
var slotPositions = [PieceCount]math.Vec3{
	{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1},
	{X: -1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1},

	{X: 0, Y: -1, Z: -1}, {X: 0, Y: -1, Z: 1}, {X: -1, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1},
	{X: 0, Y: 1, Z: 1}, {X: -1, Y: 0, Z: -1}, {X: -1, Y: -1, Z: 0}, {X: 1, Y: 0, Z: -1},
	{X: 1, Y: -1, Z: 0}, {X: 0, Y: 1, Z: -1}, {X: -1, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0},

	{X: 0, Y: 0, Z: -1}, {X: 0, Y: -1, Z: 0}, {X: 0, Y: 0, Z: 1},
	{X: -1, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0},
}

// Index returns the slot table for a face.
func Index(f Face) FaceIndex {
	return faceTable[f]
}

// SlotPosition returns the grid coordinate of a slot.
func SlotPosition(slot int) math.Vec3 {
	return slotPositions[slot]
}

// SlotAt returns the slot whose grid coordinate is pos.
func SlotAt(pos math.Vec3) (int, bool) {
	pos = pos.Round()
	for slot, p := range slotPositions {
		if p == pos {
			return slot, true
		}
	}
	return -1, false
}

// SlotKind describes what sort of piece sits in a slot.
type SlotKind int

const (
	Corner SlotKind = iota
	Edge
	Centre
)

// KindOf returns the kind of a slot.
func KindOf(slot int) SlotKind {
	switch {
	case slot < firstEdge:
		return Corner
	case slot < firstCentre:
		return Edge
	}
	return Centre
}

func init() {
	if err := validateFaces(); err != nil {
		panic(err)
	}
}

// validateFaces checks every table against the slot coordinates: all
// nine slots lie on the face, the centre sits on the axis, and a
// clockwise quarter turn carries each ring slot onto its predecessor.
func validateFaces() error {
	for _, f := range Faces {
		fi := faceTable[f]
		if SlotPosition(fi.Centre()) != fi.Axis {
			return fmt.Errorf("face %s: centre slot %d is not on the axis", f, fi.Centre())
		}
		for _, slot := range fi.Slots {
			if slot < 0 || slot >= PieceCount {
				return fmt.Errorf("face %s: slot %d out of range", f, slot)
			}
			if SlotPosition(slot).Dot(fi.Axis) != 1 {
				return fmt.Errorf("face %s: slot %d is not on the face", f, slot)
			}
		}

		cw := math.QuatFromAxisAngle(fi.Axis, math.Radians(Clockwise.Angle()))
		for _, ring := range [][4]int{fi.Corners(), fi.Edges()} {
			for p := 0; p < 4; p++ {
				got := cw.Rotate(SlotPosition(ring[p])).Round()
				want := SlotPosition(ring[(p+3)%4])
				if got != want {
					return fmt.Errorf("face %s: slot %d turns to %v, table says slot %d", f, ring[p], got, ring[(p+3)%4])
				}
			}
		}
	}
	return nil
}
