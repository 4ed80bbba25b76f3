package puzzle

import (
	gomath "math"

	"github.com/Faultbox/cub3r/pkg/math"
)

// Piece is one rigid sub-cube. Its mesh is built at the home slot's
// position in cube space, so the local rotation turns it about the cube
// centre and the remaining transforms place the whole cube in the world.
type Piece struct {
	id int

	scale         math.Mat4
	worldRotation math.Mat4
	translation   math.Mat4
	localRotation math.Mat4

	// baseline is the orientation committed by the last finished turn.
	baseline    math.Quat
	orientation math.Quat

	// progress is 0 while idle; angle, axis and step are latched for
	// the duration of one animation.
	progress float32
	angle    float32
	axis     math.Vec3
	step     float32
}

// NewPiece creates an idle piece whose home is slot id.
func NewPiece(id int) *Piece {
	p := &Piece{id: id}
	p.scale = math.Identity()
	p.worldRotation = math.Identity()
	p.translation = math.Identity()
	p.resetOrientation()
	return p
}

// ID returns the slot the piece occupies when the cube is solved.
func (p *Piece) ID() int {
	return p.id
}

// HomePosition returns the grid coordinate of the piece's home slot.
func (p *Piece) HomePosition() math.Vec3 {
	return SlotPosition(p.id)
}

// LocalRotate advances the piece one step towards a rotation of angle
// degrees about axis. The first call on an idle piece starts the
// animation and latches its parameters; later calls ignore their
// arguments until the animation completes.
func (p *Piece) LocalRotate(angle float32, axis math.Vec3, step float32) {
	if p.progress == 0 {
		if step < MinStep {
			return
		}
		p.angle = angle
		p.axis = axis.Normalize()
		p.step = step
	}

	p.progress = snapProgress(p.progress + p.step)

	delta := math.QuatFromAxisAngle(p.axis, math.Radians(p.angle))
	target := delta.Mul(p.baseline)

	if p.progress >= 1 {
		p.baseline = snapQuat(target)
		p.orientation = p.baseline
		p.progress = 0
	} else {
		p.orientation = p.baseline.Slerp(target, p.progress)
	}
	p.localRotation = p.orientation.ToMat4()
}

// Tick performs one more animation step with the latched parameters.
// It does nothing when the piece is idle.
func (p *Piece) Tick() {
	if p.progress > 0 {
		p.LocalRotate(p.angle, p.axis, p.step)
	}
}

// IsAnimating reports whether a rotation is in flight.
func (p *Piece) IsAnimating() bool {
	return p.progress > 0
}

// Progress returns the animation progress, 0 when idle.
func (p *Piece) Progress() float32 {
	return p.progress
}

// Orientation returns the orientation currently shown.
func (p *Piece) Orientation() math.Quat {
	return p.orientation
}

// Baseline returns the orientation committed by the last finished turn.
func (p *Piece) Baseline() math.Quat {
	return p.baseline
}

// SetScale sets the scale transform.
func (p *Piece) SetScale(m math.Mat4) {
	p.scale = m
}

// SetWorldRotation sets the world-axis rotation transform.
func (p *Piece) SetWorldRotation(m math.Mat4) {
	p.worldRotation = m
}

// SetTranslation sets the translation transform.
func (p *Piece) SetTranslation(m math.Mat4) {
	p.translation = m
}

// LocalRotation returns the local-axis rotation matrix.
func (p *Piece) LocalRotation() math.Mat4 {
	return p.localRotation
}

// Transform returns the model matrix:
// scale * worldRotation * translation * localRotation.
func (p *Piece) Transform() math.Mat4 {
	return p.scale.Mul(p.worldRotation).Mul(p.translation).Mul(p.localRotation)
}

func (p *Piece) resetOrientation() {
	p.baseline = math.QuatIdentity()
	p.orientation = p.baseline
	p.localRotation = math.Identity()
	p.progress = 0
	p.angle = 0
	p.axis = math.Vec3{}
	p.step = 0
}

// MinStep is the smallest usable step: progress is kept to 4 decimals,
// so anything smaller would round to no movement at all.
const MinStep = 1e-4

// snapProgress rounds to four decimal places so repeated float32 steps
// land exactly on 1.
func snapProgress(v float32) float32 {
	return float32(gomath.Round(float64(v)*1e4) / 1e4)
}

// Components of the 24 cube-symmetry quaternions.
var quatLattice = [...]float64{0, 0.5, gomath.Sqrt2 / 2, 1}

// snapQuat pulls every component onto the lattice of cube-symmetry
// rotations so committed orientations do not drift over many turns.
func snapQuat(q math.Quat) math.Quat {
	q = q.Normalize()
	return math.Quat{
		X: snapComponent(q.X),
		Y: snapComponent(q.Y),
		Z: snapComponent(q.Z),
		W: snapComponent(q.W),
	}
}

func snapComponent(c float32) float32 {
	v := gomath.Abs(float64(c))
	for _, l := range quatLattice {
		if gomath.Abs(v-l) < 1e-3 {
			return float32(gomath.Copysign(l, float64(c)))
		}
	}
	return c
}
