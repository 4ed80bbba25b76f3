package puzzle

import (
	"testing"

	"github.com/Faultbox/cub3r/pkg/math"
)

func TestPieceIdle(t *testing.T) {
	p := NewPiece(7)
	if p.ID() != 7 {
		t.Errorf("ID() = %d, want 7", p.ID())
	}
	if p.IsAnimating() {
		t.Error("new piece should be idle")
	}
	p.Tick()
	if p.IsAnimating() || p.Progress() != 0 {
		t.Error("Tick on idle piece should do nothing")
	}
}

func TestPieceProgress(t *testing.T) {
	p := NewPiece(0)
	p.LocalRotate(90, math.AxisZ, 0.25)
	if !p.IsAnimating() {
		t.Fatal("piece should be animating after first step")
	}
	if p.Progress() != 0.25 {
		t.Errorf("progress = %v, want 0.25", p.Progress())
	}

	p.Tick()
	if p.Progress() != 0.5 {
		t.Errorf("progress = %v, want 0.5", p.Progress())
	}

	// Halfway through a quarter turn is 45 degrees
	want := math.QuatFromAxisAngle(math.AxisZ, math.Radians(45))
	if !p.Orientation().SameRotation(want, 1e-5) {
		t.Errorf("orientation at 0.5 = %v, want %v", p.Orientation(), want)
	}

	p.Tick()
	p.Tick()
	if p.IsAnimating() {
		t.Error("piece should be idle after four steps of 0.25")
	}
}

func TestPieceLatchesParameters(t *testing.T) {
	p := NewPiece(0)
	p.LocalRotate(90, math.AxisZ, 0.5)

	// Different arguments mid-animation are ignored
	p.LocalRotate(-90, math.AxisX, 0.1)
	if p.IsAnimating() {
		t.Fatal("second call should finish the latched animation")
	}

	want := math.QuatFromAxisAngle(math.AxisZ, math.Radians(90))
	if !p.Baseline().SameRotation(want, 1e-6) {
		t.Errorf("baseline = %v, want %v", p.Baseline(), want)
	}
}

func TestPieceIgnoresZeroStep(t *testing.T) {
	p := NewPiece(0)
	p.LocalRotate(90, math.AxisZ, 0)
	if p.IsAnimating() {
		t.Error("zero step should not start an animation")
	}
}

func TestPieceIgnoresStepBelowPrecision(t *testing.T) {
	p := NewPiece(0)
	p.LocalRotate(90, math.AxisZ, 0.00004)
	if p.IsAnimating() {
		t.Error("a step that rounds to zero should not start an animation")
	}

	p.LocalRotate(90, math.AxisZ, MinStep)
	if !p.IsAnimating() || p.Progress() != MinStep {
		t.Errorf("MinStep: animating %v, progress %v", p.IsAnimating(), p.Progress())
	}
}

func TestPieceComposesWorldDelta(t *testing.T) {
	p := NewPiece(7)
	rotateFully(p, 90, math.AxisZ)
	rotateFully(p, 90, math.AxisX)

	// Second delta is applied in world space, after the first
	qz := math.QuatFromAxisAngle(math.AxisZ, math.Radians(90))
	qx := math.QuatFromAxisAngle(math.AxisX, math.Radians(90))
	want := qx.Mul(qz)
	if !p.Baseline().SameRotation(want, 1e-6) {
		t.Errorf("baseline = %v, want %v", p.Baseline(), want)
	}

	// (1,1,1) -> Z90 -> (-1,1,1) -> X90 -> (-1,-1,1)
	got := p.Baseline().Rotate(p.HomePosition()).Round()
	if got != (math.Vec3{X: -1, Y: -1, Z: 1}) {
		t.Errorf("home position moved to %v", got)
	}
}

func TestPieceTransformOrder(t *testing.T) {
	p := NewPiece(24)
	rotateFully(p, 90, math.AxisZ)
	p.SetTranslation(math.Translate(math.Vec3{X: 0, Y: 0, Z: -5}))

	// Local rotation happens first, then translation
	got := p.Transform().TransformVec3(math.Vec3{X: 1})
	want := math.Vec3{X: 0, Y: 1, Z: -5}
	if got.Sub(want).Length() > 1e-5 {
		t.Errorf("Transform applied to (1,0,0) = %v, want %v", got, want)
	}

	p.SetScale(math.Scale(math.Vec3{X: 2, Y: 2, Z: 2}))
	got = p.Transform().TransformVec3(math.Vec3{X: 1})
	want = math.Vec3{X: 0, Y: 2, Z: -10}
	if got.Sub(want).Length() > 1e-5 {
		t.Errorf("scaled Transform = %v, want %v", got, want)
	}
}

func TestPieceWorldRotation(t *testing.T) {
	p := NewPiece(24)
	p.SetTranslation(math.Translate(math.Vec3{Z: -5}))
	p.SetWorldRotation(math.QuatFromAxisAngle(math.AxisY, math.Radians(90)).ToMat4())

	// World rotation applies after translation: (1,0,-5) turned about Y
	got := p.Transform().TransformVec3(math.Vec3{X: 1})
	want := math.Vec3{X: -5, Y: 0, Z: -1}
	if got.Sub(want).Length() > 1e-5 {
		t.Errorf("Transform applied to (1,0,0) = %v, want %v", got, want)
	}

	// Turning the piece does not disturb the world factor
	rotateFully(p, 90, math.AxisZ)
	got = p.Transform().TransformVec3(math.Vec3{X: 1})
	want = math.Vec3{X: -5, Y: 1, Z: 0}
	if got.Sub(want).Length() > 1e-5 {
		t.Errorf("after local turn, Transform = %v, want %v", got, want)
	}
}

func TestSnapQuatStaysOnLattice(t *testing.T) {
	p := NewPiece(0)
	axes := []math.Vec3{math.AxisX, math.AxisY, math.AxisZ}
	for i := 0; i < 500; i++ {
		rotateFully(p, 90, axes[(i*7)%3])
	}

	q := p.Baseline()
	for _, c := range []float32{q.X, q.Y, q.Z, q.W} {
		if snapComponent(c) != c {
			t.Errorf("component %v is off the lattice", c)
		}
	}
	if l := q.Dot(q); abs32(l-1) > 1e-6 {
		t.Errorf("baseline length^2 = %v", l)
	}
}

func rotateFully(p *Piece, angle float32, axis math.Vec3) {
	p.LocalRotate(angle, axis, DefaultStep)
	for p.IsAnimating() {
		p.Tick()
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
