package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := float32(math.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	q := QuatFromAxisAngle(AxisY, Radians(90))

	expectedW := float32(math.Cos(math.Pi / 4))
	expectedY := float32(math.Sin(math.Pi / 4))

	if math.Abs(float64(q.W-expectedW)) > 0.001 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expectedW, q.W)
	}
	if math.Abs(float64(q.Y-expectedY)) > 0.001 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expectedY, q.Y)
	}
}

func TestQuatSlerpEndpoints(t *testing.T) {
	q1 := QuatIdentity()
	q2 := QuatFromAxisAngle(AxisY, Radians(90))

	if r := q1.Slerp(q2, 0); !r.SameRotation(q1, 1e-5) {
		t.Errorf("Slerp at t=0 should equal q1, got %v", r)
	}
	if r := q1.Slerp(q2, 1); !r.SameRotation(q2, 1e-5) {
		t.Errorf("Slerp at t=1 should equal q2, got %v", r)
	}

	// Halfway through a 90 degree turn is a 45 degree turn
	r := q1.Slerp(q2, 0.5)
	expectedW := float32(math.Cos(math.Pi / 8))
	if math.Abs(float64(r.W-expectedW)) > 0.001 {
		t.Errorf("Slerp at t=0.5: expected W ~%v, got %v", expectedW, r.W)
	}
}

func TestQuatSlerpShortestArc(t *testing.T) {
	q1 := QuatIdentity()
	q2 := QuatFromAxisAngle(AxisZ, Radians(90))
	neg := Quat{X: -q2.X, Y: -q2.Y, Z: -q2.Z, W: -q2.W}

	// -q2 is the same rotation; the path must still be the short one
	a := q1.Slerp(q2, 0.5)
	b := q1.Slerp(neg, 0.5)
	if !a.SameRotation(b, 1e-5) {
		t.Errorf("Slerp should take the shortest arc: %v vs %v", a, b)
	}
}

func TestQuatSlerpMatchesMathgl(t *testing.T) {
	tests := []struct {
		name  string
		axis  Vec3
		from  float32
		delta float32
	}{
		{"x quarter", AxisX, 0, -90},
		{"y quarter from 90", AxisY, 90, 90},
		{"z half", AxisZ, 0, 180},
		{"tilted axis", Vec3{1, 1, 0}.Normalize(), 30, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := QuatFromAxisAngle(tt.axis, Radians(tt.from))
			end := QuatFromAxisAngle(tt.axis, Radians(tt.from+tt.delta))

			axis := mgl32.Vec3{tt.axis.X, tt.axis.Y, tt.axis.Z}
			mStart := mgl32.QuatRotate(Radians(tt.from), axis)
			mEnd := mgl32.QuatRotate(Radians(tt.from+tt.delta), axis)

			for _, frac := range []float32{0, 0.05, 0.25, 0.5, 0.75, 1} {
				got := start.Slerp(end, frac)
				ref := mgl32.QuatSlerp(mStart, mEnd, frac)
				want := Quat{X: ref.V[0], Y: ref.V[1], Z: ref.V[2], W: ref.W}
				if !got.SameRotation(want, 1e-4) {
					t.Errorf("t=%v: got %v, mathgl %v", frac, got, want)
				}
			}
		})
	}
}

func TestQuatMulMatchesMathgl(t *testing.T) {
	a := QuatFromAxisAngle(AxisX, Radians(90))
	b := QuatFromAxisAngle(AxisY, Radians(-90))
	got := a.Mul(b)

	ma := mgl32.QuatRotate(Radians(90), mgl32.Vec3{1, 0, 0})
	mb := mgl32.QuatRotate(Radians(-90), mgl32.Vec3{0, 1, 0})
	ref := ma.Mul(mb)

	want := Quat{X: ref.V[0], Y: ref.V[1], Z: ref.V[2], W: ref.W}
	if !got.SameRotation(want, 1e-5) {
		t.Errorf("Mul: got %v, mathgl %v", got, want)
	}
}

func TestQuatRotate(t *testing.T) {
	q := QuatFromAxisAngle(AxisZ, Radians(90))
	got := q.Rotate(AxisX)
	if got.Sub(AxisY).Length() > 1e-5 {
		t.Errorf("Rotate X by 90 about Z: got %v, want %v", got, AxisY)
	}

	// Rotating by the conjugate undoes the rotation
	back := q.Conjugate().Rotate(got)
	if back.Sub(AxisX).Length() > 1e-5 {
		t.Errorf("Conjugate should undo rotation, got %v", back)
	}
}

func TestQuatToMat4(t *testing.T) {
	m := QuatIdentity().ToMat4()

	identity := Identity()
	for i := 0; i < 16; i++ {
		if math.Abs(float64(m[i]-identity[i])) > 0.0001 {
			t.Errorf("Identity quat should produce identity matrix, element %d: got %v, want %v", i, m[i], identity[i])
		}
	}

	// Matrix and quaternion rotation agree
	q := QuatFromAxisAngle(Vec3{1, 2, 3}.Normalize(), 1.1)
	p := Vec3{0.3, -2, 5}
	viaMat := q.ToMat4().TransformVec3(p)
	viaQuat := q.Rotate(p)
	if viaMat.Sub(viaQuat).Length() > 1e-4 {
		t.Errorf("ToMat4 and Rotate disagree: %v vs %v", viaMat, viaQuat)
	}
}

func TestQuatSameRotation(t *testing.T) {
	q := QuatFromAxisAngle(AxisY, Radians(90))
	neg := Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
	if !q.SameRotation(neg, 1e-6) {
		t.Error("q and -q should be the same rotation")
	}
	if q.SameRotation(QuatIdentity(), 1e-3) {
		t.Error("90 degree turn should differ from identity")
	}
}
