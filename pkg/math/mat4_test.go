package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(Vec3{1, 2, 3})
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(Vec3{5, 10, 15})

	// Translation lives in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestScale(t *testing.T) {
	m := Scale(Vec3{2, 3, 4})

	if m[0] != 2 || m[5] != 3 || m[10] != 4 {
		t.Errorf("Scale diagonal: got (%f, %f, %f), want (2, 3, 4)", m[0], m[5], m[10])
	}
}

func TestTransformVec3(t *testing.T) {
	m := Translate(Vec3{10, 20, 30})
	got := m.TransformVec3(Vec3{1, 2, 3})

	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformVec3: got %v, want %v", got, want)
	}
}

func TestMulOrder(t *testing.T) {
	// Scale * Translate applies the translation first, then scales it.
	m := Scale(Vec3{2, 2, 2}).Mul(Translate(Vec3{1, 0, 0}))
	got := m.TransformVec3(Vec3{})

	want := Vec3{2, 0, 0}
	if got != want {
		t.Errorf("S*T origin: got %v, want %v", got, want)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1.0, 0.1, 100.0)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 5}
	m := LookAt(eye, Vec3{}, AxisY)

	// The eye maps to the view-space origin
	got := m.TransformVec3(eye)
	if abs(got.X) > 0.0001 || abs(got.Y) > 0.0001 || abs(got.Z) > 0.0001 {
		t.Errorf("LookAt(eye) should map eye to origin, got %v", got)
	}

	// The target sits on the -Z axis in view space
	center := m.TransformVec3(Vec3{})
	if abs(center.Z+5) > 0.0001 {
		t.Errorf("LookAt center z: got %f, want -5", center.Z)
	}
}

func TestMat3x3(t *testing.T) {
	m := Scale(Vec3{1, 2, 3}).Mul(Translate(Vec3{7, 8, 9}))
	m3 := m.Mat3x3()

	want := [9]float32{1, 0, 0, 0, 2, 0, 0, 0, 3}
	if m3 != want {
		t.Errorf("Mat3x3: got %v, want %v", m3, want)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
