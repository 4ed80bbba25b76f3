package picking

import (
	"testing"

	"github.com/Faultbox/cub3r/internal/puzzle"
	"github.com/Faultbox/cub3r/pkg/math"
)

func TestScreenToNDC(t *testing.T) {
	tests := []struct {
		x, y         float32
		wantX, wantY float32
	}{
		{400, 300, 0, 0},
		{0, 0, -1, 1},
		{800, 600, 1, -1},
	}
	for _, tt := range tests {
		x, y := ScreenToNDC(tt.x, tt.y, 800, 600)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("ScreenToNDC(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestPickFaceFromEachSide(t *testing.T) {
	for _, f := range puzzle.Faces {
		axis := f.Axis()
		// A ray from outside straight at the face centre
		r := Ray{Origin: axis.Scale(10), Direction: axis.Negate()}
		got, ok := PickFace(r, 1.5)
		if !ok {
			t.Errorf("%v: no hit", f)
			continue
		}
		if got != f {
			t.Errorf("ray towards %v picked %v", f, got)
		}
	}
}

func TestPickFaceMiss(t *testing.T) {
	r := Ray{Origin: math.Vec3{Y: 5, Z: 10}, Direction: math.Vec3{Z: -1}}
	if f, ok := PickFace(r, 1.5); ok {
		t.Errorf("expected miss, picked %v", f)
	}

	// Pointing away from the cube
	r = Ray{Origin: math.Vec3{Z: 10}, Direction: math.Vec3{Z: 1}}
	if _, ok := PickFace(r, 1.5); ok {
		t.Error("ray pointing away should miss")
	}
}

func TestIntersectAABBFromInside(t *testing.T) {
	r := Ray{Origin: math.Vec3{}, Direction: math.Vec3{X: 1}}
	d, ok := r.IntersectAABB(CubeBox(2))
	if !ok || d != 2 {
		t.Errorf("IntersectAABB from inside = (%v, %v), want (2, true)", d, ok)
	}
}

func TestPerspectiveRayCentre(t *testing.T) {
	eye := math.Vec3{Z: 10}
	r := PerspectiveRay(0, 0, eye, math.Vec3{}, math.AxisY, math.Radians(45), 4.0/3)
	if r.Origin != eye {
		t.Errorf("origin = %v, want %v", r.Origin, eye)
	}
	if d := r.Direction.Sub(math.Vec3{Z: -1}).Length(); d > 1e-6 {
		t.Errorf("direction = %v, want (0, 0, -1)", r.Direction)
	}

	f, ok := PickFace(r, 1.5)
	if !ok || f != puzzle.Front {
		t.Errorf("centre ray picked (%v, %v), want front", f, ok)
	}
}

func TestPerspectiveRayOffsets(t *testing.T) {
	r := PerspectiveRay(1, 1, math.Vec3{Z: 10}, math.Vec3{}, math.AxisY, math.Radians(90), 1)
	// tan(45°) = 1, so the corner ray leans one unit right and up per unit forward
	if r.Direction.X <= 0 || r.Direction.Y <= 0 || r.Direction.Z >= 0 {
		t.Errorf("corner ray direction = %v, want +X +Y -Z", r.Direction)
	}
	if d := r.Direction.X - r.Direction.Y; d > 1e-6 || d < -1e-6 {
		t.Errorf("corner ray not symmetric: %v", r.Direction)
	}
}
