package camera

import (
	"testing"

	"github.com/Faultbox/cub3r/pkg/math"
)

func TestPositionOnAxis(t *testing.T) {
	c := NewOrbitCamera(10, 0, 0, 45)
	got := c.Position()
	want := math.Vec3{Z: 10}
	if got.Sub(want).Length() > 1e-4 {
		t.Errorf("Position() = %v, want %v", got, want)
	}

	c.Pitch = math.Radians(90)
	got = c.Position()
	if got.Sub(math.Vec3{Y: 10}).Length() > 1e-4 {
		t.Errorf("Position() looking down = %v", got)
	}
}

func TestViewMatrixCentersTarget(t *testing.T) {
	c := NewOrbitCamera(9, -35, 30, 45)
	p := c.ViewMatrix().TransformVec3(c.Center)

	// The orbit centre sits straight ahead of the camera
	if abs(p.X) > 1e-4 || abs(p.Y) > 1e-4 {
		t.Errorf("centre in view space = %v, want on -Z axis", p)
	}
	if abs(p.Z+9) > 1e-3 {
		t.Errorf("centre depth = %v, want -9", p.Z)
	}
}

func TestOrbitClampsPitch(t *testing.T) {
	c := NewOrbitCamera(9, 0, 0, 45)
	c.Orbit(0, 10)
	if c.Pitch != c.MaxPitch {
		t.Errorf("Pitch = %v, want clamped to %v", c.Pitch, c.MaxPitch)
	}
	c.HandleDrag(0, -10000)
	if c.Pitch != c.MinPitch {
		t.Errorf("Pitch = %v, want clamped to %v", c.Pitch, c.MinPitch)
	}
}

func TestZoomClamps(t *testing.T) {
	c := NewOrbitCamera(9, 0, 0, 45)
	for i := 0; i < 100; i++ {
		c.HandleZoom(1)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("Distance = %v, want %v", c.Distance, c.MinDistance)
	}
	for i := 0; i < 100; i++ {
		c.HandleZoom(-1)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("Distance = %v, want %v", c.Distance, c.MaxDistance)
	}
}

func TestProjectionMatrix(t *testing.T) {
	c := NewOrbitCamera(9, 0, 0, 90)
	m := c.ProjectionMatrix(2)
	// With a 90 degree FOV, f = 1; x is divided by the aspect
	if abs(m[0]-0.5) > 1e-4 || abs(m[5]-1) > 1e-4 {
		t.Errorf("projection scale = %v, %v", m[0], m[5])
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
