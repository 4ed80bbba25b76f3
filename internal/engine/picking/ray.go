// Package picking casts rays from the screen into the scene to find the
// cube face under the cursor.
package picking

import (
	gomath "math"

	"github.com/Faultbox/cub3r/internal/puzzle"
	"github.com/Faultbox/cub3r/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// CubeBox returns the box of half-size h centred on the origin.
func CubeBox(h float32) AABB {
	return AABB{
		Min: math.Vec3{X: -h, Y: -h, Z: -h},
		Max: math.Vec3{X: h, Y: h, Z: h},
	}
}

// ScreenToNDC converts pixel coordinates to normalized device coordinates
// (-1 to 1, Y up).
func ScreenToNDC(screenX, screenY, viewportW, viewportH float32) (x, y float32) {
	return 2*screenX/viewportW - 1, 1 - 2*screenY/viewportH
}

// PerspectiveRay returns the ray through an NDC point for a perspective
// camera at eye looking at target. fovY is in radians.
func PerspectiveRay(ndcX, ndcY float32, eye, target, up math.Vec3, fovY, aspect float32) Ray {
	forward := target.Sub(eye).Normalize()
	right := forward.Cross(up).Normalize()
	camUp := right.Cross(forward)

	tanHalf := float32(gomath.Tan(float64(fovY) / 2))
	dir := forward.
		Add(right.Scale(ndcX * tanHalf * aspect)).
		Add(camUp.Scale(ndcY * tanHalf))

	return Ray{Origin: eye, Direction: dir.Normalize()}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	origin, dir := r.Origin.Array(), r.Direction.Array()
	lo, hi := box.Min.Array(), box.Max.Array()

	for i := 0; i < 3; i++ {
		if dir[i] == 0 {
			if origin[i] < lo[i] || origin[i] > hi[i] {
				return 0, false
			}
			continue
		}
		t1 := (lo[i] - origin[i]) / dir[i]
		t2 := (hi[i] - origin[i]) / dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// PickFace returns the face of a cube of half-size h, centred on the
// origin, that the ray enters first.
func PickFace(r Ray, h float32) (puzzle.Face, bool) {
	t, ok := r.IntersectAABB(CubeBox(h))
	if !ok {
		return 0, false
	}
	p := r.At(t)

	best := puzzle.Front
	bestDot := float32(-gomath.MaxFloat32)
	for _, f := range puzzle.Faces {
		if d := p.Dot(f.Axis()); d > bestDot {
			best, bestDot = f, d
		}
	}
	return best, true
}
