// Package lighting computes the light direction for the renderer.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/cub3r/pkg/math"
)

// SunDirection converts longitude/latitude angles in degrees to a unit
// vector pointing towards the light. Longitude turns about the Y axis
// starting at +Z; latitude is the elevation above the XZ plane.
func SunDirection(longitude, latitude float32) math.Vec3 {
	lonRad := float64(math.Radians(longitude))
	latRad := float64(math.Radians(latitude))

	return math.Vec3{
		X: float32(gomath.Cos(latRad) * gomath.Sin(lonRad)),
		Y: float32(gomath.Sin(latRad)),
		Z: float32(gomath.Cos(latRad) * gomath.Cos(lonRad)),
	}
}
