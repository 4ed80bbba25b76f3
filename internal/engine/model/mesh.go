package model

import (
	"github.com/Faultbox/cub3r/internal/puzzle"
	"github.com/Faultbox/cub3r/pkg/math"
)

// faceNormals are the six outward directions of a box in Face order.
var faceNormals = [6]math.Vec3{
	puzzle.Front:  {Z: 1},
	puzzle.Back:   {Z: -1},
	puzzle.Left:   {X: -1},
	puzzle.Right:  {X: 1},
	puzzle.Top:    {Y: 1},
	puzzle.Bottom: {Y: -1},
}

// BuildPiece creates the mesh of the piece whose home is slot id. The mesh
// sits at the slot's position in cube space so a rotation about the
// origin turns it with its layer.
func BuildPiece(id int, opts BuildOptions) *Mesh {
	m := &Mesh{
		Bounds: Bounds{
			Min: [3]float32{1e10, 1e10, 1e10},
			Max: [3]float32{-1e10, -1e10, -1e10},
		},
	}

	center := puzzle.SlotPosition(id).Scale(1 + opts.Spacing)
	half := opts.Size / 2

	for _, n := range faceNormals {
		m.addQuad(center.Add(n.Scale(half)), n, half, BodyColor)
	}

	// Stickers float just above the body
	stickerHalf := half * (1 - opts.StickerInset)
	for _, s := range puzzle.Stickers(id) {
		n := faceNormals[s.Face]
		m.addQuad(center.Add(n.Scale(half+opts.StickerLift)), n, stickerHalf, StickerColor(s.Color))
	}

	return m
}

// BuildCube creates the meshes of all pieces, indexed by piece ID.
func BuildCube(opts BuildOptions) []*Mesh {
	meshes := make([]*Mesh, puzzle.PieceCount)
	for id := range meshes {
		meshes[id] = BuildPiece(id, opts)
	}
	return meshes
}

// addQuad appends a square of half-size h centred on c facing n, wound
// anticlockwise when seen from the front.
func (m *Mesh) addQuad(c, n math.Vec3, h float32, color [3]float32) {
	// u x v == n for an axis-aligned n
	u := math.Vec3{X: n.Y, Y: n.Z, Z: n.X}
	v := n.Cross(u)

	base := uint32(len(m.Vertices))
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for _, k := range corners {
		pos := c.Add(u.Scale(k[0] * h)).Add(v.Scale(k[1] * h))
		m.Vertices = append(m.Vertices, Vertex{
			Position: pos.Array(),
			Normal:   n.Array(),
			Color:    color,
		})
		updateBounds(&m.Bounds, pos.Array())
	}
	m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}
