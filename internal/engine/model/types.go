// Package model builds the per-piece meshes of the cube.
package model

// Vertex is one mesh vertex: position, normal and colour.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	Color    [3]float32
}

// FloatsPerVertex is the number of float32 values per interleaved vertex.
const FloatsPerVertex = 9

// Mesh holds the mesh data ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Center returns the middle of the box.
func (b Bounds) Center() [3]float32 {
	return [3]float32{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

// BuildOptions contains options for piece mesh building.
type BuildOptions struct {
	// Size is the edge length of a piece in grid units.
	Size float32
	// Spacing is the gap between neighbouring pieces.
	Spacing float32
	// StickerInset is the fraction of a side left uncovered around a sticker.
	StickerInset float32
	// StickerLift raises stickers off the body to avoid z-fighting.
	StickerLift float32
}

// DefaultBuildOptions returns the options used by the client.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		Size:         0.96,
		Spacing:      0.04,
		StickerInset: 0.08,
		StickerLift:  0.002,
	}
}

// Interleaved returns the vertices as position, normal, colour triples,
// the layout the renderer's vertex attributes expect.
func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Vertices)*FloatsPerVertex)
	for _, v := range m.Vertices {
		out = append(out, v.Position[:]...)
		out = append(out, v.Normal[:]...)
		out = append(out, v.Color[:]...)
	}
	return out
}
