package model

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/cub3r/internal/puzzle"
	"github.com/Faultbox/cub3r/pkg/math"
)

func TestBuildPieceCounts(t *testing.T) {
	tests := []struct {
		name     string
		id       int
		stickers int
	}{
		{"corner", 7, 3},
		{"edge", 12, 2},
		{"centre", 22, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := BuildPiece(tt.id, DefaultBuildOptions())
			quads := 6 + tt.stickers
			if len(m.Vertices) != quads*4 {
				t.Errorf("vertices = %d, want %d", len(m.Vertices), quads*4)
			}
			if len(m.Indices) != quads*6 {
				t.Errorf("indices = %d, want %d", len(m.Indices), quads*6)
			}
			for _, idx := range m.Indices {
				if int(idx) >= len(m.Vertices) {
					t.Fatalf("index %d out of range", idx)
				}
			}
		})
	}
}

func TestBuildPieceBounds(t *testing.T) {
	opts := DefaultBuildOptions()
	opts.StickerLift = 0
	m := BuildPiece(7, opts)

	want := puzzle.SlotPosition(7).Scale(1 + opts.Spacing).Array()
	got := m.Bounds.Center()
	for i := range want {
		if gomath.Abs(float64(got[i]-want[i])) > 1e-5 {
			t.Errorf("bounds centre = %v, want %v", got, want)
			break
		}
	}

	size := m.Bounds.Max[0] - m.Bounds.Min[0]
	if gomath.Abs(float64(size-opts.Size)) > 1e-5 {
		t.Errorf("piece size = %v, want %v", size, opts.Size)
	}
}

func TestQuadWindingFacesOutward(t *testing.T) {
	m := BuildPiece(0, DefaultBuildOptions())
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := vec(m.Vertices[m.Indices[i]].Position)
		b := vec(m.Vertices[m.Indices[i+1]].Position)
		c := vec(m.Vertices[m.Indices[i+2]].Position)
		n := vec(m.Vertices[m.Indices[i]].Normal)

		if b.Sub(a).Cross(c.Sub(a)).Dot(n) <= 0 {
			t.Fatalf("triangle %d is wound clockwise", i/3)
		}
	}
}

func TestStickerColors(t *testing.T) {
	m := BuildPiece(7, DefaultBuildOptions())

	found := map[[3]float32]bool{}
	for _, v := range m.Vertices {
		found[v.Color] = true
	}
	for _, c := range []puzzle.Color{puzzle.Green, puzzle.Red, puzzle.White} {
		if !found[StickerColor(c)] {
			t.Errorf("missing %s sticker on the front-right-top corner", c.Name())
		}
	}
	if found[StickerColor(puzzle.Yellow)] {
		t.Error("top corner should not carry a yellow sticker")
	}
}

func TestInterleaved(t *testing.T) {
	m := BuildPiece(22, DefaultBuildOptions())
	data := m.Interleaved()
	if len(data) != len(m.Vertices)*FloatsPerVertex {
		t.Fatalf("interleaved length = %d", len(data))
	}
	v := m.Vertices[5]
	off := 5 * FloatsPerVertex
	if data[off+3] != v.Normal[0] || data[off+6] != v.Color[0] {
		t.Error("interleaved layout should be position, normal, colour")
	}
}

func TestBuildCube(t *testing.T) {
	meshes := BuildCube(DefaultBuildOptions())
	if len(meshes) != puzzle.PieceCount {
		t.Fatalf("meshes = %d, want %d", len(meshes), puzzle.PieceCount)
	}
	for id, m := range meshes {
		if m == nil || len(m.Vertices) == 0 {
			t.Errorf("piece %d has no mesh", id)
		}
	}
}

func vec(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
