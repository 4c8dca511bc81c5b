package mesh

import (
	"errors"
	"math"

	"obj-rasterizer/internal/mathutil"
)

// ErrLoad marks every failure to produce a mesh from a file or stream.
var ErrLoad = errors.New("mesh load failure")

// Face holds zero-based indices into the vertex list.
type Face [3]int

// Mesh is an immutable triangle mesh in model space.
type Mesh struct {
	verts []mathutil.Vec3
	faces []Face
}

func (m *Mesh) VertexCount() int { return len(m.verts) }
func (m *Mesh) FaceCount() int   { return len(m.faces) }

func (m *Mesh) Vertex(i int) mathutil.Vec3 { return m.verts[i] }
func (m *Mesh) Face(i int) Face            { return m.faces[i] }

// Bounds returns the axis-aligned extents of all vertices. An empty mesh
// returns two zero vectors.
func (m *Mesh) Bounds() (min, max mathutil.Vec3) {
	if len(m.verts) == 0 {
		return
	}
	min = mathutil.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	max = mathutil.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, v := range m.verts {
		for k := 0; k < 3; k++ {
			if v[k] < min[k] {
				min[k] = v[k]
			}
			if v[k] > max[k] {
				max[k] = v[k]
			}
		}
	}
	return min, max
}
