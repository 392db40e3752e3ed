package render

import (
	"io"

	"github.com/ovogen/ovoid"
	"gonum.org/v1/gonum/spatial/r3"
)

// Renderer streams model triangles in batches. Implementations
// return io.EOF once the model is exhausted.
type Renderer interface {
	ReadTriangles(t []r3.Triangle) (int, error)
}

// NewMeshRenderer returns a Renderer which streams the geometry of m.
// Triangles collapsed by vertex welding are skipped.
func NewMeshRenderer(m *ovoid.Mesh) Renderer {
	return &meshRenderer{mesh: m}
}

type meshRenderer struct {
	mesh *ovoid.Mesh
	next int // index of first unread triangle
}

func (mr *meshRenderer) ReadTriangles(dst []r3.Triangle) (n int, err error) {
	if len(dst) == 0 {
		panic("cannot write to empty triangle slice")
	}
	verts := mr.mesh.Vertices
	for n < len(dst) {
		if mr.next == len(mr.mesh.Triangles) {
			return n, io.EOF
		}
		t := mr.mesh.Triangles[mr.next]
		mr.next++
		if t.Collapsed() {
			continue
		}
		dst[n] = r3.Triangle{verts[t[0]], verts[t[1]], verts[t[2]]}
		n++
	}
	return n, nil
}
