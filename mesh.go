package ovoid

import (
	"github.com/ovogen/ovoid/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle indexes three mesh vertices, wound counterclockwise seen
// from outside the solid.
type Triangle [3]int

// Collapsed returns true if the triangle repeats a vertex index.
// Welding the poles collapses one triangle of every pole-touching
// quad; collapsed triangles carry no area and are skipped by the
// geometric methods of Mesh.
func (t Triangle) Collapsed() bool {
	return t[0] == t[1] || t[1] == t[2] || t[2] == t[0]
}

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Vertices  []r3.Vec
	Triangles []Triangle
}

// TriangleSlice flattens the mesh into geometric triangles, skipping
// collapsed index triples.
func (m *Mesh) TriangleSlice() []r3.Triangle {
	ts := make([]r3.Triangle, 0, len(m.Triangles))
	for _, t := range m.Triangles {
		if t.Collapsed() {
			continue
		}
		ts = append(ts, r3.Triangle{m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]})
	}
	return ts
}

// Bounds returns the axis aligned bounding box of the mesh.
func (m *Mesh) Bounds() r3.Box {
	s := d3.Set(m.Vertices)
	return r3.Box{Min: s.Min(), Max: s.Max()}
}

// Volume returns the signed volume enclosed by the mesh, computed by
// the divergence theorem relative to the box centre. Outward wound
// meshes enclose positive volume.
func (m *Mesh) Volume() float64 {
	c := d3.Box(m.Bounds()).Center()
	var sum float64
	for _, t := range m.Triangles {
		if t.Collapsed() {
			continue
		}
		a := r3.Sub(m.Vertices[t[0]], c)
		b := r3.Sub(m.Vertices[t[1]], c)
		cc := r3.Sub(m.Vertices[t[2]], c)
		sum += r3.Dot(a, r3.Cross(b, cc))
	}
	return sum / 6
}

// Area returns the surface area of the mesh.
func (m *Mesh) Area() float64 {
	var area float64
	for _, t := range m.TriangleSlice() {
		area += t.Area()
	}
	return area
}

// Edges returns the undirected edges of the mesh as low-high index
// pairs in first-seen order, skipping collapsed triangles.
func (m *Mesh) Edges() [][2]int {
	seen := make(map[[2]int]struct{}, 3*len(m.Triangles)/2)
	edges := make([][2]int, 0, 3*len(m.Triangles)/2)
	for _, t := range m.Triangles {
		if t.Collapsed() {
			continue
		}
		for k := 0; k < 3; k++ {
			a, b := t[k], t[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			e := [2]int{a, b}
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	return edges
}

// orientOutward flips triangles whose normal points toward the solid
// interior. The test is exact for solids star shaped about their box
// centre, which every profile family here produces; it spares the
// lattice triangulation from knowing which half of a closed profile
// curve sweeps the far side of the axis.
func (m *Mesh) orientOutward() {
	c := d3.Box(m.Bounds()).Center()
	for i, t := range m.Triangles {
		if t.Collapsed() {
			continue
		}
		tri := r3.Triangle{m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]}
		if r3.Dot(tri.Normal(), r3.Sub(tri.Centroid(), c)) < 0 {
			m.Triangles[i] = Triangle{t[0], t[2], t[1]}
		}
	}
}
