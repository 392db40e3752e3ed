package ovoid

import (
	"errors"
	"fmt"
	"math"

	"github.com/ovogen/ovoid/profile"
	"gonum.org/v1/gonum/spatial/r3"
)

// Grid is the vertex lattice of a revolved profile: Rings lattice rows,
// one per sweep angle, each holding Samples profile points. Storage is
// ring major, the vertex at (ring, sample) sits at ring*Samples+sample.
type Grid struct {
	Vertices []r3.Vec
	Samples  int // points per ring
	Rings    int // rings, including the duplicated closing ring
}

// At returns the vertex at a ring and sample position.
func (g *Grid) At(ring, sample int) r3.Vec {
	return g.Vertices[ring*g.Samples+sample]
}

// Revolve sweeps profile points about axis over a total angle arc in
// equal steps. Ring k holds the profile rotated by k*arc/steps; ring
// steps lands on the full arc, so closed sweeps duplicate earlier
// vertices up to floating point error and are welded shut afterwards.
// Profile points on the axis stay exactly on it in every ring.
func Revolve(pts []profile.Point, axis r3.Vec, steps int, arc float64) (*Grid, error) {
	if len(pts) < 2 || steps < 1 {
		return nil, fmt.Errorf("revolve %d profile points over %d steps: %w", len(pts), steps, ErrDegenerateGrid)
	}
	if r3.Norm(axis) == 0 {
		return nil, errors.New("zero revolution axis")
	}
	w := r3.Unit(axis)
	u := perpendicular(w)
	g := &Grid{
		Vertices: make([]r3.Vec, 0, (steps+1)*len(pts)),
		Samples:  len(pts),
		Rings:    steps + 1,
	}
	ring0 := make([]r3.Vec, len(pts))
	for j, p := range pts {
		ring0[j] = r3.Add(r3.Scale(p.R, u), r3.Scale(p.Z, w))
	}
	g.Vertices = append(g.Vertices, ring0...)
	for k := 1; k <= steps; k++ {
		m := rotationMat(w, float64(k)*arc/float64(steps))
		for _, v := range ring0 {
			g.Vertices = append(g.Vertices, m.MulVec(v))
		}
	}
	return g, nil
}

// rotationMat returns the Rodrigues rotation matrix about the unit
// axis w: I + sin(angle)*K + (1-cos(angle))*K*K with K the skew matrix
// of w.
func rotationMat(w r3.Vec, angle float64) *r3.Mat {
	sin, cos := math.Sincos(angle)
	k := r3.Skew(w)
	k2 := r3.NewMat(nil)
	k2.Mul(k, k)
	k2.Scale(1-cos, k2)
	m := r3.NewMat(nil)
	m.Scale(sin, k)
	m.Add(m, r3.Eye())
	m.Add(m, k2)
	return m
}

// perpendicular returns a unit vector normal to the unit vector w. The
// canonical +Z axis maps to +X, placing ring 0 in the XZ plane.
func perpendicular(w r3.Vec) r3.Vec {
	other := r3.Vec{Y: 1}
	if math.Abs(w.Y) >= math.Abs(w.X) && math.Abs(w.Y) >= math.Abs(w.Z) {
		other = r3.Vec{Z: 1}
	}
	return r3.Unit(r3.Cross(other, w))
}
