// Package ovoid generates closed triangle meshes of egg-shaped solids
// of revolution.
//
// A mesh is produced in four stages: a profile curve family is sampled
// in the meridian plane (package profile), the samples are revolved
// into a ring lattice, the lattice is covered with quad-strip triangles
// and the duplicated pole and seam vertices are welded away. The result
// is an indexed, outward wound, watertight mesh ready for STL or OBJ
// persistence (package render) or raster preview (package preview).
package ovoid

import (
	"errors"
	"math"

	"github.com/ovogen/ovoid/profile"
)

const (
	pi = math.Pi
	// weldTolerance merges seam and pole duplicates of the sweep. It is
	// far below any inter-sample spacing and far above the closure
	// error of the trigonometric stepping.
	weldTolerance = 1e-9
)

// ErrDegenerateGrid reports a vertex lattice with fewer than two rings
// or two samples per ring, which cannot be triangulated.
var ErrDegenerateGrid = errors.New("need at least a 2x2 vertex lattice")

// NewMesh generates the welded triangle mesh of the solid described by
// c at sample density nbSamples. nbSamples must be greater than 2.
// Profile sample and ring counts grow linearly with nbSamples, the
// triangle count quadratically.
func NewMesh(c profile.Curve, nbSamples int) (*Mesh, error) {
	pts, err := c.Profile(nbSamples)
	if err != nil {
		return nil, err
	}
	rev := c.Revolution()
	// keep the ring step at arc/steps == pi/nbSamples
	steps := int(math.Round(rev.Arc * float64(nbSamples) / pi))
	grid, err := Revolve(pts, rev.Axis, steps, rev.Arc)
	if err != nil {
		return nil, err
	}
	tris, err := Triangulate(grid.Rings, grid.Samples)
	if err != nil {
		return nil, err
	}
	verts, tris := Weld(grid.Vertices, tris, weldTolerance)
	m := &Mesh{Vertices: verts, Triangles: tris}
	m.orientOutward()
	return m, nil
}
