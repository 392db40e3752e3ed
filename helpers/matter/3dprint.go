// Package matter compensates meshes for 3D printing material behavior.
package matter

import (
	"github.com/ovogen/ovoid"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// PLA (polylactic acid) is the most widely used plastic filament material in 3D printing.
	PLA = ViscousMaterial{shrink: 0.2e-2, pullShrink: .45} // 0.2% shrinkage
)

type ViscousMaterial struct {
	// shrink is the thermal contraction shrinkage of a material once the material
	// cools to room temperature after the heated bed is turned off.
	shrink float64
	// pullShrink takes into account viscoelastic shrinkage.
	pullShrink float64
}

// Scale returns a copy of mesh grown uniformly so the print contracts
// to the modelled size once cool. Triangle indices are shared with the
// argument mesh.
func (m ViscousMaterial) Scale(mesh *ovoid.Mesh) *ovoid.Mesh {
	scale := 1 / (1 - m.shrink)
	scaled := &ovoid.Mesh{
		Vertices:  make([]r3.Vec, len(mesh.Vertices)),
		Triangles: mesh.Triangles,
	}
	for i, v := range mesh.Vertices {
		scaled.Vertices[i] = r3.Scale(scale, v)
	}
	return scaled
}

// InternalDimScale corrects an internal cavity dimension so the printed
// hole measures real once shrinkage and viscoelastic pull close it up.
func (m ViscousMaterial) InternalDimScale(real float64) float64 {
	if real <= 0 {
		panic("InternalDimScale only works for non-zero dimensions")
	}
	return real*(m.shrink+1) + m.pullShrink
}
