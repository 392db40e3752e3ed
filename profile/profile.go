// Package profile generates the planar profile curves that are revolved
// into ovoid solids.
//
// A profile is a polyline in the meridian plane of the solid of
// revolution. Closed families trace their full closed curve over one
// parameter turn and sweep half a revolution; open families trace a
// half-section from pole to pole and sweep the full revolution. Both
// begin and end exactly on the revolution axis so the swept lattice can
// be welded shut at the poles.
package profile

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrSampleCount is returned when a curve is sampled with a sample
// count of two or fewer. The pipeline needs at least three samples per
// curve segment to produce a non-flat solid.
var ErrSampleCount = errors.New("need sample count greater than 2")

// Point is a profile sample in the meridian plane. R is the signed
// distance from the revolution axis, Z the position along it. Samples
// with R == 0 lie on the axis and become mesh poles.
type Point struct {
	R, Z float64
}

// Revolution describes how a profile is swept into a solid.
type Revolution struct {
	Axis r3.Vec  // revolution axis
	Arc  float64 // total swept angle in radians
}

// Curve is a profile curve family. Implementations are value types
// holding the family's shape parameters.
type Curve interface {
	// Profile samples the curve with a density derived from samples.
	// Implementations return ErrSampleCount for samples <= 2 and
	// place the first and last point exactly on the axis.
	Profile(samples int) ([]Point, error)
	// Revolution returns the sweep that closes the family's solid.
	Revolution() Revolution
}
