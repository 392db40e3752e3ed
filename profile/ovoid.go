package profile

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ThreeArc is the classical three-centred ovoid half-section: a quarter
// circle of radius R joined to a flank arc of radius 2R and a cap arc
// of radius (2-sqrt2)R, all tangent-continuous. The blunt end sits at
// Z=-R, the pointed end at Z=(3-sqrt2)R, the widest ring at Z=0.
type ThreeArc struct {
	// R is the radius of the base quarter circle.
	R float64
}

var _ Curve = ThreeArc{}

// Revolution sweeps the half-section one full turn about +Z.
func (o ThreeArc) Revolution() Revolution {
	return Revolution{Axis: r3.Vec{Z: 1}, Arc: 2 * math.Pi}
}

// Profile samples the three arcs: samples steps along the base quarter
// circle and ceil(samples/2) along each of the flank and cap arcs.
// The returned polyline has samples+2*ceil(samples/2)+1 points with
// both endpoints exactly on the axis.
func (o ThreeArc) Profile(samples int) ([]Point, error) {
	if samples <= 2 {
		return nil, ErrSampleCount
	}
	if o.R <= 0 {
		return nil, errors.New("need greater than zero base radius")
	}
	r := o.R
	half := (samples + 1) / 2
	pts := make([]Point, 0, samples+2*half+1)
	pts = append(pts, Point{R: 0, Z: -r})
	// base quarter circle from the bottom pole to the equator
	pts = appendArc(pts, 0, 0, r, -math.Pi/2, 0, samples)
	// flank arc, tangent to the base circle at the equator
	pts = appendArc(pts, -r, 0, 2*r, 0, math.Pi/4, half)
	// cap arc closing onto the axis
	pts = appendArc(pts, 0, r, (2-math.Sqrt2)*r, math.Pi/4, math.Pi/2, half)
	pts[len(pts)-1] = Point{R: 0, Z: (3 - math.Sqrt2) * r}
	return pts, nil
}

// appendArc appends steps points along the circular arc centred at
// (cr,cz), excluding the start angle and including the end angle.
func appendArc(dst []Point, cr, cz, radius, from, to float64, steps int) []Point {
	dtheta := (to - from) / float64(steps)
	for j := 1; j <= steps; j++ {
		sin, cos := math.Sincos(from + float64(j)*dtheta)
		dst = append(dst, Point{R: cr + radius*cos, Z: cz + radius*sin})
	}
	return dst
}
