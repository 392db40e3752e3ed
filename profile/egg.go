package profile

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Egg is the closed-form egg curve obtained by shearing an ellipse
// along its major axis (Huegelschaeffer's construction):
//
//	y^2 (A^2 + 2Dx + D^2) = B^2 (A^2 - x^2)
//
// A and B are the semi-axes, D the asymmetry offset. D=0 degenerates to
// the ellipse with semi-axes A and B, and A=B, D=0 to a sphere. The
// pointed end sits at Z=+A.
//
// Unlike ThreeArc the profile is the full closed curve traced over one
// parameter turn, so its sweep is half a revolution: the descending
// half of the curve covers the far side of the solid.
type Egg struct {
	A, B float64 // semi-axes, A along the revolution axis
	D    float64 // asymmetry offset, 0 <= D < A
}

var _ Curve = Egg{}

// Revolution sweeps the closed profile half a turn about +Z.
func (e Egg) Revolution() Revolution {
	return Revolution{Axis: r3.Vec{Z: 1}, Arc: math.Pi}
}

// Profile traces the closed curve with 2*samples steps of pi/samples.
// The returned polyline has 2*samples+1 points: it starts and ends at
// the blunt pole (0,-A) and passes through the pointed pole (0,+A)
// halfway. Pole samples are emitted exactly on the axis.
func (e Egg) Profile(samples int) ([]Point, error) {
	if samples <= 2 {
		return nil, ErrSampleCount
	}
	if e.A <= 0 || e.B <= 0 {
		return nil, errors.New("need greater than zero egg semi-axes")
	}
	if e.D < 0 || e.D >= e.A {
		return nil, errors.New("egg offset must satisfy 0 <= D < A")
	}
	n := samples
	dtheta := math.Pi / float64(n)
	pts := make([]Point, 2*n+1)
	pts[0] = Point{R: 0, Z: -e.A}
	pts[n] = Point{R: 0, Z: e.A}
	pts[2*n] = Point{R: 0, Z: -e.A}
	for j := 1; j < 2*n; j++ {
		if j == n {
			continue
		}
		sin, cos := math.Sincos(math.Pi - float64(j)*dtheta)
		x := e.A * cos
		pts[j] = Point{
			R: e.A * e.B * sin / math.Sqrt(e.A*e.A+2*e.D*x+e.D*e.D),
			Z: x,
		}
	}
	return pts, nil
}
