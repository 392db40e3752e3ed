// Package preview produces offline raster previews of generated meshes.
// Meshes are fit to a bi-unit cube before rendering so a single camera
// setup frames models of any size.
package preview

import (
	"image"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/ovogen/ovoid"
	"github.com/ovogen/ovoid/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	width, height = 1280, 720 // output width and height in pixels
	scale         = 2         // supersampling factor
	fovy          = 30        // vertical field of view in degrees
)

// View configures the camera of a preview render.
type View struct {
	// what position (point) to look at
	LookAt r3.Vec
	// which way is up (direction)
	Up r3.Vec
	// where the camera/eye located at (point)
	Eye  r3.Vec
	Far  float64
	Near float64
}

// DefaultView frames the bi-unit cube from a diagonal eye position.
func DefaultView() View {
	return View{
		Up:   r3.Vec{Z: 1},
		Eye:  d3.Elem(3),
		Near: 1,
		Far:  10,
	}
}

// Wireframe renders every lattice edge of m in a single color over a
// plain background. Edges on the far side of the model remain visible.
func Wireframe(m *ovoid.Mesh, view View) image.Image {
	mesh := lineMesh(m)
	mesh.BiUnitCube()
	context := newContext()
	context.Shader = fauxgl.NewSolidColorShader(viewMatrix(view), objectColor)
	context.DrawMesh(mesh)
	return downsample(context.Image())
}

// Shaded renders the surface of m with a Phong shader.
func Shaded(m *ovoid.Mesh, view View) image.Image {
	mesh := triangleMesh(m)
	mesh.BiUnitCube()
	context := newContext()
	context.Cull = fauxgl.CullNone
	light := fauxgl.V(-0.75, 1, 0.25).Normalize()
	shader := fauxgl.NewPhongShader(viewMatrix(view), light, point(view.Eye))
	shader.ObjectColor = objectColor
	context.Shader = shader
	context.DrawMesh(mesh)
	return downsample(context.Image())
}

// SavePNG writes im to a PNG file at path.
func SavePNG(path string, im image.Image) error {
	return fauxgl.SavePNG(path, im)
}

var (
	objectColor     = fauxgl.HexColor("#468966")
	backgroundColor = fauxgl.HexColor("#FFF8E3")
)

func newContext() *fauxgl.Context {
	context := fauxgl.NewContext(width*scale, height*scale)
	context.ClearColorBufferWith(backgroundColor)
	return context
}

func viewMatrix(view View) fauxgl.Matrix {
	aspect := float64(width) / float64(height)
	eye := point(view.Eye)
	center := point(view.LookAt)
	up := point(view.Up)
	return fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, view.Near, view.Far)
}

// downsample antialiases the supersampled render.
func downsample(im image.Image) image.Image {
	return resize.Resize(width, height, im, resize.Bilinear)
}

func point(v r3.Vec) fauxgl.Vector {
	return fauxgl.V(v.X, v.Y, v.Z)
}

func triangleMesh(m *ovoid.Mesh) *fauxgl.Mesh {
	ts := m.TriangleSlice()
	tris := make([]*fauxgl.Triangle, len(ts))
	for i, t := range ts {
		tris[i] = fauxgl.NewTriangleForPoints(point(t[0]), point(t[1]), point(t[2]))
	}
	return fauxgl.NewTriangleMesh(tris)
}

func lineMesh(m *ovoid.Mesh) *fauxgl.Mesh {
	edges := m.Edges()
	lines := make([]*fauxgl.Line, len(edges))
	for i, e := range edges {
		lines[i] = fauxgl.NewLineForPoints(point(m.Vertices[e[0]]), point(m.Vertices[e[1]]))
	}
	return fauxgl.NewLineMesh(lines)
}
