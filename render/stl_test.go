package render_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/hschendel/stl"
	"github.com/ovogen/ovoid"
	"github.com/ovogen/ovoid/internal/d3"
	"github.com/ovogen/ovoid/profile"
	"github.com/ovogen/ovoid/render"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestSTLCreateWriteRead(t *testing.T) {
	const samples = 20
	mesh, err := ovoid.NewMesh(profile.ThreeArc{R: 1}, samples)
	if err != nil {
		t.Fatal(err)
	}
	const path = "ovoid.stl"
	defer os.Remove(path)
	render.CreateSTL(path, render.NewMeshRenderer(mesh))
	fp, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	bfile, err := io.ReadAll(fp)
	if err != nil {
		t.Fatal(err)
	}
	model, err := render.RenderAll(render.NewMeshRenderer(mesh))
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	err = render.WriteSTL(&b, model)
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != len(bfile) {
		t.Fatal("WriteSTL and CreateSTL output length mismatch")
	}
	bs := b.String()
	if bs != string(bfile) {
		t.Fatal("WriteSTL and CreateSTL output mismatch")
	}
}

// TestSTLExternalReadback checks written files against an STL decoder
// this package shares no code with.
func TestSTLExternalReadback(t *testing.T) {
	const path = "readback.stl"
	defer os.Remove(path)
	mesh, err := ovoid.NewMesh(profile.Egg{A: 1.5, B: 1, D: 0.3}, 16)
	if err != nil {
		t.Fatal(err)
	}
	if err := render.CreateSTL(path, render.NewMeshRenderer(mesh)); err != nil {
		t.Fatal(err)
	}
	solid, err := stl.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if solid.IsAscii {
		t.Error("wrote binary STL, reader found ASCII")
	}
	want := len(mesh.TriangleSlice())
	if len(solid.Triangles) != want {
		t.Errorf("external reader found %d triangles, want %d", len(solid.Triangles), want)
	}
	var got d3.Set
	for _, tri := range solid.Triangles {
		for _, v := range tri.Vertices {
			got = append(got, r3.Vec{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])})
		}
	}
	const tol = 1e-5
	gotBox := d3.Box{Min: got.Min(), Max: got.Max()}
	if bb := mesh.Bounds(); !gotBox.Equals(d3.Box(bb), tol) {
		t.Errorf("read back bounds %+v do not match mesh bounds %+v", gotBox, bb)
	}
}
