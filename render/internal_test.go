package render

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ovogen/ovoid"
	"github.com/ovogen/ovoid/internal/d3"
	"github.com/ovogen/ovoid/profile"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestSTLWriteReadback(t *testing.T) {
	const tol = 1e-6
	mesh, err := ovoid.NewMesh(profile.ThreeArc{R: 2}, 24)
	if err != nil {
		t.Fatal(err)
	}
	input, err := RenderAll(NewMeshRenderer(mesh))
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	err = WriteSTL(&b, input)
	if err != nil {
		t.Fatal(err)
	}
	output, err := readBinarySTL(&b)
	if err != nil && !errors.Is(err, errCalculatedNormalMismatch) {
		t.Fatal(err)
	}
	if len(output) != len(input) {
		t.Fatal("length of triangles written/read not equal")
	}
	mismatches := 0
	for iface, expect := range input {
		got := output[iface]
		if got.IsDegenerate(1e-12) {
			t.Fatalf("triangle degenerate: %+v", got)
		}
		for i := range expect {
			if !d3.EqualWithin(got[i], expect[i], tol) {
				mismatches++
				t.Errorf("%dth triangle equality out of tolerance. got vertex %0.5g, want %0.5g", iface, got[i], expect[i])
			}
		}
		if mismatches > 10 {
			t.Fatal("too many mismatches")
		}
	}
}

func TestMeshRendererBatches(t *testing.T) {
	mesh, err := ovoid.NewMesh(profile.ThreeArc{R: 1}, 8)
	if err != nil {
		t.Fatal(err)
	}
	want := mesh.TriangleSlice()
	rend := NewMeshRenderer(mesh)
	// Batch size chosen to not divide the triangle count so the last
	// read returns a partial batch alongside io.EOF.
	buf := make([]r3.Triangle, 7)
	var model []r3.Triangle
	var nt int
	for err == nil {
		nt, err = rend.ReadTriangles(buf)
		model = append(model, buf[:nt]...)
	}
	if err != io.EOF {
		t.Fatal(err)
	}
	if len(model) != len(want) {
		t.Fatalf("triangles lost in batched reads. got %d. want %d", len(model), len(want))
	}
	for i := range want {
		if model[i] != want[i] {
			t.Fatalf("batched triangle %d does not match mesh triangle", i)
		}
	}
	// A drained renderer keeps returning io.EOF.
	nt, err = rend.ReadTriangles(buf)
	if nt != 0 || err != io.EOF {
		t.Errorf("drained renderer returned %d triangles, error %v", nt, err)
	}
}

func TestSTLTriangleNormal(t *testing.T) {
	tri := r3.Triangle{{}, {X: 2}, {Y: 2}}
	d := stlFromTriangle(tri)
	if d.Normal != [3]float32{0, 0, 1} {
		t.Errorf("got facet normal %v, want unit +z", d.Normal)
	}
	degenerate := r3.Triangle{{X: 1}, {X: 1}, {Y: 1}}
	d = stlFromTriangle(degenerate)
	if bad3F32(d.Normal) {
		t.Error("degenerate triangle produced inf/NaN facet normal")
	}
	if d.Normal != ([3]float32{}) {
		t.Errorf("got facet normal %v for degenerate triangle, want zero", d.Normal)
	}
}
