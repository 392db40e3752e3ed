package render_test

import (
	"os"
	"testing"

	sdfxrender "github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	"github.com/ovogen/ovoid"
	"github.com/ovogen/ovoid/profile"
	"github.com/ovogen/ovoid/render"
)

const (
	benchQuality = 300
	benchSamples = 128
)

// BenchmarkSDFXEgg rebuilds the egg as a signed distance field revolution
// and meshes it with marching cubes, for comparison against the direct
// lattice construction in BenchmarkEgg.
func BenchmarkSDFXEgg(b *testing.B) {
	stdout := os.Stdout
	defer func() {
		os.Stdout = stdout // pesky sdfx prints out stuff
	}()
	os.Stdout, _ = os.Open(os.DevNull)
	const output = "sdfx_egg.stl"
	pts, err := profile.Egg{A: 1.3, B: 1, D: 0.25}.Profile(32)
	if err != nil {
		b.Fatal(err)
	}
	// Right half of the meridian, poles included, closed along the axis.
	var poly []sdf.V2
	for _, p := range pts[:len(pts)/2+1] {
		poly = append(poly, sdf.V2{X: p.R, Y: p.Z})
	}
	object, err := sdf.Polygon2D(poly)
	if err != nil {
		b.Fatal(err)
	}
	solid, err := sdf.Revolve3D(object)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < b.N; i++ {
		sdfxrender.ToSTL(solid, benchQuality, output, &sdfxrender.MarchingCubesOctree{})
	}
}

func BenchmarkEgg(b *testing.B) {
	const output = "our_egg.stl"
	for i := 0; i < b.N; i++ {
		m, err := ovoid.NewMesh(profile.Egg{A: 1.3, B: 1, D: 0.25}, benchSamples)
		if err != nil {
			b.Fatal(err)
		}
		render.CreateSTL(output, render.NewMeshRenderer(m))
	}
}

func BenchmarkOvoid(b *testing.B) {
	const output = "our_ovoid.stl"
	for i := 0; i < b.N; i++ {
		m, err := ovoid.NewMesh(profile.ThreeArc{R: 1}, benchSamples)
		if err != nil {
			b.Fatal(err)
		}
		render.CreateSTL(output, render.NewMeshRenderer(m))
	}
}
