package render_test

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/ovogen/ovoid"
	"github.com/ovogen/ovoid/profile"
	"github.com/ovogen/ovoid/render"
)

func TestOBJWrite(t *testing.T) {
	mesh, err := ovoid.NewMesh(profile.ThreeArc{R: 1}, 4)
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := render.WriteOBJ(&b, mesh); err != nil {
		t.Fatal(err)
	}
	const path = "ovoid.obj"
	defer os.Remove(path)
	if err := render.CreateOBJ(path, mesh); err != nil {
		t.Fatal(err)
	}
	bfile, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(bfile) != b.String() {
		t.Fatal("WriteOBJ and CreateOBJ output mismatch")
	}

	var vcount, fcount int
	sc := bufio.NewScanner(bytes.NewReader(b.Bytes()))
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "v "):
			vcount++
			var x, y, z float64
			if _, err := fmt.Sscanf(line, "v %g %g %g", &x, &y, &z); err != nil {
				t.Fatalf("bad vertex line %q: %v", line, err)
			}
		case strings.HasPrefix(line, "f "):
			fcount++
			var v0, v1, v2 int
			if _, err := fmt.Sscanf(line, "f %d %d %d", &v0, &v1, &v2); err != nil {
				t.Fatalf("bad face line %q: %v", line, err)
			}
			for _, v := range [3]int{v0, v1, v2} {
				if v < 1 || v > vcount {
					t.Fatalf("face index %d out of range in %q", v, line)
				}
			}
		default:
			t.Fatalf("unexpected line %q", line)
		}
	}
	if err := sc.Err(); err != nil {
		t.Fatal(err)
	}
	if vcount != len(mesh.Vertices) {
		t.Errorf("got %d vertex lines, want %d", vcount, len(mesh.Vertices))
	}
	if want := len(mesh.TriangleSlice()); fcount != want {
		t.Errorf("got %d face lines, want %d", fcount, want)
	}
}

func TestOBJEmptyMesh(t *testing.T) {
	var b bytes.Buffer
	if err := render.WriteOBJ(&b, &ovoid.Mesh{}); err == nil {
		t.Error("expected error writing empty mesh")
	}
}
