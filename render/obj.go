package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ovogen/ovoid"
)

// CreateOBJ writes mesh m to path in Wavefront OBJ format.
func CreateOBJ(path string, m *ovoid.Mesh) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteOBJ(file, m)
}

// WriteOBJ writes m to a writer as an indexed Wavefront OBJ model.
// Vertex welding is preserved: every mesh vertex is emitted once and
// faces reference vertices by index. Collapsed triangles are skipped.
func WriteOBJ(w io.Writer, m *ovoid.Mesh) error {
	if len(m.Vertices) == 0 {
		return errors.New("empty mesh")
	}
	bw := bufio.NewWriter(w)
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
	}
	for _, t := range m.Triangles {
		if t.Collapsed() {
			continue
		}
		// OBJ face indices are 1 based.
		fmt.Fprintf(bw, "f %d %d %d\n", t[0]+1, t[1]+1, t[2]+1)
	}
	return bw.Flush()
}
