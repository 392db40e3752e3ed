package ovoid

import "fmt"

// Triangulate covers a rings by samples vertex lattice with quad
// strips, two triangles per quad, both sharing the quad diagonal from
// (ring, sample) to (ring+1, sample+1). Indices address the flattened
// lattice at ring*samples+sample. The rule is the same for every quad;
// quads touching a pole produce one triangle that collapses once the
// pole vertices are welded.
//
// The output length is exactly 2*(rings-1)*(samples-1).
func Triangulate(rings, samples int) ([]Triangle, error) {
	if rings < 2 || samples < 2 {
		return nil, fmt.Errorf("triangulate %dx%d lattice: %w", rings, samples, ErrDegenerateGrid)
	}
	tris := make([]Triangle, 0, 2*(rings-1)*(samples-1))
	for i := 0; i < rings-1; i++ {
		for j := 0; j < samples-1; j++ {
			a := i*samples + j // (i, j)
			b := a + samples   // (i+1, j)
			c := b + 1         // (i+1, j+1)
			d := a + 1         // (i, j+1)
			tris = append(tris, Triangle{a, b, c}, Triangle{a, c, d})
		}
	}
	return tris, nil
}
