package ovoid

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Weld merges vertices falling in the same quantization cell of side
// tol and remaps the triangle indices. Vertices keep the order of
// their first occurrence and the triangle count is unchanged, so
// triangles whose corners welded together collapse to repeated-index
// triples rather than disappearing. tol <= 0 welds only numerically
// identical vertices.
func Weld(vertices []r3.Vec, tris []Triangle, tol float64) ([]r3.Vec, []Triangle) {
	ri := 0.0
	if tol > 0 {
		ri = 1 / tol
	}
	cache := make(map[[3]int64]int, len(vertices))
	remap := make([]int, len(vertices))
	welded := make([]r3.Vec, 0, len(vertices))
	for i, vert := range vertices {
		key := quantize(vert, ri)
		idx, ok := cache[key]
		if !ok {
			idx = len(welded)
			cache[key] = idx
			welded = append(welded, vert)
		}
		remap[i] = idx
	}
	out := make([]Triangle, len(tris))
	for i, t := range tris {
		out[i] = Triangle{remap[t[0]], remap[t[1]], remap[t[2]]}
	}
	return welded, out
}

// quantize scales vert into resolution space and truncates to an
// integer cell key. ri == 0 keys the exact bit patterns, with signed
// zeros collapsed so axis vertices always share a cell.
func quantize(vert r3.Vec, ri float64) [3]int64 {
	if ri == 0 {
		return [3]int64{exactKey(vert.X), exactKey(vert.Y), exactKey(vert.Z)}
	}
	v := r3.Scale(ri, vert)
	return [3]int64{int64(v.X), int64(v.Y), int64(v.Z)}
}

func exactKey(f float64) int64 {
	if f == 0 {
		f = 0 // merge -0 and +0
	}
	return int64(math.Float64bits(f))
}
