package glidescore

import (
	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
)

// bestEndpoint returns argmax_k G[legs, k], smallest k on ties
// (spec.md §4.4: "if no explicit endpoint is supplied").
func bestEndpoint(g *mat64.Dense, legs int) int {
	return floats.MaxIdx(g.RawRowView(legs))
}

// reconstruct walks G backwards from endpoint e and recovers the
// legs+1 indices realising G[legs, e] (spec.md §4.4). It recomputes
// the inner argmax at each step rather than consulting a stored
// back-pointer table, the same time/memory trade-off the spec
// describes as valid "when L+1 is small relative to N".
func reconstruct(d *mat64.Dense, g *mat64.Dense, legs, e int) Path {
	path := make(Path, legs+1)
	path[legs] = e
	cur := e

	buf := make([]float64, 0)
	for l := legs - 1; l >= 0; l-- {
		width := cur + 1
		if cap(buf) < width {
			buf = make([]float64, width)
		}
		buf = buf[:width]

		dRow := d.RawRowView(cur)
		gRow := g.RawRowView(l)
		copy(buf, dRow[:width])
		floats.Add(buf, gRow[:width])

		prev := floats.MaxIdx(buf)
		path[l] = prev
		cur = prev
	}
	return path
}
