package glidescore

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// newDistanceMatrix builds the dense, symmetric matrix of pairwise
// Euclidean distances between projected points (spec.md §4.2). It is
// stored as a full N×N mat64.Dense rather than a packed SymDense:
// spec.md §4.2 explicitly favours "storing the full square [to]
// simplify the DP's contiguous row access at the cost of 2x memory",
// and LayeredDP's hot loop (§4.3) needs exactly that — a contiguous
// RawRowView per k to feed the vectorised floats.Add/floats.MaxIdx
// reduction.
func newDistanceMatrix(pts []point) *mat64.Dense {
	n := len(pts)
	d := mat64.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		row := d.RawRowView(i)
		row[i] = 0
		for j := i + 1; j < n; j++ {
			dx := pts[i].x - pts[j].x
			dy := pts[i].y - pts[j].y
			dist := math.Sqrt(dx*dx + dy*dy)
			row[j] = dist
			d.Set(j, i, dist)
		}
	}
	return d
}
