package glidescore

import (
	"context"
	"math"

	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
)

// forbiddenSentinel marks a forbidden starting index in row 0 of the
// score table. spec.md §9 allows a large negative number but
// recommends strict -Inf "to avoid arithmetic catastrophe"; since we
// never add two sentinels together within a single DP pass (row 0 has
// no incoming transitions) -Inf propagates safely through every later
// max-reduction that reads it.
var forbiddenSentinel = math.Inf(-1)

// solveDP computes the score table G of shape (legs+1, n) from the
// distance matrix d, per spec.md §4.3. forbidden, if non-nil, marks
// indices that may not serve as a path's first vertex.
//
// The inner reduction over a k-prefix is written against contiguous
// gonum/floats slice operations (Add, MaxIdx) rather than a hand
// rolled loop, mirroring the source's vectorised numpy inner loop
// (spec.md §4.3) while staying in plain Go. floats.MaxIdx resolves
// ties to the lowest index, which is exactly the smallest-j
// tie-break spec.md §4.3 requires for deterministic reconstruction.
func solveDP(ctx context.Context, d *mat64.Dense, legs int, forbidden map[int]bool) *mat64.Dense {
	n, _ := d.Dims()
	g := mat64.NewDense(legs+1, n, nil)

	row0 := g.RawRowView(0)
	for k := range forbidden {
		row0[k] = forbiddenSentinel
	}

	buf := make([]float64, n)
	for k := 0; k < n; k++ {
		select {
		case <-ctx.Done():
			return g
		default:
		}

		dRow := d.RawRowView(k)
		width := k + 1
		for l := 0; l < legs; l++ {
			gRow := g.RawRowView(l)
			copy(buf[:width], dRow[:width])
			floats.Add(buf[:width], gRow[:width])

			best := floats.MaxIdx(buf[:width])
			g.RawRowView(l + 1)[k] = buf[best]
		}
	}
	return g
}
