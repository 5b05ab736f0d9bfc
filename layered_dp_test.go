package glidescore

import (
	"context"
	"math"
	"testing"
)

func straightLinePoints(n int) []point {
	pts := make([]point, n)
	for i := 0; i < n; i++ {
		pts[i] = point{x: 0, y: float64(i)}
	}
	return pts
}

func TestSolveDPZeroLegsRowIsZero(t *testing.T) {
	d := newDistanceMatrix(straightLinePoints(5))
	g := solveDP(context.Background(), d, 3, nil)
	row0 := g.RawRowView(0)
	for k, v := range row0 {
		if v != 0 {
			t.Fatalf("G[0][%d] = %f, want 0", k, v)
		}
	}
}

func TestSolveDPMonotonicInK(t *testing.T) {
	d := newDistanceMatrix(straightLinePoints(8))
	g := solveDP(context.Background(), d, 3, nil)
	rows, cols := g.Dims()
	for l := 0; l < rows; l++ {
		for k := 1; k < cols; k++ {
			if g.At(l, k) < g.At(l, k-1) {
				t.Fatalf("G[%d][%d]=%f < G[%d][%d]=%f, want non-decreasing in k", l, k, g.At(l, k), l, k-1, g.At(l, k-1))
			}
		}
	}
}

func TestSolveDPMonotonicInLegs(t *testing.T) {
	d := newDistanceMatrix(straightLinePoints(8))
	g := solveDP(context.Background(), d, 4, nil)
	rows, cols := g.Dims()
	for l := 0; l < rows-1; l++ {
		for k := 0; k < cols; k++ {
			if g.At(l+1, k) < g.At(l, k) {
				t.Fatalf("G[%d][%d]=%f < G[%d][%d]=%f, want extra leg cannot decrease score", l+1, k, g.At(l+1, k), l, k, g.At(l, k))
			}
		}
	}
}

func TestSolveDPForbiddenStartUnreachable(t *testing.T) {
	d := newDistanceMatrix(straightLinePoints(6))
	forbidden := map[int]bool{0: true, 1: true}
	g := solveDP(context.Background(), d, 2, forbidden)
	for k := range forbidden {
		if !math.IsInf(g.At(0, k), -1) {
			t.Fatalf("G[0][%d] = %f, want -Inf for forbidden start", k, g.At(0, k))
		}
	}
	// A non-forbidden start stays zero.
	if g.At(0, 2) != 0 {
		t.Fatalf("G[0][2] = %f, want 0", g.At(0, 2))
	}
}
