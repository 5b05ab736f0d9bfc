package glidescore

import (
	"context"

	kitlog "github.com/go-kit/kit/log"
	"github.com/gonum/matrix/mat64"
)

// solverState names the branch-and-bound states of spec.md §4.5,
// mirroring the teacher's habit of giving small enums a String()
// method for log lines (see TransferType, Propagator).
type solverState uint8

const (
	stateUnchecked solverState = iota
	stateFeasible
	stateExhausted
)

func (s solverState) String() string {
	switch s {
	case stateUnchecked:
		return "unchecked"
	case stateFeasible:
		return "feasible"
	case stateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Stats reports how much work the height-constrained solver did. It
// supplements spec.md's entry surface (§6) with the iteration/pruning
// counters the original Python prints as it runs (see SPEC_FULL.md,
// "Iteration counter surfaced").
type Stats struct {
	Iterations int
	Pruned     int
	LowerBound float64
}

// solveWithHeight implements the state machine of spec.md §4.5: it
// repeatedly re-runs the DP with a forbidden-start mask derived from
// a candidate endpoint's altitude until the altitude predicate holds,
// maintaining a lower bound that prunes further candidates.
//
// reversed selects which direction the altitude predicate runs in.
// solveWithHeight always walks forward through fs's own index order
// (row 0 of the DP is the start, the bestEndpoint candidate is the
// end), but when fs is itself an already-reversed FixSet — the
// backward orientation of Scorer.ScoreWithHeight, operating on
// fs.reversed() — the predicate callers actually care about, restated
// in fs's index space, is alt[candidate] - alt[row-0 index] <= H, the
// mirror image of the forward case. olc.py keeps this straight with a
// distinct check_alt for its backward pass (olc.py:271-273:
// alt_flipped[path[-1]] - alt_flipped[path[0]]); reversed plays the
// same role here instead of duplicating the whole function.
func solveWithHeight(ctx context.Context, fs FixSet, d *mat64.Dense, legs int, height float64, reversed bool, logger kitlog.Logger) (Path, Stats, error) {
	n, _ := d.Dims()

	g := solveDP(ctx, d, legs, nil)
	e := bestEndpoint(g, legs)
	path := reconstruct(d, g, legs, e)

	if altOK(fs, path, height, reversed) {
		return path, Stats{}, nil
	}

	originalG := mat64.NewDense(legs+1, n, nil)
	originalG.Copy(g)

	var (
		lowerBound float64
		best       Path
		pruned     int
	)

	state := stateUnchecked
	for iterations := 1; ; iterations++ {
		select {
		case <-ctx.Done():
			return best, Stats{Iterations: iterations - 1, Pruned: pruned, LowerBound: lowerBound}, nil
		default:
		}

		candidate := bestEndpoint(g, legs)

		forbidden := make(map[int]bool)
		for j := 0; j < n; j++ {
			var violates bool
			if reversed {
				violates = fs.Alt[candidate]-fs.Alt[j] > height
			} else {
				violates = fs.Alt[j]-fs.Alt[candidate] > height
			}
			if violates {
				forbidden[j] = true
			}
		}

		gPrime := solveDP(ctx, d, legs, forbidden)
		p := reconstruct(d, gPrime, legs, candidate)

		if forbidden[p[0]] {
			return nil, Stats{}, &InvariantError{Detail: "reconstructed path starts on a forbidden index"}
		}
		if !altOK(fs, p, height, reversed) {
			return nil, Stats{}, &InvariantError{Detail: "reconstructed path violates the altitude predicate"}
		}

		dist := gPrime.At(legs, candidate)
		if dist > lowerBound {
			lowerBound = dist
			best = p
			state = stateFeasible
		}

		g.Set(legs, candidate, 0)
		originalG.Set(legs, candidate, 0)
		pruned++

		remaining := 0
		row := originalG.RawRowView(legs)
		for _, v := range row {
			if v > lowerBound {
				remaining++
			}
		}

		logger.Log(
			"component", "HeightConstrainedSolver",
			"state", state.String(),
			"iteration", iterations,
			"candidate", candidate,
			"lower_bound", lowerBound,
			"remaining", remaining,
		)

		if remaining == 0 || iterations >= n {
			return best, Stats{Iterations: iterations, Pruned: pruned, LowerBound: lowerBound}, nil
		}
	}
}

// altOK reports whether a path satisfies the altitude predicate of
// spec.md §4.5: alt[path[0]] - alt[path[L]] <= H, or its mirror image
// when reversed is set (see solveWithHeight).
func altOK(fs FixSet, p Path, height float64, reversed bool) bool {
	if reversed {
		return fs.Alt[p[len(p)-1]]-fs.Alt[p[0]] <= height
	}
	return fs.Alt[p[0]]-fs.Alt[p[len(p)-1]] <= height
}
