package glidescore

import (
	"context"
	"sync"
)

// Scorer scores recorded glider flights against a fixed Config. All
// tables it builds (distance matrix, score tables, forbidden masks)
// are scoped to a single call and released when that call returns;
// nothing persists between calls, and a Scorer is safe for concurrent
// use by multiple goroutines (spec.md §5: "no state persists between
// calls").
type Scorer struct {
	cfg Config
}

// NewScorer returns a Scorer governed by cfg.
func NewScorer(cfg Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// Result bundles a scored path with its canonical true-haversine
// total distance in kilometres (spec.md §4.4/§6).
type Result struct {
	Path     Path
	Distance float64
}

// Score runs the unconstrained optimum (spec.md §4.1-§4.4) on both
// orientations of fs (spec.md §4.6) and returns the larger
// true-haversine total. The forward and backward passes run
// concurrently, in the same goroutine-plus-WaitGroup shape the
// teacher uses to overlap independent work.
func (s *Scorer) Score(ctx context.Context, fs FixSet) (Result, error) {
	n, empty, err := fs.validate()
	if err != nil {
		return Result{}, err
	}
	if empty {
		return Result{}, nil
	}
	if s.cfg.MaxFixes > 0 && n > s.cfg.MaxFixes {
		return Result{}, ErrTooManyFixes
	}

	var (
		wg                   sync.WaitGroup
		forward, backward    Result
		forwardErr, backwardErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		forward, forwardErr = s.scoreOneOrientation(ctx, fs)
	}()
	go func() {
		defer wg.Done()
		backward, backwardErr = s.scoreBackwardsOneOrientation(ctx, fs, n)
	}()
	wg.Wait()

	if forwardErr != nil {
		return Result{}, forwardErr
	}
	if backwardErr != nil {
		return Result{}, backwardErr
	}

	if backward.Distance > forward.Distance {
		return backward, nil
	}
	return forward, nil
}

// ScoreBackwards runs the unconstrained optimum on the reversed fix
// order only, flipping indices back into fs's order before
// returning. Exposed alongside Score (the orientation wrapper
// mandated by spec.md §4.6) for callers that already know which
// orientation converges faster for a given flight shape — see
// SPEC_FULL.md's "Both orientations are independently exposed".
func (s *Scorer) ScoreBackwards(ctx context.Context, fs FixSet) (Result, error) {
	n, empty, err := fs.validate()
	if err != nil {
		return Result{}, err
	}
	if empty {
		return Result{}, nil
	}
	if s.cfg.MaxFixes > 0 && n > s.cfg.MaxFixes {
		return Result{}, ErrTooManyFixes
	}
	return s.scoreBackwardsOneOrientation(ctx, fs, n)
}

func (s *Scorer) scoreOneOrientation(ctx context.Context, fs FixSet) (Result, error) {
	pts := project(fs)
	d := newDistanceMatrix(pts)
	g := solveDP(ctx, d, s.cfg.Legs, nil)
	e := bestEndpoint(g, s.cfg.Legs)
	path := reconstruct(d, g, s.cfg.Legs, e)
	return Result{Path: path, Distance: pathDistance(fs, path)}, nil
}

func (s *Scorer) scoreBackwardsOneOrientation(ctx context.Context, fs FixSet, n int) (Result, error) {
	rfs := fs.reversed()
	res, err := s.scoreOneOrientation(ctx, rfs)
	if err != nil {
		return Result{}, err
	}
	path := res.Path.flipped(n)
	return Result{Path: path, Distance: pathDistance(fs, path)}, nil
}

// HeightResult bundles a height-constrained path with its distance
// and the branch-and-bound Stats from whichever orientation won.
type HeightResult struct {
	Result
	Stats Stats
}

// ScoreWithHeight runs the height-constrained solver (spec.md §4.5)
// on both orientations of fs and returns the larger feasible
// true-haversine total (spec.md §4.6).
func (s *Scorer) ScoreWithHeight(ctx context.Context, fs FixSet) (HeightResult, error) {
	n, empty, err := fs.validate()
	if err != nil {
		return HeightResult{}, err
	}
	if empty {
		return HeightResult{}, nil
	}
	if s.cfg.MaxFixes > 0 && n > s.cfg.MaxFixes {
		return HeightResult{}, ErrTooManyFixes
	}

	var (
		wg                       sync.WaitGroup
		forward, backward        HeightResult
		forwardErr, backwardErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		forward, forwardErr = s.scoreWithHeightOneOrientation(ctx, fs)
	}()
	go func() {
		defer wg.Done()
		backward, backwardErr = s.scoreWithHeightBackwardsOneOrientation(ctx, fs, n)
	}()
	wg.Wait()

	if forwardErr != nil {
		return HeightResult{}, forwardErr
	}
	if backwardErr != nil {
		return HeightResult{}, backwardErr
	}

	if backward.Distance > forward.Distance {
		return backward, nil
	}
	return forward, nil
}

// ScoreWithHeightBackwards runs the height-constrained solver on the
// reversed fix order only. See SPEC_FULL.md's "Both orientations are
// independently exposed" — this mirrors the original's
// score_with_height_backwards, often faster in practice because the
// optimal endpoint tends to sit closer to launch than to landing
// (spec.md §4.6).
func (s *Scorer) ScoreWithHeightBackwards(ctx context.Context, fs FixSet) (HeightResult, error) {
	n, empty, err := fs.validate()
	if err != nil {
		return HeightResult{}, err
	}
	if empty {
		return HeightResult{}, nil
	}
	if s.cfg.MaxFixes > 0 && n > s.cfg.MaxFixes {
		return HeightResult{}, ErrTooManyFixes
	}
	return s.scoreWithHeightBackwardsOneOrientation(ctx, fs, n)
}

func (s *Scorer) scoreWithHeightOneOrientation(ctx context.Context, fs FixSet) (HeightResult, error) {
	pts := project(fs)
	d := newDistanceMatrix(pts)
	path, stats, err := solveWithHeight(ctx, fs, d, s.cfg.Legs, s.cfg.HeightLimit, false, s.cfg.logger())
	if err != nil {
		return HeightResult{}, err
	}
	if path == nil {
		return HeightResult{}, nil
	}
	return HeightResult{Result: Result{Path: path, Distance: pathDistance(fs, path)}, Stats: stats}, nil
}

// scoreWithHeightBackwardsOneOrientation runs the height-constrained
// solver on fs.reversed(). The altitude predicate does not survive
// reversal unchanged (see solveWithHeight's reversed parameter), so
// this does not delegate to scoreWithHeightOneOrientation: it must
// pass reversed=true through to solveWithHeight so the predicate and
// forbidden mask it enforces, once path.flipped(n) maps the result
// back into fs's index space, are the caller-space predicate
// alt[path[0]] - alt[path[L]] <= H — not its negation.
func (s *Scorer) scoreWithHeightBackwardsOneOrientation(ctx context.Context, fs FixSet, n int) (HeightResult, error) {
	rfs := fs.reversed()
	pts := project(rfs)
	d := newDistanceMatrix(pts)
	path, stats, err := solveWithHeight(ctx, rfs, d, s.cfg.Legs, s.cfg.HeightLimit, true, s.cfg.logger())
	if err != nil {
		return HeightResult{}, err
	}
	if path == nil {
		return HeightResult{}, nil
	}
	flipped := path.flipped(n)
	return HeightResult{Result: Result{Path: flipped, Distance: pathDistance(fs, flipped)}, Stats: stats}, nil
}
