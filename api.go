package glidescore

import "context"

// Score implements the spec's entry surface (§6):
// score(lat[], lon[], alt[], legs) -> path. It is a convenience
// wrapper around Scorer for callers that don't need to reuse a
// Config across calls.
func Score(lat, lon, alt []float64, legs int) (Path, error) {
	s := NewScorer(NewConfig(WithLegs(legs)))
	res, err := s.Score(context.Background(), FixSet{Lat: lat, Lon: lon, Alt: alt})
	return res.Path, err
}

// ScoreWithHeight implements the spec's entry surface (§6):
// score_with_height(lat[], lon[], alt[], legs, height=1000) -> path.
func ScoreWithHeight(lat, lon, alt []float64, legs int, height float64) (Path, error) {
	s := NewScorer(NewConfig(WithLegs(legs), WithHeightLimit(height)))
	res, err := s.ScoreWithHeight(context.Background(), FixSet{Lat: lat, Lon: lon, Alt: alt})
	return res.Path, err
}
