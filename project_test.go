package glidescore

import (
	"math"
	"testing"
)

func TestProjectEquator(t *testing.T) {
	// On the equator, cos(mean_lat_rad) == 1, so y == lon_rad exactly.
	fs := FixSet{Lat: []float64{0, 0, 0}, Lon: []float64{0, 1, 2}, Alt: []float64{0, 0, 0}}
	pts := project(fs)
	if len(pts) != 3 {
		t.Fatalf("expected 3 points, got %d", len(pts))
	}
	for i, p := range pts {
		if p.x != 0 {
			t.Fatalf("pts[%d].x = %f, want 0", i, p.x)
		}
	}
	if math.Abs(pts[1].y-Deg2rad(1)) > 1e-12 {
		t.Fatalf("pts[1].y = %f, want %f", pts[1].y, Deg2rad(1))
	}
}

func TestProjectDoesNotMutateInput(t *testing.T) {
	fs := FixSet{Lat: []float64{10, 20}, Lon: []float64{30, 40}, Alt: []float64{0, 0}}
	latBefore := append([]float64(nil), fs.Lat...)
	lonBefore := append([]float64(nil), fs.Lon...)
	_ = project(fs)
	if !floatsEqual(fs.Lat, latBefore) || !floatsEqual(fs.Lon, lonBefore) {
		t.Fatal("project mutated caller-owned arrays")
	}
}

func TestProjectEmpty(t *testing.T) {
	if pts := project(FixSet{}); pts != nil {
		t.Fatalf("expected nil for empty input, got %v", pts)
	}
}
