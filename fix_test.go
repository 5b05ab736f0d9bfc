package glidescore

import "testing"

func TestFixSetLen(t *testing.T) {
	fs := FixSet{Lat: []float64{0, 1}, Lon: []float64{0, 1}, Alt: []float64{0, 1}}
	if fs.Len() != 2 {
		t.Fatalf("expected length 2, got %d", fs.Len())
	}

	mismatched := FixSet{Lat: []float64{0, 1}, Lon: []float64{0}, Alt: []float64{0, 1}}
	if mismatched.Len() != -1 {
		t.Fatalf("expected -1 for mismatched lengths, got %d", mismatched.Len())
	}
}

func TestFixSetValidate(t *testing.T) {
	cases := []struct {
		name      string
		fs        FixSet
		wantN     int
		wantEmpty bool
		wantErr   error
	}{
		{"degenerate-empty", FixSet{}, 0, true, nil},
		{"single-fix", FixSet{Lat: []float64{0}, Lon: []float64{0}, Alt: []float64{0}}, 1, true, nil},
		{"mismatched", FixSet{Lat: []float64{0, 1}, Lon: []float64{0}, Alt: []float64{0, 1}}, 0, true, ErrMismatchedInputLengths},
		{"valid", FixSet{Lat: []float64{0, 1}, Lon: []float64{0, 1}, Alt: []float64{0, 1}}, 2, false, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n, empty, err := c.fs.validate()
			if n != c.wantN || empty != c.wantEmpty || err != c.wantErr {
				t.Fatalf("validate() = (%d, %v, %v), want (%d, %v, %v)", n, empty, err, c.wantN, c.wantEmpty, c.wantErr)
			}
		})
	}
}

func TestFixSetReversed(t *testing.T) {
	fs := FixSet{Lat: []float64{0, 1, 2}, Lon: []float64{10, 11, 12}, Alt: []float64{100, 200, 300}}
	r := fs.reversed()
	want := FixSet{Lat: []float64{2, 1, 0}, Lon: []float64{12, 11, 10}, Alt: []float64{300, 200, 100}}
	if !floatsEqual(r.Lat, want.Lat) || !floatsEqual(r.Lon, want.Lon) || !floatsEqual(r.Alt, want.Alt) {
		t.Fatalf("reversed() = %+v, want %+v", r, want)
	}
	// fs must be untouched.
	if fs.Lat[0] != 0 {
		t.Fatal("reversed() mutated the source FixSet")
	}
}

func TestPathFlipped(t *testing.T) {
	p := Path{0, 2, 4}
	n := 7
	got := p.flipped(n)
	want := Path{2, 4, 6}
	if !pathsEqual(got, want) {
		t.Fatalf("flipped() = %v, want %v", got, want)
	}
}
