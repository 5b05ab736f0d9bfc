package glidescore

// FixSet is a time-ordered sequence of recorded GPS fixes. Index 0 is
// the earliest fix. Callers own the backing arrays; the core never
// mutates them.
type FixSet struct {
	Lat, Lon []float64 // decimal degrees
	Alt      []float64 // metres, pressure altitude
}

// Len returns the number of fixes, or -1 if the three arrays disagree
// in length.
func (f FixSet) Len() int {
	n := len(f.Lat)
	if len(f.Lon) != n || len(f.Alt) != n {
		return -1
	}
	return n
}

// validate checks the invariants spec.md §3 and §7 impose on a fix
// sequence: equal-length arrays and at least two fixes. It never
// returns an error for a well-formed but tiny input; callers handle
// the degenerate cases (len 0 and 1) by receiving an empty path.
func (f FixSet) validate() (n int, empty bool, err error) {
	n = f.Len()
	if n < 0 {
		return 0, true, ErrMismatchedInputLengths
	}
	if n < 2 {
		return n, true, nil
	}
	return n, false, nil
}

// reversed returns a new FixSet with the fix order reversed. Used by
// the orientation wrapper (spec.md §4.6); never mutates f.
func (f FixSet) reversed() FixSet {
	n := f.Len()
	if n <= 0 {
		return f
	}
	r := FixSet{
		Lat: make([]float64, n),
		Lon: make([]float64, n),
		Alt: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		j := n - 1 - i
		r.Lat[i] = f.Lat[j]
		r.Lon[i] = f.Lon[j]
		r.Alt[i] = f.Alt[j]
	}
	return r
}

// Path is an ordered, non-decreasing list of fix indices realising a
// scored leg sequence. path[0] and path[len(path)-1] are the start and
// end turnpoints.
type Path []int

// flipped maps a path computed on a reversed FixSet of n fixes back
// to indices into the original, forward-ordered FixSet (spec.md §4.6:
// p -> n-1-p on each element, then list-reversed).
func (p Path) flipped(n int) Path {
	out := make(Path, len(p))
	for i, idx := range p {
		out[len(p)-1-i] = n - 1 - idx
	}
	return out
}
