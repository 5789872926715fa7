package sequencer

// Fixed is a Source replaying the given targets in order, wrapping around.
// Float64 always returns 0.5
type Fixed struct {
	Targets []int
	next    int
}

// Intn returns the next target clamped to [0, n)
func (f *Fixed) Intn(n int) int {
	if len(f.Targets) == 0 || n <= 0 {
		return 0
	}
	v := f.Targets[f.next%len(f.Targets)]
	f.next++
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

func (f *Fixed) Float64() float64 {
	return 0.5
}
