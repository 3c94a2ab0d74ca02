package game

// Points returns the score for clearing n rows in one event: 2^(n-1) for one
// to three rows and 2^4 for four. Other counts score nothing.
func Points(n int) int {
	switch {
	case n == 4:
		return 1 << 4
	case n >= 1 && n < 4:
		return 1 << (n - 1)
	default:
		return 0
	}
}

// Score accumulates points from line clears.
type Score struct {
	total int
}

// OnLinesCleared adds the points for one clear of n rows and returns them.
func (s *Score) OnLinesCleared(n int) int {
	points := Points(n)
	s.total += points
	return points
}

// Total returns the accumulated score.
func (s *Score) Total() int {
	return s.total
}

// Reset sets the score back to zero.
func (s *Score) Reset() {
	s.total = 0
}
