// Package randtest provides a scripted randomness source for tests.
package randtest

// SequenceRand replays fixed draws in order, wrapping around when exhausted.
// IntN clamps each replayed value into [0, n).
type SequenceRand struct {
	Floats []float64
	Ints   []int

	floatPos int
	intPos   int
}

// NewSequenceRand creates a SequenceRand from explicit draw sequences
func NewSequenceRand(floats []float64, ints []int) *SequenceRand {
	return &SequenceRand{Floats: floats, Ints: ints}
}

// Float64 returns the next float in the sequence (0 when none are configured)
func (s *SequenceRand) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.floatPos%len(s.Floats)]
	s.floatPos++
	return v
}

// IntN returns the next int in the sequence (0 when none are configured)
func (s *SequenceRand) IntN(n int) int {
	if len(s.Ints) == 0 || n <= 0 {
		return 0
	}
	v := s.Ints[s.intPos%len(s.Ints)]
	s.intPos++
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
