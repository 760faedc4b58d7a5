package monoid

import "math"

// Stats holds the count, mean and sum of squared deviations (M2) of a set of
// observations.
type Stats struct {
	N    int64
	Mean float64
	M2   float64
}

// Observe returns the statistics of a single observation.
func Observe(x float64) Stats {
	return Stats{N: 1, Mean: x}
}

// Variance returns the unbiased sample variance, NaN for fewer than two
// observations.
func (s Stats) Variance() float64 {
	if s.N < 2 {
		return math.NaN()
	}
	return s.M2 / float64(s.N-1)
}

// StdDev returns the sample standard deviation.
func (s Stats) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Moments merges Stats with the pairwise update of Chan, Golub and LeVeque.
// It is associative up to floating point rounding.
type Moments struct{}

func (Moments) Zero() Stats { return Stats{} }

func (Moments) Add(left, right Stats) Stats {
	switch {
	case left.N == 0:
		return right
	case right.N == 0:
		return left
	}
	n := left.N + right.N
	delta := right.Mean - left.Mean
	nl, nr, nt := float64(left.N), float64(right.N), float64(n)
	return Stats{
		N:    n,
		Mean: left.Mean + delta*nr/nt,
		M2:   left.M2 + right.M2 + delta*delta*nl*nr/nt,
	}
}
