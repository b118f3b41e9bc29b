package mesh

import "math"

// Epsilon is the single tolerance used for every "is zero" and "is equal"
// geometric decision in this package: parallelism tests, loop triviality,
// and intersection boundary checks.
const Epsilon = 1e-6

// To compensate for imprecision in floats, equality is tolerance based.
// Without this, nearly-parallel segment pairs would randomly flip between
// the crossing and the collinear code paths.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// angleOf gives the angle of a direction vector via atan2.
func angleOf(d Point) float64 {
	return math.Atan2(d.Y, d.X)
}

// angReduce brings an angle expressed in radians into [0, 2pi).
func angReduce(ang float64) float64 {
	for ang < 0 {
		ang += 2 * math.Pi
	}
	for ang >= 2*math.Pi {
		ang -= 2 * math.Pi
	}
	return ang
}

// linspace returns num evenly spaced values from lo to hi inclusive.
func linspace(lo, hi float64, num int) []float64 {
	if num < 2 {
		fatalf("linspace needs at least two points, got %d", num)
	}
	vals := make([]float64, num)
	step := (hi - lo) / float64(num-1)
	for i := range vals {
		vals[i] = lo + float64(i)*step
	}
	vals[num-1] = hi
	return vals
}
