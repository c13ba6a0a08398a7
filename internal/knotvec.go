package internal

// Find the span on the knot slice of the given parameter
// (corresponds to algorithm 2.1 from The NURBS book, Piegl & Tiller 2nd edition)
//
// **params**
// + slice of nondecreasing knot values
// + integer degree of function
// + parameter, which must lie in [knots[degree], knots[len-degree-1]]
//
// **returns**
// + the index k with knots[k] <= u < knots[k+1]
//
// The half-open search would step past the last non-empty span at the right
// end of the domain, so u equal to the maximum scans backward for the last
// knot strictly below it instead.
func Span[T Float](knots []T, degree int, u T) int {
	if u == knots[len(knots)-degree-1] {
		for i := len(knots) - 1; i >= 0; i-- {
			if knots[i] < u {
				return i
			}
		}

		return degree
	}

	low, high := 0, len(knots)-1
	mid := (low + high) / 2

	for u < knots[mid] || u >= knots[mid+1] {
		if u < knots[mid] {
			high = mid
		} else {
			low = mid
		}

		mid = (low + high) / 2
	}

	return mid
}

func IsNonDecreasing[T Float](knots []T) bool {
	for i := 1; i < len(knots); i++ {
		if knots[i] < knots[i-1] {
			return false
		}
	}
	return true
}

// IsClamped reports whether the first and last degree+1 knots repeat.
func IsClamped[T Float](knots []T, degree int) bool {
	if len(knots) < 2*(degree+1) {
		return false
	}

	rep := knots[0]
	for _, knot := range knots[:degree+1] {
		if abs(knot-rep) > Epsilon {
			return false
		}
	}

	rep = knots[len(knots)-1]
	for _, knot := range knots[len(knots)-degree-1:] {
		if abs(knot-rep) > Epsilon {
			return false
		}
	}

	return true
}

type KnotMultiplicity[T Float] struct {
	Knot T
	Mult int
}

//
// Determine the multiplicities of the values in a knot vector
//
// **params**
// + slice of nondecreasing knot values
//
// **returns**
// + slice of knot value, multiplicity pairs in knot order
//
func Multiplicities[T Float](knots []T) []KnotMultiplicity[T] {
	if len(knots) == 0 {
		return nil
	}

	mults := []KnotMultiplicity[T]{{knots[0], 0}}

	var curr int
	for _, knot := range knots {
		if abs(knot-mults[curr].Knot) > Epsilon {
			mults = append(mults, KnotMultiplicity[T]{knot, 0})
			curr++
		}

		mults[curr].Mult++
	}

	return mults
}
