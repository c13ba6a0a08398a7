package internal

// Float is the set of scalar types the evaluation engine works over.
type Float interface {
	~float32 | ~float64
}

// Epsilon is the tolerance used when comparing knot values.
const Epsilon = 1e-10

func abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
