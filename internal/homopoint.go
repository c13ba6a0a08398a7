package internal

// Weight writes the homogeneous form of src into dst: every coordinate but
// the last is multiplied by the last one, the weight, which is kept as is.
//
// dst and src may alias.
func Weight[T Float, V ~[]T](dst, src V) {
	w := src[len(src)-1]
	for i := 0; i < len(src)-1; i++ {
		dst[i] = src[i] * w
	}
	dst[len(src)-1] = w
}

// Dehomogenize a point
//
// **params**
// + destination of length (dim)
// + a point represented by (wi*pi, wi) with length (dim+1)
//
// **returns**
// + false when the weight is not strictly positive, in which case dst is untouched
func Project[T Float, V ~[]T](dst, src V) bool {
	w := src[len(src)-1]
	if !(w > 0) {
		return false
	}

	for i := range dst {
		dst[i] = src[i] / w
	}

	return true
}
