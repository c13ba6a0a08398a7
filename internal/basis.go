package internal

// Blend runs the triangular de Boor table in place
// (corresponds to algorithm A3.1 from The NURBS book, evaluated
// directly on control points rather than on basis function values)
//
// **params**
// + parameter inside the span
// + integer degree of function
// + knot span index k, as returned by Span
// + slice of nondecreasing knot values
// + the degree+1 points d[j] = P[k-degree+j], overwritten in place
//
// **returns**
// + nothing; the blended point is left in d[degree]
func Blend[T Float, V ~[]T](u T, degree, k int, knots []T, d []V) {
	for r := 1; r <= degree; r++ {
		// j descends so d[j-1] still holds level r-1 when d[j] is overwritten.
		for j := degree; j >= r; j-- {
			alpha := Alpha(u, degree, k, r, j, knots)
			prev, cur := d[j-1], d[j]

			for i := range cur {
				cur[i] = prev[i]*(1-alpha) + cur[i]*alpha
			}
		}
	}
}

// Alpha is the blend factor between d[j-1] and d[j] at level r.
func Alpha[T Float](u T, degree, k, r, j int, knots []T) T {
	kp := knots[j+k-degree]
	return (u - kp) / (knots[j+k-r+1] - kp)
}
