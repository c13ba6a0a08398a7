package splinosaurus

import (
	"fmt"

	"github.com/DSchroer/splinosaurus/internal"
)

// CoxDeBoor evaluates the B-spline with the given knots at u, reading the
// control points through at. Indices passed to at are logical; wrapping is
// left to the accessor.
//
// It fails with ErrOutOfRange when u lies outside the knot domain and with
// ErrInvalidConfiguration when the points it reads differ in dimension.
func CoxDeBoor[T Scalar](u T, knots *KnotVec[T], at func(i int) Vector[T]) (Vector[T], error) {
	k, err := knots.FindSpan(u)
	if err != nil {
		return nil, err
	}

	degree := knots.degree
	d, err := window(degree+1, func(j int) Vector[T] {
		return at(k - degree + j)
	})
	if err != nil {
		return nil, err
	}

	internal.Blend(u, degree, k, knots.values, d)

	return d[degree], nil
}

// CoxDeBoorUV evaluates the tensor-product surface with the given knots at
// uv. Each row of the (degreeU+1)×(degreeV+1) control window is blended
// along u, then the row results are blended along v with the same
// recurrence.
func CoxDeBoorUV[T Scalar](uv UV[T], uKnots, vKnots *KnotVec[T], at func(u, v int) Vector[T]) (Vector[T], error) {
	uk, err := uKnots.FindSpan(uv.U)
	if err != nil {
		return nil, err
	}
	vk, err := vKnots.FindSpan(uv.V)
	if err != nil {
		return nil, err
	}

	du, dv := uKnots.degree, vKnots.degree
	col := make([]Vector[T], dv+1)

	for vj := range col {
		row, err := window(du+1, func(uj int) Vector[T] {
			return at(uk-du+uj, vk-dv+vj)
		})
		if err != nil {
			return nil, err
		}

		internal.Blend(uv.U, du, uk, uKnots.values, row)
		col[vj] = row[du]

		if len(col[vj]) != len(col[0]) {
			return nil, fmt.Errorf("%w: control rows differ in dimension (%d and %d)",
				ErrInvalidConfiguration, len(col[0]), len(col[vj]))
		}
	}

	internal.Blend(uv.V, dv, vk, vKnots.values, col)

	return col[dv], nil
}

// window copies n points into one backing array so the blend can work in
// place without touching the control points. Every point must have the
// dimension of the first.
func window[T Scalar](n int, at func(j int) Vector[T]) ([]Vector[T], error) {
	first := at(0)
	dim := len(first)

	buf := make([]T, n*dim)
	d := make([]Vector[T], n)

	for j := range d {
		pt := first
		if j > 0 {
			pt = at(j)
		}

		if len(pt) != dim {
			return nil, fmt.Errorf("%w: control point has dimension %d, expected %d",
				ErrInvalidConfiguration, len(pt), dim)
		}

		d[j] = buf[j*dim : (j+1)*dim : (j+1)*dim]
		copy(d[j], pt)
	}

	return d, nil
}
