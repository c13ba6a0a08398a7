package splinosaurus

import (
	"fmt"

	"github.com/DSchroer/splinosaurus/internal"
)

// KnotVec is a nondecreasing sequence of knot values for a curve or surface
// axis of a given degree. Its domain is [knots[degree], knots[len-degree-1]].
//
// A KnotVec owned by a BSpline or BSurface may be edited in place between
// evaluations with ClampEnds and Pinch.
type KnotVec[T Scalar] struct {
	degree int
	values []T
}

// NewKnotVec validates and copies values. The knots must be sorted, hold at
// least 2(degree+1) entries and span a non-empty domain.
func NewKnotVec[T Scalar](degree int, values []T) (*KnotVec[T], error) {
	if degree < 1 {
		return nil, fmt.Errorf("%w: degree must be at least 1, got %d", ErrInvalidConfiguration, degree)
	}

	if len(values) < 2*(degree+1) {
		return nil, fmt.Errorf("%w: knot vector of degree %d needs at least %d knots, got %d",
			ErrInvalidConfiguration, degree, 2*(degree+1), len(values))
	}

	this := &KnotVec[T]{degree, append([]T(nil), values...)}
	if err := this.check(); err != nil {
		return nil, err
	}

	return this, nil
}

// GenerateKnots returns the uniform knot vector 0, 1, ..., degree+n for n
// control points.
func GenerateKnots[T Scalar](degree, n int) (*KnotVec[T], error) {
	if err := checkCount(degree, n); err != nil {
		return nil, err
	}

	return generateKnots[T](degree, n), nil
}

// GenerateClampedKnots returns a knot vector for n control points whose
// first and last knots repeat degree+1 times, so the curve starts and ends on
// its first and last control points. For degree 2 and four points this is
// [0 0 0 1 2 2 2].
func GenerateClampedKnots[T Scalar](degree, n int) (*KnotVec[T], error) {
	if err := checkCount(degree, n); err != nil {
		return nil, err
	}

	return generateClampedKnots[T](degree, n), nil
}

func generateKnots[T Scalar](degree, n int) *KnotVec[T] {
	values := make([]T, degree+n+1)
	for i := range values {
		values[i] = T(i)
	}

	return &KnotVec[T]{degree, values}
}

func generateClampedKnots[T Scalar](degree, n int) *KnotVec[T] {
	values := make([]T, degree+n+1)
	last := T(n - degree)

	for i := range values {
		switch {
		case i <= degree:
			values[i] = 0
		case i >= n:
			values[i] = last
		default:
			values[i] = T(i - degree)
		}
	}

	return &KnotVec[T]{degree, values}
}

func checkCount(degree, n int) error {
	if degree < 1 {
		return fmt.Errorf("%w: degree must be at least 1, got %d", ErrInvalidConfiguration, degree)
	}

	if n < degree+1 {
		return fmt.Errorf("%w: insufficient control points, must have at least degree+1 (%d), got %d",
			ErrInvalidConfiguration, degree+1, n)
	}

	return nil
}

func (this *KnotVec[T]) check() error {
	if !internal.IsNonDecreasing(this.values) {
		return fmt.Errorf("%w: knots must be nondecreasing, got %v", ErrInvalidConfiguration, this.values)
	}

	if r := this.Range(); !(r.Start < r.End) {
		return fmt.Errorf("%w: knot domain %v is empty", ErrInvalidConfiguration, r)
	}

	return nil
}

func (this *KnotVec[T]) Degree() int {
	return this.degree
}

func (this *KnotVec[T]) Len() int {
	return len(this.values)
}

func (this *KnotVec[T]) At(i int) T {
	return this.values[i]
}

// Values returns a copy of the knots.
func (this *KnotVec[T]) Values() []T {
	return append([]T(nil), this.values...)
}

func (this *KnotVec[T]) Clone() *KnotVec[T] {
	return &KnotVec[T]{this.degree, this.Values()}
}

// Range is the inclusive domain [knots[degree], knots[len-degree-1]].
func (this *KnotVec[T]) Range() Interval[T] {
	return Interval[T]{this.values[this.degree], this.values[len(this.values)-this.degree-1]}
}

func (this *KnotVec[T]) Contains(u T) bool {
	return this.Range().Contains(u)
}

// FindSpan returns the index k with knots[k] <= u < knots[k+1]. At the end
// of the domain it returns the last non-empty span instead, so the result is
// always in [degree, len-degree-2].
func (this *KnotVec[T]) FindSpan(u T) (int, error) {
	if r := this.Range(); !r.Contains(u) {
		return 0, fmt.Errorf("%w: u=%g is outside %v", ErrOutOfRange, float64(u), r)
	}

	return internal.Span(this.values, this.degree, u), nil
}

// ClampEnds overwrites the first and last degree knots with the ends of the
// domain so the curve touches its first and last control points.
func (this *KnotVec[T]) ClampEnds() {
	r := this.Range()
	n := len(this.values)

	for i := 0; i < this.degree; i++ {
		this.values[i] = r.Start
		this.values[n-i-1] = r.End
	}
}

// Pinch collapses the length knots following index onto knots[index] and
// shifts every later knot down by length. Pinching a uniform knot vector
// introduces a sharp point:
//
//	[0 0 0 1 2 3 3 3].Pinch(3, 1) == [0 0 0 1 1 2 2 2]
//
// The knot vector is left unchanged when the result would be unsorted or
// have an empty domain.
func (this *KnotVec[T]) Pinch(index, length int) error {
	if index < 0 || length < 0 || index+length >= len(this.values) {
		return fmt.Errorf("%w: cannot pinch %d knots after index %d of %d",
			ErrInvalidConfiguration, length, index, len(this.values))
	}

	saved := this.Values()

	for i := 1; i <= length; i++ {
		this.values[index+i] = this.values[index]
	}
	for i := index + length + 1; i < len(this.values); i++ {
		this.values[i] -= T(length)
	}

	if err := this.check(); err != nil {
		this.values = saved
		return err
	}

	return nil
}

// IsClamped reports whether the first and last degree+1 knots repeat.
func (this *KnotVec[T]) IsClamped() bool {
	return internal.IsClamped(this.values, this.degree)
}

func (this *KnotVec[T]) IsNonDecreasing() bool {
	return internal.IsNonDecreasing(this.values)
}

type KnotMultiplicity[T Scalar] struct {
	Knot T
	Mult int
}

// Multiplicities lists each distinct knot value with its number of repeats.
func (this *KnotVec[T]) Multiplicities() []KnotMultiplicity[T] {
	mults := internal.Multiplicities(this.values)

	out := make([]KnotMultiplicity[T], len(mults))
	for i, m := range mults {
		out[i] = KnotMultiplicity[T]{m.Knot, m.Mult}
	}

	return out
}

func (this *KnotVec[T]) String() string {
	return fmt.Sprint(this.values)
}
