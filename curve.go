package splinosaurus

import "fmt"

// Curve is a parametric curve evaluated over an inclusive domain.
type Curve[T Scalar] interface {
	Range() Interval[T]
	At(u T) (Vector[T], error)
}

// BSpline is a non-rational B-spline curve. Evaluation is a pure function
// of its control points and knots; both may be edited between calls.
type BSpline[T Scalar] struct {
	// control points, possibly wrapping
	controlPoints *ControlVec[T]

	// degree + len(controlPoints) + 1 nondecreasing knot values
	knots *KnotVec[T]
}

// NewBSpline builds a curve over cv with generated knots: uniform by
// default, clamped with the Clamped option.
func NewBSpline[T Scalar](cv *ControlVec[T], opts ...Option) (*BSpline[T], error) {
	o := newOptions(opts)

	var (
		knots *KnotVec[T]
		err   error
	)
	if o.clamped {
		knots, err = GenerateClampedKnots[T](cv.Degree(), cv.Len())
	} else {
		knots, err = GenerateKnots[T](cv.Degree(), cv.Len())
	}
	if err != nil {
		return nil, err
	}

	return newBSpline(cv, knots), nil
}

// NewBSplineWithKnots builds a curve over cv with explicit knots, which must
// number degree + cv.Len() + 1. With the Clamped option the knots must also
// be clamped.
func NewBSplineWithKnots[T Scalar](cv *ControlVec[T], knots []T, opts ...Option) (*BSpline[T], error) {
	kv, err := checkKnots(cv.Degree(), cv.Len(), knots, newOptions(opts))
	if err != nil {
		return nil, err
	}

	return newBSpline(cv, kv), nil
}

func newBSpline[T Scalar](cv *ControlVec[T], knots *KnotVec[T]) *BSpline[T] {
	Logger().Debug("splinosaurus: b-spline",
		"degree", cv.Degree(),
		"points", len(cv.Points()),
		"wrapping", cv.Wrapping(),
		"knots", knots.Len(),
	)

	return &BSpline[T]{cv, knots}
}

func checkKnots[T Scalar](degree, n int, knots []T, o options) (*KnotVec[T], error) {
	if want := degree + n + 1; len(knots) != want {
		return nil, fmt.Errorf("%w: knot vector length must be degree+N+1 (%d), got %d",
			ErrInvalidConfiguration, want, len(knots))
	}

	kv, err := NewKnotVec(degree, knots)
	if err != nil {
		return nil, err
	}

	if o.clamped && !kv.IsClamped() {
		return nil, fmt.Errorf("%w: knot vector %v should begin and end with degree+1 repeats",
			ErrInvalidConfiguration, kv)
	}

	return kv, nil
}

func (this *BSpline[T]) Degree() int {
	return this.controlPoints.Degree()
}

// Knots returns the curve's own knot vector; edits apply to the curve.
func (this *BSpline[T]) Knots() *KnotVec[T] {
	return this.knots
}

func (this *BSpline[T]) ControlVec() *ControlVec[T] {
	return this.controlPoints
}

// ControlPoints returns the stored control points; edits apply to the curve.
func (this *BSpline[T]) ControlPoints() []Vector[T] {
	return this.controlPoints.Points()
}

func (this *BSpline[T]) Dim() int {
	return this.controlPoints.Dim()
}

func (this *BSpline[T]) Range() Interval[T] {
	return this.knots.Range()
}

// At evaluates the curve at u, which must lie in Range.
func (this *BSpline[T]) At(u T) (Vector[T], error) {
	if err := this.check(); err != nil {
		return nil, err
	}

	pt, err := CoxDeBoor(u, this.knots, this.controlPoints.At)
	if err != nil {
		return nil, err
	}

	if err := checkDim(pt, this.Dim()); err != nil {
		return nil, err
	}

	return pt, nil
}

// check catches edits made since construction that no longer describe a
// curve, such as toggling the wrapping of the control points.
func (this *BSpline[T]) check() error {
	n, fit := this.controlPoints.Len(), this.knots.Len()-this.knots.Degree()-1
	if n != fit {
		return fmt.Errorf("%w: curve has %d control points but its knot vector fits %d",
			ErrInvalidConfiguration, n, fit)
	}
	return nil
}

// NURBS returns the rational view of this curve, reading the last
// coordinate of each control point as its weight.
func (this *BSpline[T]) NURBS() (*NURBS[T], error) {
	return NewNURBS(this)
}
