package splinosaurus

import (
	"fmt"

	"github.com/DSchroer/splinosaurus/internal"
)

// NURBS is the rational view of a BSpline whose control points carry their
// weight as the last coordinate. A curve of dimension D yields points of
// dimension D-1. The view reads the spline on every call, so edits to the
// spline show up in the NURBS.
type NURBS[T Scalar] struct {
	spline *BSpline[T]
}

func NewNURBS[T Scalar](spline *BSpline[T]) (*NURBS[T], error) {
	if spline.Dim() < 2 {
		return nil, fmt.Errorf("%w: weighted control points need at least 2 coordinates, got %d",
			ErrInvalidConfiguration, spline.Dim())
	}

	return &NURBS[T]{spline}, nil
}

func (this *NURBS[T]) BSpline() *BSpline[T] {
	return this.spline
}

func (this *NURBS[T]) Range() Interval[T] {
	return this.spline.Range()
}

// At evaluates the rational curve at u. It fails with ErrDegenerateWeight
// when the blended weight at u is not strictly positive.
func (this *NURBS[T]) At(u T) (Vector[T], error) {
	if err := this.spline.check(); err != nil {
		return nil, err
	}

	cv := this.spline.controlPoints

	homo, err := CoxDeBoor(u, this.spline.knots, func(i int) Vector[T] {
		return weigh(cv.At(i))
	})
	if err != nil {
		return nil, err
	}
	if err := checkDim(homo, cv.Dim()); err != nil {
		return nil, err
	}

	return project(homo, func() string { return fmt.Sprintf("u=%g", float64(u)) })
}

// NURBSurface is the rational view of a BSurface.
type NURBSurface[T Scalar] struct {
	surface *BSurface[T]
}

func NewNURBSurface[T Scalar](surface *BSurface[T]) (*NURBSurface[T], error) {
	if surface.Dim() < 2 {
		return nil, fmt.Errorf("%w: weighted control points need at least 2 coordinates, got %d",
			ErrInvalidConfiguration, surface.Dim())
	}

	return &NURBSurface[T]{surface}, nil
}

func (this *NURBSurface[T]) BSurface() *BSurface[T] {
	return this.surface
}

func (this *NURBSurface[T]) URange() Interval[T] {
	return this.surface.URange()
}

func (this *NURBSurface[T]) VRange() Interval[T] {
	return this.surface.VRange()
}

func (this *NURBSurface[T]) UWrapping() bool {
	return this.surface.UWrapping()
}

func (this *NURBSurface[T]) VWrapping() bool {
	return this.surface.VWrapping()
}

// At evaluates the rational surface at uv.
func (this *NURBSurface[T]) At(uv UV[T]) (Vector[T], error) {
	if err := this.surface.check(); err != nil {
		return nil, err
	}

	grid := this.surface.controlPoints

	homo, err := CoxDeBoorUV(uv, this.surface.uKnots, this.surface.vKnots, func(u, v int) Vector[T] {
		return weigh(grid.At(u, v))
	})
	if err != nil {
		return nil, err
	}
	if err := checkDim(homo, grid.Dim()); err != nil {
		return nil, err
	}

	return project(homo, func() string {
		return fmt.Sprintf("uv=(%g, %g)", float64(uv.U), float64(uv.V))
	})
}

// weigh returns the homogeneous copy of pt.
func weigh[T Scalar](pt Vector[T]) Vector[T] {
	if len(pt) == 0 {
		return pt
	}

	weighted := make(Vector[T], len(pt))
	internal.Weight(weighted, pt)
	return weighted
}

func project[T Scalar](homo Vector[T], where func() string) (Vector[T], error) {
	pt := make(Vector[T], len(homo)-1)
	if !internal.Project(pt, homo) {
		return nil, fmt.Errorf("%w: blended weight %g at %s",
			ErrDegenerateWeight, float64(homo[len(homo)-1]), where())
	}

	return pt, nil
}
