package splinosaurus

import (
	"fmt"

	"github.com/DSchroer/splinosaurus/internal"
)

// Axis maps logical control point indices onto stored ones along one
// direction. A wrapping axis is degree entries longer than its storage and
// reads those extra entries from the start again, which closes the curve or
// surface without duplicating points.
type Axis struct {
	degree   int
	physical int
	wrapping bool
}

// Len is the logical number of control points along the axis.
func (a Axis) Len() int {
	if a.wrapping {
		return a.physical + a.degree
	}
	return a.physical
}

// Physical maps a logical index onto the stored index.
func (a Axis) Physical(i int) int {
	if a.wrapping {
		return i % a.physical
	}
	return i
}

func (a Axis) Wrapping() bool {
	return a.wrapping
}

// ControlPoints is an indexable, wrap-aware source of control points.
type ControlPoints[T Scalar] interface {
	Len() int
	At(i int) Vector[T]
}

var _ ControlPoints[float64] = (*ControlVec[float64])(nil)

// ControlVec is the ordered list of control points of a curve.
type ControlVec[T Scalar] struct {
	axis   Axis
	points []Vector[T]
	dim    int
}

// NewControlVec takes ownership of points. It requires at least degree+1
// points of one dimension.
func NewControlVec[T Scalar](degree int, points []Vector[T]) (*ControlVec[T], error) {
	if err := checkCount(degree, len(points)); err != nil {
		return nil, err
	}

	dim, err := checkDims(points)
	if err != nil {
		return nil, err
	}

	return &ControlVec[T]{Axis{degree, len(points), false}, points, dim}, nil
}

// NewWrappingControlVec is NewControlVec for a closed curve.
func NewWrappingControlVec[T Scalar](degree int, points []Vector[T]) (*ControlVec[T], error) {
	this, err := NewControlVec(degree, points)
	if err != nil {
		return nil, err
	}

	this.axis.wrapping = true
	return this, nil
}

func (this *ControlVec[T]) Degree() int {
	return this.axis.degree
}

// Len is the logical length, including wrapped points.
func (this *ControlVec[T]) Len() int {
	return this.axis.Len()
}

func (this *ControlVec[T]) At(i int) Vector[T] {
	return this.points[this.axis.Physical(i)]
}

// Points returns the stored points. Edits are seen by later evaluations;
// replacement points must keep the container's dimension or evaluation
// fails with ErrInvalidConfiguration.
func (this *ControlVec[T]) Points() []Vector[T] {
	return this.points
}

func (this *ControlVec[T]) Dim() int {
	return this.dim
}

func (this *ControlVec[T]) Axis() Axis {
	return this.axis
}

func (this *ControlVec[T]) Wrapping() bool {
	return this.axis.wrapping
}

// SetWrapping changes the logical length. Curves built from this container
// keep their knot vector, so set wrapping before constructing them;
// evaluating a curve whose length no longer fits its knots fails with
// ErrInvalidConfiguration.
func (this *ControlVec[T]) SetWrapping(wrapping bool) {
	this.axis.wrapping = wrapping
}

// ControlGrid is a row-major grid of surface control points; u runs along
// a row, v across rows.
type ControlGrid[T Scalar] struct {
	degree int
	u, v   Axis
	points internal.Grid[Vector[T]]
	dim    int
}

// NewControlGrid splits points into rows of uLen entries.
func NewControlGrid[T Scalar](degree, uLen int, points []Vector[T]) (*ControlGrid[T], error) {
	if uLen <= 0 {
		return nil, fmt.Errorf("%w: u length must be positive, got %d", ErrInvalidConfiguration, uLen)
	}

	grid, ok := internal.NewGrid(uLen, points)
	if !ok {
		return nil, fmt.Errorf("%w: points length %d must be a multiple of u length %d",
			ErrInvalidConfiguration, len(points), uLen)
	}

	if err := checkCount(degree, grid.Len()); err != nil {
		return nil, fmt.Errorf("u axis: %w", err)
	}
	if err := checkCount(degree, grid.Height()); err != nil {
		return nil, fmt.Errorf("v axis: %w", err)
	}

	dim, err := checkDims(points)
	if err != nil {
		return nil, err
	}

	return &ControlGrid[T]{
		degree: degree,
		u:      Axis{degree, grid.Len(), false},
		v:      Axis{degree, grid.Height(), false},
		points: grid,
		dim:    dim,
	}, nil
}

func (this *ControlGrid[T]) Degree() int {
	return this.degree
}

// ULen is the logical length in the u direction, including wrapping.
func (this *ControlGrid[T]) ULen() int {
	return this.u.Len()
}

// VLen is the logical length in the v direction, including wrapping.
func (this *ControlGrid[T]) VLen() int {
	return this.v.Len()
}

func (this *ControlGrid[T]) At(u, v int) Vector[T] {
	return this.points.At(this.u.Physical(u), this.v.Physical(v))
}

// Points returns the stored points in row-major order. The same rules as
// ControlVec.Points apply to edits.
func (this *ControlGrid[T]) Points() []Vector[T] {
	return this.points.Values()
}

// Row returns the stored points of row v.
func (this *ControlGrid[T]) Row(v int) []Vector[T] {
	return this.points.Row(v)
}

func (this *ControlGrid[T]) Dim() int {
	return this.dim
}

func (this *ControlGrid[T]) UWrapping() bool {
	return this.u.wrapping
}

// SetUWrapping changes the logical length along u. Surfaces built from this
// grid fail to evaluate when the new length no longer fits their knots or
// when both axes end up wrapping.
func (this *ControlGrid[T]) SetUWrapping(wrapping bool) {
	this.u.wrapping = wrapping
}

func (this *ControlGrid[T]) VWrapping() bool {
	return this.v.wrapping
}

// SetVWrapping is SetUWrapping for the v axis.
func (this *ControlGrid[T]) SetVWrapping(wrapping bool) {
	this.v.wrapping = wrapping
}
