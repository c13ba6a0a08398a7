package splinosaurus

import "fmt"

// Surface is a parametric tensor-product surface.
type Surface[T Scalar] interface {
	URange() Interval[T]
	VRange() Interval[T]
	At(uv UV[T]) (Vector[T], error)
}

// Wrapper is implemented by surfaces that are closed along an axis. The
// triangulator uses it to stitch the seam.
type Wrapper interface {
	UWrapping() bool
	VWrapping() bool
}

// BSurface is a non-rational tensor-product B-spline surface.
type BSurface[T Scalar] struct {
	// grid of control points, wrapping along at most one axis
	controlPoints *ControlGrid[T]

	// knots in the u direction, degree + ULen + 1 values
	uKnots *KnotVec[T]

	// knots in the v direction, degree + VLen + 1 values
	vKnots *KnotVec[T]
}

// NewBSurface builds a surface over grid with generated knots on both axes.
// Grids wrapping in both directions are rejected.
func NewBSurface[T Scalar](grid *ControlGrid[T], opts ...Option) (*BSurface[T], error) {
	if err := checkWrapping(grid); err != nil {
		return nil, err
	}

	o := newOptions(opts)
	generate := GenerateKnots[T]
	if o.clamped {
		generate = GenerateClampedKnots[T]
	}

	uKnots, err := generate(grid.Degree(), grid.ULen())
	if err != nil {
		return nil, fmt.Errorf("u knots: %w", err)
	}
	vKnots, err := generate(grid.Degree(), grid.VLen())
	if err != nil {
		return nil, fmt.Errorf("v knots: %w", err)
	}

	return newBSurface(grid, uKnots, vKnots), nil
}

// NewBSurfaceWithKnots builds a surface over grid with explicit knots.
func NewBSurfaceWithKnots[T Scalar](grid *ControlGrid[T], uKnots, vKnots []T, opts ...Option) (*BSurface[T], error) {
	if err := checkWrapping(grid); err != nil {
		return nil, err
	}

	o := newOptions(opts)

	uk, err := checkKnots(grid.Degree(), grid.ULen(), uKnots, o)
	if err != nil {
		return nil, fmt.Errorf("u knots: %w", err)
	}
	vk, err := checkKnots(grid.Degree(), grid.VLen(), vKnots, o)
	if err != nil {
		return nil, fmt.Errorf("v knots: %w", err)
	}

	return newBSurface(grid, uk, vk), nil
}

// Seams are stitched along at most one axis.
func checkWrapping[T Scalar](grid *ControlGrid[T]) error {
	if grid.UWrapping() && grid.VWrapping() {
		return fmt.Errorf("%w: control grid cannot wrap in both u and v", ErrInvalidConfiguration)
	}
	return nil
}

func newBSurface[T Scalar](grid *ControlGrid[T], uKnots, vKnots *KnotVec[T]) *BSurface[T] {
	Logger().Debug("splinosaurus: b-surface",
		"degree", grid.Degree(),
		"uLen", grid.ULen(),
		"vLen", grid.VLen(),
		"uWrapping", grid.UWrapping(),
		"vWrapping", grid.VWrapping(),
	)

	return &BSurface[T]{grid, uKnots, vKnots}
}

func (this *BSurface[T]) Degree() int {
	return this.controlPoints.Degree()
}

func (this *BSurface[T]) UKnots() *KnotVec[T] {
	return this.uKnots
}

func (this *BSurface[T]) VKnots() *KnotVec[T] {
	return this.vKnots
}

func (this *BSurface[T]) ControlGrid() *ControlGrid[T] {
	return this.controlPoints
}

// ControlPoints returns the stored control points in row-major order.
func (this *BSurface[T]) ControlPoints() []Vector[T] {
	return this.controlPoints.Points()
}

func (this *BSurface[T]) Dim() int {
	return this.controlPoints.Dim()
}

func (this *BSurface[T]) UWrapping() bool {
	return this.controlPoints.UWrapping()
}

func (this *BSurface[T]) VWrapping() bool {
	return this.controlPoints.VWrapping()
}

func (this *BSurface[T]) URange() Interval[T] {
	return this.uKnots.Range()
}

func (this *BSurface[T]) VRange() Interval[T] {
	return this.vKnots.Range()
}

// At evaluates the surface at uv, which must lie in URange × VRange.
func (this *BSurface[T]) At(uv UV[T]) (Vector[T], error) {
	if err := this.check(); err != nil {
		return nil, err
	}

	pt, err := CoxDeBoorUV(uv, this.uKnots, this.vKnots, this.controlPoints.At)
	if err != nil {
		return nil, err
	}

	if err := checkDim(pt, this.Dim()); err != nil {
		return nil, err
	}

	return pt, nil
}

// check catches edits to the grid's wrapping made since construction.
func (this *BSurface[T]) check() error {
	grid := this.controlPoints
	if err := checkWrapping(grid); err != nil {
		return err
	}

	if n, fit := grid.ULen(), this.uKnots.Len()-this.uKnots.Degree()-1; n != fit {
		return fmt.Errorf("%w: surface has %d control points along u but its knot vector fits %d",
			ErrInvalidConfiguration, n, fit)
	}
	if n, fit := grid.VLen(), this.vKnots.Len()-this.vKnots.Degree()-1; n != fit {
		return fmt.Errorf("%w: surface has %d control points along v but its knot vector fits %d",
			ErrInvalidConfiguration, n, fit)
	}

	return nil
}

// NURBS returns the rational view of this surface.
func (this *BSurface[T]) NURBS() (*NURBSurface[T], error) {
	return NewNURBSurface(this)
}
