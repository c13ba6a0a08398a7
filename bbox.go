package splinosaurus

// BoundingBoxTolerance is the overlap tolerance used when a negative one is
// passed to Contains or Intersects.
const BoundingBoxTolerance = 1e-4

// BoundingBox is an axis-aligned box over points of one dimension. The zero
// value is empty and grows with Add.
type BoundingBox[T Scalar] struct {
	min, max Vector[T]
}

// NewBoundingBox returns the smallest box containing points.
func NewBoundingBox[T Scalar](points []Vector[T]) *BoundingBox[T] {
	return new(BoundingBox[T]).AddRange(points)
}

func (this *BoundingBox[T]) Empty() bool {
	return this.min == nil
}

// Add expands the box to contain point and returns the box for chaining.
func (this *BoundingBox[T]) Add(point Vector[T]) *BoundingBox[T] {
	if this.Empty() {
		this.min = point.Clone()
		this.max = point.Clone()
		return this
	}

	for i, val := range point {
		if val > this.max[i] {
			this.max[i] = val
		}
		if val < this.min[i] {
			this.min[i] = val
		}
	}

	return this
}

func (this *BoundingBox[T]) AddRange(points []Vector[T]) *BoundingBox[T] {
	for _, pt := range points {
		this.Add(pt)
	}
	return this
}

// Min is the minimum corner; nil for an empty box.
func (this *BoundingBox[T]) Min() Vector[T] {
	return this.min
}

// Max is the maximum corner; nil for an empty box.
func (this *BoundingBox[T]) Max() Vector[T] {
	return this.max
}

// Contains reports whether point lies in the box grown by tol.
func (this *BoundingBox[T]) Contains(point Vector[T], tol T) bool {
	if this.Empty() {
		return false
	}

	return this.Intersects(new(BoundingBox[T]).Add(point), tol)
}

// Intersects reports whether the two boxes, each grown by tol, overlap.
func (this *BoundingBox[T]) Intersects(bb *BoundingBox[T], tol T) bool {
	if this.Empty() || bb.Empty() {
		return false
	}

	if tol < 0 {
		tol = BoundingBoxTolerance
	}

	for i := range this.min {
		if this.min[i]-tol > bb.max[i]+tol || bb.min[i]-tol > this.max[i]+tol {
			return false
		}
	}

	return true
}

// LongestAxis returns the index of the longest side.
func (this *BoundingBox[T]) LongestAxis() int {
	var (
		id  int
		max T
	)

	for i := range this.min {
		if l := this.AxisLength(i); l > max {
			max = l
			id = i
		}
	}

	return id
}

// AxisLength is the extent along axis i, or 0 when i is out of bounds.
func (this *BoundingBox[T]) AxisLength(i int) T {
	if i < 0 || i >= len(this.min) {
		return 0
	}
	return this.max[i] - this.min[i]
}
