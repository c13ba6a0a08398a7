package splinosaurus

import (
	"fmt"
	"strings"

	"github.com/DSchroer/splinosaurus/internal"
	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
	"github.com/ungerik/go3d/float64/vec4"
)

// Scalar is the set of numeric types control points, knots and parameters
// may use. float64 is the common base type that values are cast through.
type Scalar interface {
	internal.Float
}

// MaxDim is the largest supported point dimension. Homogeneous points for a
// 3D rational curve or surface use all four coordinates.
const MaxDim = 4

// Vector is a point of dimension 1 to MaxDim.
type Vector[T Scalar] []T

func Vec2[T Scalar](x, y T) Vector[T] {
	return Vector[T]{x, y}
}

func Vec3[T Scalar](x, y, z T) Vector[T] {
	return Vector[T]{x, y, z}
}

func Vec4[T Scalar](x, y, z, w T) Vector[T] {
	return Vector[T]{x, y, z, w}
}

func (v Vector[T]) Dim() int {
	return len(v)
}

func (v Vector[T]) Clone() Vector[T] {
	return append(Vector[T](nil), v...)
}

// ApproxEqual reports whether v and o have the same dimension and every
// coordinate differs by at most tol.
func (v Vector[T]) ApproxEqual(o Vector[T], tol T) bool {
	if len(v) != len(o) {
		return false
	}

	for i := range v {
		d := v[i] - o[i]
		if d > tol || d < -tol {
			return false
		}
	}

	return true
}

func (v Vector[T]) String() string {
	parts := make([]string, len(v))
	for i, c := range v {
		parts[i] = fmt.Sprintf("%g", float64(c))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Vec2 converts v to the base type. Missing coordinates are zero and extra
// ones are dropped; the same holds for Vec3 and Vec4.
func (v Vector[T]) Vec2() vec2.T {
	var out vec2.T
	for i := 0; i < len(out) && i < len(v); i++ {
		out[i] = float64(v[i])
	}
	return out
}

func (v Vector[T]) Vec3() vec3.T {
	var out vec3.T
	for i := 0; i < len(out) && i < len(v); i++ {
		out[i] = float64(v[i])
	}
	return out
}

func (v Vector[T]) Vec4() vec4.T {
	var out vec4.T
	for i := 0; i < len(out) && i < len(v); i++ {
		out[i] = float64(v[i])
	}
	return out
}

func FromVec2[T Scalar](p vec2.T) Vector[T] {
	return Vector[T]{T(p[0]), T(p[1])}
}

func FromVec3[T Scalar](p vec3.T) Vector[T] {
	return Vector[T]{T(p[0]), T(p[1]), T(p[2])}
}

func FromVec4[T Scalar](p vec4.T) Vector[T] {
	return Vector[T]{T(p[0]), T(p[1]), T(p[2]), T(p[3])}
}

// Interval is an inclusive parameter range.
type Interval[T Scalar] struct {
	Start, End T
}

func (r Interval[T]) Contains(u T) bool {
	return u >= r.Start && u <= r.End
}

func (r Interval[T]) Length() T {
	return r.End - r.Start
}

func (r Interval[T]) String() string {
	return fmt.Sprintf("[%g, %g]", float64(r.Start), float64(r.End))
}

// UV is a parameter pair on a surface.
type UV[T Scalar] struct {
	U, V T
}

// checkDims verifies that every point has the same dimension in [1, MaxDim]
// and returns it.
func checkDims[T Scalar](points []Vector[T]) (int, error) {
	if len(points) == 0 {
		return 0, fmt.Errorf("%w: no control points", ErrInvalidConfiguration)
	}

	dim := len(points[0])
	if dim < 1 || dim > MaxDim {
		return 0, fmt.Errorf("%w: point dimension must be between 1 and %d, got %d", ErrInvalidConfiguration, MaxDim, dim)
	}

	for i, p := range points {
		if len(p) != dim {
			return 0, fmt.Errorf("%w: point %d has dimension %d, expected %d", ErrInvalidConfiguration, i, len(p), dim)
		}
	}

	return dim, nil
}

// checkDim verifies that an evaluated point kept the dimension its control
// points were built with.
func checkDim[T Scalar](pt Vector[T], dim int) error {
	if len(pt) != dim {
		return fmt.Errorf("%w: control points changed dimension from %d to %d",
			ErrInvalidConfiguration, dim, len(pt))
	}
	return nil
}
