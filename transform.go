package splinosaurus

import (
	"fmt"

	"github.com/ungerik/go3d/float64/mat4"
)

// TransformPoints applies mat to 3D points in place. Weighted 4D points are
// transformed by their first three coordinates and keep their weight, so the
// rational curve or surface they define is transformed as a whole.
//
// Points of any other dimension are rejected with ErrInvalidConfiguration.
func TransformPoints[T Scalar](points []Vector[T], mat *mat4.T) error {
	dim, err := checkDims(points)
	if err != nil {
		return err
	}

	switch dim {
	case 3, 4:
		for _, pt := range points {
			v := pt.Vec3()
			v = mat.MulVec3(&v)
			pt[0], pt[1], pt[2] = T(v[0]), T(v[1]), T(v[2])
		}

	default:
		return fmt.Errorf("%w: transform needs 3D or weighted 4D points, got dimension %d",
			ErrInvalidConfiguration, dim)
	}

	return nil
}
