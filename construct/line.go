package construct

import (
	"github.com/DSchroer/splinosaurus"
	"github.com/ungerik/go3d/float64/vec3"
)

func Line(first, last *vec3.T) (*splinosaurus.BSpline[float64], error) {
	return Polyline([]vec3.T{*first, *last})
}

// Generate a degree 1 curve through the given points
//
// **params**
// + at least two points, consecutive points may not all coincide
//
// **returns**
// + a curve over [0, 1] whose knots are spaced by chord length, so the
// parameter is proportional to the distance travelled
func Polyline(pts []vec3.T) (*splinosaurus.BSpline[float64], error) {
	cv, err := splinosaurus.NewControlVec(1, points(pts))
	if err != nil {
		return nil, err
	}

	knots := make([]float64, len(pts)+2)

	var lsum float64
	for i := 0; i < len(pts)-1; i++ {
		lsum += vec3.Distance(&pts[i], &pts[i+1])
		knots[i+2] = lsum
	}
	knots[len(knots)-1] = lsum

	// normalize the knot array
	if lsum > 0 {
		for i := range knots {
			knots[i] /= lsum
		}
	}

	return splinosaurus.NewBSplineWithKnots(cv, knots)
}

// Bezier returns the Bézier curve of degree len(pts)-1 over [0, 1].
func Bezier(pts []vec3.T) (*splinosaurus.BSpline[float64], error) {
	cv, err := splinosaurus.NewControlVec(len(pts)-1, points(pts))
	if err != nil {
		return nil, err
	}

	return splinosaurus.NewBSpline(cv, splinosaurus.Clamped())
}

func points(pts []vec3.T) []splinosaurus.Vector[float64] {
	out := make([]splinosaurus.Vector[float64], len(pts))
	for i, p := range pts {
		out[i] = splinosaurus.FromVec3[float64](p)
	}
	return out
}

func weighted(p vec3.T, w float64) splinosaurus.Vector[float64] {
	return splinosaurus.Vec4(p[0], p[1], p[2], w)
}
