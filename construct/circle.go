package construct

import (
	"math"

	"github.com/DSchroer/splinosaurus"
	"github.com/ungerik/go3d/float64/vec3"
)

// Create a circle as a closed quadratic NURBS curve
//
// **params**
// + the center of the circle
// + the xaxis, where the curve starts
// + the yaxis, orthogonal to xaxis; the curve turns from xaxis towards it
// + radius of the circle
//
// **returns**
// + a rational curve over [1, 5], one unit per quarter turn, that is back
// at its start point at the end of the domain
//
// The eight control points lie on the square around the circle: the points
// where it touches the circle have weight 1 and the corners cos(pi/4). The
// wrapped knots are pinched at every other knot so each quarter is an exact
// conic arc.
func Circle(center, xaxis, yaxis *vec3.T, radius float64) (*splinosaurus.NURBS[float64], error) {
	xaxisNorm, yaxisNorm := xaxis.Normalized(), yaxis.Normalized()

	pts := make([]splinosaurus.Vector[float64], 8)
	for i := range pts {
		angle := float64(i) * math.Pi / 4

		r, w := radius, 1.0
		if i%2 == 1 {
			r, w = radius*math.Sqrt2, math.Sqrt2/2
		}

		xCompon := xaxisNorm.Scaled(r * math.Cos(angle))
		yCompon := yaxisNorm.Scaled(r * math.Sin(angle))
		offset := vec3.Add(&xCompon, &yCompon)

		pts[i] = weighted(vec3.Add(center, &offset), w)
	}

	cv, err := splinosaurus.NewWrappingControlVec(2, pts)
	if err != nil {
		return nil, err
	}

	spline, err := splinosaurus.NewBSpline(cv)
	if err != nil {
		return nil, err
	}

	if err := pinchArcs(spline.Knots()); err != nil {
		return nil, err
	}

	return spline.NURBS()
}

// pinchArcs turns the uniform knots 0..12 of a wrapped 8 point quadratic
// into 0 1 1 2 2 3 3 4 4 5 5 6 6.
func pinchArcs(knots *splinosaurus.KnotVec[float64]) error {
	for i := 1; i < knots.Len()-1; i += 2 {
		if err := knots.Pinch(i, 1); err != nil {
			return err
		}
	}
	return nil
}
