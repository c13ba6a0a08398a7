package construct

import (
	"fmt"

	"github.com/DSchroer/splinosaurus"
	"github.com/ungerik/go3d/float64/vec3"
)

// Generate a flat surface spanned by 4 points
//
// **params**
// + first point in counter-clockwise form, at (u, v) = (0, 0)
// + second point in counter-clockwise form, at (1, 0)
// + third point in counter-clockwise form, at (1, 1)
// + forth point in counter-clockwise form, at (0, 1)
// + degree of the surface in both directions
//
// **returns**
// + a clamped surface over [0, 1] × [0, 1] with (degree+1)² control points
func FourPointSurface(p1, p2, p3, p4 *vec3.T, degree int) (*splinosaurus.BSurface[float64], error) {
	if degree < 1 {
		return nil, fmt.Errorf("%w: degree must be at least 1, got %d",
			splinosaurus.ErrInvalidConfiguration, degree)
	}

	degreeFloat := float64(degree)

	pts := make([]vec3.T, 0, (degree+1)*(degree+1))
	for v := 0; v <= degree; v++ {
		for u := 0; u <= degree; u++ {
			s := float64(u) / degreeFloat
			p1p2 := vec3.Interpolate(p1, p2, s)
			p4p3 := vec3.Interpolate(p4, p3, s)

			pts = append(pts, vec3.Interpolate(&p1p2, &p4p3, float64(v)/degreeFloat))
		}
	}

	grid, err := splinosaurus.NewControlGrid(degree, degree+1, points(pts))
	if err != nil {
		return nil, err
	}

	return splinosaurus.NewBSurface(grid, splinosaurus.Clamped())
}

// Generate an extruded surface
//
// **params**
// + a rational profile curve with (x, y, z, w) control points
// + axis of the extrusion
// + length of the extrusion
//
// **returns**
// + a rational surface that follows the profile along u and the axis along
// v over [0, 1]; a closed profile gives a surface wrapping in u
func Extrude(profile *splinosaurus.NURBS[float64], axis *vec3.T, length float64) (*splinosaurus.NURBSurface[float64], error) {
	spline := profile.BSpline()
	if spline.Dim() != 4 {
		return nil, fmt.Errorf("%w: profile needs (x, y, z, w) control points, got dimension %d",
			splinosaurus.ErrInvalidConfiguration, spline.Dim())
	}

	degree := spline.Degree()
	profPoints := spline.ControlPoints()
	translation := axis.Scaled(length)

	// one row per v control point, evenly spaced along the axis
	pts := make([]splinosaurus.Vector[float64], 0, (degree+1)*len(profPoints))
	for row := 0; row <= degree; row++ {
		offset := translation.Scaled(float64(row) / float64(degree))

		for _, p := range profPoints {
			moved := p.Vec3()
			moved.Add(&offset)
			pts = append(pts, weighted(moved, p[3]))
		}
	}

	grid, err := splinosaurus.NewControlGrid(degree, len(profPoints), pts)
	if err != nil {
		return nil, err
	}
	grid.SetUWrapping(spline.ControlVec().Wrapping())

	vKnots, err := splinosaurus.GenerateClampedKnots[float64](degree, degree+1)
	if err != nil {
		return nil, err
	}

	surface, err := splinosaurus.NewBSurfaceWithKnots(grid, spline.Knots().Values(), vKnots.Values())
	if err != nil {
		return nil, err
	}

	return surface.NURBS()
}

// Generate a cylinder
//
// **params**
// + normalized axis of cylinder
// + xaxis in plane of cylinder
// + position of base of cylinder
// + height from base to top
// + radius of the cylinder
//
// **returns**
// + a rational surface wrapping around the axis in u, with v running from
// base to top
func Cylinder(axis, xaxis, base *vec3.T, height, radius float64) (*splinosaurus.NURBSurface[float64], error) {
	yaxis := vec3.Cross(axis, xaxis)

	circ, err := Circle(base, xaxis, &yaxis, radius)
	if err != nil {
		return nil, err
	}

	return Extrude(circ, axis, height)
}
