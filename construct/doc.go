// Package construct builds common curves and surfaces on top of
// splinosaurus: lines, polylines, Bézier curves, circles, bilinear patches
// and extrusions.
//
// Inputs use go3d vectors and the results are float64 curves and
// surfaces. Rational shapes store their control points as (x, y, z, w).
package construct
