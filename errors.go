package splinosaurus

import "errors"

// ErrOutOfRange is returned when a parameter lies outside the inclusive
// domain of a knot vector, curve or surface.
var ErrOutOfRange = errors.New("splinosaurus: parameter out of range")

// ErrInvalidConfiguration is returned when the shape of the inputs cannot
// describe a valid curve or surface: too few control points for the degree,
// a knot vector of the wrong length or order, mismatched dimensions, or
// wrapping on both axes of a surface.
var ErrInvalidConfiguration = errors.New("splinosaurus: invalid configuration")

// ErrDegenerateWeight is returned by the rational views when the blended
// weight at the evaluated parameter is not strictly positive.
var ErrDegenerateWeight = errors.New("splinosaurus: degenerate weight")
