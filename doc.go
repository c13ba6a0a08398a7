// Package splinosaurus evaluates B-spline and NURBS curves and
// tensor-product surfaces.
//
// A curve is a ControlVec of points plus a KnotVec; a surface is a
// ControlGrid plus one KnotVec per axis. Both are evaluated with the
// Cox–de Boor recurrence (see CoxDeBoor and CoxDeBoorUV), applied twice for
// surfaces. Control containers may wrap along an axis, which closes the
// curve or surface without storing extra points.
//
// The rational views NURBS and NURBSurface read the last coordinate of each
// control point as its weight and project the blended homogeneous point
// back to one dimension lower.
//
// QuantizeRange, Quantize and Sample step through a domain so that the end
// of the domain is always sampled exactly. The export package turns a
// sampled surface into an indexed triangle mesh and the construct package
// builds common shapes.
//
// All evaluation is synchronous and free of shared mutable state, so
// callers may evaluate one curve from many goroutines as long as nobody
// edits it concurrently.
package splinosaurus
