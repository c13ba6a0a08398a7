package splinosaurus

// Option configures the construction of a BSpline or BSurface.
//
//	curve, err := splinosaurus.NewBSpline(points, splinosaurus.Clamped())
type Option func(*options)

type options struct {
	clamped bool
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Clamped generates clamped knot vectors so the curve or surface passes
// through its corner control points. With explicit knots it instead
// requires them to be clamped.
func Clamped() Option {
	return func(o *options) {
		o.clamped = true
	}
}
