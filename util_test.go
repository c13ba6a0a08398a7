package splinosaurus

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func mustControlVec[T Scalar](t *testing.T, degree int, points ...Vector[T]) *ControlVec[T] {
	t.Helper()
	cv, err := NewControlVec(degree, points)
	if err != nil {
		t.Fatal(err)
	}
	return cv
}

func mustAt[T Scalar](t *testing.T, c Curve[T], u T) Vector[T] {
	t.Helper()
	pt, err := c.At(u)
	if err != nil {
		t.Fatal(err)
	}
	return pt
}

func mustAtUV[T Scalar](t *testing.T, s Surface[T], u, v T) Vector[T] {
	t.Helper()
	pt, err := s.At(UV[T]{u, v})
	if err != nil {
		t.Fatal(err)
	}
	return pt
}
