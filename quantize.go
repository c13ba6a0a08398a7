package splinosaurus

import (
	"fmt"
	"iter"
	"math"
)

// maxSteps bounds the number of samples along one axis.
const maxSteps = 1 << 30

// Steps is an evenly stepped, finite sequence of parameters over an
// inclusive interval. The last value is always exactly the end of the
// interval, even when the step does not divide it.
//
// Values are computed as start + i*step rather than accumulated, so there is
// no drift past the end.
type Steps[T Scalar] struct {
	start, end, step T
	n                int
}

// QuantizeRange steps through r by step. It fails with
// ErrInvalidConfiguration when step is not a positive finite number.
func QuantizeRange[T Scalar](r Interval[T], step T) (Steps[T], error) {
	if !(step > 0) || math.IsInf(float64(step), 1) {
		return Steps[T]{}, fmt.Errorf("%w: step must be positive and finite, got %g",
			ErrInvalidConfiguration, float64(step))
	}

	if !(r.Start <= r.End) {
		return Steps[T]{}, fmt.Errorf("%w: interval %v is empty", ErrInvalidConfiguration, r)
	}

	count := math.Ceil(float64(r.End-r.Start) / float64(step))
	if count >= maxSteps {
		return Steps[T]{}, fmt.Errorf("%w: step %g over %v gives more than %d samples",
			ErrInvalidConfiguration, float64(step), r, maxSteps)
	}

	// m is the number of values start + i*step strictly below end; the
	// ceiling above can be off by one either way from rounding.
	m := int(count)
	for m > 0 && r.Start+T(m-1)*step >= r.End {
		m--
	}
	for r.Start+T(m)*step < r.End {
		m++
	}

	return Steps[T]{r.Start, r.End, step, m + 1}, nil
}

// Len is the exact number of values in the sequence.
func (s Steps[T]) Len() int {
	return s.n
}

func (s Steps[T]) Step() T {
	return s.step
}

// At returns the i-th value.
func (s Steps[T]) At(i int) T {
	if i == s.n-1 {
		return s.end
	}
	return s.start + T(i)*s.step
}

// All yields every value in order. Each call starts a fresh pass.
func (s Steps[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < s.n; i++ {
			if !yield(s.At(i)) {
				return
			}
		}
	}
}

// UVSteps is the cross product of u and v steps in row-major order: u
// varies fastest.
type UVSteps[T Scalar] struct {
	U, V Steps[T]
}

// QuantizeUVRange steps through u × v with the same step on both axes.
func QuantizeUVRange[T Scalar](u, v Interval[T], step T) (UVSteps[T], error) {
	us, err := QuantizeRange(u, step)
	if err != nil {
		return UVSteps[T]{}, err
	}
	vs, err := QuantizeRange(v, step)
	if err != nil {
		return UVSteps[T]{}, err
	}

	return UVSteps[T]{us, vs}, nil
}

// Len is U.Len() * V.Len().
func (s UVSteps[T]) Len() int {
	return s.U.Len() * s.V.Len()
}

func (s UVSteps[T]) At(i int) UV[T] {
	nu := s.U.Len()
	return UV[T]{s.U.At(i % nu), s.V.At(i / nu)}
}

func (s UVSteps[T]) All() iter.Seq[UV[T]] {
	return func(yield func(UV[T]) bool) {
		for j := 0; j < s.V.Len(); j++ {
			v := s.V.At(j)
			for i := 0; i < s.U.Len(); i++ {
				if !yield(UV[T]{s.U.At(i), v}) {
					return
				}
			}
		}
	}
}

// Quantize yields the points of c at QuantizeRange(c.Range(), step). An
// invalid step or a failed evaluation is yielded as the last element.
func Quantize[T Scalar](c Curve[T], step T) iter.Seq2[Vector[T], error] {
	return func(yield func(Vector[T], error) bool) {
		steps, err := QuantizeRange(c.Range(), step)
		if err != nil {
			yield(nil, err)
			return
		}

		for u := range steps.All() {
			pt, err := c.At(u)
			if !yield(pt, err) || err != nil {
				return
			}
		}
	}
}

// Sample collects Quantize(c, step) into a slice of exactly the step count.
func Sample[T Scalar](c Curve[T], step T) ([]Vector[T], error) {
	steps, err := QuantizeRange(c.Range(), step)
	if err != nil {
		return nil, err
	}

	pts := make([]Vector[T], 0, steps.Len())
	for u := range steps.All() {
		pt, err := c.At(u)
		if err != nil {
			return nil, err
		}
		pts = append(pts, pt)
	}

	return pts, nil
}

// QuantizeSurface yields the points of s over its u × v steps, u fastest.
func QuantizeSurface[T Scalar](s Surface[T], step T) iter.Seq2[Vector[T], error] {
	return func(yield func(Vector[T], error) bool) {
		steps, err := QuantizeUVRange(s.URange(), s.VRange(), step)
		if err != nil {
			yield(nil, err)
			return
		}

		for uv := range steps.All() {
			pt, err := s.At(uv)
			if !yield(pt, err) || err != nil {
				return
			}
		}
	}
}

// SampleSurface collects QuantizeSurface(s, step) and returns the steps it
// was taken at, so callers can address the samples as a grid.
func SampleSurface[T Scalar](s Surface[T], step T) ([]Vector[T], UVSteps[T], error) {
	steps, err := QuantizeUVRange(s.URange(), s.VRange(), step)
	if err != nil {
		return nil, UVSteps[T]{}, err
	}

	pts := make([]Vector[T], 0, steps.Len())
	for uv := range steps.All() {
		pt, err := s.At(uv)
		if err != nil {
			return nil, UVSteps[T]{}, err
		}
		pts = append(pts, pt)
	}

	return pts, steps, nil
}
