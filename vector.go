// Copyright ©2025 The lac Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lac

import (
	"math"

	"github.com/gonum/floats"
)

// Vector is a dense vector of float64 values suitable for numerical
// computations. In contrast to a plain slice it implements an element of a
// vector space: all arithmetic operations work element-wise over the whole
// vector and check that the operands have matching sizes.
//
// The zero value is an empty vector ready to use.
type Vector struct {
	data []float64
}

// NewVector returns a vector of n zero elements.
func NewVector(n int) *Vector {
	return &Vector{data: make([]float64, n)}
}

// VectorOf returns a vector holding a copy of the given values.
func VectorOf(vals ...float64) *Vector {
	v := &Vector{data: make([]float64, len(vals))}
	copy(v.data, vals)
	return v
}

// Size returns the number of elements of the vector.
func (v *Vector) Size() int { return len(v.data) }

// Reinit changes the size of the vector to n.
//
// Reserved storage is kept if it suffices, so growing within the previous
// capacity is cheap. Reinit(0, ...) releases all storage; to both shrink a
// vector and return its memory, call Reinit(0, false) followed by
// Reinit(n, false).
//
// When fast is false all elements are set to zero. When fast is true the
// elements are left unspecified: growing within capacity exposes whatever
// the storage held before.
func (v *Vector) Reinit(n int, fast bool) {
	if n == 0 {
		v.data = nil
		return
	}
	if cap(v.data) < n {
		v.data = make([]float64, n)
		return
	}
	v.data = v.data[:n]
	if !fast {
		for i := range v.data {
			v.data[i] = 0
		}
	}
}

// At returns the i-th element. It panics if i is out of range.
func (v *Vector) At(i int) float64 {
	if i < 0 || len(v.data) <= i {
		panic("lac: index out of range")
	}
	return v.data[i]
}

// SetAt sets the i-th element to x. It panics if i is out of range.
func (v *Vector) SetAt(i int, x float64) {
	if i < 0 || len(v.data) <= i {
		panic("lac: index out of range")
	}
	v.data[i] = x
}

// Data returns the backing slice of the vector. The slice aliases the
// vector's storage and is invalidated by Reinit.
func (v *Vector) Data() []float64 { return v.data }

// Fill sets every element to s.
func (v *Vector) Fill(s float64) {
	for i := range v.data {
		v.data[i] = s
	}
}

// CopyFrom makes v a copy of w, resizing if necessary.
func (v *Vector) CopyFrom(w *Vector) {
	v.Reinit(len(w.data), true)
	copy(v.data, w.data)
}

// Clone returns a copy of the vector.
func (v *Vector) Clone() *Vector {
	return VectorOf(v.data...)
}

// Dot returns the scalar product v·w.
func (v *Vector) Dot(w *Vector) (float64, error) {
	if len(v.data) != len(w.data) {
		return 0, ErrDimensionMismatch
	}
	return floats.Dot(v.data, w.data), nil
}

// NormSqr returns the square of the l2 norm.
func (v *Vector) NormSqr() float64 {
	return floats.Dot(v.data, v.data)
}

// L1Norm returns the sum of the absolute values of the elements.
func (v *Vector) L1Norm() float64 {
	return floats.Norm(v.data, 1)
}

// L2Norm returns the square root of the sum of squares of the elements.
func (v *Vector) L2Norm() float64 {
	return floats.Norm(v.data, 2)
}

// LinftyNorm returns the maximum absolute value of the elements.
func (v *Vector) LinftyNorm() float64 {
	if len(v.data) == 0 {
		return 0
	}
	return floats.Norm(v.data, math.Inf(1))
}

// MeanValue returns the arithmetic mean of the elements. It fails with
// ErrEmptyVector on a zero-length vector.
func (v *Vector) MeanValue() (float64, error) {
	if len(v.data) == 0 {
		return 0, ErrEmptyVector
	}
	return floats.Sum(v.data) / float64(len(v.data)), nil
}

// Add adds s to every element.
func (v *Vector) Add(s float64) {
	floats.AddConst(s, v.data)
}

// AddVec computes v += w.
func (v *Vector) AddVec(w *Vector) error {
	if len(v.data) != len(w.data) {
		return ErrDimensionMismatch
	}
	floats.Add(v.data, w.data)
	return nil
}

// AddScaled computes v += a*w.
func (v *Vector) AddScaled(a float64, w *Vector) error {
	if len(v.data) != len(w.data) {
		return ErrDimensionMismatch
	}
	floats.AddScaled(v.data, a, w.data)
	return nil
}

// AddScaled2 computes v += a*w + b*x.
func (v *Vector) AddScaled2(a float64, w *Vector, b float64, x *Vector) error {
	if len(v.data) != len(w.data) || len(v.data) != len(x.data) {
		return ErrDimensionMismatch
	}
	floats.AddScaled(v.data, a, w.data)
	floats.AddScaled(v.data, b, x.data)
	return nil
}

// Sadd computes v = s*v + w.
func (v *Vector) Sadd(s float64, w *Vector) error {
	return v.SaddScaled(s, 1, w)
}

// SaddScaled computes v = s*v + a*w.
func (v *Vector) SaddScaled(s, a float64, w *Vector) error {
	if len(v.data) != len(w.data) {
		return ErrDimensionMismatch
	}
	floats.Scale(s, v.data)
	floats.AddScaled(v.data, a, w.data)
	return nil
}

// SaddScaled2 computes v = s*v + a*w + b*x. On error v is left untouched.
func (v *Vector) SaddScaled2(s, a float64, w *Vector, b float64, x *Vector) error {
	if len(v.data) != len(w.data) || len(v.data) != len(x.data) {
		return ErrDimensionMismatch
	}
	floats.Scale(s, v.data)
	floats.AddScaled(v.data, a, w.data)
	floats.AddScaled(v.data, b, x.data)
	return nil
}

// SaddScaled3 computes v = s*v + a*w + b*x + c*y. On error v is left
// untouched.
func (v *Vector) SaddScaled3(s, a float64, w *Vector, b float64, x *Vector, c float64, y *Vector) error {
	if len(v.data) != len(w.data) || len(v.data) != len(x.data) || len(v.data) != len(y.data) {
		return ErrDimensionMismatch
	}
	floats.Scale(s, v.data)
	floats.AddScaled(v.data, a, w.data)
	floats.AddScaled(v.data, b, x.data)
	floats.AddScaled(v.data, c, y.data)
	return nil
}

// Scale multiplies every element by factor.
func (v *Vector) Scale(factor float64) {
	floats.Scale(factor, v.data)
}

// Equ computes v = a*w.
func (v *Vector) Equ(a float64, w *Vector) error {
	if len(v.data) != len(w.data) {
		return ErrDimensionMismatch
	}
	copy(v.data, w.data)
	floats.Scale(a, v.data)
	return nil
}

// Equ2 computes v = a*w + b*x. On error v is left untouched.
func (v *Vector) Equ2(a float64, w *Vector, b float64, x *Vector) error {
	if len(v.data) != len(w.data) || len(v.data) != len(x.data) {
		return ErrDimensionMismatch
	}
	copy(v.data, w.data)
	floats.Scale(a, v.data)
	floats.AddScaled(v.data, b, x.data)
	return nil
}

// Ratio computes the element-wise ratio v[i] = a[i]/b[i].
//
// If any b[i] is zero the result is undefined. No attempt is made to catch
// such situations; this is the caller's responsibility.
func (v *Vector) Ratio(a, b *Vector) error {
	if len(a.data) != len(b.data) {
		return ErrDimensionMismatch
	}
	v.Reinit(len(a.data), true)
	floats.DivTo(v.data, a.data, b.data)
	return nil
}

// AllZero reports whether every element is exactly zero. It is mainly an
// internal consistency check; it walks the whole vector, so avoid it in hot
// paths.
func (v *Vector) AllZero() bool {
	for _, x := range v.data {
		if x != 0 {
			return false
		}
	}
	return true
}
