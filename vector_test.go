// Copyright ©2025 The lac Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lac

import (
	"math"
	"math/rand"
	"testing"

	"github.com/gonum/floats"
	"github.com/stretchr/testify/require"
)

func randomVector(n int, rnd *rand.Rand) *Vector {
	v := NewVector(n)
	for i := 0; i < n; i++ {
		v.SetAt(i, 2*rnd.Float64()-1)
	}
	return v
}

func TestVectorFillAddScaled(t *testing.T) {
	v := NewVector(3)
	v.Fill(2)
	w := VectorOf(1, 1, 1)
	if err := v.AddScaled(3, w); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !floats.Equal(v.Data(), []float64{5, 5, 5}) {
		t.Errorf("unexpected result %v", v.Data())
	}
	if got := v.L1Norm(); got != 15 {
		t.Errorf("unexpected l1 norm %v", got)
	}
	if got := v.L2Norm(); math.Abs(got-math.Sqrt(75)) > 1e-14 {
		t.Errorf("unexpected l2 norm %v", got)
	}
	if got := v.LinftyNorm(); got != 5 {
		t.Errorf("unexpected linfty norm %v", got)
	}
	mean, err := v.MeanValue()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mean != 5 {
		t.Errorf("unexpected mean value %v", mean)
	}
}

func TestVectorAddRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, n := range []int{1, 2, 5, 10, 100} {
		v := randomVector(n, rnd)
		w := randomVector(n, rnd)
		a := 10 * (rnd.Float64() - 0.5)

		orig := v.Clone()
		if err := v.AddScaled(a, w); err != nil {
			t.Fatalf("n=%v: unexpected error: %v", n, err)
		}
		if err := v.AddScaled(-a, w); err != nil {
			t.Fatalf("n=%v: unexpected error: %v", n, err)
		}
		if !floats.EqualApprox(v.Data(), orig.Data(), 1e-12) {
			t.Errorf("n=%v: round trip does not restore the vector", n)
		}
	}
}

func TestVectorDotSymmetric(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, n := range []int{1, 3, 17, 100} {
		v := randomVector(n, rnd)
		w := randomVector(n, rnd)
		vw, err := v.Dot(w)
		if err != nil {
			t.Fatalf("n=%v: unexpected error: %v", n, err)
		}
		wv, err := w.Dot(v)
		if err != nil {
			t.Fatalf("n=%v: unexpected error: %v", n, err)
		}
		if vw != wv {
			t.Errorf("n=%v: dot product not symmetric: %v != %v", n, vw, wv)
		}
	}
}

func TestVectorNorms(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	v := randomVector(50, rnd)
	if got, want := v.L2Norm(), math.Sqrt(v.NormSqr()); math.Abs(got-want) > 1e-14 {
		t.Errorf("l2 norm %v does not match sqrt of norm square %v", got, want)
	}
}

func TestVectorReinit(t *testing.T) {
	v := VectorOf(1, 2, 3)
	v.Reinit(0, false)
	if v.Size() != 0 {
		t.Fatalf("unexpected size %v after release", v.Size())
	}
	v.Reinit(5, false)
	if v.Size() != 5 {
		t.Fatalf("unexpected size %v", v.Size())
	}
	if !v.AllZero() {
		t.Errorf("vector not zero after Reinit(5, false): %v", v.Data())
	}

	// Shrinking and growing again within capacity with fast set keeps the
	// existing elements.
	w := VectorOf(1, 2, 3)
	w.Reinit(2, true)
	w.Reinit(3, true)
	if !floats.Equal(w.Data(), []float64{1, 2, 3}) {
		t.Errorf("unexpected contents %v", w.Data())
	}
}

func TestVectorSaddEqu(t *testing.T) {
	v := VectorOf(1, 2, 3)
	w := VectorOf(4, 5, 6)
	x := VectorOf(-1, 0, 1)

	u := v.Clone()
	require.NoError(t, u.SaddScaled(2, 3, w)) // u = 2*v + 3*w
	require.Equal(t, []float64{14, 19, 24}, u.Data())

	u = v.Clone()
	require.NoError(t, u.SaddScaled2(1, 1, w, 2, x)) // u = v + w + 2*x
	require.Equal(t, []float64{3, 7, 11}, u.Data())

	u = v.Clone()
	require.NoError(t, u.SaddScaled3(0, 1, w, 1, x, 1, v)) // u = w + x + v
	require.Equal(t, []float64{4, 7, 10}, u.Data())

	u = NewVector(3)
	require.NoError(t, u.Equ(2, v))
	require.Equal(t, []float64{2, 4, 6}, u.Data())

	require.NoError(t, u.Equ2(1, v, -1, w))
	require.Equal(t, []float64{-3, -3, -3}, u.Data())

	u = v.Clone()
	require.NoError(t, u.Sadd(-1, w)) // u = w - v
	require.Equal(t, []float64{3, 3, 3}, u.Data())

	u = v.Clone()
	require.NoError(t, u.AddScaled2(1, w, 1, x))
	require.Equal(t, []float64{4, 7, 10}, u.Data())

	u = v.Clone()
	u.Add(1)
	require.Equal(t, []float64{2, 3, 4}, u.Data())
	require.NoError(t, u.AddVec(v))
	require.Equal(t, []float64{3, 5, 7}, u.Data())
	u.Scale(2)
	require.Equal(t, []float64{6, 10, 14}, u.Data())
}

func TestVectorRatio(t *testing.T) {
	a := VectorOf(1, 4, 9)
	b := VectorOf(1, 2, 3)
	var v Vector
	require.NoError(t, v.Ratio(a, b))
	require.Equal(t, []float64{1, 2, 3}, v.Data())
}

func TestVectorAllZero(t *testing.T) {
	v := NewVector(4)
	if !v.AllZero() {
		t.Error("fresh vector not all zero")
	}
	v.SetAt(2, 1e-300)
	if v.AllZero() {
		t.Error("nonzero vector reported as all zero")
	}
}

func TestVectorDimensionMismatch(t *testing.T) {
	v := NewVector(3)
	w := NewVector(4)

	_, err := v.Dot(w)
	require.ErrorIs(t, err, ErrDimensionMismatch)
	require.ErrorIs(t, v.AddVec(w), ErrDimensionMismatch)
	require.ErrorIs(t, v.AddScaled(1, w), ErrDimensionMismatch)
	require.ErrorIs(t, v.AddScaled2(1, v, 1, w), ErrDimensionMismatch)
	require.ErrorIs(t, v.Sadd(1, w), ErrDimensionMismatch)
	require.ErrorIs(t, v.SaddScaled(1, 1, w), ErrDimensionMismatch)
	require.ErrorIs(t, v.Equ(1, w), ErrDimensionMismatch)
	require.ErrorIs(t, v.Ratio(v, w), ErrDimensionMismatch)
}

func TestVectorErrorLeavesDestinationUntouched(t *testing.T) {
	w := VectorOf(1, 1, 1)
	x := VectorOf(1, 1) // Mismatched second operand.
	y := VectorOf(1, 1)

	v := VectorOf(1, 2, 3)
	require.ErrorIs(t, v.SaddScaled2(2, 1, w, 1, x), ErrDimensionMismatch)
	require.Equal(t, []float64{1, 2, 3}, v.Data())

	require.ErrorIs(t, v.SaddScaled3(2, 1, w, 1, w, 1, y), ErrDimensionMismatch)
	require.Equal(t, []float64{1, 2, 3}, v.Data())

	require.ErrorIs(t, v.AddScaled2(1, w, 1, x), ErrDimensionMismatch)
	require.Equal(t, []float64{1, 2, 3}, v.Data())

	u := VectorOf(9, 9, 9)
	require.ErrorIs(t, u.Equ2(1, w, 1, x), ErrDimensionMismatch)
	require.Equal(t, []float64{9, 9, 9}, u.Data())
}

func TestVectorMeanValueEmpty(t *testing.T) {
	var v Vector
	_, err := v.MeanValue()
	require.ErrorIs(t, err, ErrEmptyVector)
}

func TestVectorAtPanics(t *testing.T) {
	v := NewVector(3)
	require.Panics(t, func() { v.At(3) })
	require.Panics(t, func() { v.At(-1) })
	require.Panics(t, func() { v.SetAt(3, 1) })
}
