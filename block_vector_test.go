// Copyright ©2025 The lac Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lac

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlockVectorGlobalAccess(t *testing.T) {
	bv := NewBlockVector(2, 3)
	require.Equal(t, 2, bv.NBlocks())
	require.Equal(t, 5, bv.Size())

	for i := 0; i < bv.Size(); i++ {
		bv.SetAt(i, float64(i+1))
	}
	require.Equal(t, []float64{1, 2}, bv.Block(0).Data())
	require.Equal(t, []float64{3, 4, 5}, bv.Block(1).Data())
	require.Equal(t, 4.0, bv.At(3))
}

func TestBlockVectorNorms(t *testing.T) {
	bv := NewBlockVector(2, 2)
	bv.Fill(2)
	require.Equal(t, 16.0, bv.NormSqr())
	require.InDelta(t, 4.0, bv.L2Norm(), 1e-14)

	w := NewBlockVector(2, 2)
	w.Fill(3)
	d, err := bv.Dot(w)
	require.NoError(t, err)
	require.Equal(t, 24.0, d)
}

func TestBlockVectorArithmetic(t *testing.T) {
	v := NewBlockVector(2, 1)
	v.Fill(1)
	w := NewBlockVector(2, 1)
	w.Fill(2)

	require.NoError(t, v.AddScaled(2, w)) // v = 1 + 2*2
	for i := 0; i < v.Size(); i++ {
		require.Equal(t, 5.0, v.At(i))
	}

	var u BlockVector
	require.NoError(t, u.Equ(-1, w))
	for i := 0; i < u.Size(); i++ {
		require.Equal(t, -2.0, u.At(i))
	}

	x := NewBlockVector(3)
	require.ErrorIs(t, v.AddScaled(1, x), ErrDimensionMismatch)
	_, err := v.Dot(x)
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestBlockVectorCollectSizes(t *testing.T) {
	bv := NewBlockVector(2, 2)
	bv.Block(1).Reinit(4, false)
	bv.CollectSizes()
	require.Equal(t, 6, bv.Size())
	bv.SetAt(5, math.Pi)
	require.Equal(t, math.Pi, bv.Block(1).At(3))
}

func TestBlockVectorCloneCopy(t *testing.T) {
	v := NewBlockVector(1, 2)
	v.SetAt(0, 1)
	v.SetAt(2, 3)
	c := v.Clone()
	c.SetAt(0, -1)
	require.Equal(t, 1.0, v.At(0))
	require.Equal(t, -1.0, c.At(0))
	require.Equal(t, 3.0, c.At(2))
}
