// Copyright ©2025 The lac Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lac

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlockIndicesMapping(t *testing.T) {
	bi := NewBlockIndices([]int{3, 1, 2})

	require.Equal(t, 3, bi.NumBlocks())
	require.Equal(t, 6, bi.Total())
	require.Equal(t, 3, bi.BlockSize(0))
	require.Equal(t, 1, bi.BlockSize(1))
	require.Equal(t, 2, bi.BlockSize(2))
	require.Equal(t, 0, bi.BlockStart(0))
	require.Equal(t, 3, bi.BlockStart(1))
	require.Equal(t, 4, bi.BlockStart(2))

	wantBlock := []int{0, 0, 0, 1, 2, 2}
	wantLocal := []int{0, 1, 2, 0, 0, 1}
	for i := 0; i < bi.Total(); i++ {
		b, loc := bi.GlobalToLocal(i)
		require.Equal(t, wantBlock[i], b, "global index %d", i)
		require.Equal(t, wantLocal[i], loc, "global index %d", i)
		require.Equal(t, i, bi.LocalToGlobal(b, loc), "global index %d", i)
	}
}

func TestBlockIndicesEmpty(t *testing.T) {
	var bi BlockIndices
	require.Equal(t, 0, bi.NumBlocks())
	require.Equal(t, 0, bi.Total())
}

func TestBlockIndicesZeroSizedBlock(t *testing.T) {
	bi := NewBlockIndices([]int{2, 0, 3})
	require.Equal(t, 5, bi.Total())
	// Indices of the empty block are owned by its right neighbor.
	b, loc := bi.GlobalToLocal(2)
	require.Equal(t, 2, b)
	require.Equal(t, 0, loc)
}

func TestBlockIndicesPanics(t *testing.T) {
	bi := NewBlockIndices([]int{2, 2})
	require.Panics(t, func() { bi.GlobalToLocal(4) })
	require.Panics(t, func() { bi.GlobalToLocal(-1) })
	require.Panics(t, func() { bi.LocalToGlobal(2, 0) })
	require.Panics(t, func() { bi.LocalToGlobal(0, 2) })
}
