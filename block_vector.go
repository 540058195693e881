// Copyright ©2025 The lac Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lac

import "math"

// BlockVector is a vector partitioned into consecutively numbered blocks.
// It pairs with BlockMatrix: the multiply and residual variants taking block
// operands expect the vector partition to match the matrix partition along
// the respective dimension.
type BlockVector struct {
	blocks  []*Vector
	indices BlockIndices
}

// NewBlockVector returns a block vector with zero-initialized blocks of the
// given sizes.
func NewBlockVector(sizes ...int) *BlockVector {
	bv := &BlockVector{}
	bv.Reinit(sizes, false)
	return bv
}

// Reinit resizes the vector to the given block sizes. The fast flag is
// passed through to Vector.Reinit for each block.
func (bv *BlockVector) Reinit(sizes []int, fast bool) {
	if cap(bv.blocks) < len(sizes) {
		blocks := make([]*Vector, len(sizes))
		copy(blocks, bv.blocks)
		bv.blocks = blocks
	}
	bv.blocks = bv.blocks[:len(sizes)]
	for b, n := range sizes {
		if bv.blocks[b] == nil {
			bv.blocks[b] = NewVector(n)
			continue
		}
		bv.blocks[b].Reinit(n, fast)
	}
	bv.indices.Reinit(sizes)
}

// NBlocks returns the number of blocks.
func (bv *BlockVector) NBlocks() int { return len(bv.blocks) }

// Block returns block b. The returned vector aliases the block storage;
// after resizing it the caller must call CollectSizes before any indexed
// access to the block vector.
func (bv *BlockVector) Block(b int) *Vector { return bv.blocks[b] }

// CollectSizes rebuilds the index mapping from the current block sizes. It
// must be called after any block was resized through Block.
func (bv *BlockVector) CollectSizes() {
	sizes := make([]int, len(bv.blocks))
	for b, v := range bv.blocks {
		sizes[b] = v.Size()
	}
	bv.indices.Reinit(sizes)
}

// Size returns the overall number of elements.
func (bv *BlockVector) Size() int { return bv.indices.Total() }

// At returns the element at global index i.
func (bv *BlockVector) At(i int) float64 {
	b, loc := bv.indices.GlobalToLocal(i)
	return bv.blocks[b].At(loc)
}

// SetAt sets the element at global index i to x.
func (bv *BlockVector) SetAt(i int, x float64) {
	b, loc := bv.indices.GlobalToLocal(i)
	bv.blocks[b].SetAt(loc, x)
}

// Fill sets every element to s.
func (bv *BlockVector) Fill(s float64) {
	for _, v := range bv.blocks {
		v.Fill(s)
	}
}

// CopyFrom makes bv a copy of w, resizing if necessary.
func (bv *BlockVector) CopyFrom(w *BlockVector) {
	sizes := make([]int, w.NBlocks())
	for b, v := range w.blocks {
		sizes[b] = v.Size()
	}
	bv.Reinit(sizes, true)
	for b, v := range w.blocks {
		bv.blocks[b].CopyFrom(v)
	}
}

// Clone returns a copy of the block vector.
func (bv *BlockVector) Clone() *BlockVector {
	c := &BlockVector{}
	c.CopyFrom(bv)
	return c
}

// NormSqr returns the square of the l2 norm over all blocks.
func (bv *BlockVector) NormSqr() float64 {
	var s float64
	for _, v := range bv.blocks {
		s += v.NormSqr()
	}
	return s
}

// L2Norm returns the l2 norm over all blocks.
func (bv *BlockVector) L2Norm() float64 {
	return math.Sqrt(bv.NormSqr())
}

// Dot returns the scalar product bv·w.
func (bv *BlockVector) Dot(w *BlockVector) (float64, error) {
	if len(bv.blocks) != len(w.blocks) {
		return 0, ErrDimensionMismatch
	}
	var s float64
	for b, v := range bv.blocks {
		d, err := v.Dot(w.blocks[b])
		if err != nil {
			return 0, err
		}
		s += d
	}
	return s, nil
}

// AddScaled computes bv += a*w block by block.
func (bv *BlockVector) AddScaled(a float64, w *BlockVector) error {
	if len(bv.blocks) != len(w.blocks) {
		return ErrDimensionMismatch
	}
	for b, v := range bv.blocks {
		if err := v.AddScaled(a, w.blocks[b]); err != nil {
			return err
		}
	}
	return nil
}

// Equ computes bv = a*w block by block, resizing if necessary.
func (bv *BlockVector) Equ(a float64, w *BlockVector) error {
	bv.CopyFrom(w)
	for _, v := range bv.blocks {
		v.Scale(a)
	}
	return nil
}
