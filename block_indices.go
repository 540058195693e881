// Copyright ©2025 The lac Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lac

import "sort"

// BlockIndices maps global indices of a partitioned index range to
// (block, local) pairs and back. It stores the prefix sums of the block
// sizes, so both directions are cheap.
//
// The zero value describes an empty range with no blocks.
type BlockIndices struct {
	// starts[b] is the global index of the first entry of block b;
	// starts[len(starts)-1] is the total size. Empty when no blocks are
	// present.
	starts []int
}

// NewBlockIndices returns the index mapping for consecutive blocks of the
// given sizes.
func NewBlockIndices(sizes []int) BlockIndices {
	var bi BlockIndices
	bi.Reinit(sizes)
	return bi
}

// Reinit recomputes the prefix sums for the given block sizes.
func (bi *BlockIndices) Reinit(sizes []int) {
	if cap(bi.starts) < len(sizes)+1 {
		bi.starts = make([]int, len(sizes)+1)
	}
	bi.starts = bi.starts[:len(sizes)+1]
	bi.starts[0] = 0
	for b, n := range sizes {
		if n < 0 {
			panic("lac: negative block size")
		}
		bi.starts[b+1] = bi.starts[b] + n
	}
}

// NumBlocks returns the number of blocks.
func (bi *BlockIndices) NumBlocks() int {
	if len(bi.starts) == 0 {
		return 0
	}
	return len(bi.starts) - 1
}

// Total returns the overall number of indices covered by all blocks.
func (bi *BlockIndices) Total() int {
	if len(bi.starts) == 0 {
		return 0
	}
	return bi.starts[len(bi.starts)-1]
}

// BlockSize returns the size of block b.
func (bi *BlockIndices) BlockSize(b int) int {
	return bi.starts[b+1] - bi.starts[b]
}

// BlockStart returns the global index of the first entry of block b.
func (bi *BlockIndices) BlockStart(b int) int {
	return bi.starts[b]
}

// GlobalToLocal resolves a global index to its owning block and the index
// local to that block. It panics if i is out of range.
func (bi *BlockIndices) GlobalToLocal(i int) (block, local int) {
	if i < 0 || bi.Total() <= i {
		panic("lac: index out of range")
	}
	// First block whose end lies beyond i.
	block = sort.Search(bi.NumBlocks(), func(b int) bool { return i < bi.starts[b+1] })
	return block, i - bi.starts[block]
}

// LocalToGlobal returns the global index of entry local of block b.
func (bi *BlockIndices) LocalToGlobal(block, local int) int {
	if block < 0 || bi.NumBlocks() <= block {
		panic("lac: block index out of range")
	}
	if local < 0 || bi.BlockSize(block) <= local {
		panic("lac: local index out of range")
	}
	return bi.starts[block] + local
}
