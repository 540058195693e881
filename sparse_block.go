// Copyright ©2025 The lac Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lac

import (
	"github.com/vladimir-ch/lac/internal/csr"
	"github.com/vladimir-ch/lac/internal/dok"
)

// SparseBlock is the local, single-process implementation of Block.
//
// Mutations accumulate in a dictionary-of-keys store; Compress snapshots the
// store into compressed sparse row form for multiplication. Multiplying an
// uncompressed block panics.
type SparseBlock struct {
	pending *dok.Matrix
	mat     *csr.Matrix
	dirty   bool

	// Scratch for rebuilding the snapshot.
	ti, tj []int
	tv     []float64
}

var _ Block = (*SparseBlock)(nil)

// NewSparseBlock returns an empty r×c block.
func NewSparseBlock(r, c int) *SparseBlock {
	b := &SparseBlock{}
	b.Reinit(r, c)
	return b
}

// Reinit resizes the block to r×c, dropping all elements.
func (b *SparseBlock) Reinit(r, c int) {
	b.pending = dok.New(r, c)
	b.mat = nil
	b.dirty = false
}

// Dims returns the block dimensions.
func (b *SparseBlock) Dims() (r, c int) {
	return b.pending.Dims()
}

// At returns the element at (i, j).
func (b *SparseBlock) At(i, j int) float64 {
	return b.pending.At(i, j)
}

// Set sets the element at (i, j) to v.
func (b *SparseBlock) Set(i, j int, v float64) {
	b.pending.SetAt(i, j, v)
	b.dirty = true
}

// Add adds v to the element at (i, j).
func (b *SparseBlock) Add(i, j int, v float64) {
	b.pending.AddAt(i, j, v)
	b.dirty = true
}

// SetRow sets the elements of row i at the given column indices to the
// respective values.
func (b *SparseBlock) SetRow(i int, cols []int, vals []float64) {
	if len(cols) != len(vals) {
		panic("lac: mismatched column and value counts")
	}
	for k, j := range cols {
		b.pending.SetAt(i, j, vals[k])
	}
	b.dirty = true
}

// AddRow adds the given values to the elements of row i at the given column
// indices.
func (b *SparseBlock) AddRow(i int, cols []int, vals []float64) {
	if len(cols) != len(vals) {
		panic("lac: mismatched column and value counts")
	}
	for k, j := range cols {
		b.pending.AddAt(i, j, vals[k])
	}
	b.dirty = true
}

// Compress rebuilds the multiplication snapshot from the assembly store.
func (b *SparseBlock) Compress() {
	if b.mat != nil && !b.dirty {
		return
	}
	nnz := b.pending.NNonzero()
	if cap(b.tv) < nnz {
		b.ti = make([]int, 0, nnz)
		b.tj = make([]int, 0, nnz)
		b.tv = make([]float64, 0, nnz)
	}
	b.ti, b.tj, b.tv = b.ti[:0], b.tj[:0], b.tv[:0]
	b.pending.Do(func(i, j int, v float64) {
		b.ti = append(b.ti, i)
		b.tj = append(b.tj, j)
		b.tv = append(b.tv, v)
	})
	r, c := b.pending.Dims()
	b.mat = csr.New(r, c, b.ti, b.tj, b.tv)
	b.dirty = false
}

// IsCompressed reports whether no mutations happened since the last
// Compress.
func (b *SparseBlock) IsCompressed() bool {
	return b.mat != nil && !b.dirty
}

// NNonzero returns the number of stored elements.
func (b *SparseBlock) NNonzero() int {
	return b.pending.NNonzero()
}

// MulVec adds A*x into dst. The block must be compressed.
func (b *SparseBlock) MulVec(dst, x []float64) {
	if !b.IsCompressed() {
		panic("lac: multiplication on uncompressed block")
	}
	b.mat.MulVec(dst, x)
}

// MulTransVec adds Aᵀ*x into dst. The block must be compressed.
func (b *SparseBlock) MulTransVec(dst, x []float64) {
	if !b.IsCompressed() {
		panic("lac: multiplication on uncompressed block")
	}
	b.mat.MulTransVec(dst, x)
}

// Ops returns the matrix-vector operations of the compressed block, for use
// with the iterative solvers. The block must stay compressed while the
// operations are in use.
func (b *SparseBlock) Ops() MatrixOps {
	return MatrixOps{
		MatVec: func(dst, x []float64) {
			for i := range dst {
				dst[i] = 0
			}
			b.MulVec(dst, x)
		},
		MatTransVec: func(dst, x []float64) {
			for i := range dst {
				dst[i] = 0
			}
			b.MulTransVec(dst, x)
		},
	}
}
