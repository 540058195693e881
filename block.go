// Copyright ©2025 The lac Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lac

// Block is a sparse matrix block as supplied by a storage layer. BlockMatrix
// owns its blocks exclusively and relays all numerical work to them; the
// package itself implements the interface locally with SparseBlock, while a
// distributed storage layer can plug in its own blocks.
//
// MulVec and MulTransVec accumulate into dst so that block rows can be
// summed block by block; callers zero dst first where needed.
type Block interface {
	// Dims returns the block dimensions.
	Dims() (r, c int)

	// At returns the element at (i, j) local to the block.
	At(i, j int) float64

	// Set sets the element at (i, j) to v.
	Set(i, j int, v float64)

	// Add adds v to the element at (i, j).
	Add(i, j int, v float64)

	// SetRow sets the elements of row i at the given local column indices
	// to the respective values.
	SetRow(i int, cols []int, vals []float64)

	// AddRow adds the given values to the elements of row i at the given
	// local column indices.
	AddRow(i int, cols []int, vals []float64)

	// Compress finalizes pending insertions and accumulations so that the
	// block is ready for multiplication.
	Compress()

	// IsCompressed reports whether no mutations happened since the last
	// Compress.
	IsCompressed() bool

	// NNonzero returns the number of stored elements.
	NNonzero() int

	// MulVec adds A*x into dst.
	MulVec(dst, x []float64)

	// MulTransVec adds Aᵀ*x into dst.
	MulTransVec(dst, x []float64)
}

// PartitionMap describes the part of one block's row range that the calling
// process owns in a distributed setting. First and Beyond delimit the owned
// half-open interval; for serial use the whole range is owned.
type PartitionMap struct {
	// Size is the global number of rows of the block.
	Size int
	// First is the first owned row.
	First int
	// Beyond is one past the last owned row.
	Beyond int
}

// NewSerialMap returns a map for a block of n rows that are all owned by the
// calling process.
func NewSerialMap(n int) PartitionMap {
	return PartitionMap{Size: n, First: 0, Beyond: n}
}

// Owns reports whether row i is owned by the calling process.
func (m PartitionMap) Owns(i int) bool {
	return m.First <= i && i < m.Beyond
}

// NumOwned returns the number of owned rows.
func (m PartitionMap) NumOwned() int {
	return m.Beyond - m.First
}

// Synchronizer marks the collective synchronization points of the assembly
// cycle. CollectSizes and Compress are collective operations: every
// cooperating process in a distributed group must call them, and none may
// proceed past the call until all have. The contract is enforced by the
// storage layer behind Barrier, not by this package; a nil Synchronizer
// means single-process operation.
type Synchronizer interface {
	Barrier()
}
