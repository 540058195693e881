// Copyright ©2025 The lac Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lac

// BlockMatrix is a sparse matrix composed of a 2-D grid of sparse matrix
// blocks. It routes global (row, column) coordinates to the owning block and
// relays all numerical work to the blocks, which it owns exclusively.
//
// A BlockMatrix is created empty. Reinit sets the number of block rows and
// columns and replaces all blocks by uninitialized placeholders; the caller
// installs sized blocks with SetBlock and then must call CollectSizes to
// finalize the coordinate mapping before any indexed access. After resizing
// any block, CollectSizes must be called again.
type BlockMatrix struct {
	blocks     [][]Block
	rowIndices BlockIndices
	colIndices BlockIndices

	// Sync, when non-nil, marks the collective synchronization points of
	// CollectSizes and Compress in a distributed setting.
	Sync Synchronizer

	// Scratch for the bulk dispatch of SetMatrix and AddMatrix.
	colRunStart []int
	colRunLen   []int
	localCols   []int
}

// NewBlockMatrix returns an empty matrix with a 0×0 block grid.
func NewBlockMatrix() *BlockMatrix {
	return &BlockMatrix{}
}

// Reinit sets the number of block rows and columns. All blocks are replaced
// by uninitialized placeholders; the caller has to install each block with
// SetBlock and call CollectSizes afterwards. The grid dimensions are fixed
// until the next Reinit.
func (m *BlockMatrix) Reinit(blockRows, blockCols int) {
	if blockRows < 0 || blockCols < 0 {
		panic("lac: negative block grid dimension")
	}
	m.blocks = make([][]Block, blockRows)
	for r := range m.blocks {
		m.blocks[r] = make([]Block, blockCols)
	}
	m.rowIndices = BlockIndices{}
	m.colIndices = BlockIndices{}
}

// ReinitMaps builds a quadratic block grid from per-process partition maps,
// one map per block row. Block (i, j) is allocated with alloc as a
// maps[i].Size×maps[j].Size block. CollectSizes is called internally.
func (m *BlockMatrix) ReinitMaps(maps []PartitionMap, alloc func(r, c int) Block) error {
	n := len(maps)
	m.Reinit(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.blocks[i][j] = alloc(maps[i].Size, maps[j].Size)
		}
	}
	return m.CollectSizes()
}

// Clear resets the matrix to an empty 0×0 block grid, releasing all blocks.
func (m *BlockMatrix) Clear() {
	m.Reinit(0, 0)
}

// NBlockRows returns the number of block rows.
func (m *BlockMatrix) NBlockRows() int { return len(m.blocks) }

// NBlockCols returns the number of block columns.
func (m *BlockMatrix) NBlockCols() int {
	if len(m.blocks) == 0 {
		return 0
	}
	return len(m.blocks[0])
}

// SetBlock installs b as the block at grid position (row, col). The matrix
// takes exclusive ownership of b; callers must not retain aliases that
// outlive a Reinit.
func (m *BlockMatrix) SetBlock(row, col int, b Block) {
	m.checkGrid(row, col)
	m.blocks[row][col] = b
}

// Block returns the block at grid position (row, col).
func (m *BlockMatrix) Block(row, col int) Block {
	m.checkGrid(row, col)
	return m.blocks[row][col]
}

func (m *BlockMatrix) checkGrid(row, col int) {
	if row < 0 || m.NBlockRows() <= row || col < 0 || m.NBlockCols() <= col {
		panic("lac: block grid index out of range")
	}
}

// Dims returns the global matrix dimensions. Valid after CollectSizes.
func (m *BlockMatrix) Dims() (r, c int) {
	return m.rowIndices.Total(), m.colIndices.Total()
}

// CollectSizes collects the sizes of all blocks and rebuilds the tables
// relaying global indices into the blocks. It must be called each time
// after block sizes changed and before any indexed access.
//
// Blocks in the same block row must agree on their row count and blocks in
// the same block column on their column count; a violation fails with
// ErrIncompatibleRowCount or ErrIncompatibleColCount. An uninitialized
// block placeholder panics.
//
// This is a collective operation: in a distributed setting it must be
// called by every cooperating process. It internally calls Compress, so a
// separate Compress call is not needed.
func (m *BlockMatrix) CollectSizes() error {
	brows, bcols := m.NBlockRows(), m.NBlockCols()
	rowSizes := make([]int, brows)
	colSizes := make([]int, bcols)
	for r := 0; r < brows; r++ {
		for c := 0; c < bcols; c++ {
			b := m.blocks[r][c]
			if b == nil {
				panic("lac: uninitialized block placeholder")
			}
			nr, nc := b.Dims()
			if c == 0 {
				rowSizes[r] = nr
			} else if rowSizes[r] != nr {
				return ErrIncompatibleRowCount
			}
			if r == 0 {
				colSizes[c] = nc
			} else if colSizes[c] != nc {
				return ErrIncompatibleColCount
			}
		}
	}
	m.rowIndices.Reinit(rowSizes)
	m.colIndices.Reinit(colSizes)
	m.Compress()
	return nil
}

// Compress finalizes pending insertions on every block.
//
// This is a collective operation: in a distributed setting it must be
// called by every cooperating process after assembly is completed, before
// the matrix can be used.
func (m *BlockMatrix) Compress() {
	for _, row := range m.blocks {
		for _, b := range row {
			if b != nil {
				b.Compress()
			}
		}
	}
	if m.Sync != nil {
		m.Sync.Barrier()
	}
}

// IsCompressed reports whether every block has been compressed. The cost
// scales with the number of blocks; it is meant for diagnostics, not hot
// paths.
func (m *BlockMatrix) IsCompressed() bool {
	for _, row := range m.blocks {
		for _, b := range row {
			if b != nil && !b.IsCompressed() {
				return false
			}
		}
	}
	return true
}

// NNonzeroElements returns the number of stored elements summed over all
// blocks.
func (m *BlockMatrix) NNonzeroElements() int {
	var n int
	for _, row := range m.blocks {
		for _, b := range row {
			if b != nil {
				n += b.NNonzero()
			}
		}
	}
	return n
}

// Set sets the element at global position (i, j) to v. For a single element
// it is faster to resolve and dispatch directly than to go through the bulk
// machinery.
func (m *BlockMatrix) Set(i, j int, v float64) error {
	if i < 0 || m.rowIndices.Total() <= i || j < 0 || m.colIndices.Total() <= j {
		return ErrIndexOutOfRange
	}
	br, lr := m.rowIndices.GlobalToLocal(i)
	bc, lc := m.colIndices.GlobalToLocal(j)
	m.blocks[br][bc].Set(lr, lc, v)
	return nil
}

// Add adds v to the element at global position (i, j).
func (m *BlockMatrix) Add(i, j int, v float64) error {
	if i < 0 || m.rowIndices.Total() <= i || j < 0 || m.colIndices.Total() <= j {
		return ErrIndexOutOfRange
	}
	br, lr := m.rowIndices.GlobalToLocal(i)
	bc, lc := m.colIndices.GlobalToLocal(j)
	m.blocks[br][bc].Add(lr, lc, v)
	return nil
}

// At returns the element at global position (i, j). It panics if the
// indices are out of range.
func (m *BlockMatrix) At(i, j int) float64 {
	br, lr := m.rowIndices.GlobalToLocal(i)
	bc, lc := m.colIndices.GlobalToLocal(j)
	return m.blocks[br][bc].At(lr, lc)
}

// SetMatrix sets all elements of a dense local contribution into the
// matrix. values is row-major with len(rows)*len(cols) elements; element
// (rows[i], cols[j]) is set to values[i*len(cols)+j].
//
// The column indices must be sorted by increasing block-column membership;
// within a block column any order is allowed. Violating this ordering is an
// internal consistency failure and panics.
func (m *BlockMatrix) SetMatrix(rows, cols []int, values []float64) error {
	return m.dispatch(rows, cols, values, false)
}

// AddMatrix adds all elements of a dense local contribution into the
// matrix. See SetMatrix for the layout and ordering contract.
func (m *BlockMatrix) AddMatrix(rows, cols []int, values []float64) error {
	return m.dispatch(rows, cols, values, true)
}

// SetRow sets the elements of global row i at the given global column
// indices to the respective values.
func (m *BlockMatrix) SetRow(i int, cols []int, values []float64) error {
	return m.dispatch([]int{i}, cols, values, false)
}

// AddRow adds the given values to the elements of global row i at the given
// global column indices.
func (m *BlockMatrix) AddRow(i int, cols []int, values []float64) error {
	return m.dispatch([]int{i}, cols, values, true)
}

// dispatch distributes a rectangular dense contribution across the block
// grid. The column indices are walked once to split them into per
// block-column runs, so every (row, block column) pair costs a single
// forwarded call instead of one call per element. The runs can be computed
// before the row loop because the contribution is rectangular.
func (m *BlockMatrix) dispatch(rows, cols []int, values []float64, add bool) error {
	if len(values) != len(rows)*len(cols) {
		return ErrDimensionMismatch
	}
	nRows, nCols := m.rowIndices.Total(), m.colIndices.Total()
	for _, i := range rows {
		if i < 0 || nRows <= i {
			return ErrIndexOutOfRange
		}
	}
	for _, j := range cols {
		if j < 0 || nCols <= j {
			return ErrIndexOutOfRange
		}
	}

	nbc := m.NBlockCols()
	m.colRunStart = reuseInts(m.colRunStart, nbc)
	m.colRunLen = reuseInts(m.colRunLen, nbc)
	m.localCols = reuseInts(m.localCols, len(cols))
	for i := range m.colRunLen {
		m.colRunLen[i] = 0
	}

	// Split the column indices into one contiguous run per block column.
	current, runLen := 0, 0
	if nbc > 0 {
		m.colRunStart[0] = 0
	}
	for j, cj := range cols {
		bc, lc := m.colIndices.GlobalToLocal(cj)
		m.localCols[j] = lc
		if bc > current {
			m.colRunLen[current] = runLen
			runLen = 0
			for bc > current {
				current++
			}
			m.colRunStart[current] = j
		}
		if bc != current {
			panic("lac: column indices not sorted by block column")
		}
		runLen++
	}
	if nbc > 0 {
		m.colRunLen[current] = runLen
	}

	// Rows need not be sorted; resolve each one independently and forward
	// one single-row call per non-empty run.
	for i, ri := range rows {
		br, lr := m.rowIndices.GlobalToLocal(ri)
		rowVals := values[i*len(cols) : (i+1)*len(cols)]
		for bc := 0; bc < nbc; bc++ {
			n := m.colRunLen[bc]
			if n == 0 {
				continue
			}
			start := m.colRunStart[bc]
			b := m.blocks[br][bc]
			if add {
				b.AddRow(lr, m.localCols[start:start+n], rowVals[start:start+n])
			} else {
				b.SetRow(lr, m.localCols[start:start+n], rowVals[start:start+n])
			}
		}
	}
	return nil
}

func reuseInts(v []int, n int) []int {
	if cap(v) < n {
		return make([]int, n)
	}
	return v[:n]
}
